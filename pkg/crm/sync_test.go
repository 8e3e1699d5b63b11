package crm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/pkg/models"
)

type fakeStatuses struct {
	mu       sync.Mutex
	statuses map[string]string
}

func newFakeStatuses() *fakeStatuses {
	return &fakeStatuses{statuses: make(map[string]string)}
}

func (f *fakeStatuses) SetCRMSyncStatus(_ context.Context, leadID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[leadID] = status
	return nil
}

func strPtr(s string) *string { return &s }

func testLead() *ent.Lead {
	return &ent.Lead{
		ID:             "lead-1",
		ClientID:       "client-a",
		ConversationID: strPtr("conv-1"),
		Name:           strPtr("Ada Lovelace"),
		Email:          strPtr("ada@example.com"),
		Phone:          strPtr("+1-555-0100"),
		CompanyName:    strPtr("Analytical Engines"),
	}
}

func testSyncer(statuses *fakeStatuses) *Syncer {
	return NewSyncer(statuses, slog.New(slog.NewTextHandler(discard{}, nil)))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestSyncLead_NothingConfigured(t *testing.T) {
	statuses := newFakeStatuses()
	s := testSyncer(statuses)

	s.SyncLead(context.Background(), models.SettlingConfig{}, testLead())

	assert.Equal(t, "synced", statuses.statuses["lead-1"])
}

func TestSyncLead_HubspotCreate(t *testing.T) {
	var gotAuth string
	var gotProps map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Properties map[string]string `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotProps = body.Properties
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	statuses := newFakeStatuses()
	s := testSyncer(statuses)
	s.hubspotURL = srv.URL

	s.SyncLead(context.Background(), models.SettlingConfig{HubspotAPIKey: "hs-key"}, testLead())

	assert.Equal(t, "Bearer hs-key", gotAuth)
	assert.Equal(t, "ada@example.com", gotProps["email"])
	assert.Equal(t, "Ada", gotProps["firstname"])
	assert.Equal(t, "Lovelace", gotProps["lastname"])
	assert.Equal(t, "Analytical Engines", gotProps["company"])
	assert.Equal(t, "NEW", gotProps["hs_lead_status"])
	assert.Equal(t, "synced", statuses.statuses["lead-1"])
}

func TestSyncLead_HubspotConflictPatchesExisting(t *testing.T) {
	var patchedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{
				"message": "Contact already exists. Existing ID: 4451.",
			})
		case http.MethodPatch:
			patchedPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	statuses := newFakeStatuses()
	s := testSyncer(statuses)
	s.hubspotURL = srv.URL

	s.SyncLead(context.Background(), models.SettlingConfig{HubspotAPIKey: "hs-key"}, testLead())

	assert.True(t, strings.HasSuffix(patchedPath, "/4451"), "patch targets the existing contact")
	assert.Equal(t, "synced", statuses.statuses["lead-1"])
}

func TestSyncLead_HubspotSkipsWithoutEmail(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	statuses := newFakeStatuses()
	s := testSyncer(statuses)
	s.hubspotURL = srv.URL

	l := testLead()
	l.Email = nil
	s.SyncLead(context.Background(), models.SettlingConfig{HubspotAPIKey: "hs-key"}, l)

	assert.False(t, called, "no upsert without an email to key on")
	assert.Equal(t, "synced", statuses.statuses["lead-1"])
}

func TestSyncLead_WebhookDelivery(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	statuses := newFakeStatuses()
	s := testSyncer(statuses)

	s.SyncLead(context.Background(), models.SettlingConfig{WebhookURL: srv.URL}, testLead())

	assert.Equal(t, "ada@example.com", got["email"])
	assert.Equal(t, "conv-1", got["conversation_id"])
	assert.Equal(t, "synced", statuses.statuses["lead-1"])
}

func TestSyncLead_WebhookFailureMarksFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	statuses := newFakeStatuses()
	s := testSyncer(statuses)

	s.SyncLead(context.Background(), models.SettlingConfig{WebhookURL: srv.URL}, testLead())

	assert.Equal(t, "failed", statuses.statuses["lead-1"])
}

func TestSyncLead_OneTargetFailingMarksFailed(t *testing.T) {
	hubspot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer hubspot.Close()
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer webhook.Close()

	statuses := newFakeStatuses()
	s := testSyncer(statuses)
	s.hubspotURL = hubspot.URL

	s.SyncLead(context.Background(), models.SettlingConfig{
		HubspotAPIKey: "hs-key",
		WebhookURL:    webhook.URL,
	}, testLead())

	assert.Equal(t, "failed", statuses.statuses["lead-1"])
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, first, last string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Ada", "Ada", ""},
		{"Ada Augusta King-Noel", "Ada", "Augusta King-Noel"},
		{"", "", ""},
		{"   ", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}
