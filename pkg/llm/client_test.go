package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trykin/spark/pkg/config"
	"github.com/trykin/spark/pkg/models"
)

func testSettings() *config.Settings {
	return &config.Settings{
		GoogleAIAPIKey:      "gkey",
		MoonshotAPIKey:      "mkey",
		GroqAPIKey:          "qkey",
		OpenAIAPIKey:        "okey",
		PrimaryModel:        "gemini/gemini-3-flash-preview",
		FallbackModel:       "moonshot/kimi-k2.5",
		PreflightModel:      "groq/llama-3.1-8b-instant",
		EmbeddingModel:      "text-embedding-3-large",
		EmbeddingDimensions: 4,
	}
}

func newTestClient(cfg *config.Settings) *Client {
	return NewClient(cfg, slog.New(slog.NewTextHandler(testWriter{}, nil)))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

// completionServer answers chat completions with the given content and
// records the model and auth header it saw.
func completionServer(t *testing.T, content string, sawModel *string, sawAuth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if sawModel != nil {
			*sawModel = req.Model
		}
		if sawAuth != nil {
			*sawAuth = r.Header.Get("Authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
	}))
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
}

func TestComplete_RoutesByModelPrefix(t *testing.T) {
	var sawModel, sawAuth string
	srv := completionServer(t, "hello", &sawModel, &sawAuth)
	defer srv.Close()

	c := newTestClient(testSettings())
	c.baseURLs["gemini"] = srv.URL

	text, err := c.Complete(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "gemini-3-flash-preview", sawModel, "provider prefix is stripped before the wire")
	assert.Equal(t, "Bearer gkey", sawAuth, "provider-specific key is used")
}

func TestComplete_FallsBackOnce(t *testing.T) {
	primary := failingServer(t)
	defer primary.Close()
	var sawModel string
	fallback := completionServer(t, "from fallback", &sawModel, nil)
	defer fallback.Close()

	c := newTestClient(testSettings())
	c.baseURLs["gemini"] = primary.URL
	c.baseURLs["moonshot"] = fallback.URL

	text, err := c.Complete(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "from fallback", text)
	assert.Equal(t, "kimi-k2.5", sawModel)
}

func TestComplete_BothModelsFailing(t *testing.T) {
	primary := failingServer(t)
	defer primary.Close()
	fallback := failingServer(t)
	defer fallback.Close()

	c := newTestClient(testSettings())
	c.baseURLs["gemini"] = primary.URL
	c.baseURLs["moonshot"] = fallback.URL

	_, err := c.Complete(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})
	assert.Error(t, err)
}

func TestCompletePreflight_NoFallback(t *testing.T) {
	preflight := failingServer(t)
	defer preflight.Close()
	var fallbackCalled bool
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalled = true
	}))
	defer fallback.Close()

	c := newTestClient(testSettings())
	c.baseURLs["groq"] = preflight.URL
	c.baseURLs["moonshot"] = fallback.URL

	_, err := c.CompletePreflight(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
		JSONMode: true,
	})
	assert.Error(t, err)
	assert.False(t, fallbackCalled, "preflight must not reach the fallback model")
}

func TestStream_DeliversDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, delta := range []string{"Hel", "lo", " there"} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", delta)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := newTestClient(testSettings())
	c.baseURLs["gemini"] = srv.URL

	chunks, errs := c.Stream(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})

	var got string
	for chunk := range chunks {
		got += chunk
	}
	assert.Equal(t, "Hello there", got)
	assert.NoError(t, <-errs)
}

func TestStream_FallsBackToSingleChunk(t *testing.T) {
	primary := failingServer(t)
	defer primary.Close()
	fallback := completionServer(t, "whole response at once", nil, nil)
	defer fallback.Close()

	c := newTestClient(testSettings())
	c.baseURLs["gemini"] = primary.URL
	c.baseURLs["moonshot"] = fallback.URL

	chunks, errs := c.Stream(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})

	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, []string{"whole response at once"}, got, "fallback arrives as one chunk")
}

func TestStream_MidStreamFailureFallsBack(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}\n\n")
		w.(http.Flusher).Flush()
		// Kill the connection after the first delta.
		panic(http.ErrAbortHandler)
	}))
	defer primary.Close()
	fallback := completionServer(t, "full answer from fallback", nil, nil)
	defer fallback.Close()

	c := newTestClient(testSettings())
	c.baseURLs["gemini"] = primary.URL
	c.baseURLs["moonshot"] = fallback.URL

	chunks, errs := c.Stream(context.Background(), Request{
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})

	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	require.NoError(t, <-errs, "a dead primary stream is recovered by the fallback")
	assert.Equal(t, []string{"partial", "full answer from fallback"}, got)
}

func TestEmbed_OrdersByIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Deliberately out of order; the client must reorder by index.
		fmt.Fprint(w, `{"data":[
			{"index":1,"embedding":[0.4,0.5,0.6,0.7]},
			{"index":0,"embedding":[0.1,0.2,0.3,0.4]}
		]}`)
	}))
	defer srv.Close()

	c := newTestClient(testSettings())
	c.baseURLs["openai"] = srv.URL

	vecs, err := c.Embed(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, vecs[0])
	assert.Equal(t, []float32{0.4, 0.5, 0.6, 0.7}, vecs[1])
}

func TestSplitModel(t *testing.T) {
	for _, tc := range []struct {
		spec, provider, model string
	}{
		{"gemini/gemini-3-flash-preview", "gemini", "gemini-3-flash-preview"},
		{"moonshot/kimi-k2.5", "moonshot", "kimi-k2.5"},
		{"gpt-4o-mini", "openai", "gpt-4o-mini"},
	} {
		provider, model := splitModel(tc.spec)
		assert.Equal(t, tc.provider, provider, tc.spec)
		assert.Equal(t, tc.model, model, tc.spec)
	}
}
