package ingestion

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// urlService is enough for the fetch-and-route paths, which never
// reach the database.
func urlService() *Service {
	return NewService(nil, nil, nil, slog.New(slog.NewTextHandler(discard{}, nil)))
}

func TestIngestURL_RejectsPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	_, err := urlService().IngestURL(context.Background(), "client-a", srv.URL, "")
	require.ErrorIs(t, err, ErrPDFNotSupported)
}

func TestIngestURL_RejectsUnsupportedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 0x50})
	}))
	defer srv.Close()

	_, err := urlService().IngestURL(context.Background(), "client-a", srv.URL, "")
	require.ErrorIs(t, err, ErrUnsupportedContentType)
}

func TestIngestURL_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := urlService().IngestURL(context.Background(), "client-a", srv.URL, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestIngestURL_EmptyPageInsertsNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><script>only()</script></body></html>"))
	}))
	defer srv.Close()

	n, err := urlService().IngestURL(context.Background(), "client-a", srv.URL, "")
	require.NoError(t, err)
	assert.Zero(t, n)
}
