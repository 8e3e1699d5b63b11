package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// sseWriter encodes server-sent events and flushes each one so tokens
// reach the widget as they are generated.
type sseWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func newSSEWriter(w io.Writer) *sseWriter {
	flusher, _ := w.(http.Flusher)
	return &sseWriter{w: w, flusher: flusher}
}

// writeEvent emits one `event:`/`data:` pair. Data is JSON-encoded.
func (s *sseWriter) writeEvent(name string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode sse event %q: %w", name, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}
