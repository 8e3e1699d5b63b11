package api

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEWriter_Format(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newSSEWriter(rec)

	require.NoError(t, w.writeEvent("token", map[string]string{"text": "Hi"}))
	require.NoError(t, w.writeEvent("done", map[string]int{"turns_remaining": 3}))

	assert.Equal(t,
		"event: token\ndata: {\"text\":\"Hi\"}\n\nevent: done\ndata: {\"turns_remaining\":3}\n\n",
		rec.Body.String())
	assert.True(t, rec.Flushed, "each event is flushed")
}

func TestSSEWriter_EmptyData(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newSSEWriter(rec)

	require.NoError(t, w.writeEvent("done", map[string]interface{}{}))
	assert.Equal(t, "event: done\ndata: {}\n\n", rec.Body.String())
}
