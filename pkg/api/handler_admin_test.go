package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryCtx(query string) *echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/spark/admin/leads?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestQueryTime(t *testing.T) {
	got, err := queryTime(queryCtx("date_from=2026-08-01"), "date_from")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = queryTime(queryCtx("date_from=2026-08-01T12:30:00Z"), "date_from")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())

	_, err = queryTime(queryCtx(""), "date_from")
	require.NoError(t, err)

	_, err = queryTime(queryCtx("date_from=yesterday"), "date_from")
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 25, queryInt(queryCtx("limit=25"), "limit", 50))
	assert.Equal(t, 50, queryInt(queryCtx(""), "limit", 50))
	assert.Equal(t, 50, queryInt(queryCtx("limit=abc"), "limit", 50))
}
