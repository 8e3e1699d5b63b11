package api

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_UnreachableDatabase(t *testing.T) {
	// Port 1 refuses connections; the ping fails fast.
	db, err := sql.Open("pgx", "host=127.0.0.1 port=1 user=spark dbname=spark sslmode=disable")
	require.NoError(t, err)
	defer db.Close()

	s := &Server{Deps: Deps{DB: db}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.healthHandler(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"Spark"`)
	assert.Contains(t, rec.Body.String(), `"unhealthy"`)
}
