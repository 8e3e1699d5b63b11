package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/ingestion"
)

// IngestTextRequest is the request body for POST /spark/ingest/text.
type IngestTextRequest struct {
	Content    string `json:"content"`
	Title      string `json:"title"`
	SourceType string `json:"source_type"`
}

// IngestURLRequest is the request body for POST /spark/ingest/url.
type IngestURLRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ingestTextHandler handles POST /spark/ingest/text.
func (s *Server) ingestTextHandler(c *echo.Context) error {
	client := currentClient(c)

	var req IngestTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "content is required")
	}

	count, err := s.Ingest.IngestText(c.Request().Context(), ingestion.IngestInput{
		ClientID:   client.ID,
		Content:    req.Content,
		Title:      req.Title,
		SourceType: req.SourceType,
	})
	if err != nil {
		return mapIngestError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"chunks_inserted": count})
}

// ingestURLHandler handles POST /spark/ingest/url.
func (s *Server) ingestURLHandler(c *echo.Context) error {
	client := currentClient(c)

	var req IngestURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "url is required")
	}

	count, err := s.Ingest.IngestURL(c.Request().Context(), client.ID, req.URL, req.Title)
	if err != nil {
		s.Logger.Error("URL ingestion failed", "url", req.URL, "error", err)
		return mapIngestError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"chunks_inserted": count})
}
