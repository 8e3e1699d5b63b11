package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/services"
)

// KnowledgeCreateRequest is the request body for POST /spark/admin/knowledge.
type KnowledgeCreateRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Priority    int    `json:"priority"`
	Active      *bool  `json:"active"`
}

// KnowledgeUpdateRequest is the request body for PATCH /spark/admin/knowledge/:id.
type KnowledgeUpdateRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Priority    *int    `json:"priority"`
	Active      *bool   `json:"active"`
}

// adminKnowledgeListHandler handles GET /spark/admin/knowledge.
func (s *Server) adminKnowledgeListHandler(c *echo.Context) error {
	client := currentClient(c)

	items, err := s.Knowledge.List(c.Request().Context(), client.ID)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]KnowledgeOut, len(items))
	for i, k := range items {
		out[i] = knowledgeOut(k)
	}
	return c.JSON(http.StatusOK, out)
}

// adminKnowledgeCreateHandler handles POST /spark/admin/knowledge.
func (s *Server) adminKnowledgeCreateHandler(c *echo.Context) error {
	client := currentClient(c)

	var req KnowledgeCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := s.Knowledge.Create(c.Request().Context(), services.CreateKnowledgeInput{
		ClientID:    client.ID,
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Priority:    req.Priority,
		Active:      active,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, knowledgeOut(item))
}

// adminKnowledgeUpdateHandler handles PATCH /spark/admin/knowledge/:id.
func (s *Server) adminKnowledgeUpdateHandler(c *echo.Context) error {
	client := currentClient(c)
	itemID := c.Param("id")
	if itemID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "knowledge id is required")
	}

	var req KnowledgeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := s.Knowledge.Update(c.Request().Context(), client.ID, itemID, services.UpdateKnowledgeInput{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Priority:    req.Priority,
		Active:      req.Active,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, knowledgeOut(item))
}

// adminKnowledgeDeleteHandler handles DELETE /spark/admin/knowledge/:id.
func (s *Server) adminKnowledgeDeleteHandler(c *echo.Context) error {
	client := currentClient(c)
	itemID := c.Param("id")
	if itemID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "knowledge id is required")
	}

	if err := s.Knowledge.Delete(c.Request().Context(), client.ID, itemID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
