// Package api is the HTTP edge: widget endpoints authenticated by the
// publishable API key, admin endpoints authenticated by identity
// provider JWTs, and the SSE chat transport between them.
package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/config"
	"github.com/trykin/spark/pkg/crm"
	"github.com/trykin/spark/pkg/ingestion"
	"github.com/trykin/spark/pkg/ratelimit"
	"github.com/trykin/spark/pkg/services"
	"github.com/trykin/spark/pkg/spark"
	"github.com/trykin/spark/pkg/tasks"
	"github.com/trykin/spark/pkg/version"
)

// Deps carries everything the HTTP edge needs. All fields are required
// unless noted.
type Deps struct {
	Clients      *services.ClientService
	Sessions     *services.SessionService
	Leads        *services.LeadService
	Knowledge    *services.KnowledgeService
	Events       *services.EventService
	Dashboard    *services.DashboardService
	Ingest       *ingestion.Service
	CRM          *crm.Syncer
	Orchestrator *spark.Orchestrator
	Limiter      *ratelimit.Limiter
	Pool         *tasks.Pool
	DB           *sql.DB
	Logger       *slog.Logger
}

// Server is the HTTP server for the widget and admin surfaces.
type Server struct {
	cfg *config.Settings
	Deps

	adminTokens *adminVerifier
	echo        *echo.Echo
	httpServer  *http.Server
}

// NewServer builds the router and wires every route.
func NewServer(cfg *config.Settings, deps Deps) *Server {
	s := &Server{
		cfg:         cfg,
		Deps:        deps,
		adminTokens: newAdminVerifier(cfg.SupabaseURL),
	}

	e := echo.New()
	e.HTTPErrorHandler = errorHandler(deps.Logger)
	e.Use(s.pathCORS())
	e.Use(securityHeaders())

	e.GET("/", s.rootHandler)
	e.GET("/health", s.healthHandler)

	// Widget surface, publishable key auth.
	widget := e.Group("/spark")
	widget.Use(s.widgetAuth())
	widget.POST("/chat", s.chatHandler)
	widget.POST("/lead", s.leadHandler)
	widget.POST("/event", s.eventHandler)
	widget.GET("/conversations", s.widgetConversationsHandler)
	widget.GET("/conversations/:id/messages", s.widgetMessagesHandler)
	widget.GET("/leads", s.widgetLeadsHandler)
	widget.POST("/ingest/text", s.ingestTextHandler)
	widget.POST("/ingest/url", s.ingestURLHandler)

	// Admin surface, identity-provider JWT auth.
	admin := e.Group("/spark/admin")
	admin.Use(s.adminRateLimit(), s.adminAuth())
	admin.GET("/me", s.adminProfileHandler)
	admin.PUT("/me/settling-config", s.adminSettlingConfigHandler)
	admin.GET("/conversations", s.adminConversationsHandler)
	admin.GET("/conversations/:id", s.adminConversationDetailHandler)
	admin.GET("/leads", s.adminLeadsHandler)
	admin.GET("/leads/export", s.adminLeadsExportHandler)
	admin.PATCH("/leads/:id", s.adminLeadUpdateHandler)
	admin.GET("/knowledge", s.adminKnowledgeListHandler)
	admin.POST("/knowledge", s.adminKnowledgeCreateHandler)
	admin.PATCH("/knowledge/:id", s.adminKnowledgeUpdateHandler)
	admin.DELETE("/knowledge/:id", s.adminKnowledgeDeleteHandler)
	admin.GET("/metrics/summary", s.adminMetricsSummaryHandler)
	admin.GET("/metrics/timeseries", s.adminMetricsTimeseriesHandler)

	s.echo = e
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: e,
	}
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.Logger.Info("Spark HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) rootHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Spark",
		"status":  "ok",
		"version": version.Full(),
	})
}
