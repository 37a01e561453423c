// Package web exposes the application wizard over HTTP using Gin.
//
// Every applicant-facing route runs behind the session guard and operates
// on the caller's own wizard container, keyed by user id. Admin routes
// share the same status transition rules as the rest of the system.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lateral-intake/internal/config"
	"lateral-intake/internal/guard"
	"lateral-intake/internal/store"
	"lateral-intake/internal/wizard"
)

// Server wires the wizard session manager and record store into HTTP routes.
type Server struct {
	manager *wizard.Manager
	store   store.ApplicationStore
	log     *zap.Logger
	cfg     config.Config
}

// NewServer builds a Server. A nil logger falls back to a no-op logger.
func NewServer(cfg config.Config, st store.ApplicationStore, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		manager: wizard.NewManager(st, log),
		store:   st,
		log:     log,
		cfg:     cfg,
	}
}

// Router assembles the full route tree.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)

	api := r.Group("/api", guard.RequireUser(s.cfg.SessionSigningKey, s.cfg.SignInURL))
	{
		apps := api.Group("/applications")
		{
			apps.POST("", s.handleCreate)
			apps.GET("", s.handleListMine)
			apps.GET("/:id", s.handleShow)
			apps.DELETE("/:id", s.handleDelete)

			apps.PUT("/:id/type", s.handleSetType)
			apps.POST("/:id/type/lock", s.handleLockType)

			apps.GET("/:id/navigation", s.handleNavigation)
			apps.POST("/:id/steps/complete", s.handleCompleteStep)
			apps.POST("/:id/steps/uncomplete", s.handleUncompleteStep)
			apps.PUT("/:id/current-step", s.handleSetCurrentStep)

			apps.PUT("/:id/sections/:section", s.handlePatchSection)

			apps.POST("/:id/entities/:kind", s.handleAddEntity)
			apps.PUT("/:id/entities/:kind/:entityID", s.handleUpdateEntity)
			apps.DELETE("/:id/entities/:kind/:entityID", s.handleRemoveEntity)

			apps.POST("/:id/clients/:clientID/matters", s.handleAddMatter)
			apps.DELETE("/:id/clients/:clientID/matters/:matterID", s.handleRemoveMatter)

			apps.POST("/:id/submit", s.handleSubmit)
			apps.POST("/:id/save", s.handleSave)
		}

		admin := api.Group("/admin", guard.RequireAdmin())
		{
			admin.GET("/applications", s.handleAdminList)
			admin.GET("/applications/:id", s.handleAdminShow)
			admin.POST("/applications/:id/status", s.handleAdminTransition)
		}
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.manager.Count()})
}

// StartSessionJanitor evicts idle wizard containers every interval until
// ctx is cancelled. Containers only cache state the store already holds, so
// eviction never loses data.
func (s *Server) StartSessionJanitor(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.manager.CleanupExpired(maxAge); n > 0 {
					s.log.Debug("evicted idle sessions", zap.Int("count", n))
				}
			}
		}
	}()
}

// containerFor hydrates the caller's container with the requested record.
// Records owned by other users surface as not-found, and ownership is
// checked against the store before the session container is touched so a
// rejected request cannot displace the caller's loaded state. A false
// return means a response has already been written.
func (s *Server) containerFor(c *gin.Context, id string) (*wizard.Container, bool) {
	p, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return nil, false
	}

	ct := s.manager.GetOrCreate(p.UserID)
	if ct.ApplicationID() == id {
		return ct, true
	}

	app, err := s.store.Get(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loading application"})
		return nil, false
	}
	if app.UserID != p.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return nil, false
	}

	if outcome, err := ct.LoadApplication(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loading application"})
		return nil, false
	} else if outcome != wizard.OutcomeOK {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return nil, false
	}
	return ct, true
}

// respondOutcome translates a wizard outcome into an HTTP response. The
// payload is included only on success.
func respondOutcome(c *gin.Context, outcome wizard.Outcome, payload gin.H) {
	switch outcome {
	case wizard.OutcomeOK, wizard.OutcomeSkipped:
		if payload == nil {
			payload = gin.H{}
		}
		payload["outcome"] = outcome.String()
		c.JSON(http.StatusOK, payload)
	case wizard.OutcomeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"outcome": outcome.String()})
	case wizard.OutcomeDenied:
		c.JSON(http.StatusConflict, gin.H{"outcome": outcome.String()})
	case wizard.OutcomeInvalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"outcome": outcome.String()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"outcome": outcome.String()})
	}
}
