package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lateral-intake/internal/application"
	"lateral-intake/internal/guard"
	"lateral-intake/internal/store"
)

// Admin routes operate straight on the store rather than through wizard
// containers: reviewers read and transition records they do not own.

func (s *Server) handleAdminList(c *gin.Context) {
	apps, err := s.store.List(c.Request.Context())
	if err != nil {
		s.log.Error("listing all applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": summaries(apps)})
}

func (s *Server) handleAdminShow(c *gin.Context) {
	app, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		s.log.Error("loading application", zap.Error(err), zap.String("application_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loading application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

type transitionRequest struct {
	To application.Status `json:"to" binding:"required"`
}

// handleAdminTransition moves a record through the status table. Illegal
// moves are rejected with the set of currently legal targets.
func (s *Server) handleAdminTransition(c *gin.Context) {
	p, _ := guard.CurrentPrincipal(c)

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target status is required"})
		return
	}

	app, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loading application"})
		return
	}

	if !app.Transition(req.To, p.UserID) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "illegal status transition",
			"from":          app.Status,
			"legal_targets": app.Status.LegalTargets(),
		})
		return
	}

	app.Touch()
	if err := s.store.Put(c.Request.Context(), app); err != nil {
		s.log.Error("persisting status transition", zap.Error(err),
			zap.String("application_id", app.ID),
			zap.String("to", string(req.To)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}

	s.log.Info("status transition applied",
		zap.String("application_id", app.ID),
		zap.String("to", string(req.To)),
		zap.String("actor_id", p.UserID))
	c.JSON(http.StatusOK, gin.H{"status": app.Status, "history": app.StatusHistory})
}
