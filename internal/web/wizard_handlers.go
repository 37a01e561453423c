package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lateral-intake/internal/application"
	"lateral-intake/internal/guard"
	"lateral-intake/internal/steps"
	"lateral-intake/internal/store"
	"lateral-intake/internal/wizard"
)

type createRequest struct {
	Type application.Type `json:"type"`
}

func (s *Server) handleCreate(c *gin.Context) {
	p, _ := guard.CurrentPrincipal(c)

	// The body is optional: creating without a type leaves the track
	// undecided until the applicant picks one.
	var req createRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	if req.Type != "" && req.Type != application.TypeIndividual && req.Type != application.TypeGroup {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown application type"})
		return
	}

	ct := s.manager.GetOrCreate(p.UserID)
	id, err := ct.InitializeApplication(c.Request.Context(), p.UserID, req.Type)
	if err != nil {
		s.log.Error("initializing application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "creating application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": application.StatusDraft})
}

func (s *Server) handleListMine(c *gin.Context) {
	p, _ := guard.CurrentPrincipal(c)
	apps, err := s.store.ListByUser(c.Request.Context(), p.UserID)
	if err != nil {
		s.log.Error("listing applications", zap.Error(err), zap.String("user_id", p.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": summaries(apps)})
}

func (s *Server) handleShow(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"application": ct.Snapshot(),
		"completion":  ct.CompletionPercentage(),
		"dirty":       ct.Dirty(),
	})
}

// handleDelete removes an application. Only drafts may be deleted, and only
// by their owner.
func (s *Server) handleDelete(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	snap := ct.Snapshot()
	if snap.Status != application.StatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "only draft applications can be deleted"})
		return
	}
	if err := s.store.Delete(c.Request.Context(), snap.ID); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		s.log.Error("deleting application", zap.Error(err), zap.String("application_id", snap.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deleting application"})
		return
	}
	// Drop the session container so it cannot serve the deleted record.
	if p, ok := guard.CurrentPrincipal(c); ok {
		s.manager.Release(p.UserID)
	}
	c.Status(http.StatusNoContent)
}

type typeRequest struct {
	Type application.Type `json:"type"`
}

func (s *Server) handleSetType(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	var req typeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	outcome := ct.SetApplicationType(req.Type)
	if outcome == wizard.OutcomeOK {
		if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
			return
		}
	}
	respondOutcome(c, outcome, gin.H{"type": ct.Type()})
}

func (s *Server) handleLockType(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	outcome, err := ct.LockApplicationType(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting type lock"})
		return
	}
	respondOutcome(c, outcome, gin.H{"type": ct.Type(), "locked": true})
}

// handleNavigation reports the active step catalog with per-step
// accessibility and completion, plus overall progress.
func (s *Server) handleNavigation(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	snap := ct.Snapshot()
	order := steps.OrderFor(snap.Type)

	type navStep struct {
		Path       string `json:"path"`
		Label      string `json:"label"`
		ShortLabel string `json:"short_label"`
		Completed  bool   `json:"completed"`
		Accessible bool   `json:"accessible"`
	}
	nav := make([]navStep, 0, len(order))
	for _, st := range order {
		nav = append(nav, navStep{
			Path:       st.Path,
			Label:      st.Label,
			ShortLabel: st.ShortLabel,
			Completed:  snap.HasCompleted(st.Path),
			Accessible: ct.IsStepAccessible(st.Path),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"steps":           nav,
		"current_step":    snap.CurrentStep,
		"previous_step":   steps.Previous(snap.Type, snap.CurrentStep),
		"next_step":       steps.Next(snap.Type, snap.CurrentStep),
		"next_incomplete": ct.NextIncompleteStep(),
		"completion":      ct.CompletionPercentage(),
		"can_change_type": ct.CanChangeApplicationType(),
	})
}

type stepRequest struct {
	Step string `json:"step" binding:"required"`
}

func (s *Server) handleCompleteStep(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step is required"})
		return
	}
	outcome := ct.MarkStepComplete(req.Step)
	if outcome == wizard.OutcomeOK {
		if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
			return
		}
	}
	respondOutcome(c, outcome, gin.H{
		"completion":      ct.CompletionPercentage(),
		"next_incomplete": ct.NextIncompleteStep(),
	})
}

func (s *Server) handleUncompleteStep(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step is required"})
		return
	}
	outcome := ct.UnmarkStepComplete(req.Step)
	if outcome == wizard.OutcomeOK {
		if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
			return
		}
	}
	respondOutcome(c, outcome, gin.H{"completion": ct.CompletionPercentage()})
}

func (s *Server) handleSetCurrentStep(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step is required"})
		return
	}
	st, known := steps.Lookup(ct.Type(), req.Step)
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown step"})
		return
	}
	if !ct.IsStepAccessible(req.Step) {
		c.JSON(http.StatusConflict, gin.H{"error": "step not yet accessible"})
		return
	}
	ct.SetCurrentStep(req.Step)
	c.JSON(http.StatusOK, gin.H{"current_step": st.Path, "label": st.Label})
}

// handlePatchSection applies a shallow merge to one form section. The
// section name in the path selects the patch type.
func (s *Server) handlePatchSection(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}

	var bindErr error
	switch c.Param("section") {
	case "contact":
		var p wizard.ContactPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateContact(p)
		}
	case "work-history":
		var p wizard.WorkHistoryPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateWorkHistory(p)
		}
	case "financials":
		var p wizard.FinancialsPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateFinancials(p)
		}
	case "conflicts":
		var p wizard.ConflictsPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateConflicts(p)
		}
	case "due-diligence":
		var p wizard.DueDiligencePatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateDueDiligence(p)
		}
	case "acknowledgment":
		var p wizard.AcknowledgmentPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateAcknowledgment(p)
		}
	case "group-overview":
		var p wizard.GroupOverviewPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateGroupOverview(p)
		}
	case "combined-financials":
		var p wizard.CombinedFinancialsPatch
		if bindErr = c.ShouldBindJSON(&p); bindErr == nil {
			ct.UpdateCombinedFinancials(p)
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}
	if bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": ct.Snapshot()})
}

func (s *Server) handleSubmit(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	outcome, err := ct.SubmitApplication(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting submission"})
		return
	}
	respondOutcome(c, outcome, gin.H{"status": ct.Snapshot().Status})
}

func (s *Server) handleSave(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	outcome, err := ct.PersistToStorage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}
	respondOutcome(c, outcome, gin.H{"last_saved": ct.LastSaved()})
}

// summary is the list-view projection of an application record.
type summary struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Type      application.Type   `json:"type,omitempty"`
	Status    application.Status `json:"status"`
	UpdatedAt string             `json:"updated_at"`
}

func summaries(apps []*application.Application) []summary {
	out := make([]summary, 0, len(apps))
	for _, a := range apps {
		out = append(out, summary{
			ID:        a.ID,
			UserID:    a.UserID,
			Type:      a.Type,
			Status:    a.Status,
			UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
