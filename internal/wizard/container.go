// Package wizard holds the editing-session state for one in-progress
// application: the single source of truth that mediates section updates,
// enforces the application-type lock, computes step accessibility and
// completion, and flushes whole records through the application store.
package wizard

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"lateral-intake/internal/application"
	"lateral-intake/internal/identifier"
	"lateral-intake/internal/steps"
	"lateral-intake/internal/store"
)

// Container owns one session's in-memory copy of an application. All
// methods are safe for concurrent use, though a session normally has a
// single caller; cross-session writes to the same application id remain
// last-write-wins at the store.
type Container struct {
	mu    sync.RWMutex
	store store.ApplicationStore
	log   *zap.Logger

	app       *application.Application
	dirty     bool
	lastSaved time.Time
}

// NewContainer builds an empty container. Nothing can be persisted until
// InitializeApplication or LoadApplication gives it an identity.
func NewContainer(st store.ApplicationStore, log *zap.Logger) *Container {
	if log == nil {
		log = zap.NewNop()
	}
	return &Container{
		store: st,
		log:   log,
		app:   &application.Application{CompletedSteps: []string{}},
	}
}

// InitializeApplication allocates a new application id for userID, resets
// all section data to defaults, records the initial draft status, and
// persists immediately. Returns the new id.
func (c *Container) InitializeApplication(ctx context.Context, userID string, t application.Type) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	app := application.New(identifier.NewApplicationID(), userID)
	app.Type = t
	c.app = app
	c.dirty = false

	if err := c.persistLocked(ctx); err != nil {
		return "", fmt.Errorf("failed to persist new application: %w", err)
	}
	c.log.Info("application initialized",
		zap.String("application_id", app.ID),
		zap.String("user_id", userID),
		zap.String("type", string(t)))
	return app.ID, nil
}

// LoadApplication replaces the container's entire state with the stored
// record for id. On not-found the in-memory state is left untouched and
// OutcomeNotFound is returned.
func (c *Container) LoadApplication(ctx context.Context, id string) (Outcome, error) {
	app, err := c.store.Get(ctx, id)
	if err == store.ErrNotFound {
		c.log.Warn("application not found", zap.String("application_id", id))
		return OutcomeNotFound, nil
	}
	if err != nil {
		return OutcomeNotFound, fmt.Errorf("failed to load application %s: %w", id, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.app = app
	c.dirty = false
	c.lastSaved = app.UpdatedAt
	return OutcomeOK, nil
}

// PersistToStorage writes the full record through the store. With no
// application or user identity it intentionally no-ops (uninitialized
// sessions must not write garbage records) and reports OutcomeSkipped.
func (c *Container) PersistToStorage(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.app.ID == "" || c.app.UserID == "" {
		return OutcomeSkipped, nil
	}
	if err := c.persistLocked(ctx); err != nil {
		return OutcomeError, err
	}
	return OutcomeOK, nil
}

// persistLocked flushes the current record. Caller holds c.mu.
func (c *Container) persistLocked(ctx context.Context) error {
	c.app.Touch()
	if err := c.store.Put(ctx, c.app); err != nil {
		return err
	}
	c.dirty = false
	c.lastSaved = c.app.UpdatedAt
	return nil
}

// SetApplicationType chooses the wizard track. Denied once the type is
// locked or any step has been completed. Switching from group back to
// individual clears the group-only sections, and the completed-steps set is
// pruned to the steps present in the newly active catalog.
func (c *Container) SetApplicationType(t application.Type) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.canChangeTypeLocked() {
		c.log.Warn("application type change denied",
			zap.String("application_id", c.app.ID),
			zap.String("requested_type", string(t)))
		return OutcomeDenied
	}
	if t != application.TypeIndividual && t != application.TypeGroup {
		return OutcomeInvalid
	}

	prev := c.app.Type
	c.app.Type = t
	if prev == application.TypeGroup && t == application.TypeIndividual {
		c.app.Data.ClearGroupSections()
	}
	c.pruneCompletedLocked()
	c.markDirtyLocked()
	return OutcomeOK
}

// LockApplicationType sets the irreversible type lock and persists
// immediately. There is no unlock.
func (c *Container) LockApplicationType(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.app.ID == "" || c.app.UserID == "" {
		return OutcomeSkipped, nil
	}
	c.app.TypeLocked = true
	if err := c.persistLocked(ctx); err != nil {
		return OutcomeError, fmt.Errorf("failed to persist type lock: %w", err)
	}
	return OutcomeOK, nil
}

// CanChangeApplicationType reports whether the type is still changeable:
// true iff no step is completed and the lock flag is unset.
func (c *Container) CanChangeApplicationType() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canChangeTypeLocked()
}

func (c *Container) canChangeTypeLocked() bool {
	return len(c.app.CompletedSteps) == 0 && !c.app.TypeLocked
}

// MarkStepComplete adds the step to the completed set. Idempotent; unknown
// steps for the active track are refused.
func (c *Container) MarkStepComplete(step string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if steps.IndexOf(c.app.Type, step) == steps.NotFound {
		return OutcomeNotFound
	}
	if c.app.HasCompleted(step) {
		return OutcomeOK
	}
	c.app.CompletedSteps = append(c.app.CompletedSteps, step)
	c.markDirtyLocked()
	return OutcomeOK
}

// UnmarkStepComplete removes the step from the completed set. Idempotent.
func (c *Container) UnmarkStepComplete(step string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.app.CompletedSteps {
		if s == step {
			c.app.CompletedSteps = append(c.app.CompletedSteps[:i], c.app.CompletedSteps[i+1:]...)
			c.markDirtyLocked()
			break
		}
	}
	return OutcomeOK
}

// SetCurrentStep records the step the user is viewing. Informational only,
// never used for gating.
func (c *Container) SetCurrentStep(step string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.app.CurrentStep = step
	c.markDirtyLocked()
}

// IsStepAccessible implements the strict linear-chain gate: the first step
// of the active catalog is always accessible, every later step requires the
// immediately preceding step to be completed, and a path outside the active
// catalog is never accessible.
func (c *Container) IsStepAccessible(step string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := steps.IndexOf(c.app.Type, step)
	switch {
	case i == steps.NotFound:
		return false
	case i == 0:
		return true
	default:
		order := steps.OrderFor(c.app.Type)
		return c.app.HasCompleted(order[i-1].Path)
	}
}

// NextIncompleteStep returns the first step of the active catalog not yet
// completed, or the last step when everything is done.
func (c *Container) NextIncompleteStep() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	order := steps.OrderFor(c.app.Type)
	for _, s := range order {
		if !c.app.HasCompleted(s.Path) {
			return s.Path
		}
	}
	return order[len(order)-1].Path
}

// CompletionPercentage is the share of the active catalog marked complete,
// rounded to the nearest integer. With no type chosen the individual
// catalog is the denominator.
func (c *Container) CompletionPercentage() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := len(steps.OrderFor(c.app.Type))
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(c.app.CompletedSteps)) / float64(total)))
}

// SubmitApplication performs the draft -> submitted transition and persists.
// An illegal transition mutates nothing and reports OutcomeInvalid.
func (c *Container) SubmitApplication(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.app.ID == "" || c.app.UserID == "" {
		return OutcomeSkipped, nil
	}
	if !c.app.Transition(application.StatusSubmitted, c.app.UserID) {
		c.log.Warn("submit rejected",
			zap.String("application_id", c.app.ID),
			zap.String("status", string(c.app.Status)))
		return OutcomeInvalid, nil
	}
	if err := c.persistLocked(ctx); err != nil {
		return OutcomeError, fmt.Errorf("failed to persist submission: %w", err)
	}
	c.log.Info("application submitted", zap.String("application_id", c.app.ID))
	return OutcomeOK, nil
}

// ResetApplication clears all section data and the completed-steps set, but
// keeps the application identity. Session-scoped reset, not a delete.
func (c *Container) ResetApplication() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.app.Data = application.SectionData{}
	c.app.CompletedSteps = []string{}
	c.app.CurrentStep = ""
	c.dirty = false
}

// Snapshot returns a deep copy of the current record for read-only use.
func (c *Container) Snapshot() *application.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app.Clone()
}

// ApplicationID returns the current application id ("" if uninitialized).
func (c *Container) ApplicationID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app.ID
}

// UserID returns the owning user id ("" if uninitialized).
func (c *Container) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app.UserID
}

// Type returns the chosen application type ("" until chosen).
func (c *Container) Type() application.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app.Type
}

// Dirty reports whether unsaved changes exist.
func (c *Container) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// LastSaved returns the pending-save marker: refreshed on every mutation
// and on every persisted write.
func (c *Container) LastSaved() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSaved
}

// Section updates. Each applies a typed shallow merge and marks the
// container dirty; nothing is persisted until an explicit save.

func (c *Container) UpdateContact(p ContactPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.Contact)
	c.markDirtyLocked()
}

func (c *Container) UpdateWorkHistory(p WorkHistoryPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.WorkHistory)
	c.markDirtyLocked()
}

func (c *Container) UpdateFinancials(p FinancialsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.Financials)
	c.markDirtyLocked()
}

func (c *Container) UpdateConflicts(p ConflictsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.Conflicts)
	c.markDirtyLocked()
}

func (c *Container) UpdateDueDiligence(p DueDiligencePatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.DueDiligence)
	c.markDirtyLocked()
}

func (c *Container) UpdateAcknowledgment(p AcknowledgmentPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.Acknowledgment)
	c.markDirtyLocked()
}

func (c *Container) UpdateGroupOverview(p GroupOverviewPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.GroupOverview)
	c.markDirtyLocked()
}

func (c *Container) UpdateCombinedFinancials(p CombinedFinancialsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.apply(&c.app.Data.CombinedFinancials)
	c.markDirtyLocked()
}

// markDirtyLocked flags unsaved changes and refreshes the pending-save
// marker. Caller holds c.mu.
func (c *Container) markDirtyLocked() {
	c.dirty = true
	c.lastSaved = time.Now().UTC()
}

// pruneCompletedLocked drops completed steps that are not part of the
// active catalog. Caller holds c.mu.
func (c *Container) pruneCompletedLocked() {
	kept := c.app.CompletedSteps[:0]
	for _, s := range c.app.CompletedSteps {
		if steps.IndexOf(c.app.Type, s) != steps.NotFound {
			kept = append(kept, s)
		}
	}
	c.app.CompletedSteps = kept
}
