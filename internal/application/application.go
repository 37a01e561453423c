// Package application defines the lateral-hire application aggregate: the
// record the wizard edits and persists, its wide per-section schema, the
// status lifecycle table, and helpers for the id-keyed sub-entity arrays
// nested inside sections.
package application

import "time"

// Type distinguishes the two wizard tracks.
type Type string

const (
	TypeIndividual Type = "individual"
	TypeGroup      Type = "group"
)

// Application is the root aggregate: one candidate's (or group's)
// in-progress or submitted intake record.
type Application struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Type is empty until the applicant chooses a track. Once TypeLocked is
	// set, or any step has been completed, it never changes again.
	Type       Type `json:"type,omitempty"`
	TypeLocked bool `json:"type_locked"`

	Status        Status               `json:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`

	// CompletedSteps holds step paths the user explicitly marked done.
	// Membership is what matters; order is insertion order for stability.
	CompletedSteps []string `json:"completed_steps"`
	// CurrentStep is informational only and never used for gating.
	CurrentStep string `json:"current_step,omitempty"`

	Data SectionData `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New builds a fresh draft application for userID with the given id, with
// the initial (none -> draft) history entry already recorded.
func New(id, userID string) *Application {
	now := time.Now().UTC()
	return &Application{
		ID:     id,
		UserID: userID,
		Status: StatusDraft,
		StatusHistory: []StatusHistoryEntry{
			{To: StatusDraft, ActorID: userID, At: now},
		},
		CompletedSteps: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Touch refreshes UpdatedAt. Called on every persisted write.
func (a *Application) Touch() {
	a.UpdatedAt = time.Now().UTC()
}

// HasCompleted reports whether the step path is in the completed set.
func (a *Application) HasCompleted(step string) bool {
	for _, s := range a.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Transition appends a history entry and moves Status, provided the edge is
// legal. Returns false without mutating anything otherwise. The last history
// entry's To always equals Status afterwards.
func (a *Application) Transition(to Status, actorID string) bool {
	if !CanTransitionTo(a.Status, to) {
		return false
	}
	a.StatusHistory = append(a.StatusHistory, NewStatusHistoryEntry(a.Status, to, actorID))
	a.Status = to
	a.Touch()
	return true
}

// Clone returns a deep copy of the application so callers can hand records
// across goroutine or session boundaries without sharing slices.
func (a *Application) Clone() *Application {
	if a == nil {
		return nil
	}
	cp := *a
	cp.StatusHistory = append([]StatusHistoryEntry(nil), a.StatusHistory...)
	cp.CompletedSteps = append([]string(nil), a.CompletedSteps...)
	cp.Data = a.Data.clone()
	return &cp
}

func (d SectionData) clone() SectionData {
	cp := d
	cp.Education.Entries = append([]EducationEntry(nil), d.Education.Entries...)
	cp.Education.BarAdmissions = append([]BarAdmission(nil), d.Education.BarAdmissions...)
	cp.Education.ProfessionalOrgs = append([]ProfessionalOrg(nil), d.Education.ProfessionalOrgs...)
	cp.WorkHistory.Positions = make([]WorkPosition, len(d.WorkHistory.Positions))
	for i, p := range d.WorkHistory.Positions {
		p.PracticeAreas = append([]string(nil), p.PracticeAreas...)
		cp.WorkHistory.Positions[i] = p
	}
	cp.Financials.History = append([]YearlyFigures(nil), d.Financials.History...)
	cp.Clients.Clients = make([]PortableClient, len(d.Clients.Clients))
	for i, c := range d.Clients.Clients {
		c.Matters = append([]ClientMatter(nil), c.Matters...)
		cp.Clients.Clients[i] = c
	}
	cp.Conflicts.AdverseMatters = append([]AdverseMatter(nil), d.Conflicts.AdverseMatters...)
	cp.Conflicts.ConflictClients = append([]ConflictClient(nil), d.Conflicts.ConflictClients...)
	cp.Conflicts.Boards = append([]BoardMembership(nil), d.Conflicts.Boards...)
	cp.References.References = append([]Reference(nil), d.References.References...)
	cp.Partners.Partners = append([]PartnerProfile(nil), d.Partners.Partners...)
	cp.TeamMembers.Members = append([]TeamMember(nil), d.TeamMembers.Members...)
	cp.CombinedFinancials.History = append([]YearlyFigures(nil), d.CombinedFinancials.History...)
	return cp
}
