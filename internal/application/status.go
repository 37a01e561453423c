package application

import "time"

// Status represents the lifecycle state of an application.
type Status string

const (
	StatusDraft        Status = "draft"
	StatusSubmitted    Status = "submitted"
	StatusUnderReview  Status = "under_review"
	StatusInfoRequired Status = "additional_info_required"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
	StatusWithdrawn    Status = "withdrawn"
)

// legalTransitions enumerates every permitted status edge. The wizard only
// ever exercises draft -> submitted; the remaining edges drive the admin
// review workflow but live in the same table so there is exactly one source
// of truth for lifecycle rules.
var legalTransitions = map[Status][]Status{
	StatusDraft:        {StatusSubmitted, StatusWithdrawn},
	StatusSubmitted:    {StatusUnderReview, StatusWithdrawn},
	StatusUnderReview:  {StatusInfoRequired, StatusApproved, StatusRejected},
	StatusInfoRequired: {StatusUnderReview, StatusWithdrawn},
	// approved, rejected and withdrawn are terminal
}

// CanTransitionTo reports whether from -> to is a legal lifecycle edge.
// Self-transitions are never legal; unknown statuses have no outgoing edges.
func CanTransitionTo(from, to Status) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LegalTargets returns the statuses reachable from s in one transition.
// Terminal and unknown statuses return an empty slice.
func (s Status) LegalTargets() []Status {
	targets := make([]Status, len(legalTransitions[s]))
	copy(targets, legalTransitions[s])
	return targets
}

// ValidStatuses returns every status the lifecycle recognizes.
func ValidStatuses() []Status {
	return []Status{
		StatusDraft,
		StatusSubmitted,
		StatusUnderReview,
		StatusInfoRequired,
		StatusApproved,
		StatusRejected,
		StatusWithdrawn,
	}
}

// StatusHistoryEntry is one immutable entry in an application's append-only
// transition log. From is empty for the initial draft entry.
type StatusHistoryEntry struct {
	From    Status    `json:"from,omitempty"`
	To      Status    `json:"to"`
	ActorID string    `json:"actor_id"`
	At      time.Time `json:"at"`
}

// NewStatusHistoryEntry builds a history entry stamped with the current time.
// Pure construction, no I/O and no validation: callers gate on
// CanTransitionTo before recording.
func NewStatusHistoryEntry(from, to Status, actorID string) StatusHistoryEntry {
	return StatusHistoryEntry{
		From:    from,
		To:      to,
		ActorID: actorID,
		At:      time.Now().UTC(),
	}
}
