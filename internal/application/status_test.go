package application

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"draft to submitted", StatusDraft, StatusSubmitted, true},
		{"draft to withdrawn", StatusDraft, StatusWithdrawn, true},
		{"draft to approved skips review", StatusDraft, StatusApproved, false},
		{"submitted to under_review", StatusSubmitted, StatusUnderReview, true},
		{"submitted to submitted", StatusSubmitted, StatusSubmitted, false},
		{"under_review to approved", StatusUnderReview, StatusApproved, true},
		{"under_review to rejected", StatusUnderReview, StatusRejected, true},
		{"info_required back to review", StatusInfoRequired, StatusUnderReview, true},
		{"approved is terminal", StatusApproved, StatusUnderReview, false},
		{"rejected is terminal", StatusRejected, StatusDraft, false},
		{"withdrawn is terminal", StatusWithdrawn, StatusDraft, false},
		{"unknown status has no edges", Status("bogus"), StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionTo(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTransition_AppendsHistoryAndKeepsInvariant(t *testing.T) {
	app := New("app-1", "user-1")
	if app.Status != StatusDraft {
		t.Fatalf("new application status = %s, want draft", app.Status)
	}
	if len(app.StatusHistory) != 1 || app.StatusHistory[0].To != StatusDraft {
		t.Fatalf("expected initial draft history entry, got %+v", app.StatusHistory)
	}

	if !app.Transition(StatusSubmitted, "user-1") {
		t.Fatal("draft -> submitted should be legal")
	}
	if len(app.StatusHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(app.StatusHistory))
	}
	last := app.StatusHistory[len(app.StatusHistory)-1]
	if last.To != app.Status {
		t.Errorf("last history To = %s, status = %s; must match", last.To, app.Status)
	}
	if last.From != StatusDraft {
		t.Errorf("last history From = %s, want draft", last.From)
	}

	// A rejected transition must leave everything untouched.
	if app.Transition(StatusSubmitted, "user-1") {
		t.Fatal("submitted -> submitted should be rejected")
	}
	if len(app.StatusHistory) != 2 {
		t.Errorf("rejected transition appended history: len = %d", len(app.StatusHistory))
	}
}

func TestNewStatusHistoryEntry(t *testing.T) {
	entry := NewStatusHistoryEntry(StatusDraft, StatusSubmitted, "user-9")
	if entry.From != StatusDraft || entry.To != StatusSubmitted || entry.ActorID != "user-9" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.At.IsZero() {
		t.Error("expected timestamp to be set")
	}
}
