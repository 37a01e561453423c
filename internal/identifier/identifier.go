// Package identifier generates the two kinds of ids the intake system uses:
// UUIDs for application records and shorter sortable tokens for the
// sub-entities nested inside an application's sections.
package identifier

import (
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// NewApplicationID returns a UUID string for a new application record.
func NewApplicationID() string {
	return uuid.New().String()
}

// NewEntityID returns a unique token for a sub-entity (education entry,
// reference, portable client, etc.). KSUIDs are 27 base62 characters, well
// above the entropy needed for uniqueness within a single application's
// arrays. Never fails.
func NewEntityID() string {
	return strings.ToLower(ksuid.New().String())
}
