// Package store provides persistence for application records. The interface
// is a keyed document store: point reads and writes by application id, with
// a get-after-set guarantee. Two implementations exist, an in-memory store
// for tests and single-process use, and a PostgreSQL store that keeps each
// record as one JSONB document row.
//
// Writes are whole-document: the last Put for a given id wins. There is no
// merging, versioning or optimistic locking, which is an accepted constraint
// while each draft has exactly one active editor.
package store

import (
	"context"
	"errors"

	"lateral-intake/internal/application"
)

// ErrNotFound is returned by Get and Delete for an unknown application id.
var ErrNotFound = errors.New("application not found")

// ApplicationStore is the persistence contract the wizard writes through.
type ApplicationStore interface {
	// Put inserts or fully replaces the record keyed by app.ID.
	Put(ctx context.Context, app *application.Application) error

	// Get returns the record for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*application.Application, error)

	// Delete removes the record for id, or returns ErrNotFound. Callers
	// enforce the draft-only deletion rule before calling.
	Delete(ctx context.Context, id string) error

	// ListByUser returns all records owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]*application.Application, error)

	// List returns every record, newest first. Admin surface only.
	List(ctx context.Context) ([]*application.Application, error)

	Close() error
}
