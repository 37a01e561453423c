package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"lateral-intake/internal/application"
)

// PostgresStore persists each application as a single JSONB document row.
// Id, owner and status are lifted into columns for indexing; the document
// column holds the full record and is authoritative.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore opens a connection and verifies it with a ping.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection (used by tests).
func NewPostgresStoreWithDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema creates the applications table and its indexes if absent.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS applications (
		id varchar(36) PRIMARY KEY,
		user_id varchar(64) NOT NULL,
		status varchar(32) NOT NULL,
		document jsonb NOT NULL,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_applications_user_id ON applications (user_id);
	CREATE INDEX IF NOT EXISTS idx_applications_status ON applications (status);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize applications schema: %w", err)
	}
	return nil
}

// Put upserts the full document for app.ID. Last write wins.
func (s *PostgresStore) Put(ctx context.Context, app *application.Application) error {
	doc, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to marshal application %s: %w", app.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO applications (id, user_id, status, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    document = EXCLUDED.document,
		    updated_at = EXCLUDED.updated_at`,
		app.ID, app.UserID, app.Status, doc, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to store application %s: %w", app.ID, err)
	}
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, id string) (*application.Application, error) {
	var doc []byte
	err := s.db.QueryRowxContext(ctx,
		`SELECT document FROM applications WHERE id = $1`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}

	var app application.Application
	if err := json.Unmarshal(doc, &app); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application %s: %w", id, err)
	}
	return &app, nil
}

// Delete removes the record for id, or returns ErrNotFound.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns all records owned by userID, newest first.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]*application.Application, error) {
	return s.queryDocuments(ctx,
		`SELECT document FROM applications WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
}

// List returns every record, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]*application.Application, error) {
	return s.queryDocuments(ctx,
		`SELECT document FROM applications ORDER BY updated_at DESC`)
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) queryDocuments(ctx context.Context, query string, args ...interface{}) ([]*application.Application, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []*application.Application
	for rows.Next() {
		var doc []byte
		if scanErr := rows.Scan(&doc); scanErr != nil {
			return nil, fmt.Errorf("failed to scan application document: %w", scanErr)
		}
		var app application.Application
		if err := json.Unmarshal(doc, &app); err != nil {
			return nil, fmt.Errorf("failed to unmarshal application document: %w", err)
		}
		apps = append(apps, &app)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating applications: %w", rowsErr)
	}
	return apps, nil
}
