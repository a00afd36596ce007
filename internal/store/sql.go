package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DocumentKey is the fixed well-known key the document is stored under.
const DocumentKey = "surveyforge:db"

const createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
	doc_key VARCHAR(255) PRIMARY KEY,
	data    TEXT NOT NULL
)`

// SQLBackend stores the document as a single row in a key/blob table.
// It works against any sqlx-supported driver with ON CONFLICT upserts
// (sqlite3 and postgres are wired in cmd/api).
type SQLBackend struct {
	db *sqlx.DB
}

// NewSQLBackend opens a connection for the given driver and DSN and ensures
// the documents table exists.
func NewSQLBackend(driverName, dsn string) (*SQLBackend, error) {
	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driverName, err)
	}
	return NewSQLBackendWithDB(db)
}

// NewSQLBackendWithDB wraps an existing connection; used by tests.
func NewSQLBackendWithDB(db *sqlx.DB) (*SQLBackend, error) {
	if _, err := db.Exec(createDocumentsTable); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &SQLBackend{db: db}, nil
}

func (b *SQLBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	query := b.db.Rebind(`SELECT data FROM documents WHERE doc_key = ?`)
	err := b.db.GetContext(ctx, &data, query, DocumentKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return data, nil
}

func (b *SQLBackend) Save(ctx context.Context, data []byte) error {
	query := b.db.Rebind(`INSERT INTO documents (doc_key, data) VALUES (?, ?)
		ON CONFLICT (doc_key) DO UPDATE SET data = excluded.data`)
	if _, err := b.db.ExecContext(ctx, query, DocumentKey, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (b *SQLBackend) Close() error {
	return b.db.Close()
}
