// Package storage provides the local SQLite lead log.
//
// Information Hiding:
// - SQLite connection management hidden behind LeadStore
// - Schema creation encapsulated
// - Thread-safe via sql.DB's built-in connection pooling
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Lead is a captured contact.
type Lead struct {
	ID        string
	Email     string
	Name      string
	Notes     string
	CreatedAt time.Time
}

// UnknownQuestion is a question the agent could not answer.
type UnknownQuestion struct {
	ID        string
	Question  string
	CreatedAt time.Time
}

// LeadStore records captured leads and unanswered questions in SQLite.
type LeadStore struct {
	db *sql.DB
}

// OpenLeadStore opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenLeadStore(path string) (*LeadStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store := &LeadStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// NewLeadStoreInMemory creates an in-memory store (useful for testing).
func NewLeadStoreInMemory() (*LeadStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}

	store := &LeadStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *LeadStore) Close() error {
	return s.db.Close()
}

func (s *LeadStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			name TEXT NOT NULL,
			notes TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_leads_created
		ON leads(created_at DESC);

		CREATE TABLE IF NOT EXISTS unknown_questions (
			id TEXT PRIMARY KEY,
			question TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_unknown_questions_created
		ON unknown_questions(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveLead records a captured contact and returns its generated ID.
func (s *LeadStore) SaveLead(ctx context.Context, email, name, notes string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (id, email, name, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, email, name, notes, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save lead: %w", err)
	}
	return id, nil
}

// SaveUnknownQuestion records an unanswered question and returns its
// generated ID.
func (s *LeadStore) SaveUnknownQuestion(ctx context.Context, question string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO unknown_questions (id, question, created_at) VALUES (?, ?, ?)`,
		id, question, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save unknown question: %w", err)
	}
	return id, nil
}

// Leads returns captured leads, newest first.
func (s *LeadStore) Leads(ctx context.Context) ([]Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, name, notes, created_at FROM leads ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		var created int64
		if err := rows.Scan(&l.ID, &l.Email, &l.Name, &l.Notes, &created); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		l.CreatedAt = time.Unix(created, 0)
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// UnknownQuestions returns recorded questions, newest first.
func (s *LeadStore) UnknownQuestions(ctx context.Context) ([]UnknownQuestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, question, created_at FROM unknown_questions ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query unknown questions: %w", err)
	}
	defer rows.Close()

	var questions []UnknownQuestion
	for rows.Next() {
		var q UnknownQuestion
		var created int64
		if err := rows.Scan(&q.ID, &q.Question, &created); err != nil {
			return nil, fmt.Errorf("failed to scan unknown question: %w", err)
		}
		q.CreatedAt = time.Unix(created, 0)
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
