package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

// Storage keys match the browser console this service replaced, so an
// exported transcript stays interchangeable.
const (
	tokenKey      = "dairy_token"
	transcriptKey = "sqlAgentChat"
)

// TranscriptLimit caps the persisted chat history to the most recent entries.
const TranscriptLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store is a single-file persistent key/value store holding the auth token
// and the SQL-agent chat transcript. Values are plain text or JSON, never
// encrypted, and cleared on logout or an explicit clear action.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the session database at the given path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveToken stores the bearer token issued by the backend.
func (s *Store) SaveToken(token string) error {
	return s.set(tokenKey, token)
}

// Token returns the stored bearer token, or an empty string when logged out.
func (s *Store) Token() (string, error) {
	return s.get(tokenKey)
}

// ClearToken removes the stored token.
func (s *Store) ClearToken() error {
	return s.delete(tokenKey)
}

// AppendMessage appends one chat message to the transcript, trims it to the
// last TranscriptLimit entries and returns the resulting transcript.
func (s *Store) AppendMessage(msg models.ChatMessage) ([]models.ChatMessage, error) {
	transcript, err := s.Transcript()
	if err != nil {
		return nil, err
	}

	transcript = append(transcript, msg)
	if len(transcript) > TranscriptLimit {
		transcript = transcript[len(transcript)-TranscriptLimit:]
	}

	raw, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("encode transcript: %w", err)
	}
	if err := s.set(transcriptKey, string(raw)); err != nil {
		return nil, err
	}

	return transcript, nil
}

// Transcript returns the stored chat transcript, oldest first.
func (s *Store) Transcript() ([]models.ChatMessage, error) {
	raw, err := s.get(transcriptKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var transcript []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &transcript); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return transcript, nil
}

// ClearTranscript removes the stored chat transcript.
func (s *Store) ClearTranscript() error {
	return s.delete(transcriptKey)
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}
