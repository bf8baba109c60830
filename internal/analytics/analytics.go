// Package analytics records privacy-conscious page views and portfolio
// interactions in SQLite. Client addresses are salted and hashed before
// they are stored; raw addresses never reach the database.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Kind classifies a recorded event.
type Kind string

const (
	KindView    Kind = "view"
	KindTab     Kind = "tab"
	KindProject Kind = "project"
)

// Event is one recorded visit or interaction.
type Event struct {
	ClientIP  string
	UserAgent string
	Path      string
	Kind      Kind
	// Subject is the tab or project id for interactions.
	Subject string
	At      time.Time
}

// Tracker writes events to a SQLite database.
type Tracker struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open creates or opens the analytics database at path.
func Open(path string) (*Tracker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating analytics directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening analytics database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging analytics database: %w", err)
	}
	return newTracker(db)
}

// OpenMemory creates an in-memory tracker (useful for testing).
func OpenMemory() (*Tracker, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory analytics database: %w", err)
	}
	// Each connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	return newTracker(db)
}

func newTracker(db *sql.DB) (*Tracker, error) {
	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}
	t := &Tracker{db: db, salt: salt, now: time.Now}
	if err := t.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return t, nil
}

// Close closes the database.
func (t *Tracker) Close() error { return t.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    hashed_ip TEXT NOT NULL,
    user_agent TEXT NOT NULL DEFAULT '',
    path TEXT NOT NULL DEFAULT '',
    kind TEXT NOT NULL CHECK(kind IN ('view','tab','project')),
    subject TEXT NOT NULL DEFAULT '',
    timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind, subject);
`

func (t *Tracker) migrate() error {
	_, err := t.db.Exec(schema)
	return err
}

// HashIP returns the salted, truncated hash stored in place of ip. The salt
// lives only in memory, so hashes are stable for one process lifetime.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores e. A zero At is replaced with the current time.
func (t *Tracker) Record(ctx context.Context, e Event) error {
	at := e.At
	if at.IsZero() {
		at = t.now()
	}
	kind := e.Kind
	if kind == "" {
		kind = KindView
	}
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO events (hashed_ip, user_agent, path, kind, subject, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.HashIP(e.ClientIP), e.UserAgent, e.Path, string(kind), e.Subject, at.UTC())
	if err != nil {
		return fmt.Errorf("recording %s event: %w", kind, err)
	}
	return nil
}

// Cleanup deletes events older than retention and returns how many rows
// were removed.
func (t *Tracker) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := t.now().Add(-retention).UTC()
	res, err := t.db.ExecContext(ctx, `DELETE FROM events WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up events: %w", err)
	}
	return res.RowsAffected()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
