// Package storage keeps a SQLite journal of committed GemShift moves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gemshift/internal/puzzle"
)

// DefaultPath is where the journal lives unless --db says otherwise.
const DefaultPath = "~/.gemshift/journal.db"

// Store manages the SQLite database connection for the commit journal.
type Store struct {
	db *sql.DB
}

// CommitEntry is one committed move list and how its cascade went.
type CommitEntry struct {
	ID        int64
	Session   string
	Level     string // Empty for random boards
	Moves     string // e.g. "row 2 -1; col 0 +1"
	Steps     int
	Removed   int
	Halted    bool
	CreatedAt time.Time
}

// Stats aggregates the journal, overall or for one session.
type Stats struct {
	Commits      int
	TotalSteps   int64
	TotalRemoved int64
	MaxSteps     int
	HaltedCount  int
	LastCommit   time.Time
}

// AvgSteps returns the mean cascade length per commit.
func (s Stats) AvgSteps() float64 {
	if s.Commits == 0 {
		return 0
	}
	return float64(s.TotalSteps) / float64(s.Commits)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS commits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT '',
			moves TEXT NOT NULL,
			steps INTEGER NOT NULL,
			removed INTEGER NOT NULL,
			halted INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_commits_session ON commits(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// FormatMoves renders a move list the way it is stored in the journal.
func FormatMoves(moves []puzzle.MoveAction) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, "; ")
}

// RecordCommit journals one committed move list and its resolution.
// Returns the ID of the inserted record.
func (s *Store) RecordCommit(session, level string, moves []puzzle.MoveAction, res puzzle.Resolution) (int64, error) {
	removed := 0
	for _, phase := range res.History {
		removed += len(phase.Removed)
	}

	result, err := s.db.Exec(
		`INSERT INTO commits (session, level, moves, steps, removed, halted)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session, level, FormatMoves(moves), res.Steps, removed, res.Halted,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record commit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent retrieves the most recent commits, newest first.
// An empty session matches every session.
func (s *Store) Recent(session string, limit int) ([]CommitEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session, level, moves, steps, removed, halted, created_at
		 FROM commits
		 WHERE ? = '' OR session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query commits: %w", err)
	}
	defer rows.Close()

	var entries []CommitEntry
	for rows.Next() {
		var e CommitEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Session, &e.Level, &e.Moves, &e.Steps, &e.Removed, &e.Halted, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics.
// An empty session aggregates the whole journal.
func (s *Store) Stats(session string) (*Stats, error) {
	stats := &Stats{}

	var lastCommit any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(steps), 0), COALESCE(SUM(removed), 0),
		        COALESCE(MAX(steps), 0), COALESCE(SUM(halted), 0), MAX(created_at)
		 FROM commits
		 WHERE ? = '' OR session = ?`,
		session, session,
	).Scan(&stats.Commits, &stats.TotalSteps, &stats.TotalRemoved, &stats.MaxSteps, &stats.HaltedCount, &lastCommit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastCommit = parseTime(lastCommit)

	return stats, nil
}

// Sessions lists the distinct sessions in the journal, most recent first.
func (s *Store) Sessions() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT session FROM commits GROUP BY session ORDER BY MAX(id) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var session string
		if err := rows.Scan(&session); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Clear deletes every journal entry for a session.
func (s *Store) Clear(session string) error {
	_, err := s.db.Exec("DELETE FROM commits WHERE session = ?", session)
	if err != nil {
		return fmt.Errorf("storage: cannot clear commits: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
