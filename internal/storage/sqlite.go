// Package storage provides SQLite-based persistence for round outcomes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only aggregate results are stored; there is no per-move history.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundEntry represents one finished round.
type RoundEntry struct {
	ID           int64
	Outcome      string // "red wins", "yellow wins", "draw"
	Moves        int
	DurationSecs int
	CreatedAt    time.Time
}

// Tally aggregates round outcomes.
type Tally struct {
	RedWins    int
	YellowWins int
	Draws      int
}

// Total returns the number of recorded rounds.
func (t Tally) Total() int {
	return t.RedWins + t.YellowWins + t.Draws
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(outcome string, moves, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (outcome, moves, duration_secs) VALUES (?, ?, ?)",
		outcome, moves, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the N most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, moves, duration_secs, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Outcome, &e.Moves, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// OutcomeTally aggregates all recorded rounds by outcome.
func (s *Store) OutcomeTally() (Tally, error) {
	rows, err := s.db.Query("SELECT outcome, COUNT(*) FROM rounds GROUP BY outcome")
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	defer rows.Close()

	var t Tally
	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return Tally{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch outcome {
		case "red wins":
			t.RedWins = count
		case "yellow wins":
			t.YellowWins = count
		case "draw":
			t.Draws = count
		}
	}

	if err := rows.Err(); err != nil {
		return Tally{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return t, nil
}

// ClearRounds deletes all recorded rounds.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
