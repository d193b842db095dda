// Package storage provides SQLite-based persistence for replay journals.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/replay"
)

// DefaultPath is where the CLI keeps its database unless told otherwise.
const DefaultPath = "~/.snake/replays.db"

// Store manages the SQLite database connection for replay journals.
type Store struct {
	db *sql.DB
}

// Entry is a stored journal.
type Entry struct {
	ID        int64
	Journal   replay.Journal
	CreatedAt time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			grid_w INTEGER NOT NULL,
			grid_h INTEGER NOT NULL,
			cell_size INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			queue_size INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL,
			steers TEXT NOT NULL DEFAULT '',
			digest TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
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

// SaveReplay stores a journal and returns its ID.
func (s *Store) SaveReplay(j replay.Journal) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays
		 (seed, grid_w, grid_h, cell_size, tick_rate, queue_size, ticks, steers, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Seed, j.Grid.W, j.Grid.H, j.CellSize, j.TickRate, j.QueueSize,
		int64(j.Ticks), replay.EncodeSteers(j.Steers), j.Digest,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const replayColumns = `id, seed, grid_w, grid_h, cell_size, tick_rate, queue_size, ticks, steers, digest, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e         Entry
		ticks     int64
		steers    string
		createdAt any
	)
	j := &e.Journal
	if err := row.Scan(&e.ID, &j.Seed, &j.Grid.W, &j.Grid.H, &j.CellSize, &j.TickRate,
		&j.QueueSize, &ticks, &steers, &j.Digest, &createdAt); err != nil {
		return e, err
	}
	j.Ticks = uint64(ticks)

	decoded, err := replay.DecodeSteers(steers)
	if err != nil {
		return e, fmt.Errorf("storage: replay %d: %w", e.ID, err)
	}
	j.Steers = decoded

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}

// Replay retrieves one journal by ID. Returns nil if it does not exist.
func (s *Store) Replay(id int64) (*Entry, error) {
	row := s.db.QueryRow(`SELECT `+replayColumns+` FROM replays WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	return &e, nil
}

// RecentReplays lists the newest journals first.
func (s *Store) RecentReplays(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+replayColumns+` FROM replays ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountReplays returns the number of stored journals.
func (s *Store) CountReplays() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM replays").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count replays: %w", err)
	}
	return n, nil
}

// DeleteReplay removes a journal. Deleting a missing ID is not an error.
func (s *Store) DeleteReplay(id int64) error {
	if _, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	return nil
}

// Summary is a one-line description of an entry for listings.
func (e Entry) Summary() string {
	j := e.Journal
	return fmt.Sprintf("#%d  %s  %dx%d  seed=%d  ticks=%d  steers=%d",
		e.ID, e.CreatedAt.Format("2006-01-02 15:04"), j.Grid.W, j.Grid.H, j.Seed, j.Ticks, len(j.Steers))
}

