// Package storage provides SQLite-based persistence for editor usage data:
// recently used paint colors and per-session statistics. Artwork itself is
// never stored. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Swatch is a paint color together with how often it was picked.
type Swatch struct {
	Hex      string
	Uses     int
	LastUsed time.Time
}

// SessionStats summarizes one drawing session.
type SessionStats struct {
	ID           int64
	SessionID    string
	User         string
	GridSize     int
	Strokes      int // tool applications that changed at least one cell
	Fills        int
	Picks        int
	CellsChanged int
	Duration     int // Duration in seconds
	CreatedAt    time.Time
}

// Totals contains statistics aggregated over all sessions.
type Totals struct {
	Sessions     int
	CellsChanged int64
	Strokes      int64
	Fills        int64
	Picks        int64
	LastSession  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS swatches (
			hex TEXT PRIMARY KEY,
			uses INTEGER NOT NULL DEFAULT 0,
			last_used INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_swatches_last_used ON swatches(last_used DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			grid_size INTEGER NOT NULL,
			strokes INTEGER NOT NULL DEFAULT 0,
			fills INTEGER NOT NULL DEFAULT 0,
			picks INTEGER NOT NULL DEFAULT 0,
			cells_changed INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// RecordSwatch counts one use of the given "#rrggbb" color.
func (s *Store) RecordSwatch(hex string) error {
	_, err := s.db.Exec(
		`INSERT INTO swatches (hex, uses, last_used) VALUES (?, 1, ?)
		 ON CONFLICT(hex) DO UPDATE SET uses = uses + 1, last_used = excluded.last_used`,
		strings.ToLower(hex), s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record swatch: %w", err)
	}
	return nil
}

// RecentSwatches retrieves the N most recently used colors, newest first.
func (s *Store) RecentSwatches(limit int) ([]Swatch, error) {
	return s.querySwatches("ORDER BY last_used DESC, hex", limit)
}

// TopSwatches retrieves the N most used colors.
func (s *Store) TopSwatches(limit int) ([]Swatch, error) {
	return s.querySwatches("ORDER BY uses DESC, last_used DESC", limit)
}

func (s *Store) querySwatches(order string, limit int) ([]Swatch, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT hex, uses, last_used FROM swatches `+order+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query swatches: %w", err)
	}
	defer rows.Close()

	var swatches []Swatch
	for rows.Next() {
		var sw Swatch
		var lastUsed int64
		if err := rows.Scan(&sw.Hex, &sw.Uses, &lastUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sw.LastUsed = time.Unix(0, lastUsed)
		swatches = append(swatches, sw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return swatches, nil
}

// ClearSwatches forgets every recorded color.
func (s *Store) ClearSwatches() error {
	if _, err := s.db.Exec("DELETE FROM swatches"); err != nil {
		return fmt.Errorf("storage: cannot clear swatches: %w", err)
	}
	return nil
}

// SaveSession records the statistics of a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(st SessionStats) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, user_name, grid_size, strokes, fills, picks, cells_changed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		st.SessionID,
		st.User,
		st.GridSize,
		st.Strokes,
		st.Fills,
		st.Picks,
		st.CellsChanged,
		st.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionStats, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, user_name, grid_size, strokes, fills, picks,
		        cells_changed, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionStats
	for rows.Next() {
		var st SessionStats
		var createdAt any

		if err := rows.Scan(
			&st.ID,
			&st.SessionID,
			&st.User,
			&st.GridSize,
			&st.Strokes,
			&st.Fills,
			&st.Picks,
			&st.CellsChanged,
			&st.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.CreatedAt = parseTime(createdAt)

		results = append(results, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// SessionByID retrieves a session by its session ID.
// Returns nil if no such session was recorded.
func (s *Store) SessionByID(sessionID string) (*SessionStats, error) {
	var st SessionStats
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, session_id, user_name, grid_size, strokes, fills, picks,
		        cells_changed, duration_secs, created_at
		 FROM sessions
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		sessionID,
	).Scan(
		&st.ID,
		&st.SessionID,
		&st.User,
		&st.GridSize,
		&st.Strokes,
		&st.Fills,
		&st.Picks,
		&st.CellsChanged,
		&st.Duration,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	st.CreatedAt = parseTime(createdAt)
	return &st, nil
}

// SessionTotals retrieves statistics aggregated over all sessions.
func (s *Store) SessionTotals() (*Totals, error) {
	t := &Totals{}
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cells_changed), 0), COALESCE(SUM(strokes), 0),
		        COALESCE(SUM(fills), 0), COALESCE(SUM(picks), 0), MAX(created_at)
		 FROM sessions`,
	).Scan(&t.Sessions, &t.CellsChanged, &t.Strokes, &t.Fills, &t.Picks, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session totals: %w", err)
	}

	t.LastSession = parseTime(last)
	return t, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
