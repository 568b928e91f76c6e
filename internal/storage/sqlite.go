// Package storage provides SQLite-based persistence for saved worlds and
// play sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/cubeworld/internal/world"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// WorldRecord is a saved world: its generation seed plus the full tile grid
// of every frame.
type WorldRecord struct {
	ID        int64
	Name      string
	Seed      int64
	Tiles     map[world.FrameID][]byte
	UpdatedAt time.Time
}

// WorldSummary is the listing row for the worlds browser.
type WorldSummary struct {
	ID         int64
	Name       string
	Seed       int64
	Frames     int
	SolidTiles int
	UpdatedAt  time.Time
}

// SessionRecord is one completed play session.
type SessionRecord struct {
	ID        int64
	WorldName string
	Ticks     uint64
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
		CREATE TABLE IF NOT EXISTS worlds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS world_tiles (
			world_id INTEGER NOT NULL REFERENCES worlds(id) ON DELETE CASCADE,
			frame_id INTEGER NOT NULL,
			tiles BLOB NOT NULL,
			PRIMARY KEY (world_id, frame_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world_name TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_world ON sessions(world_name);
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

// SaveWorld inserts or updates a saved world under its name, replacing the
// stored tile grids. Each grid must be a full frame snapshot.
func (s *Store) SaveWorld(name string, seed int64, tiles map[world.FrameID][]byte) (int64, error) {
	for id, grid := range tiles {
		if len(grid) != world.FrameWidth*world.FrameWidth {
			return 0, fmt.Errorf("storage: frame %s snapshot has %d bytes, want %d",
				id, len(grid), world.FrameWidth*world.FrameWidth)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO worlds (name, seed, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET seed = excluded.seed, updated_at = CURRENT_TIMESTAMP`,
		name, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save world: %w", err)
	}

	var worldID int64
	if err := tx.QueryRow("SELECT id FROM worlds WHERE name = ?", name).Scan(&worldID); err != nil {
		return 0, fmt.Errorf("storage: cannot resolve world id: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM world_tiles WHERE world_id = ?", worldID); err != nil {
		return 0, fmt.Errorf("storage: cannot clear world tiles: %w", err)
	}
	for id, grid := range tiles {
		if _, err := tx.Exec(
			"INSERT INTO world_tiles (world_id, frame_id, tiles) VALUES (?, ?, ?)",
			worldID, int(id), grid,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit world: %w", err)
	}
	return worldID, nil
}

// LoadWorld retrieves a saved world by name. Returns nil if no world with
// that name exists.
func (s *Store) LoadWorld(name string) (*WorldRecord, error) {
	rec := &WorldRecord{Name: name, Tiles: make(map[world.FrameID][]byte)}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT id, seed, updated_at FROM worlds WHERE name = ?", name,
	).Scan(&rec.ID, &rec.Seed, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query world: %w", err)
	}
	rec.UpdatedAt = parseTimestamp(updatedAt)

	rows, err := s.db.Query(
		"SELECT frame_id, tiles FROM world_tiles WHERE world_id = ?", rec.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query world tiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var frameID int
		var grid []byte
		if err := rows.Scan(&frameID, &grid); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tile row: %w", err)
		}
		rec.Tiles[world.FrameID(frameID)] = grid
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// ListWorlds retrieves every saved world, most recently updated first.
func (s *Store) ListWorlds() ([]WorldSummary, error) {
	rows, err := s.db.Query(
		`SELECT w.id, w.name, w.seed, w.updated_at
		 FROM worlds w
		 ORDER BY w.updated_at DESC, w.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query worlds: %w", err)
	}
	defer rows.Close()

	var summaries []WorldSummary
	for rows.Next() {
		var sum WorldSummary
		var updatedAt any
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Seed, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan world row: %w", err)
		}
		sum.UpdatedAt = parseTimestamp(updatedAt)
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	// Fill the tile statistics from the blobs; six 256-byte grids per
	// world, cheap to scan.
	for i := range summaries {
		tileRows, err := s.db.Query(
			"SELECT tiles FROM world_tiles WHERE world_id = ?", summaries[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot query world tiles: %w", err)
		}
		for tileRows.Next() {
			var grid []byte
			if err := tileRows.Scan(&grid); err != nil {
				tileRows.Close()
				return nil, fmt.Errorf("storage: cannot scan tile row: %w", err)
			}
			summaries[i].Frames++
			for _, t := range grid {
				if world.Tile(t) == world.TileSolid {
					summaries[i].SolidTiles++
				}
			}
		}
		if err := tileRows.Err(); err != nil {
			tileRows.Close()
			return nil, fmt.Errorf("storage: row iteration error: %w", err)
		}
		tileRows.Close()
	}

	return summaries, nil
}

// DeleteWorld removes a saved world and its tile grids.
func (s *Store) DeleteWorld(name string) error {
	res, err := s.db.Exec("DELETE FROM worlds WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete world: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		// ON DELETE CASCADE needs foreign keys enabled, which the driver
		// does not guarantee; clear orphans explicitly.
		if _, err := s.db.Exec(
			"DELETE FROM world_tiles WHERE world_id NOT IN (SELECT id FROM worlds)",
		); err != nil {
			return fmt.Errorf("storage: cannot delete world tiles: %w", err)
		}
	}
	return nil
}

// RecordSession appends a completed play session.
// Returns the ID of the inserted record.
func (s *Store) RecordSession(worldName string, ticks uint64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (world_name, ticks) VALUES (?, ?)",
		worldName, ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions retrieves the most recent play sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, world_name, ticks, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.WorldName, &rec.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session row: %w", err)
		}
		rec.CreatedAt = parseTimestamp(createdAt)
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or string.
func parseTimestamp(v any) time.Time {
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
