// Package storage provides SQLite-based persistence for solved levels.
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
)

// LocalPlayer names solves made outside an SSH session.
const LocalPlayer = "local"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// SolveEntry is one recorded solve of a level.
type SolveEntry struct {
	ID        int64
	GameID    string
	LevelID   int
	Moves     int
	Player    string
	CreatedAt time.Time
}

// LevelBest summarizes the solves of one level.
type LevelBest struct {
	LevelID   int
	BestMoves int
	Solves    int
	LastSolve time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(game_id, level_id, moves);
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

// SaveSolve records that player solved a level in the given number of moves.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(gameID string, levelID, moves int, player string) (int64, error) {
	if player == "" {
		player = LocalPlayer
	}
	result, err := s.db.Exec(
		"INSERT INTO solves (game_id, level_id, moves, player) VALUES (?, ?, ?, ?)",
		gameID, levelID, moves, player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopSolves retrieves the best N solves of a level, fewest moves first.
// Ties keep recording order.
func (s *Store) TopSolves(gameID string, levelID, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, moves, player, created_at
		 FROM solves
		 WHERE game_id = ? AND level_id = ?
		 ORDER BY moves ASC, id ASC
		 LIMIT ?`,
		gameID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.LevelID, &e.Moves, &e.Player, &createdAt); err != nil {
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

// BestByLevel returns one summary per solved level, ordered by level.
func (s *Store) BestByLevel(gameID string) ([]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT level_id, MIN(moves), COUNT(*), MAX(created_at)
		 FROM solves
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best solves: %w", err)
	}
	defer rows.Close()

	var out []LevelBest
	for rows.Next() {
		var b LevelBest
		var last any
		if err := rows.Scan(&b.LevelID, &b.BestMoves, &b.Solves, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.LastSolve = parseTime(last)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestMoves returns the fewest moves any solve of the level took.
// ok is false when the level has never been solved.
func (s *Store) BestMoves(gameID string, levelID int) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE game_id = ? AND level_id = ?",
		gameID, levelID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// SolvedLevels returns the set of level IDs with at least one solve.
func (s *Store) SolvedLevels(gameID string) (map[int]bool, error) {
	best, err := s.BestByLevel(gameID)
	if err != nil {
		return nil, err
	}
	solved := make(map[int]bool, len(best))
	for _, b := range best {
		solved[b.LevelID] = true
	}
	return solved, nil
}

// LastSolve returns the most recent solve of the game.
// ok is false when nothing has been solved yet.
func (s *Store) LastSolve(gameID string) (entry SolveEntry, ok bool, err error) {
	var createdAt any
	err = s.db.QueryRow(
		`SELECT id, game_id, level_id, moves, player, created_at
		 FROM solves WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&entry.ID, &entry.GameID, &entry.LevelID, &entry.Moves, &entry.Player, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SolveEntry{}, false, nil
	}
	if err != nil {
		return SolveEntry{}, false, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	entry.CreatedAt = parseTime(createdAt)
	return entry, true, nil
}

// ClearSolves removes all solves for the given game.
func (s *Store) ClearSolves(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime accepts the driver's time.Time or SQLite's text timestamp.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
