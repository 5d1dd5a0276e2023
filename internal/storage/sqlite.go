// Package storage provides SQLite-based persistence for runs, lifetime
// stats, and theme unlocks.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/advanced-snake/internal/theme"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded run.
type RunEntry struct {
	ID        int64
	Score     int
	Level     int
	MaxLength int
	FoodEaten int
	PowerUps  int
	Duration  float64
	Seed      int64
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			max_length INTEGER NOT NULL,
			food_eaten INTEGER NOT NULL,
			powerups INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			best_score INTEGER NOT NULL DEFAULT 0,
			longest_snake INTEGER NOT NULL DEFAULT 0,
			total_food INTEGER NOT NULL DEFAULT 0,
			total_powerups INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			total_runs INTEGER NOT NULL DEFAULT 0,
			total_play_secs REAL NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO stats (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			selected_theme TEXT NOT NULL DEFAULT 'classic'
		);
		INSERT OR IGNORE INTO profile (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS unlocks (
			theme_id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT OR IGNORE INTO unlocks (theme_id) VALUES ('classic');
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

// RunSummary mirrors the simulation's finished-run record without
// importing the game package.
type RunSummary struct {
	Score     int
	Level     int
	MaxLength int
	FoodEaten int
	PowerUps  int
	Duration  float64
	Seed      int64
}

// LifetimeStats aggregates every recorded run.
type LifetimeStats struct {
	BestScore     int
	LongestSnake  int
	TotalFood     int
	TotalPowerUps int
	TotalScore    int
	TotalRuns     int
	TotalPlaySecs float64
}

// AverageScore returns the mean score per run, 0 with no runs.
func (s LifetimeStats) AverageScore() float64 {
	if s.TotalRuns == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.TotalRuns)
}

// ThemeStats projects the aggregates the unlock thresholds check.
func (s LifetimeStats) ThemeStats() theme.Stats {
	return theme.Stats{
		BestScore:    s.BestScore,
		LongestSnake: s.LongestSnake,
		TotalFood:    s.TotalFood,
	}
}

// RecordRun stores a finished run and folds it into the lifetime stats.
// Returns true if the score is a new personal best.
func (s *Store) RecordRun(run RunSummary) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (score, level, max_length, food_eaten, powerups, duration_secs, seed) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.Score, run.Level, run.MaxLength, run.FoodEaten, run.PowerUps, run.Duration, run.Seed,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save run: %w", err)
	}

	var best int
	if err := tx.QueryRow("SELECT best_score FROM stats WHERE id = 1").Scan(&best); err != nil {
		return false, fmt.Errorf("storage: cannot read stats: %w", err)
	}
	newBest := run.Score > best

	_, err = tx.Exec(`
		UPDATE stats SET
			best_score = MAX(best_score, ?),
			longest_snake = MAX(longest_snake, ?),
			total_food = total_food + ?,
			total_powerups = total_powerups + ?,
			total_score = total_score + ?,
			total_runs = total_runs + 1,
			total_play_secs = total_play_secs + ?
		WHERE id = 1`,
		run.Score, run.MaxLength, run.FoodEaten, run.PowerUps, run.Score, run.Duration,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot update stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return newBest, nil
}

// TopRuns retrieves the best N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT id, score, level, max_length, food_eaten, powerups, duration_secs, seed, created_at
		FROM runs ORDER BY score DESC, created_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(&e.ID, &e.Score, &e.Level, &e.MaxLength, &e.FoodEaten, &e.PowerUps, &e.Duration, &e.Seed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration failed: %w", err)
	}
	return entries, nil
}

// Stats returns the lifetime aggregates.
func (s *Store) Stats() (LifetimeStats, error) {
	var st LifetimeStats
	err := s.db.QueryRow(`
		SELECT best_score, longest_snake, total_food, total_powerups,
		       total_score, total_runs, total_play_secs
		FROM stats WHERE id = 1`,
	).Scan(&st.BestScore, &st.LongestSnake, &st.TotalFood, &st.TotalPowerUps,
		&st.TotalScore, &st.TotalRuns, &st.TotalPlaySecs)
	if err != nil {
		return st, fmt.Errorf("storage: cannot read stats: %w", err)
	}
	return st, nil
}

// SelectedTheme returns the persisted theme choice.
func (s *Store) SelectedTheme() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT selected_theme FROM profile WHERE id = 1").Scan(&id)
	if err != nil {
		return "", fmt.Errorf("storage: cannot read profile: %w", err)
	}
	return id, nil
}

// SetSelectedTheme persists the theme choice.
func (s *Store) SetSelectedTheme(id string) error {
	if _, err := s.db.Exec("UPDATE profile SET selected_theme = ? WHERE id = 1", id); err != nil {
		return fmt.Errorf("storage: cannot update profile: %w", err)
	}
	return nil
}

// UpdateUnlocks persists any theme the current stats newly unlock and
// returns the ids unlocked by this call.
func (s *Store) UpdateUnlocks() ([]string, error) {
	st, err := s.Stats()
	if err != nil {
		return nil, err
	}

	existing, err := s.UnlockedThemes()
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}

	var fresh []string
	for _, id := range theme.Unlocked(st.ThemeStats()) {
		if have[id] {
			continue
		}
		if _, err := s.db.Exec("INSERT OR IGNORE INTO unlocks (theme_id) VALUES (?)", id); err != nil {
			return nil, fmt.Errorf("storage: cannot save unlock: %w", err)
		}
		fresh = append(fresh, id)
	}
	return fresh, nil
}

// UnlockedThemes returns the persisted unlocked theme ids.
func (s *Store) UnlockedThemes() ([]string, error) {
	rows, err := s.db.Query("SELECT theme_id FROM unlocks ORDER BY unlocked_at ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan unlock: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration failed: %w", err)
	}
	return ids, nil
}
