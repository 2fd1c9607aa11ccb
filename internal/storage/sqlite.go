// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sqlx.DB
}

// ScoreRecord is one finished run.
type ScoreRecord struct {
	RunID    string
	GameID   string
	Score    int
	MaxStage int
	Layers   int
	Turns    int
}

// ScoreEntry represents a single stored score.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Score     int
	MaxStage  int
	Layers    int
	Turns     int
	CreatedAt time.Time
}

// scoreRow mirrors the scores table.
type scoreRow struct {
	ID        int64  `db:"id"`
	RunID     string `db:"run_id"`
	GameID    string `db:"game_id"`
	Score     int    `db:"score"`
	MaxStage  int    `db:"max_stage"`
	Layers    int    `db:"layers"`
	Turns     int    `db:"turns"`
	CreatedAt int64  `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{
		ID:        r.ID,
		RunID:     r.RunID,
		GameID:    r.GameID,
		Score:     r.Score,
		MaxStage:  r.MaxStage,
		Layers:    r.Layers,
		Turns:     r.Turns,
		CreatedAt: time.Unix(r.CreatedAt, 0),
	}
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
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

	// WAL mode lets the SSH server write while the CLI reads.
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_stage INTEGER NOT NULL DEFAULT 0,
			layers INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
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

// SaveScore records a finished run and returns the ID of the inserted row.
// An empty RunID is replaced by a fresh one.
func (s *Store) SaveScore(rec ScoreRecord) (int64, error) {
	if rec.RunID == "" {
		rec.RunID = NewRunID()
	}
	row := scoreRow{
		RunID:     rec.RunID,
		GameID:    rec.GameID,
		Score:     rec.Score,
		MaxStage:  rec.MaxStage,
		Layers:    rec.Layers,
		Turns:     rec.Turns,
		CreatedAt: time.Now().Unix(),
	}
	result, err := s.db.NamedExec(
		`INSERT INTO scores (run_id, game_id, score, max_stage, layers, turns, created_at)
		 VALUES (:run_id, :game_id, :score, :max_stage, :layers, :turns, :created_at)`,
		row,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get insert ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for a game, ordered by score descending.
// Ties go to the earlier run.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, run_id, game_id, score, max_stage, layers, turns, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries(rows), nil
}

// AllScores retrieves all scores for a game, newest first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, run_id, game_id, score, max_stage, layers, turns, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY id DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries(rows), nil
}

func entries(rows []scoreRow) []ScoreEntry {
	out := make([]ScoreEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out
}

// HighScore returns the highest score for a game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var high int
	err := s.db.Get(&high, "SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	return high, nil
}

// BestStage returns the highest stage ever reached in a game, or -1 if
// no run has been stored.
func (s *Store) BestStage(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.Get(&best, "SELECT MAX(max_stage) FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return -1, fmt.Errorf("storage: cannot get best stage: %w", err)
	}
	if !best.Valid {
		return -1, nil
	}
	return int(best.Int64), nil
}

// ScoreByRun looks up a single run.
func (s *Store) ScoreByRun(runID string) (*ScoreEntry, error) {
	var row scoreRow
	err := s.db.Get(&row,
		`SELECT id, run_id, game_id, score, max_stage, layers, turns, created_at
		 FROM scores WHERE run_id = ?`,
		runID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run: %w", err)
	}
	e := row.entry()
	return &e, nil
}

// ClearScores removes all scores for a game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestStage  int
	LastPlayed time.Time
}

type statsRow struct {
	GameID     string  `db:"game_id"`
	GamesCount int     `db:"games"`
	HighScore  int     `db:"high"`
	AvgScore   float64 `db:"avg"`
	TotalScore int64   `db:"total"`
	BestStage  int     `db:"best_stage"`
	LastPlayed int64   `db:"last_played"`
}

func (r statsRow) stats() *GameStats {
	st := &GameStats{
		GameID:     r.GameID,
		GamesCount: r.GamesCount,
		HighScore:  r.HighScore,
		AvgScore:   r.AvgScore,
		TotalScore: r.TotalScore,
		BestStage:  r.BestStage,
	}
	if r.LastPlayed > 0 {
		st.LastPlayed = time.Unix(r.LastPlayed, 0)
	}
	return st
}

const statsColumns = `COUNT(*) AS games,
	COALESCE(MAX(score), 0) AS high,
	COALESCE(AVG(score), 0) AS avg,
	COALESCE(SUM(score), 0) AS total,
	COALESCE(MAX(max_stage), -1) AS best_stage,
	COALESCE(MAX(created_at), 0) AS last_played`

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	var row statsRow
	err := s.db.Get(&row,
		`SELECT ? AS game_id, `+statsColumns+` FROM scores WHERE game_id = ?`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return row.stats(), nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	var rows []statsRow
	err := s.db.Select(&rows,
		`SELECT game_id, `+statsColumns+` FROM scores GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(rows))
	for _, r := range rows {
		stats[r.GameID] = r.stats()
	}
	return stats, nil
}
