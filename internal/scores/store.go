package scores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mmheroes/mmheroes-go/internal/game"
)

// Store manages the SQLite database holding the hall of fame and the
// per-run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished game in the history table.
type RunRecord struct {
	ID           int64
	Name         string
	Score        int16
	Seed         uint64
	PassedExams  int
	CauseOfDeath string // empty for survivors
}

// Open creates or opens the database at the given path, creating parent
// directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scores: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			passed_exams INTEGER NOT NULL,
			cause_of_death TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records a finished game. Returns the ID of the inserted row.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (name, score, seed, passed_exams, cause_of_death)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Name, r.Score, int64(r.Seed), r.PassedExams, r.CauseOfDeath,
	)
	if err != nil {
		return 0, fmt.Errorf("scores: cannot save run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scores: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// HallOfFame returns the top NumEntries runs as the list the engine
// shows between games.
func (s *Store) HallOfFame() ([]game.HighScore, error) {
	rows, err := s.db.Query(
		`SELECT name, score FROM runs ORDER BY score DESC, created_at ASC LIMIT ?`,
		NumEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query hall of fame: %w", err)
	}
	defer rows.Close()

	var entries []game.HighScore
	for rows.Next() {
		var e game.HighScore
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}
	return entries, nil
}

// RecentRuns returns the most recent finished games.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, name, score, seed, passed_exams, cause_of_death
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var seed int64
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &seed, &r.PassedExams, &r.CauseOfDeath); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		r.Seed = uint64(seed)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}
	return records, nil
}

// ImportLegacy loads a legacy score file into the database. Empty
// records (zero-length names with zero score) are skipped.
func (s *Store) ImportLegacy(data []byte) (int, error) {
	entries, err := DecodeLegacy(data)
	if err != nil {
		return 0, err
	}
	imported := 0
	for _, e := range entries {
		if e.Name == "" && e.Score == 0 {
			continue
		}
		if _, err := s.SaveRun(RunRecord{Name: e.Name, Score: e.Score}); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// Clear deletes the whole run history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("scores: cannot clear runs: %w", err)
	}
	return nil
}
