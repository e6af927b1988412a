// Package history ведет архив итогов прогонов в SQLite.
// Хранится только сводка результата — не состояние: возобновить
// симуляцию из архива нельзя.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kilian1103/gattaca-game/internal/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at        TEXT    NOT NULL,
	seed               INTEGER NOT NULL,
	ants_spawned       INTEGER NOT NULL,
	ants_alive         INTEGER NOT NULL,
	ticks              INTEGER NOT NULL,
	outcome            TEXT    NOT NULL,
	colonies_left      INTEGER NOT NULL,
	colonies_destroyed INTEGER NOT NULL,
	duration_ms        INTEGER NOT NULL
);`

type Store struct {
	db *sql.DB
}

// Open открывает (и при необходимости создает) базу архива.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Писатель один (оркестратор), пула соединений не нужно
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordRun сохраняет сводку завершенного прогона.
func (s *Store) RecordRun(res engine.Result, seed int64) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (recorded_at, seed, ants_spawned, ants_alive, ticks,
			outcome, colonies_left, colonies_destroyed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		seed,
		res.AntsSpawned,
		res.AntsAlive,
		res.Ticks,
		res.State.String(),
		res.ColoniesLeft,
		res.ColoniesDestroyed,
		res.Duration.Milliseconds(),
	)
	return err
}

// RunCount возвращает количество записанных прогонов.
func (s *Store) RunCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
