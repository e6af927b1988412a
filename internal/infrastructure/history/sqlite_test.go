package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kilian1103/gattaca-game/internal/engine"
)

func TestStore_RecordRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	res := engine.Result{
		State:             engine.AllDead,
		Ticks:             42,
		AntsSpawned:       10,
		AntsAlive:         0,
		ColoniesLeft:      3,
		ColoniesDestroyed: 4,
		Duration:          120 * time.Millisecond,
	}

	if err := store.RecordRun(res, 1337); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := store.RecordRun(res, 1338); err != nil {
		t.Fatalf("Second RecordRun failed: %v", err)
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 runs, got %d", n)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Empty path must be rejected")
	}
}
