package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveRun(Run{Player: "ann", Score: score, Ticks: score * 30, Seed: 7}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Player != "ann" || runs[0].Ticks != 600 || runs[0].Seed != 7 {
		t.Errorf("Run fields not preserved: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Score: 3})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() should assign an ID")
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 3 {
		t.Errorf("RunByID(%q) = %+v, expected score 3", id, run)
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID() of unknown ID = %+v, expected nil", missing)
	}

	// Explicit IDs are kept and must be unique
	if _, err := store.SaveRun(Run{ID: "fixed", Score: 1}); err != nil {
		t.Fatalf("SaveRun() with ID failed: %v", err)
	}
	if _, err := store.SaveRun(Run{ID: "fixed", Score: 2}); err == nil {
		t.Error("SaveRun() with a duplicate ID should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	// Non-positive limit falls back to 10
	for i := 0; i < 10; i++ {
		store.SaveRun(Run{Score: i})
	}
	runs, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(runs))
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "ann", Score: 1})
	store.SaveRun(Run{Player: "bob", Score: 9})
	store.SaveRun(Run{Player: "ann", Score: 4})

	runs, err := store.PlayerRuns("ann", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ann, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 4 || runs[1].Score != 1 {
		t.Errorf("PlayerRuns() order = %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{Score: 12})
	store.SaveRun(Run{Score: 31})
	store.SaveRun(Run{Score: 20})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("Expected high score of 31, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", stats)
	}

	store.SaveRun(Run{Score: 2, Ticks: 100})
	store.SaveRun(Run{Score: 4, Ticks: 300})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalTicks != 400 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
