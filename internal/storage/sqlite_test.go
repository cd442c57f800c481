package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(Result{Score: 7}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()
	if n, _ := store.Count(); n != 1 {
		t.Errorf("Count() = %d after reopen, expected 1", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID := uuid.New()
	want := Result{RunID: runID, Score: 3, Lines: 3, Pieces: 41, Ticks: 1234, Seed: 8}
	if _, err := store.SaveScore(want); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.SaveScore(Result{Score: 1})
	store.SaveScore(Result{Score: 5})

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 5 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[1].Result != want {
		t.Errorf("round trip = %+v, expected %+v", scores[1].Result, want)
	}
	if scores[0].RunID == uuid.Nil {
		t.Error("a zero run id should be replaced on save")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	r := Result{RunID: uuid.New(), Score: 2}
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(r); err == nil {
		t.Error("saving the same run twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore(Result{Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// A non-positive limit falls back to 10.
	for i := 0; i < 10; i++ {
		store.SaveScore(Result{Score: i})
	}
	scores, _ = store.TopScores(0)
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d rows, expected 10", len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first := uuid.New()
	store.SaveScore(Result{RunID: first, Score: 4})
	store.SaveScore(Result{RunID: uuid.New(), Score: 4})

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].RunID != first {
		t.Error("equal scores should list the earlier game first")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveScore(Result{Score: 10})
	store.SaveScore(Result{Score: 30})
	store.SaveScore(Result{Score: 20})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(Result{Score: 1})
	store.SaveScore(Result{Score: 2})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", n)
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if empty.Games != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty summary = %+v", empty)
	}

	store.SaveScore(Result{Score: 2, Lines: 2})
	store.SaveScore(Result{Score: 4, Lines: 4})

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Games != 2 || sum.HighScore != 4 || sum.TotalLines != 6 {
		t.Errorf("Summarize() = %+v", sum)
	}
	if sum.AvgScore != 3 {
		t.Errorf("AvgScore = %v, expected 3", sum.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
