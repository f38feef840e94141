package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "deep", "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("drifter", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("drifter", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("drifter", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for drifter
	scores, err := store.TopScores("drifter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Check ordering (descending by score)
	if scores[0].Score != 200 {
		t.Errorf("Expected top score 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score 50, got %d", scores[2].Score)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 15 scores
	for i := 1; i <= 15; i++ {
		_, err = store.SaveScore("drifter", i*10)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Request top 5
	scores, err := store.TopScores("drifter", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	// Top score should be 150
	if scores[0].Score != 150 {
		t.Errorf("Expected top score 150, got %d", scores[0].Score)
	}

	// Default limit when limit <= 0
	scores, err = store.TopScores("drifter", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10 scores, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("drifter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty table, got %d", high)
	}

	// Add scores
	store.SaveScore("drifter", 100)
	store.SaveScore("drifter", 300)
	store.SaveScore("drifter", 200)

	high, err = store.HighScore("drifter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("drifter", 100)
	store.SaveScore("drifter", 200)
	store.SaveScore("other", 300)

	// Clear drifter scores
	if err := store.ClearScores("drifter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("drifter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other game's scores should remain
	scores, err = store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 1; i <= 20; i++ {
		store.SaveScore("drifter", i)
	}

	scores, err := store.AllScores("drifter")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveAndRecentRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveRun("drifter", 12345, 800, 42)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	_, err = store.SaveRun("drifter", 67890, 1450, 95)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	_, err = store.SaveRun("other", 111, 5, 3)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("drifter", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Seed != 67890 {
		t.Errorf("Expected newest run seed 67890, got %d", runs[0].Seed)
	}
	if runs[0].Score != 1450 {
		t.Errorf("Expected newest run score 1450, got %d", runs[0].Score)
	}
	if runs[0].DurationSecs != 95 {
		t.Errorf("Expected newest run duration 95, got %d", runs[0].DurationSecs)
	}
	if runs[1].Seed != 12345 {
		t.Errorf("Expected older run seed 12345, got %d", runs[1].Seed)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 30; i++ {
		if _, err := store.SaveRun("drifter", int64(i), i, i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("drifter", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	// Default limit when limit <= 0
	runs, err = store.RecentRuns("drifter", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected default limit of 20 runs, got %d", len(runs))
	}
}

func TestStoreBestRun(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	best, err := store.BestRun("drifter")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run for empty table, got %+v", best)
	}

	store.SaveRun("drifter", 1, 100, 10)
	store.SaveRun("drifter", 2, 900, 60)
	store.SaveRun("drifter", 3, 400, 30)

	best, err = store.BestRun("drifter")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best run, got nil")
	}
	if best.Seed != 2 || best.Score != 900 {
		t.Errorf("Expected best run seed 2 score 900, got seed %d score %d", best.Seed, best.Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("drifter", 100)
	store.SaveScore("drifter", 200)
	store.SaveScore("drifter", 300)

	stats, err := store.GetGameStats("drifter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("Expected total score 600, got %d", stats.TotalScore)
	}
}

func TestStoreGetAllGamesStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("drifter", 100)
	store.SaveScore("drifter", 200)
	store.SaveScore("other", 50)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["drifter"].GamesCount != 2 {
		t.Errorf("Expected 2 drifter games, got %d", stats["drifter"].GamesCount)
	}
	if stats["other"].HighScore != 50 {
		t.Errorf("Expected other high score 50, got %d", stats["other"].HighScore)
	}
}
