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

func save(t *testing.T, store *Store, gameID string, score, maxStage int) string {
	t.Helper()
	rec := ScoreRecord{RunID: NewRunID(), GameID: gameID, Score: score, MaxStage: maxStage, Layers: 4, Turns: 10}
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return rec.RunID
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "hexmerge", 100, 2)
	save(t, store, "hexmerge", 300, 4)
	save(t, store, "hexmerge", 200, 3)
	save(t, store, "hexmerge_endless", 500, 5)

	scores, err := store.TopScores("hexmerge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[1].Score != 200 || scores[2].Score != 100 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].MaxStage != 4 || scores[0].Layers != 4 || scores[0].Turns != 10 {
		t.Errorf("Run details not stored: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	endless, err := store.TopScores("hexmerge_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100, i)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTieKeepsEarlierRun(t *testing.T) {
	store := openTestStore(t)

	first := save(t, store, "test", 100, 1)
	save(t, store, "test", 100, 1)

	scores, err := store.TopScores("test", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].RunID != first {
		t.Errorf("tie went to run %s, want %s", scores[0].RunID, first)
	}
}

func TestStoreHighScoreAndBestStage(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hexmerge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
	best, err := store.BestStage("hexmerge")
	if err != nil {
		t.Fatalf("BestStage() failed: %v", err)
	}
	if best != -1 {
		t.Errorf("Expected best stage -1 for empty game, got %d", best)
	}

	save(t, store, "hexmerge", 100, 5)
	save(t, store, "hexmerge", 300, 3)
	save(t, store, "hexmerge", 200, 4)

	high, _ = store.HighScore("hexmerge")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	best, _ = store.BestStage("hexmerge")
	if best != 5 {
		t.Errorf("Expected best stage 5, got %d", best)
	}
}

func TestStoreSaveGeneratesRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreRecord{GameID: "hexmerge", Score: 9}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, _ := store.AllScores("hexmerge")
	if len(scores) != 1 || scores[0].RunID == "" {
		t.Fatalf("run id not generated: %+v", scores)
	}

	got, err := store.ScoreByRun(scores[0].RunID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if got == nil || got.Score != 9 {
		t.Errorf("ScoreByRun() = %+v", got)
	}

	missing, err := store.ScoreByRun("nope")
	if err != nil || missing != nil {
		t.Errorf("ScoreByRun(nope) = %v, %v", missing, err)
	}
}

func TestStoreDuplicateRunRejected(t *testing.T) {
	store := openTestStore(t)

	rec := ScoreRecord{RunID: NewRunID(), GameID: "hexmerge", Score: 1}
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(rec); err == nil {
		t.Error("saving the same run twice succeeded")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "hexmerge", 100, 1)
	save(t, store, "hexmerge", 200, 1)
	save(t, store, "hexmerge_endless", 300, 1)

	if err := store.ClearScores("hexmerge"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("hexmerge", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	endless, _ := store.TopScores("hexmerge_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "test", i*10, 0)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("AllScores() should list newest first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("hexmerge")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestStage != -1 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "hexmerge", 100, 2)
	save(t, store, "hexmerge", 300, 4)
	save(t, store, "hexmerge_endless", 50, 1)

	stats, err := store.GetGameStats("hexmerge")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GameID != "hexmerge" || stats.GamesCount != 2 || stats.HighScore != 300 ||
		stats.TotalScore != 400 || stats.AvgScore != 200 || stats.BestStage != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["hexmerge_endless"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with home path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under home")
	}
}
