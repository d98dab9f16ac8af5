package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", dbPath, err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	scores := []int{100, 50, 200, 75}
	for _, sc := range scores {
		if _, err := store.SaveScore("arena", sc); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 999); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	top, err := store.TopScores("arena", 3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("TopScores returned %d entries, expected 3", len(top))
	}

	expected := []int{200, 100, 75}
	for i, e := range top {
		if e.Score != expected[i] {
			t.Errorf("top[%d].Score = %d, expected %d", i, e.Score, expected[i])
		}
		if e.GameID != "arena" {
			t.Errorf("top[%d].GameID = %q, expected arena", i, e.GameID)
		}
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if hs, err := store.HighScore("arena"); err != nil || hs != 0 {
		t.Errorf("HighScore on empty table = (%d, %v), expected (0, nil)", hs, err)
	}

	store.SaveScore("arena", 42)
	store.SaveScore("arena", 17)

	hs, err := store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 42 {
		t.Errorf("HighScore = %d, expected 42", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arena", 10)
	store.SaveScore("keep", 20)

	if err := store.ClearScores("arena"); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	top, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("scores remain after ClearScores: %d", len(top))
	}

	if hs, _ := store.HighScore("keep"); hs != 20 {
		t.Errorf("ClearScores removed another game's scores")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{10, 20, 30} {
		store.SaveScore("arena", sc)
	}

	stats, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("TotalScore = %d, expected 60", stats.TotalScore)
	}
	if stats.AvgScore < 19.9 || stats.AvgScore > 20.1 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
}
