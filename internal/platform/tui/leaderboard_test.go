package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrewsmnv/polyarena/internal/storage"
)

func TestLeaderboardShowsScoresAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for _, score := range []int{120, 40, 90} {
		if _, saveErr := store.SaveScore("arena", score); saveErr != nil {
			t.Fatalf("save score: %v", saveErr)
		}
	}

	m := NewLeaderboardModel(store, "arena", 80, 24)
	view := m.View()

	if !strings.Contains(view, "120") {
		t.Error("top score missing from view")
	}
	if !strings.Contains(view, "3 rounds, best 120, average 83") {
		t.Errorf("stats line missing from view:\n%s", view)
	}
}

func TestLeaderboardWithoutStore(t *testing.T) {
	m := NewLeaderboardModel(nil, "arena", 80, 24)

	view := m.View()
	if !strings.Contains(view, "No scores yet") {
		t.Error("empty board message missing")
	}
	if !strings.Contains(view, "no rounds recorded") {
		t.Error("empty stats line missing")
	}
}
