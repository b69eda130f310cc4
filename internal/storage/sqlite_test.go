package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/vector-dash/internal/core"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, coins int
	}{
		{100, 3}, {50, 9}, {200, 1}, {100, 7},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("vectordash", r.score, r.coins); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("vectordash_versus", 500, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("vectordash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	// Score descending, coins break ties
	want := []struct{ score, coins int }{{200, 1}, {100, 7}, {100, 3}, {50, 9}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Coins != w.coins {
			t.Errorf("scores[%d] = %d/%d, expected %d/%d", i, scores[i].Score, scores[i].Coins, w.score, w.coins)
		}
		if scores[i].GameID != "vectordash" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("vectordash", i*10, 0)
	}

	scores, err := store.TopScores("vectordash", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("vectordash")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for no scores, got %d", best)
	}

	store.SaveScore("vectordash", 100, 0)
	store.SaveScore("vectordash", 300, 0)
	store.SaveScore("vectordash", 200, 0)

	best, err = store.BestScore("vectordash")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("vectordash", 100, 0)
	store.SaveScore("vectordash_versus", 300, 0)

	if err := store.ClearScores("vectordash"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("vectordash", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("vectordash_versus", 10)
	if len(other) != 1 {
		t.Errorf("ClearScores should not touch other games, got %d", len(other))
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting("missing"); err != nil || ok {
		t.Fatalf("Setting(missing) = ok %v, err %v", ok, err)
	}

	if err := store.SetSetting("k", "one"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("k", "two"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}

	v, ok, err := store.Setting("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("Setting(k) = (%q, %v, %v), expected two", v, ok, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	if err != nil || hs != 0 {
		t.Fatalf("HighScore() on empty store = (%d, %v)", hs, err)
	}

	if err := store.SetHighScore(1234); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	hs, err = store.HighScore()
	if err != nil || hs != 1234 {
		t.Errorf("HighScore() = (%d, %v), expected 1234", hs, err)
	}

	// Stored under the well-known key
	v, _, _ := store.Setting(KeyHighScore)
	if v != "1234" {
		t.Errorf("raw setting = %q", v)
	}

	store.SetSetting(KeyHighScore, "garbage")
	if _, err := store.HighScore(); err == nil {
		t.Error("HighScore() should fail on a non-numeric value")
	}
}

func TestStoreSkin(t *testing.T) {
	store := openTestStore(t)

	skin, err := store.Skin()
	if err != nil || skin != core.SkinDefault {
		t.Fatalf("Skin() on empty store = (%q, %v)", skin, err)
	}

	if err := store.SetSkin(core.SkinMatrix); err != nil {
		t.Fatalf("SetSkin() failed: %v", err)
	}
	skin, _ = store.Skin()
	if skin != core.SkinMatrix {
		t.Errorf("Skin() = %q, expected %q", skin, core.SkinMatrix)
	}

	// Unknown stored values fall back to default
	store.SetSetting(KeySkin, "skin-rainbow")
	skin, _ = store.Skin()
	if skin != core.SkinDefault {
		t.Errorf("Skin() with unknown value = %q", skin)
	}
}

func TestStoreVersusMatches(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveVersusMatch(VersusMatch{P1Score: 120, P1Coins: 4, P2Score: 80, P2Coins: 9, Outcome: "P1"})
	if err != nil {
		t.Fatalf("SaveVersusMatch() failed: %v", err)
	}
	if first == "" {
		t.Fatal("expected a generated match ID")
	}

	second, err := store.SaveVersusMatch(VersusMatch{MatchID: "fixed-id", P1Score: 50, P2Score: 50, Outcome: "tie"})
	if err != nil {
		t.Fatalf("SaveVersusMatch() failed: %v", err)
	}
	if second != "fixed-id" {
		t.Errorf("explicit match ID replaced: %q", second)
	}

	if _, err := store.SaveVersusMatch(VersusMatch{MatchID: "fixed-id", Outcome: "tie"}); err == nil {
		t.Error("duplicate match ID should be rejected")
	}

	matches, err := store.RecentVersusMatches(10)
	if err != nil {
		t.Fatalf("RecentVersusMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].MatchID != "fixed-id" || matches[1].MatchID != first {
		t.Errorf("matches not newest first: %q, %q", matches[0].MatchID, matches[1].MatchID)
	}
	if m := matches[1]; m.P1Score != 120 || m.P1Coins != 4 || m.P2Score != 80 || m.P2Coins != 9 || m.Outcome != "P1" {
		t.Errorf("match round trip = %+v", m)
	}
	if matches[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("vectordash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("vectordash", 100, 2)
	store.SaveScore("vectordash", 300, 5)

	stats, err = store.GetGameStats("vectordash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestScore != 300 || stats.AvgScore != 200 || stats.TotalCoins != 7 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestHighScoreKeeper(t *testing.T) {
	var nilKeeper *HighScoreKeeper
	if hs, err := nilKeeper.HighScore(); hs != 0 || err != nil {
		t.Errorf("nil keeper HighScore() = (%d, %v)", hs, err)
	}
	if err := NewHighScoreKeeper(nil).SetHighScore(10); err != nil {
		t.Errorf("keeper without store should discard writes, got %v", err)
	}

	store := openTestStore(t)
	k := NewHighScoreKeeper(store)
	if err := k.SetHighScore(77); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if hs, _ := store.HighScore(); hs != 77 {
		t.Errorf("store high score = %d, expected 77", hs)
	}
}
