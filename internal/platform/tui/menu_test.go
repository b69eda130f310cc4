package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vector-dash/internal/core"
	"github.com/vovakirdan/vector-dash/internal/games/dash"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pressMenu(t *testing.T, m MenuModel, keys ...string) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuStartRequiresMode(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), 5, nil)

	m, cmd := pressMenu(t, m, "down", "down", "down", "enter")
	if m.Selected() || cmd != nil {
		t.Fatal("start without a mode should not leave the menu")
	}
	if m.Prompt() != PromptSelectMode {
		t.Errorf("prompt = %q, expected %q", m.Prompt(), PromptSelectMode)
	}
	if !strings.Contains(m.View(), PromptSelectMode) {
		t.Error("prompt should be rendered")
	}

	m, _ = pressMenu(t, m, "2")
	if m.Prompt() != "" {
		t.Error("choosing a mode should clear the prompt")
	}

	m, cmd = pressMenu(t, m, "enter")
	if !m.Selected() || cmd == nil {
		t.Fatal("start with a mode should finish the menu")
	}
	if got := m.Result().Mode; got != dash.ModeTwo {
		t.Errorf("mode = %v, expected two players", got)
	}
}

func TestMenuModeCycles(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), 5, nil)

	want := []dash.Mode{dash.ModeSingle, dash.ModeTwo, dash.ModeNone}
	for i, mode := range want {
		m, _ = pressMenu(t, m, "right")
		if m.Result().Mode != mode {
			t.Errorf("step %d: mode = %v, expected %v", i, m.Result().Mode, mode)
		}
	}
}

func TestMenuSpeedClamped(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), 42, nil)
	if got := m.Result().Speed; got != 10 {
		t.Fatalf("initial speed = %d, expected 10", got)
	}

	m, _ = pressMenu(t, m, "down")
	for range 20 {
		m, _ = pressMenu(t, m, "left")
	}
	if got := m.Result().Speed; got != 1 {
		t.Errorf("speed = %d, expected 1", got)
	}

	m, _ = pressMenu(t, m, "right", "right")
	if got := m.Result().Speed; got != 3 {
		t.Errorf("speed = %d, expected 3", got)
	}
}

func TestMenuSkinPersisted(t *testing.T) {
	store := openStore(t)

	m := NewMenuModel(store, testConfig(), 5, nil)
	m, _ = pressMenu(t, m, "down", "down", "right")

	skin, err := store.Skin()
	if err != nil {
		t.Fatalf("Skin: %v", err)
	}
	if skin != core.Skins[1] || m.Result().Skin != skin {
		t.Errorf("skin = %q, expected %q", skin, core.Skins[1])
	}

	// A new menu starts from the saved skin
	if got := NewMenuModel(store, testConfig(), 5, nil).Result().Skin; got != core.Skins[1] {
		t.Errorf("reloaded skin = %q", got)
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	if err := store.SetHighScore(321); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}

	m := NewMenuModel(store, testConfig(), 5, nil)
	if !strings.Contains(m.View(), "High Score: 321") {
		t.Error("menu should show the stored high score")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), 5, nil)

	sb, _ := pressMenu(t, m, "tab")
	if !sb.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	q, cmd := pressMenu(t, m, "q")
	if !q.IsQuitting() || cmd == nil || !q.Result().Quit {
		t.Error("q should quit the menu")
	}
}
