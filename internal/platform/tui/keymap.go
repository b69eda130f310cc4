package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
)

// KeyMap holds the game bindings. Player keys come from config.Controls;
// platform keys are fixed.
type KeyMap struct {
	P1Flip     key.Binding
	P1Boost    key.Binding
	P2Flip     key.Binding
	P2Boost    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured controls.
func NewKeyMap(c config.Controls) KeyMap {
	return KeyMap{
		P1Flip:     playerBinding(c.P1Flip, "P1 flip"),
		P1Boost:    playerBinding(c.P1Boost, "P1 boost"),
		P2Flip:     playerBinding(c.P2Flip, "P2 flip"),
		P2Boost:    playerBinding(c.P2Boost, "P2 boost"),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// playerBinding accepts both spellings of the space bar.
func playerBinding(keys []string, desc string) key.Binding {
	expanded := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		expanded = append(expanded, k)
		if k == "space" {
			expanded = append(expanded, " ")
		}
	}
	helpKey := ""
	if len(keys) > 0 {
		helpKey = keys[0]
	}
	return key.NewBinding(key.WithKeys(expanded...), key.WithHelp(helpKey, desc))
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Flip, k.P1Boost, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Flip, k.P1Boost, k.P2Flip, k.P2Boost},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// MapKeyToFrame records the player action for msg in frame.
// Returns false if the key is not a player or pause key.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	switch {
	case key.Matches(msg, k.P1Flip):
		frame.Set(core.Player1, core.ActionFlip)
	case key.Matches(msg, k.P1Boost):
		frame.Set(core.Player1, core.ActionBoost)
	case key.Matches(msg, k.P2Flip):
		frame.Set(core.Player2, core.ActionFlip)
	case key.Matches(msg, k.P2Boost):
		frame.Set(core.Player2, core.ActionBoost)
	case key.Matches(msg, k.Pause):
		frame.Set(core.Player1, core.ActionPause)
	default:
		return false
	}
	return true
}

// MapKey translates platform keys to actions. Player keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionSingle
	MenuActionTwo
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "1":
		return MenuActionSingle
	case "2":
		return MenuActionTwo
	}
	return MenuActionNone
}
