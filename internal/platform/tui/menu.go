package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
	"github.com/vovakirdan/vector-dash/internal/games/dash"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

// PromptSelectMode is shown when Start is chosen before a mode.
const PromptSelectMode = "Please select a game mode first!"

type menuItem int

const (
	itemMode menuItem = iota
	itemSpeed
	itemSkin
	itemStart
	itemScores
	itemQuit
	itemCount
)

// menuKeys only feeds the help footer; navigation goes through MapKeyToMenuAction.
type menuKeys struct {
	Move   key.Binding
	Change key.Binding
	Mode   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Change, k.Mode, k.Select, k.Scores, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultMenuKeys = menuKeys{
	Move:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
	Change: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
	Mode:   key.NewBinding(key.WithKeys("1", "2"), key.WithHelp("1/2", "players")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// MenuModel is the start screen: mode, speed and skin selection.
type MenuModel struct {
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	help      help.Model
	width     int
	height    int
	cursor    menuItem
	mode      dash.Mode
	speed     int
	skin      core.Skin
	highScore int
	prompt    string

	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a menu with speed preselected. The skin and high
// score are read from store when it is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, speed int, logger *log.Logger) MenuModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := MenuModel{
		store:  store,
		logger: logger,
		config: cfg,
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		speed:  core.Clamp(speed, config.MinBaseSpeed, config.MaxBaseSpeed),
		skin:   core.SkinDefault,
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if skin, err := store.Skin(); err == nil {
			m.skin = skin
		} else {
			logger.Warn("could not load skin", "error", err)
		}
		if hs, err := store.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < itemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.change(-1)

	case MenuActionRight:
		m.change(1)

	case MenuActionSingle:
		m.setMode(dash.ModeSingle)

	case MenuActionTwo:
		m.setMode(dash.ModeTwo)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		return m.selectItem()
	}

	return m, nil
}

func (m MenuModel) selectItem() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case itemMode, itemSkin:
		m.change(1)
	case itemStart:
		if m.mode == dash.ModeNone {
			m.prompt = PromptSelectMode
			return m, nil
		}
		m.started = true
		return m, tea.Quit
	case itemScores:
		m.openScoreboard = true
		return m, tea.Quit
	case itemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// change steps the value under the cursor by dir.
func (m *MenuModel) change(dir int) {
	switch m.cursor {
	case itemMode:
		next := (int(m.mode) + dir + 3) % 3
		m.setMode(dash.Mode(next))
	case itemSpeed:
		m.speed = core.Clamp(m.speed+dir, config.MinBaseSpeed, config.MaxBaseSpeed)
	case itemSkin:
		i := 0
		for j, s := range core.Skins {
			if s == m.skin {
				i = j
			}
		}
		n := len(core.Skins)
		m.skin = core.Skins[(i+dir+n)%n]
		if m.store != nil {
			if err := m.store.SetSkin(m.skin); err != nil {
				m.logger.Warn("could not save skin", "error", err)
			}
		}
	}
}

func (m *MenuModel) setMode(mode dash.Mode) {
	m.mode = mode
	if mode != dash.ModeNone {
		m.prompt = ""
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("V E C T O R   D A S H"), m.width))
	b.WriteString("\n\n")
	hs := fmt.Sprintf("High Score: %d", m.highScore)
	b.WriteString(centerText(menuDimStyle.Render(hs), m.width))
	b.WriteString("\n\n")

	for i := menuItem(0); i < itemCount; i++ {
		line := m.itemLabel(i)
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuActiveStyle
		}
		b.WriteString(centerText(style.Render(cursor+line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.prompt != "" {
		b.WriteString(centerText(menuPromptStyle.Render(m.prompt), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(m.help.View(defaultMenuKeys), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) itemLabel(i menuItem) string {
	switch i {
	case itemMode:
		label := "select"
		switch m.mode {
		case dash.ModeSingle:
			label = "1 Player"
		case dash.ModeTwo:
			label = "2 Players"
		}
		return fmt.Sprintf("Mode:  < %s >", label)
	case itemSpeed:
		bar := strings.Repeat("■", m.speed) + strings.Repeat("□", config.MaxBaseSpeed-m.speed)
		return fmt.Sprintf("Speed: [%s] %d", bar, m.speed)
	case itemSkin:
		return fmt.Sprintf("Skin:  < %s >", m.skin.Name())
	case itemStart:
		return "Start"
	case itemScores:
		return "High Scores"
	case itemQuit:
		return "Quit"
	}
	return ""
}

// Selected reports whether the user started a game.
func (m MenuModel) Selected() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Prompt returns the message shown under the menu, if any.
func (m MenuModel) Prompt() string {
	return m.prompt
}

// Result returns the current choices.
func (m MenuModel) Result() MenuResult {
	return MenuResult{
		Mode:            m.mode,
		Speed:           m.speed,
		Skin:            m.skin,
		Config:          m.config,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting,
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Mode            dash.Mode
	Speed           int
	Skin            core.Skin
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, speed int, logger *log.Logger) (MenuResult, error) {
	model := NewMenuModel(store, cfg, speed, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := m.Result()
	if !m.Selected() && !m.WantsScoreboard() {
		result.Quit = true
	}
	return result, nil
}
