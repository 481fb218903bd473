package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/registry"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full session flow: level menu, game and
// scoreboard. It is the top-level model for SSH and local play.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	view       sessionView
	menu       LevelMenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	err        error
	quitting   bool
}

// NewSessionModel creates a session that starts at the level menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, player string) SessionModel {
	if player == "" {
		player = storage.LocalPlayer
	}
	return SessionModel{
		store:  store,
		config: cfg,
		player: player,
		menu:   NewLevelMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu quits its program
// on every choice; the session swallows that and switches views instead.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(LevelMenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() || m.menu.WantsBack() {
		m.quitting = true
		return m, tea.Quit
	}

	sel := m.menu.Selected()
	if sel == nil {
		return m, cmd
	}
	if sel.Scoreboard {
		return m.openScoreboard()
	}
	return m.openGame(sel.Level)
}

func (m SessionModel) openGame(level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(pipes.GameID)
	if err != nil {
		m.err = err
		return m.openMenu()
	}

	cfg := m.config
	cfg.Level = level
	gm, err := NewGameModel(game, m.store, cfg, m.player)
	if err != nil {
		log.Warn("could not start game", "player", m.player, "error", err)
		m.err = err
		return m.openMenu()
	}

	m.err = nil
	m.gameModel = &gm
	m.view = viewGame
	return m, m.gameModel.Init()
}

func (m SessionModel) openMenu() (tea.Model, tea.Cmd) {
	m.menu = NewLevelMenuModel(m.store, m.config)
	m.gameModel = nil
	m.view = viewMenu
	return m, m.menu.Init()
}

func (m SessionModel) openScoreboard() (tea.Model, tea.Cmd) {
	cfg := m.config
	if m.gameModel != nil {
		cfg.Level = m.gameModel.State().Level
	}
	m.scoreboard = NewScoreboardModel(m.store, cfg)
	m.view = viewScoreboard
	return m, m.scoreboard.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = &gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.openMenu()
	}
	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.openMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScoreboard:
		return m.scoreboard.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(GetTheme().StatusError.Render(m.err.Error()), m.config.ScreenW)
	}
	return view
}
