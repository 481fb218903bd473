package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/registry"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// GameModel runs a single game inside Bubble Tea. Keys step the game
// immediately; ticks only advance the level timer.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	gameState core.GameState
	player    string

	// Level timer
	elapsed  time.Duration
	lastTick time.Time

	savedSolve string // level/moves of the last stored solve
	quitting   bool
	backToMenu bool
}

// NewGameModel resets the game with cfg and wraps it in a model.
// Solves are stored under player when store is not nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (GameModel, error) {
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}
	if player == "" {
		player = storage.LocalPlayer
	}
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		gameState: game.State(),
		player:    player,
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if _, err := m.saveScreenshot(); err != nil {
			log.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered when nothing is in progress.
	if frame.Has(core.ActionBack) {
		if m.gameState.Paused || m.gameState.Solved || m.gameState.Finished {
			m.backToMenu = true
		}
		return m, nil
	}
	if frame.Empty() {
		return m, nil
	}

	prevLevel := m.gameState.Level
	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.Level != prevLevel {
		m.elapsed = 0
	}
	if result.JustSolved {
		m.saveSolve()
	}
	return m, nil
}

// handleTick advances the level timer while the level is being played.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	playing := !m.gameState.Paused && !m.gameState.Solved && !m.gameState.Finished
	if playing && !m.lastTick.IsZero() {
		m.elapsed += now.Sub(m.lastTick)
	}
	m.lastTick = now
	return m, tickCmd(m.config.TickRate)
}

// saveSolve records the current solve once per level and move count.
func (m *GameModel) saveSolve() {
	if m.store == nil {
		return
	}
	key := fmt.Sprintf("%d/%d", m.gameState.Level, m.gameState.Moves)
	if key == m.savedSolve {
		return
	}
	if _, err := m.store.SaveSolve(m.game.ID(), m.gameState.Level, m.gameState.Moves, m.player); err != nil {
		log.Warn("could not save solve", "level", m.gameState.Level, "error", err)
		return
	}
	m.savedSolve = key
}

// saveScreenshot writes the current screen to ~/.tui-pipes/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".tui-pipes", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_level%d_%s.txt", m.game.ID(), m.gameState.Level, timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// View renders the game with the level timer in the top-right corner.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	timer := " " + formatElapsed(m.elapsed) + " "
	m.screen.DrawTextWithColor(m.screen.Width()-len(timer), 0, timer, core.ColorWhite)
	return RenderScreen(m.screen, GetTheme())
}

// State returns the game state after the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Elapsed returns the time spent on the current level.
func (m GameModel) Elapsed() time.Duration {
	return m.elapsed
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the player quits or
// leaves for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(game, store, cfg, storage.LocalPlayer)
	if err != nil {
		return err
	}

	p := tea.NewProgram(&runModel{model}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runModel turns a request for the menu into a quit when a game runs on
// its own.
type runModel struct {
	GameModel
}

func (r *runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		r.GameModel = gm
	}
	if r.BackToMenu() {
		return r, tea.Quit
	}
	return r, cmd
}
