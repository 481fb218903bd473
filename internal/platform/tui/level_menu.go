package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// LevelSelection holds the user's choice from the level menu.
type LevelSelection struct {
	Level      int  // Level ID to open
	Scoreboard bool // Open the scoreboard instead of a level
}

// levelEntry is one level line of the menu.
type levelEntry struct {
	id     int
	name   string
	solved bool
	best   int
}

// LevelMenuModel is the level picker. The first item continues with the
// first unsolved level and the last one opens the scoreboard.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	entries      []levelEntry
	loadErr      error
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel loads the levels from cfg.LevelsDir and marks the ones
// store has solves for.
func NewLevelMenuModel(store *storage.Store, cfg core.RuntimeConfig) LevelMenuModel {
	m := LevelMenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		theme:     GetTheme(),
	}

	all, err := levels.NewLoader(cfg.LevelsDir).LoadAll()
	if err != nil {
		m.loadErr = err
		return m
	}

	best := map[int]int{}
	if store != nil {
		rows, err := store.BestByLevel(pipes.GameID)
		if err != nil {
			log.Warn("could not read solves", "error", err)
		}
		for _, r := range rows {
			best[r.LevelID] = r.BestMoves
		}
	}

	for _, lvl := range all {
		moves, solved := best[lvl.ID()]
		m.entries = append(m.entries, levelEntry{
			id:     lvl.ID(),
			name:   lvl.Name(),
			solved: solved,
			best:   moves,
		})
	}
	return m
}

// itemCount counts the continue item, every level and the scoreboard.
func (m LevelMenuModel) itemCount() int {
	return len(m.entries) + 2
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionScoreboard:
		m.choosing = false
		m.selection = LevelSelection{Scoreboard: true}
		return m, tea.Quit
	case MenuActionSelect:
		if len(m.entries) == 0 && m.cursor < m.itemCount()-1 {
			return m, nil
		}
		m.choosing = false
		m.selection = m.selectionAt(m.cursor)
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// selectionAt maps a menu index to a selection.
func (m LevelMenuModel) selectionAt(i int) LevelSelection {
	switch {
	case i == 0:
		return LevelSelection{Level: m.firstUnsolved()}
	case i <= len(m.entries):
		return LevelSelection{Level: m.entries[i-1].id}
	default:
		return LevelSelection{Scoreboard: true}
	}
}

// firstUnsolved returns the lowest unsolved level, or the first level when
// every level has been solved.
func (m LevelMenuModel) firstUnsolved() int {
	for _, e := range m.entries {
		if !e.solved {
			return e.id
		}
	}
	if len(m.entries) > 0 {
		return m.entries[0].id
	}
	return 0
}

func (m LevelMenuModel) visibleLevels() int {
	return core.Max(m.height-12, 3)
}

// updateScroll keeps the cursor's level line visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleLevels()
	idx := core.Clamp(m.cursor-1, 0, core.Max(len(m.entries)-1, 0))
	if idx < m.scrollOffset {
		m.scrollOffset = idx
	} else if idx >= m.scrollOffset+visible {
		m.scrollOffset = idx - visible + 1
	}
}

func (m LevelMenuModel) item(i int, label string) string {
	cursor := "  "
	style := m.theme.MenuItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}
	return centerText(style.Render(cursor+label), m.width) + "\n"
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("P I P E S"), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(m.theme.StatusError.Render("Could not load levels: "+m.loadErr.Error()), m.width))
		b.WriteString("\n\n")
	}

	solved := 0
	for _, e := range m.entries {
		if e.solved {
			solved++
		}
	}
	subtitle := fmt.Sprintf("Select a level (%d/%d solved):", solved, len(m.entries))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.item(0, "Continue"))

	start := m.scrollOffset
	end := core.Min(start+m.visibleLevels(), len(m.entries))
	if start > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		e := m.entries[i]
		mark := "  "
		if e.solved {
			mark = m.theme.MenuItemSolved.Render("✓ ")
		}
		label := fmt.Sprintf("%2d. %s", e.id, e.name)
		if e.solved {
			label += fmt.Sprintf("  (best %d)", e.best)
		}
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i+1 == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(mark+style.Render(cursor+label), m.width))
		b.WriteString("\n")
	}
	if end < len(m.entries) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.item(m.itemCount()-1, "Scoreboard"))

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selection and returns the selection,
// or nil when the user left the menu.
func RunLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (*LevelSelection, error) {
	p := tea.NewProgram(NewLevelMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
