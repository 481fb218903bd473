package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// defaultBindings lists the keys of every game action.
var defaultBindings = map[core.Action][]string{
	core.ActionUp:      {"up", "w", "k"},
	core.ActionDown:    {"down", "s", "j"},
	core.ActionLeft:    {"left", "a", "h"},
	core.ActionRight:   {"right", "d", "l"},
	core.ActionConfirm: {"enter", " "},
	core.ActionRemove:  {"x", "backspace", "delete"},
	core.ActionSwitch:  {"tab"},
	core.ActionUndo:    {"u", "ctrl+z"},
	core.ActionRedo:    {"y", "ctrl+y"},
	core.ActionRestart: {"r"},
	core.ActionNext:    {"n"},
	core.ActionPause:   {"p", "esc"},
	core.ActionBack:    {"b"},
	core.ActionQuit:    {"q", "ctrl+c"},
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{bindings: make(map[string]core.Action)}
	for action, keys := range defaultBindings {
		for _, k := range keys {
			km.bindings[k] = action
		}
	}
	return km
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame builds an input frame from a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
