package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// Theme contains the configurable visual styles.
type Theme struct {
	Name string

	// Palette maps screen colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemSolved  lipgloss.Style
	MenuDescription lipgloss.Style
	HUDControls     lipgloss.Style
	StatusError     lipgloss.Style
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:     lipgloss.NewStyle(),
			core.ColorRed:         fg("196"),
			core.ColorGreen:       fg("46"),
			core.ColorBlue:        fg("33"),
			core.ColorYellow:      fg("226"),
			core.ColorGray:        fg("250"),
			core.ColorDarkGray:    fg("240"),
			core.ColorCyan:        fg("51"),
			core.ColorMagenta:     fg("201"),
			core.ColorWhite:       fg("252"),
			core.ColorBrightWhite: fg("255").Bold(true),
		},

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuItemSolved:  fg("46"),
		MenuDescription: fg("245"),
		HUDControls:     fg("245"),
		StatusError:     fg("196"),
	}
}

// with returns a copy of t with the given palette entries replaced.
func (t Theme) with(name string, colors map[core.Color]string) Theme {
	palette := make(map[core.Color]lipgloss.Style, len(t.Palette))
	for k, v := range t.Palette {
		palette[k] = v
	}
	for k, code := range colors {
		palette[k] = fg(code)
	}
	t.Name = name
	t.Palette = palette
	return t
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	return DefaultTheme().with("neon", map[core.Color]string{
		core.ColorRed:    "199",
		core.ColorGreen:  "118",
		core.ColorBlue:   "87",
		core.ColorYellow: "227",
	})
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	return DefaultTheme().with("pastel", map[core.Color]string{
		core.ColorRed:    "217",
		core.ColorGreen:  "157",
		core.ColorBlue:   "153",
		core.ColorYellow: "229",
	})
}

// MonochromeTheme returns a grayscale theme. Network colors differ only
// in brightness.
func MonochromeTheme() Theme {
	t := DefaultTheme().with("monochrome", map[core.Color]string{
		core.ColorRed:    "255",
		core.ColorGreen:  "250",
		core.ColorBlue:   "246",
		core.ColorYellow: "242",
		core.ColorCyan:   "252",
	})
	t.MenuTitle = fg("255").Bold(true)
	t.MenuItemActive = fg("255").Bold(true)
	t.MenuItemSolved = fg("250")
	return t
}

var themes = map[string]func() Theme{
	"default":    DefaultTheme,
	"neon":       NeonTheme,
	"pastel":     PastelTheme,
	"monochrome": MonochromeTheme,
}

// ThemeByName returns the named preset.
func ThemeByName(name string) (Theme, bool) {
	f, ok := themes[name]
	if !ok {
		return DefaultTheme(), false
	}
	return f(), true
}

// ThemeNames lists the presets in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
