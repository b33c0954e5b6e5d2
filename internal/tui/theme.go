package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/hyprcaption/internal/config"
)

// Palette is one of the two caption color schemes
type Palette struct {
	Primary   lipgloss.Color // accent for headers and enabled toggles
	Secondary lipgloss.Color // translations
	Text      lipgloss.Color // final line and history
	Muted     lipgloss.Color // partial line
	Subtle    lipgloss.Color // hints, disabled toggles, borders
	Bg        lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Text:      lipgloss.Color("#F8FAFC"), // Bright white
		Muted:     lipgloss.Color("#94A3B8"), // Slate gray
		Subtle:    lipgloss.Color("#64748B"), // Darker gray
		Bg:        lipgloss.Color("#0F172A"), // Dark slate
	}

	LightPalette = Palette{
		Primary:   lipgloss.Color("#6D28D9"),
		Secondary: lipgloss.Color("#0E7490"),
		Text:      lipgloss.Color("#0F172A"),
		Muted:     lipgloss.Color("#475569"),
		Subtle:    lipgloss.Color("#94A3B8"),
		Bg:        lipgloss.Color("#F8FAFC"),
	}
)

// ResolveDark maps display.theme to the dark or light scheme. "auto" asks
// the terminal for its background color.
func ResolveDark(theme string) bool {
	switch theme {
	case config.ThemeLight:
		return false
	case config.ThemeAuto:
		return termenv.HasDarkBackground()
	default:
		return true
	}
}
