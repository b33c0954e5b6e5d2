package tui

import "github.com/charmbracelet/lipgloss"

// StyleHeader is used outside the viewer, where no palette is chosen
var StyleHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(DarkPalette.Primary).
	MarginBottom(1)

// Styles is the rendered look of the caption view for one palette.
type Styles struct {
	Dark bool

	Header      lipgloss.Style
	Final       lipgloss.Style
	Partial     lipgloss.Style
	Translation lipgloss.Style
	Label       lipgloss.Style
	Panel       lipgloss.Style
	History     lipgloss.Style
	Speaker     lipgloss.Style
	ToggleOn    lipgloss.Style
	ToggleOff   lipgloss.Style
	Help        lipgloss.Style
}

func NewStyles(dark bool) Styles {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	return Styles{
		Dark: dark,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Final: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		Partial: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Translation: lipgloss.NewStyle().
			Foreground(p.Secondary),

		Label: lipgloss.NewStyle().
			Foreground(p.Subtle),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(p.Secondary).
			PaddingLeft(1),

		History: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Subtle).
			Padding(0, 1),

		Speaker: lipgloss.NewStyle().
			Foreground(p.Primary),

		ToggleOn: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		ToggleOff: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Strikethrough(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Italic(true),
	}
}
