package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leonardotrapani/hyprcaption/internal/caption"
	"github.com/leonardotrapani/hyprcaption/internal/config"
)

// EventMsg carries a stream event into the program.
type EventMsg struct {
	Event caption.Event
}

// DisplayMsg carries reloaded display settings into the program.
type DisplayMsg struct {
	Display config.DisplayConfig
}

const fontStep = 4

// Viewer is the full-screen caption view. All session mutations happen in
// Update, so events, key presses and reloads are applied one at a time.
type Viewer struct {
	session  *caption.Session
	source   string
	fontSize int
	styles   Styles

	history viewport.Model
	width   int
	height  int
}

func NewViewer(session *caption.Session, source string, display config.DisplayConfig) Viewer {
	v := Viewer{
		session:  session,
		source:   source,
		fontSize: caption.ClampFontSize(display.FontSize),
		styles:   NewStyles(ResolveDark(display.Theme)),
		history:  viewport.New(0, 0),
	}
	session.SetShowPartial(display.ShowPartial)
	return v
}

func (v Viewer) Init() tea.Cmd {
	return nil
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.refresh()
		return v, nil

	case EventMsg:
		u := v.session.Apply(msg.Event)
		v.refresh()
		if u.Appended != nil {
			v.history.GotoBottom()
		}
		return v, nil

	case DisplayMsg:
		v.session.SetShowPartial(msg.Display.ShowPartial)
		v.fontSize = caption.ClampFontSize(msg.Display.FontSize)
		v.styles = NewStyles(ResolveDark(msg.Display.Theme))
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return v, tea.Quit
		case "p":
			v.session.SetShowPartial(!v.session.ShowPartial())
			v.refresh()
			return v, nil
		case "t":
			v.styles = NewStyles(!v.styles.Dark)
			v.refresh()
			return v, nil
		case "+", "=":
			v.fontSize = caption.ClampFontSize(v.fontSize + fontStep)
			v.refresh()
			return v, nil
		case "-":
			v.fontSize = caption.ClampFontSize(v.fontSize - fontStep)
			v.refresh()
			return v, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			v.toggle(int(key[0] - '1'))
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.history, cmd = v.history.Update(msg)
	return v, cmd
}

// toggle flips the n-th language control, if there is one.
func (v *Viewer) toggle(n int) {
	controls := v.session.Controls()
	if n < 0 || n >= len(controls) {
		return
	}
	v.session.Toggle(controls[n].Code)
	v.refresh()
}

// refresh resizes the history pane around the live block and re-renders
// its content with the current visibility and styles.
func (v *Viewer) refresh() {
	if v.width <= 0 || v.height <= 0 {
		return
	}

	used := lipgloss.Height(v.header()) + lipgloss.Height(v.live()) +
		lipgloss.Height(v.toggles()) + lipgloss.Height(v.help())
	frame := v.styles.History.GetVerticalFrameSize()
	v.history.Width = max(1, v.width-v.styles.History.GetHorizontalFrameSize())
	v.history.Height = max(1, v.height-used-frame)

	atBottom := v.history.AtBottom()
	v.history.SetContent(renderHistory(v.session.History(), v.styles, v.history.Width))
	if atBottom {
		v.history.GotoBottom()
	}
}

func (v Viewer) View() string {
	if v.width <= 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.header(),
		v.live(),
		v.styles.History.Render(v.history.View()),
		v.toggles(),
		v.help(),
	)
}

func (v Viewer) header() string {
	return v.styles.Header.Render("hyprcaption") +
		v.styles.Help.Render(fmt.Sprintf(" · %s · history %d", v.source, v.session.HistoryLen()))
}

// live renders the final line, the partial line and the translation panel.
// Terminal cells have a fixed size, so the font size controls the space
// above the final line.
func (v Viewer) live() string {
	sizes := caption.SizesFor(v.fontSize)
	wrap := lipgloss.NewStyle().Width(max(1, v.width))

	final := v.styles.Final.PaddingTop(padFor(sizes.Final, v.height)).Render(wrap.Render(v.session.Final()))
	parts := []string{final}

	if v.session.ShowPartial() {
		parts = append(parts, v.styles.Partial.Render(wrap.Render(v.session.Partial())))
	}

	if lines := v.session.LiveTranslations(); len(lines) > 0 {
		parts = append(parts, v.styles.Panel.Render(renderLines(lines, v.styles, v.width-2)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func padFor(size, height int) int {
	if height < 20 {
		return 0
	}
	return (size - caption.MinFontSize) / 24
}

func (v Viewer) toggles() string {
	controls := v.session.Controls()
	if len(controls) == 0 {
		return v.styles.Help.Render("no translations yet")
	}

	items := make([]string, len(controls))
	for i, c := range controls {
		key := " "
		if i < 9 {
			key = fmt.Sprint(i + 1)
		}
		if c.Visible {
			items[i] = v.styles.ToggleOn.Render(fmt.Sprintf("[%s] ✓ %s", key, c.Label))
		} else {
			items[i] = v.styles.ToggleOff.Render(fmt.Sprintf("[%s] ✗ %s", key, c.Label))
		}
	}
	return lipgloss.NewStyle().Width(max(1, v.width)).Render(strings.Join(items, "  "))
}

func (v Viewer) help() string {
	sizes := caption.SizesFor(v.fontSize)
	partial := "on"
	if !v.session.ShowPartial() {
		partial = "off"
	}
	theme := "dark"
	if !v.styles.Dark {
		theme = "light"
	}
	return v.styles.Help.Render(fmt.Sprintf(
		"p partial (%s) · t theme (%s) · +/- size %d/%d/%d · 1-9 languages · ↑/↓ history · q quit",
		partial, theme, sizes.Final, sizes.Partial, sizes.Translations))
}

// renderHistory lays out every entry followed by its visible translations.
func renderHistory(entries []caption.RenderedEntry, s Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(max(1, width))
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		text := e.Text
		if e.Speaker != "" {
			text = s.Speaker.Render("["+e.Speaker+"]") + " " + text
		}
		block := wrap.Render(text)
		if len(e.Lines) > 0 {
			block += "\n" + renderLines(e.Lines, s, width-2)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func renderLines(lines []caption.Line, s Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(max(1, width))
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = wrap.Render(s.Label.Render(l.Label+":") + " " + s.Translation.Render(l.Text))
	}
	return strings.Join(out, "\n")
}
