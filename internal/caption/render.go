package caption

import "strings"

// Line is a labeled translation ready for display.
type Line struct {
	Code  string
	Label string
	Text  string
}

// Panel is the rendered translation set of an utterance.
type Panel struct {
	Lines []Line
	// Registered lists codes seen for the first time during this render.
	Registered []string
}

// Visible reports whether the panel has anything to show. An empty panel
// is hidden entirely.
func (p Panel) Visible() bool {
	return len(p.Lines) > 0
}

// Renderer turns translation sets into visible lines.
type Renderer struct {
	visibility *Visibility
}

func NewRenderer(v *Visibility) *Renderer {
	return &Renderer{visibility: v}
}

// Render drops empty translations, registers every remaining language and
// keeps the visible ones in input order.
func (r *Renderer) Render(translations Translations) Panel {
	var panel Panel
	for _, tr := range translations {
		if strings.TrimSpace(tr.Text) == "" {
			continue
		}
		if r.visibility.EnsureRegistered(tr.Lang) {
			panel.Registered = append(panel.Registered, tr.Lang)
		}
		if r.visibility.IsVisible(tr.Lang) {
			panel.Lines = append(panel.Lines, r.line(tr))
		}
	}
	return panel
}

// Filter is Render without registration, used for history entries whose
// languages were registered when they were live.
func (r *Renderer) Filter(translations Translations) []Line {
	var lines []Line
	for _, tr := range translations {
		if strings.TrimSpace(tr.Text) == "" || !r.visibility.IsVisible(tr.Lang) {
			continue
		}
		lines = append(lines, r.line(tr))
	}
	return lines
}

func (r *Renderer) line(tr Translation) Line {
	return Line{Code: tr.Lang, Label: r.visibility.label(tr.Lang), Text: tr.Text}
}
