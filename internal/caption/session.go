package caption

import "strings"

// Update describes what an event changed, so views can react (scroll the
// history, print the new entry) without diffing state.
type Update struct {
	PartialChanged bool
	FinalChanged   bool
	// Appended is set when the event added a history entry.
	Appended *Entry
	// Registered lists languages discovered by the event.
	Registered []string
}

// RenderedEntry is a history entry with its currently visible translations.
type RenderedEntry struct {
	Entry
	Lines []Line
}

// Session owns all display state for one run: the partial and final
// slots, the live translation panel, visibility toggles and history.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	visibility *Visibility
	renderer   *Renderer
	history    History

	showPartial bool
	partial     string
	final       string
	current     Translations
	live        Panel
}

func NewSession(showPartial bool) *Session {
	v := NewVisibility()
	return &Session{
		visibility:  v,
		renderer:    NewRenderer(v),
		showPartial: showPartial,
	}
}

// Apply reconciles one event into the display.
func (s *Session) Apply(ev Event) Update {
	switch ev.Kind {
	case KindPartial:
		return s.applyPartial(ev)
	case KindFinal:
		return s.applyFinal(ev)
	default:
		return Update{}
	}
}

func (s *Session) applyPartial(ev Event) Update {
	if !s.showPartial {
		return Update{}
	}
	s.partial = speakerPrefix(ev.Speaker) + ev.Text
	return Update{PartialChanged: true}
}

// applyFinal always replaces the final slot, even with blank text, but only
// non-blank utterances reach the history.
func (s *Session) applyFinal(ev Event) Update {
	trimmed := strings.TrimSpace(ev.Text)
	s.final = speakerPrefix(ev.Speaker) + trimmed

	s.current = ev.Translations.Clone()
	s.live = s.renderer.Render(s.current)

	u := Update{
		PartialChanged: s.partial != "",
		FinalChanged:   true,
		Registered:     s.live.Registered,
	}
	if trimmed != "" {
		e := s.history.Append(ev.Speaker, trimmed, ev.Translations)
		u.Appended = &e
	}
	s.partial = ""
	return u
}

func speakerPrefix(speaker string) string {
	if speaker == "" {
		return ""
	}
	return "[" + speaker + "] "
}

// Partial returns the partial slot. Partials that arrive while hidden
// leave it untouched.
func (s *Session) Partial() string {
	return s.partial
}

func (s *Session) Final() string {
	return s.final
}

// LiveTranslations returns the visible translations of the current final
// utterance. The panel is hidden when this is empty.
func (s *Session) LiveTranslations() []Line {
	return s.live.Lines
}

func (s *Session) ShowPartial() bool {
	return s.showPartial
}

func (s *Session) SetShowPartial(show bool) {
	s.showPartial = show
}

// SetVisible changes a language toggle and re-renders the live panel from
// the current final translations. It reports whether anything changed.
func (s *Session) SetVisible(code string, visible bool) bool {
	if !s.visibility.SetVisible(code, visible) {
		return false
	}
	s.live = s.renderer.Render(s.current)
	return true
}

// Toggle flips a language toggle and returns its new state.
func (s *Session) Toggle(code string) bool {
	s.SetVisible(code, !s.visibility.IsVisible(code))
	return s.visibility.IsVisible(code)
}

func (s *Session) IsVisible(code string) bool {
	return s.visibility.IsVisible(code)
}

// Controls returns the per-language toggles in first-seen order.
func (s *Session) Controls() []Control {
	return s.visibility.Controls()
}

func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// Render pairs one entry with its currently visible translations.
func (s *Session) Render(e Entry) RenderedEntry {
	return RenderedEntry{Entry: e, Lines: s.renderer.Filter(e.Translations)}
}

// History renders every entry with the translations visible right now.
// Hiding a language therefore hides it in past entries too.
func (s *Session) History() []RenderedEntry {
	entries := s.history.Entries()
	out := make([]RenderedEntry, len(entries))
	for i, e := range entries {
		out[i] = s.Render(e)
	}
	return out
}
