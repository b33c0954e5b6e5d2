package caption

// Entry is a finalized utterance. Translations hold the full set as
// received, including empty and hidden languages.
type Entry struct {
	Seq          int
	Speaker      string
	Text         string
	Translations Translations
}

// History is the append-only log of finalized utterances.
type History struct {
	entries []Entry
}

func (h *History) Append(speaker, text string, translations Translations) Entry {
	e := Entry{
		Seq:          len(h.entries) + 1,
		Speaker:      speaker,
		Text:         text,
		Translations: translations.Clone(),
	}
	h.entries = append(h.entries, e)
	return e
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the log in arrival order. Callers get their own copies.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		e.Translations = e.Translations.Clone()
		out[i] = e
	}
	return out
}
