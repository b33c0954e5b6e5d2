// Package caption holds the caption display state: the partial and final
// slots, per-language translation visibility and the history log.
package caption

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/tidwall/gjson"
)

// ErrMalformedFrame is returned by Decode for frames that are not valid JSON.
var ErrMalformedFrame = errors.New("malformed frame")

// Kind identifies the event variant carried by a frame
type Kind int

const (
	// KindUnknown covers any frame whose type is neither partial nor final.
	// Such events are ignored.
	KindUnknown Kind = iota
	KindPartial
	KindFinal
)

func (k Kind) String() string {
	switch k {
	case KindPartial:
		return "partial"
	case KindFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Translation is one translated line of a final utterance.
type Translation struct {
	Lang string
	Text string
}

// Translations keeps translated lines in the order the backend sent them.
type Translations []Translation

// Clone returns a copy that shares no backing array with t.
func (t Translations) Clone() Translations {
	if t == nil {
		return nil
	}
	out := make(Translations, len(t))
	copy(out, t)
	return out
}

// Event is a decoded stream frame.
type Event struct {
	Kind         Kind
	Speaker      string
	Text         string
	Translations Translations // final events only
}

// Decode parses one inbound text frame. Invalid JSON yields ErrMalformedFrame;
// valid JSON with an unexpected shape or type yields a KindUnknown event.
// All strings come back free of terminal escapes and control characters.
func Decode(frame []byte) (Event, error) {
	if !gjson.ValidBytes(frame) {
		return Event{}, fmt.Errorf("%w: invalid json", ErrMalformedFrame)
	}

	msg := gjson.ParseBytes(frame)
	if !msg.IsObject() {
		return Event{}, nil
	}

	var ev Event
	switch msg.Get("type").String() {
	case "partial":
		ev.Kind = KindPartial
	case "final":
		ev.Kind = KindFinal
		ev.Translations = decodeTranslations(msg.Get("translations"))
	default:
		return Event{}, nil
	}
	ev.Speaker = scalar(msg.Get("speaker"))
	ev.Text = scalar(msg.Get("text"))
	return ev, nil
}

// decodeTranslations walks the object in document order. A repeated key
// keeps its first position and takes the last value.
func decodeTranslations(obj gjson.Result) Translations {
	if !obj.IsObject() {
		return nil
	}

	var out Translations
	index := make(map[string]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		code := clean(key.String())
		text := scalar(value)
		if i, ok := index[code]; ok {
			out[i].Text = text
			return true
		}
		index[code] = len(out)
		out = append(out, Translation{Lang: code, Text: text})
		return true
	})
	return out
}

// scalar renders strings and numbers as text; null, booleans and
// containers read as empty.
func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return clean(r.Str)
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

// clean removes escape sequences and control characters so backend text
// cannot drive the terminal. Newlines and tabs are kept.
func clean(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
