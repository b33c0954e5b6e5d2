package caption

import (
	"reflect"
	"testing"
)

func mustDecode(t *testing.T, frame string) Event {
	t.Helper()
	ev, err := Decode([]byte(frame))
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", frame, err)
	}
	return ev
}

func TestSession_PartialOverwrites(t *testing.T) {
	s := NewSession(true)

	frames := []struct {
		frame string
		want  string
	}{
		{`{"type":"partial","text":"hel"}`, "hel"},
		{`{"type":"partial","speaker":"Amy","text":"hello wo"}`, "[Amy] hello wo"},
		{`{"type":"partial","text":""}`, ""},
		{`{"type":"partial","speaker":"","text":"x"}`, "x"},
	}
	for _, f := range frames {
		u := s.Apply(mustDecode(t, f.frame))
		if !u.PartialChanged {
			t.Errorf("%s: PartialChanged = false", f.frame)
		}
		if s.Partial() != f.want {
			t.Errorf("%s: Partial() = %q, want %q", f.frame, s.Partial(), f.want)
		}
		if s.Final() != "" || s.HistoryLen() != 0 {
			t.Errorf("%s: partial touched final state", f.frame)
		}
	}
}

func TestSession_PartialHidden(t *testing.T) {
	s := NewSession(true)
	s.Apply(mustDecode(t, `{"type":"partial","text":"one"}`))

	s.SetShowPartial(false)
	u := s.Apply(mustDecode(t, `{"type":"partial","text":"two"}`))
	if u.PartialChanged {
		t.Error("hidden partials should not change the slot")
	}
	if s.Partial() != "one" {
		t.Errorf("Partial() = %q, want %q", s.Partial(), "one")
	}

	s.SetShowPartial(true)
	s.Apply(mustDecode(t, `{"type":"partial","text":"three"}`))
	if s.Partial() != "three" {
		t.Errorf("Partial() = %q, want %q", s.Partial(), "three")
	}
}

// Scenario A followed by the toggle of Scenario B.
func TestSession_FinalWithTranslations(t *testing.T) {
	s := NewSession(true)
	s.Apply(mustDecode(t, `{"type":"partial","text":"hel"}`))
	if s.Partial() != "hel" {
		t.Fatalf("Partial() = %q, want %q", s.Partial(), "hel")
	}

	u := s.Apply(mustDecode(t, `{"type":"final","speaker":"Amy","text":"hello","translations":{"ja":"こんにちは","en":""}}`))

	if s.Final() != "[Amy] hello" {
		t.Errorf("Final() = %q, want %q", s.Final(), "[Amy] hello")
	}
	wantLive := []Line{{Code: "ja", Label: "Japanese", Text: "こんにちは"}}
	if !reflect.DeepEqual(s.LiveTranslations(), wantLive) {
		t.Errorf("LiveTranslations() = %+v, want %+v", s.LiveTranslations(), wantLive)
	}
	if s.Partial() != "" {
		t.Errorf("Partial() = %q, want empty", s.Partial())
	}
	if !u.PartialChanged || !u.FinalChanged {
		t.Errorf("Update = %+v, want partial and final changed", u)
	}
	if !reflect.DeepEqual(u.Registered, []string{"ja"}) {
		t.Errorf("Registered = %v, want [ja]", u.Registered)
	}

	if u.Appended == nil {
		t.Fatal("final with text should append a history entry")
	}
	hist := s.History()
	if len(hist) != 1 {
		t.Fatalf("History() len = %d, want 1", len(hist))
	}
	wantStored := Translations{{Lang: "ja", Text: "こんにちは"}, {Lang: "en", Text: ""}}
	if hist[0].Text != "hello" || hist[0].Speaker != "Amy" {
		t.Errorf("entry = %+v", hist[0].Entry)
	}
	if !reflect.DeepEqual(hist[0].Translations, wantStored) {
		t.Errorf("stored translations = %+v, want %+v", hist[0].Translations, wantStored)
	}
	if !reflect.DeepEqual(hist[0].Lines, wantLive) {
		t.Errorf("history lines = %+v, want %+v", hist[0].Lines, wantLive)
	}

	// Hiding a language re-renders the live panel and past entries alike.
	if s.Toggle("ja") {
		t.Error("Toggle(ja) should hide ja")
	}
	if len(s.LiveTranslations()) != 0 {
		t.Errorf("LiveTranslations() = %+v, want none", s.LiveTranslations())
	}
	hist = s.History()
	if len(hist[0].Lines) != 0 {
		t.Errorf("history lines = %+v, want none after hiding ja", hist[0].Lines)
	}
	if !reflect.DeepEqual(hist[0].Translations, wantStored) {
		t.Error("hiding a language must not alter stored translations")
	}

	if !s.Toggle("ja") {
		t.Error("Toggle(ja) should show ja again")
	}
	if !reflect.DeepEqual(s.History()[0].Lines, wantLive) {
		t.Error("showing ja should restore it in history")
	}
}

func TestSession_BlankFinal(t *testing.T) {
	s := NewSession(true)
	s.Apply(mustDecode(t, `{"type":"final","text":"first"}`))
	s.Apply(mustDecode(t, `{"type":"partial","text":"typing"}`))

	u := s.Apply(mustDecode(t, `{"type":"final","speaker":"Amy","text":"   ","translations":{"fr":"bonjour"}}`))

	if u.Appended != nil {
		t.Error("blank final should not append history")
	}
	if s.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", s.HistoryLen())
	}
	if s.Final() != "[Amy] " {
		t.Errorf("Final() = %q, want %q", s.Final(), "[Amy] ")
	}
	if s.Partial() != "" {
		t.Errorf("Partial() = %q, want empty", s.Partial())
	}
	if len(s.LiveTranslations()) != 1 {
		t.Errorf("blank final should still render its translations, got %+v", s.LiveTranslations())
	}
	if len(s.Controls()) != 1 {
		t.Errorf("blank final should still register languages, got %+v", s.Controls())
	}
}

func TestSession_FinalTrimsText(t *testing.T) {
	s := NewSession(true)
	s.Apply(mustDecode(t, `{"type":"final","text":"  hi there \n"}`))

	if s.Final() != "hi there" {
		t.Errorf("Final() = %q, want %q", s.Final(), "hi there")
	}
	if got := s.History()[0].Text; got != "hi there" {
		t.Errorf("history text = %q, want %q", got, "hi there")
	}
}

func TestSession_ControlsPersist(t *testing.T) {
	s := NewSession(true)
	s.Apply(mustDecode(t, `{"type":"final","text":"a","translations":{"ja":"あ"}}`))
	s.Apply(mustDecode(t, `{"type":"final","text":"b","translations":{"fr":"b"}}`))
	s.Apply(mustDecode(t, `{"type":"final","text":"c"}`))

	controls := s.Controls()
	if len(controls) != 2 || controls[0].Code != "ja" || controls[1].Code != "fr" {
		t.Fatalf("Controls() = %+v, want ja then fr", controls)
	}
	if len(s.LiveTranslations()) != 0 {
		t.Errorf("LiveTranslations() = %+v, want none", s.LiveTranslations())
	}
	if len(s.current) != 0 {
		t.Errorf("current translations = %+v, want none", s.current)
	}
}

func TestSession_HistoryOrder(t *testing.T) {
	s := NewSession(false)
	for _, text := range []string{"one", "two", "three"} {
		s.Apply(Event{Kind: KindFinal, Text: text})
	}

	hist := s.History()
	for i, want := range []string{"one", "two", "three"} {
		if hist[i].Text != want || hist[i].Seq != i+1 {
			t.Errorf("entry %d = %+v, want %q seq %d", i, hist[i].Entry, want, i+1)
		}
	}

	hist[0].Translations = append(hist[0].Translations, Translation{Lang: "x", Text: "y"})
	if len(s.History()[0].Translations) != 0 {
		t.Error("History() should not expose internal entries")
	}
}

func TestSession_UnknownEventIsNoop(t *testing.T) {
	s := NewSession(true)
	s.Apply(mustDecode(t, `{"type":"partial","text":"keep"}`))

	u := s.Apply(mustDecode(t, `{"type":"status","text":"x"}`))
	if !reflect.DeepEqual(u, Update{}) {
		t.Errorf("Update = %+v, want zero", u)
	}
	if s.Partial() != "keep" || s.Final() != "" {
		t.Error("unknown event changed the slots")
	}
}

func TestSession_ToggleUnknownLanguage(t *testing.T) {
	s := NewSession(true)
	if !s.Toggle("ja") {
		t.Error("toggling an unseen language should leave it visible")
	}
	if len(s.Controls()) != 0 {
		t.Error("toggling should not create controls")
	}
}

func TestSession_RenderUsesCurrentVisibility(t *testing.T) {
	s := NewSession(true)
	u := s.Apply(mustDecode(t, `{"type":"final","text":"hi","translations":{"ja":"やあ","de":"hallo"}}`))
	s.SetVisible("de", false)

	r := s.Render(*u.Appended)
	if len(r.Lines) != 1 || r.Lines[0].Code != "ja" {
		t.Errorf("Render() lines = %+v, want only ja", r.Lines)
	}
	if len(r.Translations) != 2 {
		t.Error("Render() should keep the stored translations")
	}
}
