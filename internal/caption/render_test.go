package caption

import (
	"reflect"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	v := NewVisibility()
	r := NewRenderer(v)

	panel := r.Render(Translations{
		{Lang: "de", Text: "hallo"},
		{Lang: "en", Text: "  "},
		{Lang: "ja", Text: "こんにちは"},
	})

	want := []Line{
		{Code: "de", Label: "German", Text: "hallo"},
		{Code: "ja", Label: "Japanese", Text: "こんにちは"},
	}
	if !reflect.DeepEqual(panel.Lines, want) {
		t.Errorf("Lines = %+v, want %+v", panel.Lines, want)
	}
	if !reflect.DeepEqual(panel.Registered, []string{"de", "ja"}) {
		t.Errorf("Registered = %v, want [de ja]", panel.Registered)
	}
	if v.registered("en") {
		t.Error("blank translations should not register a language")
	}
	if !panel.Visible() {
		t.Error("panel with lines should be visible")
	}
}

func TestRenderer_RenderIsIdempotent(t *testing.T) {
	v := NewVisibility()
	r := NewRenderer(v)
	in := Translations{{Lang: "ja", Text: "a"}, {Lang: "fr", Text: "b"}}
	v.EnsureRegistered("fr")
	v.SetVisible("fr", false)

	first := r.Render(in)
	second := r.Render(in)

	if !reflect.DeepEqual(first.Lines, second.Lines) {
		t.Errorf("renders differ: %+v vs %+v", first.Lines, second.Lines)
	}
	if len(second.Registered) != 0 {
		t.Errorf("second render registered %v, want none", second.Registered)
	}
	if len(v.Controls()) != 2 {
		t.Errorf("len(Controls()) = %d, want 2", len(v.Controls()))
	}
}

func TestRenderer_HiddenPanel(t *testing.T) {
	v := NewVisibility()
	r := NewRenderer(v)

	if r.Render(nil).Visible() {
		t.Error("empty translations should hide the panel")
	}

	v.EnsureRegistered("ja")
	v.SetVisible("ja", false)
	if r.Render(Translations{{Lang: "ja", Text: "a"}}).Visible() {
		t.Error("all-hidden translations should hide the panel")
	}
}

func TestRenderer_FilterDoesNotRegister(t *testing.T) {
	v := NewVisibility()
	r := NewRenderer(v)

	lines := r.Filter(Translations{{Lang: "ko", Text: "x"}, {Lang: "en", Text: ""}})
	if len(lines) != 1 || lines[0].Code != "ko" {
		t.Errorf("Filter() = %+v, want the ko line", lines)
	}
	if v.registered("ko") {
		t.Error("Filter should not register languages")
	}
}
