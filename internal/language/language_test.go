package language

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"ja", "Japanese"},
		{"es", "Spanish"},
		{"pt-BR", "Portuguese (BR)"},
		{"en_US", "English (US)"},
		{"xx", "XX"},
		{"jpn", "JPN"},
		{"eng", "ENG"},
		{"iw", "IW"},
		{"iw-IL", "IW-IL"},
		{"zh-Hant", "Chinese (Hant)"},
		{"not a code", "NOT A CODE"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Label(tt.code); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLabelIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Label("qq"); got != "QQ" {
			t.Fatalf("Label(%q) = %q on call %d, want %q", "qq", got, i, "QQ")
		}
	}
}

func TestLookup(t *testing.T) {
	lang, ok := Lookup("ja")
	if !ok {
		t.Fatal("Lookup(ja) not found")
	}
	if lang.NativeName != "日本語" {
		t.Errorf("Lookup(ja).NativeName = %q, want %q", lang.NativeName, "日本語")
	}

	if _, ok := Lookup("JA"); ok {
		t.Error("Lookup should match codes exactly")
	}
}

func TestList(t *testing.T) {
	list := List()
	if len(list) != 57 {
		t.Errorf("List() returned %d languages, want 57", len(list))
	}

	list[0].Name = "changed"
	if List()[0].Name == "changed" {
		t.Error("List() should return a copy")
	}

	seen := make(map[string]bool)
	for _, lang := range list {
		if seen[lang.Code] {
			t.Errorf("duplicate code %q", lang.Code)
		}
		seen[lang.Code] = true
	}
}
