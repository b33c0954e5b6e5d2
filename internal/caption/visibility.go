package caption

import "github.com/leonardotrapani/hyprcaption/internal/language"

// Control is the toggle shown for one discovered language.
type Control struct {
	Code    string
	Label   string
	Visible bool
}

// Visibility records which translation languages are shown. Entries are
// created on first sighting, default to shown and are never removed.
type Visibility struct {
	order []string
	shown map[string]bool
	label func(string) string
}

func NewVisibility() *Visibility {
	return &Visibility{
		shown: make(map[string]bool),
		label: language.Label,
	}
}

// EnsureRegistered adds code as visible if it has not been seen before and
// reports whether it was added.
func (v *Visibility) EnsureRegistered(code string) bool {
	if v.registered(code) {
		return false
	}
	v.shown[code] = true
	v.order = append(v.order, code)
	return true
}

func (v *Visibility) registered(code string) bool {
	_, ok := v.shown[code]
	return ok
}

// IsVisible reports the toggle state of code. Codes never seen report true.
func (v *Visibility) IsVisible(code string) bool {
	shown, ok := v.shown[code]
	return !ok || shown
}

// SetVisible changes the state of a registered code. It reports whether
// the state changed; unregistered codes are left alone.
func (v *Visibility) SetVisible(code string, visible bool) bool {
	shown, ok := v.shown[code]
	if !ok || shown == visible {
		return false
	}
	v.shown[code] = visible
	return true
}

// Controls returns one control per registered code in first-seen order.
func (v *Visibility) Controls() []Control {
	controls := make([]Control, len(v.order))
	for i, code := range v.order {
		controls[i] = Control{Code: code, Label: v.label(code), Visible: v.shown[code]}
	}
	return controls
}
