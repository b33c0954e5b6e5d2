package caption

import "math"

// Font size bounds for the final line.
const (
	MinFontSize     = 24
	MaxFontSize     = 160
	DefaultFontSize = 48
)

// FontSizes are the display sizes derived from the final line size.
type FontSizes struct {
	Final        int
	Partial      int
	Translations int
}

// SizesFor derives the partial and translation sizes from the final size.
func SizesFor(final int) FontSizes {
	return FontSizes{
		Final:        final,
		Partial:      max(MinFontSize, int(math.Floor(float64(final)*0.75))),
		Translations: max(MinFontSize, int(math.Floor(float64(final)*0.6))),
	}
}

// ClampFontSize keeps a requested final size inside the supported range.
func ClampFontSize(size int) int {
	return min(MaxFontSize, max(MinFontSize, size))
}
