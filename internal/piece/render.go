package piece

import "strings"

// Glyphs used by Render.
const (
	GlyphAttach = 'A'
	GlyphPoint  = 'P'
	GlyphEmpty  = ' '
)

// Render draws the shape as text, one line per row from y=0 to Height and
// columns from x=0 to Width: 'A' for attachment cells, 'P' for other cells,
// space otherwise. Every line ends with a newline.
// Used for debugging and as a golden-output format in tests.
func (s Shape) Render() string {
	var sb strings.Builder
	sb.Grow((s.width + 2) * (s.height + 1))
	for y := 0; y <= s.height; y++ {
		for x := 0; x <= s.width; x++ {
			sb.WriteRune(s.GlyphAt(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GlyphAt returns the Render glyph for cell (x, y).
func (s Shape) GlyphAt(x, y int) rune {
	p := P(x, y)
	switch {
	case s.IsAttach(p):
		return GlyphAttach
	case s.Contains(p):
		return GlyphPoint
	default:
		return GlyphEmpty
	}
}

// String returns the rendered shape followed by its attachment cells,
// one per line.
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteString(s.Render())
	for _, p := range s.attach {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
