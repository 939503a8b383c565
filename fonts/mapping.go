package fonts

// GlyphMapping maps runes to glyph indices of an atlas.
type GlyphMapping interface {
	// Index returns the glyph index of r. Runes without a glyph of their
	// own resolve to the fallback glyph, so the result is always a valid
	// index.
	Index(r rune) int

	// Rune returns the rune drawn by glyph i, or the fallback rune if i
	// is out of range.
	Rune(i int) rune

	// Len returns the number of glyphs.
	Len() int
}

// RuneRange is an inclusive range of runes.
type RuneRange struct {
	First, Last rune
}

func (rr RuneRange) Len() int { return int(rr.Last-rr.First) + 1 }

func (rr RuneRange) Contains(r rune) bool { return rr.First <= r && r <= rr.Last }

// The ranges and mappings below are shared by the fonts and must not be
// modified.
var (
	// Printable ASCII, U+0020 to U+007E.
	ASCII = RuneRange{0x20, 0x7e}

	// Printable Latin-1 supplement without the no-break space, U+00A1 to
	// U+00FF.
	Latin1 = RuneRange{0xa1, 0xff}
)

// RangeMapping lays out its ranges one after another: glyph 0 is the first
// rune of the first range, the first rune of the second range follows the
// last rune of the first one and so on.
type RangeMapping struct {
	Ranges []RuneRange

	// Fallback is drawn for runes not covered by Ranges. It must be part
	// of one of the ranges.
	//
	// A RangeMapping must not be modified once a font uses it.
	Fallback rune
}

var (
	ASCIIMapping  GlyphMapping = &RangeMapping{[]RuneRange{ASCII}, '?'}
	Latin1Mapping GlyphMapping = &RangeMapping{[]RuneRange{ASCII, Latin1}, '?'}
)

func (m *RangeMapping) Index(r rune) int {
	if i, ok := m.Lookup(r); ok {
		return i
	}
	i, _ := m.Lookup(m.Fallback)
	return i
}

// Lookup is like Index, but reports whether r has a glyph of its own instead
// of falling back.
func (m *RangeMapping) Lookup(r rune) (i int, ok bool) {
	for _, rr := range m.Ranges {
		if rr.Contains(r) {
			return i + int(r-rr.First), true
		}
		i += rr.Len()
	}
	return 0, false
}

func (m *RangeMapping) Rune(i int) rune {
	if i < 0 {
		return m.Fallback
	}
	for _, rr := range m.Ranges {
		if i < rr.Len() {
			return rr.First + rune(i)
		}
		i -= rr.Len()
	}
	return m.Fallback
}

func (m *RangeMapping) Len() (n int) {
	for _, rr := range m.Ranges {
		n += rr.Len()
	}
	return
}
