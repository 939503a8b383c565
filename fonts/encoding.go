package fonts

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

type glyphCode struct {
	font *MonoFont
}

// Encoding returns the character set made of f's glyph indices. Encoding
// turns every rune of UTF-8 text into the byte-sized index of the glyph
// drawing it, with '?' standing in for runes the font can't draw and for
// invalid UTF-8. Decoding turns glyph indices back into UTF-8, bytes past
// the last glyph decode as '?'.
//
// Encoding panics if f has more than 256 glyphs.
func Encoding(f *MonoFont) encoding.Encoding {
	if f.Mapping.Len() > 256 {
		panic("fonts: too many glyphs for a single byte encoding")
	}
	return &glyphCode{f}
}

func (m *glyphCode) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{m.font}}
}

func (m *glyphCode) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{m.font}}
}

func (m *glyphCode) String() string {
	return "glyph indices of " + m.font.Name
}

type decoder struct{ font *MonoFont }

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		r := d.font.Mapping.Rune(int(c))
		if utf8.RuneLen(r) > len(dst)-nDst {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return
}

func (d *decoder) Reset() {}

type encoder struct{ font *MonoFont }

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		dst[nDst] = byte(e.font.GlyphIndex(r))
		nDst++
		nSrc += size
	}
	return
}

func (e *encoder) Reset() {}
