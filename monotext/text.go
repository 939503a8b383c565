// Package monotext draws text with the monospace bitmap fonts.
//
// Text is split into lines at '\n', a trailing '\r' is removed from every
// line. Each rune takes exactly one character cell; runes the font has no
// glyph for are drawn as '?'.
package monotext

import (
	"image"
	"image/draw"
	"strings"
	"unicode/utf8"
)

// Target is a surface text can be drawn onto. It is implemented by
// pix.Area of the embeddedgo display package and by the framebuffer
// package. Use [Image] to draw onto a draw.Image.
type Target interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op)
}

type imageTarget struct {
	draw.Image
}

// Image returns a Target drawing onto dst.
func Image(dst draw.Image) Target {
	return imageTarget{dst}
}

func (t imageTarget) Draw(r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op) {
	draw.DrawMask(t.Image, r, src, sp, mask, mp, op)
}

// Text is a string placed at a position and drawn in a style.
type Text struct {
	Text     string
	Position image.Point
	Style    Style
}

// New returns text drawn at pos.
func New(text string, pos image.Point, style Style) Text {
	return Text{text, pos, style}
}

// Translate returns t moved by d.
func (t Text) Translate(d image.Point) Text {
	t.Position = t.Position.Add(d)
	return t
}

func lines(s string) (ls []string) {
	for l := range strings.Lines(s) {
		l = strings.TrimSuffix(l, "\n")
		ls = append(ls, strings.TrimSuffix(l, "\r"))
	}
	return
}

func (t Text) top() int {
	return t.Position.Y - t.Style.Baseline.offset(t.Style.Font)
}

// Bounds returns the rectangle covered by t. Empty text has zero size and
// is located at t's position.
func (t Text) Bounds() image.Rectangle {
	ls := lines(t.Text)
	if len(ls) == 0 {
		return image.Rectangle{t.Position, t.Position}
	}

	f := t.Style.Font
	top := t.top()
	var bounds image.Rectangle
	for i, l := range ls {
		width := f.TextWidth(utf8.RuneCountInString(l))
		left := t.Style.Alignment.left(t.Position.X, width)
		line := image.Rect(left, top+i*f.CharacterSize.Y, left+width, top+(i+1)*f.CharacterSize.Y)
		if i == 0 {
			bounds = line
		} else {
			bounds = bounds.Union(line)
		}
	}
	if bounds.Empty() {
		return image.Rectangle{bounds.Min, bounds.Min}
	}
	return bounds
}

// Draw draws t onto dst and returns the position after the last glyph,
// where more text on the same line would continue.
func (t Text) Draw(dst Target) (next image.Point) {
	ls := lines(t.Text)
	next = t.Position
	if len(ls) == 0 {
		return
	}

	f := t.Style.Font
	s := &t.Style
	clip := dst.Bounds()

	var fg, bg *image.Uniform
	if s.TextColor != nil {
		fg = image.NewUniform(s.TextColor)
	}
	if s.BackgroundColor != nil {
		bg = image.NewUniform(s.BackgroundColor)
	}

	top := t.top()
	for i, l := range ls {
		n := utf8.RuneCountInString(l)
		width := f.TextWidth(n)
		left := s.Alignment.left(t.Position.X, width)
		y := top + i*f.CharacterSize.Y
		line := image.Rect(left, y, left+width, y+f.CharacterSize.Y)

		if line.Overlaps(clip) {
			if bg != nil {
				dst.Draw(line, bg, image.Point{}, nil, image.Point{}, draw.Src)
			}
			if fg != nil {
				x := left
				for _, r := range l {
					cell := image.Rect(x, y, x+f.CharacterSize.X, y+f.CharacterSize.Y)
					if cell.Overlaps(clip) {
						glyph := f.GlyphRegion(f.GlyphIndex(r))
						dst.Draw(cell, fg, image.Point{}, f.Atlas, glyph.Min, draw.Over)
					}
					x += f.Advance()
				}
			}
			t.decorate(dst, s.Strikethrough, f.Strikethrough.Rect(left, y, width))
			t.decorate(dst, s.Underline, f.Underline.Rect(left, y, width))
		}

		next = image.Pt(left+width+f.CharacterSpacing, t.Position.Y+i*f.CharacterSize.Y)
	}
	return
}

func (t Text) decorate(dst Target, d Decoration, r image.Rectangle) {
	c := d.color(t.Style.TextColor)
	if c == nil || r.Empty() {
		return
	}
	dst.Draw(r, image.NewUniform(c), image.Point{}, nil, image.Point{}, draw.Over)
}
