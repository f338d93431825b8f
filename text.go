// seehuhn.de/go/tinyvec - vector graphics for small displays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tinyvec

import "errors"

// Alignment is the horizontal position of the text origin.
type Alignment int

// These are the supported horizontal alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Anchor is the vertical position of the text origin.
type Anchor int

// These are the supported vertical anchors.
const (
	AnchorBaseline Anchor = iota
	AnchorTop
	AnchorMiddle
	AnchorBottom
)

// SetTextEmHeight sets the scale so that one em of f is height pixels
// tall, with the y axis of the font pointing up.
func (c *Context) SetTextEmHeight(f *Font, height Fixed) {
	c.scaleFrom = Point{X: f.UnitsPerEm, Y: -f.UnitsPerEm}
	c.scaleTo = Point{X: height, Y: height}
}

// MeasureString returns the total advance of text in font units.
// Characters without a glyph do not contribute.
func MeasureString(text string, f *Font) Fixed {
	var width Fixed
	var dec utf8Decoder
	for i := range len(text) {
		if dec.decode(text[i]) != 0 {
			continue
		}
		if g, ok := f.Glyph(dec.cp); ok {
			width += g.Advance
		}
	}
	return width
}

// textOrigin returns the advance, in font units, at which the first glyph
// of text is drawn.
func textOrigin(text string, f *Font, align Alignment, anchor Anchor) Point {
	var origin Point
	switch align {
	case AlignCenter:
		origin.X = -MeasureString(text, f) / 2
	case AlignRight:
		origin.X = -MeasureString(text, f)
	}
	switch anchor {
	case AnchorTop:
		origin.Y = -f.Ascent
	case AnchorMiddle:
		origin.Y = -f.Ascent / 2
	case AnchorBottom:
		origin.Y = -f.Descent
	}
	return origin
}

// DrawString adds the outlines of text to the current fill.  The text is
// positioned relative to the context offset according to align and
// anchor.  Use [Context.SetTextEmHeight] to choose the text size.
//
// Characters without a glyph and invalid UTF-8 are skipped.  Errors from
// malformed glyph outlines are collected, and the remaining glyphs are
// still drawn.
func (c *Context) DrawString(text string, f *Font, align Alignment, anchor Anchor) error {
	if !c.filling {
		return ErrNoFill
	}

	advance := textOrigin(text, f, align, anchor)
	var errs []error
	var dec utf8Decoder
	for i := range len(text) {
		if dec.decode(text[i]) != 0 {
			continue
		}
		g, ok := f.Glyph(dec.cp)
		if !ok {
			continue
		}
		if err := c.DrawCommands(advance, f.Outline(g)); err != nil {
			errs = append(errs, err)
		}
		advance.X += g.Advance
	}
	return errors.Join(errs...)
}
