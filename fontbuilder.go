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

import (
	"encoding/binary"
	"fmt"
	"maps"
	"math"
	"slices"
)

// FontBuilder assembles a font in the binary format read by [ParseFont].
type FontBuilder struct {
	UnitsPerEm Fixed
	Ascent     Fixed
	Descent    Fixed
	CapHeight  Fixed

	glyphs map[rune]builderGlyph
}

type builderGlyph struct {
	advance Fixed
	outline []byte
}

// AddGlyph sets the glyph for r.  The outline is a command stream, as
// produced by [CommandEncoder], in font units with y pointing up.
// Adding a glyph for a rune which already has one replaces it.
func (b *FontBuilder) AddGlyph(r rune, advance Fixed, outline []byte) error {
	if r < 0 || r >= 0xFFFF {
		return fmt.Errorf("%w: code point %U not representable", ErrFontFormat, r)
	}
	if advance < math.MinInt16 || advance > math.MaxInt16 {
		return fmt.Errorf("%w: advance of %U", ErrCoordinateRange, r)
	}
	if b.glyphs == nil {
		b.glyphs = make(map[rune]builderGlyph)
	}
	b.glyphs[r] = builderGlyph{advance: advance, outline: outline}
	return nil
}

// Len returns the number of glyphs added so far.
func (b *FontBuilder) Len() int {
	return len(b.glyphs)
}

// Bytes encodes the font.  Consecutive code points are merged into one
// glyph range.
func (b *FontBuilder) Bytes() ([]byte, error) {
	for _, v := range []Fixed{b.UnitsPerEm, b.Ascent, b.Descent, b.CapHeight} {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, fmt.Errorf("%w: font metrics", ErrCoordinateRange)
		}
	}
	if b.UnitsPerEm <= 0 {
		return nil, fmt.Errorf("%w: units per em %d", ErrFontFormat, b.UnitsPerEm)
	}

	runes := slices.Sorted(maps.Keys(b.glyphs))
	var ranges []GlyphRange
	for _, r := range runes {
		cp := uint16(r)
		if n := len(ranges); n > 0 && ranges[n-1].End == cp {
			ranges[n-1].End++
		} else {
			ranges = append(ranges, GlyphRange{Begin: cp, End: cp + 1})
		}
	}
	if len(ranges) > math.MaxUint16 || len(runes) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: too many glyphs", ErrFontFormat)
	}

	le := binary.LittleEndian
	buf := make([]byte, 0, fontHeaderSize+len(ranges)*rangeSize+len(runes)*glyphSize)
	buf = le.AppendUint16(buf, uint16(int16(b.UnitsPerEm)))
	buf = le.AppendUint16(buf, uint16(int16(b.Ascent)))
	buf = le.AppendUint16(buf, uint16(int16(b.Descent)))
	buf = le.AppendUint16(buf, uint16(int16(b.CapHeight)))
	buf = le.AppendUint16(buf, uint16(len(ranges)))
	buf = le.AppendUint16(buf, uint16(len(runes)))
	for _, r := range ranges {
		buf = le.AppendUint16(buf, r.Begin)
		buf = le.AppendUint16(buf, r.End)
	}

	var blob []byte
	for _, r := range runes {
		g := b.glyphs[r]
		if len(blob)+len(g.outline) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: outline data exceeds 64 KiB at %U", ErrFontFormat, r)
		}
		buf = le.AppendUint16(buf, uint16(len(blob)))
		buf = le.AppendUint16(buf, uint16(len(g.outline)))
		buf = le.AppendUint16(buf, uint16(int16(g.advance)))
		blob = append(blob, g.outline...)
	}
	return append(buf, blob...), nil
}
