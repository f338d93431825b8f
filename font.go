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
	"errors"
	"fmt"
	"sort"
)

// ErrFontFormat is wrapped by all errors returned from [ParseFont].
var ErrFontFormat = errors.New("tinyvec: malformed font")

// Sizes of the records in the binary font format.
const (
	fontHeaderSize = 12
	rangeSize      = 4
	glyphSize      = 6
)

// GlyphRange maps the code points Begin, ..., End-1 to consecutive glyphs.
type GlyphRange struct {
	Begin, End uint16
	base       int // index of the glyph for Begin
}

// Glyph describes one glyph of a [Font].
type Glyph struct {
	offset, length uint16
	Advance        Fixed // horizontal advance, in font units
}

// Font is an outline font in the compact binary format.
//
// The binary format is little-endian without padding: a header of four
// fixed-point values (units per em, ascent, descent, cap height) and two
// uint16 counts (ranges, glyphs), then the range records {begin, end},
// then the glyph records {offset, length, advance}, then the outline data.
// Each outline is a command stream for [Context.DrawCommands], with y
// pointing up.
//
// A Font is read-only after parsing and may be shared between contexts.
type Font struct {
	UnitsPerEm Fixed
	Ascent     Fixed
	Descent    Fixed // negative below the baseline
	CapHeight  Fixed

	ranges   []GlyphRange
	glyphs   []Glyph
	outlines []byte
}

// ParseFont decodes a font from its binary representation.  The font
// keeps a reference to data, which must not be modified afterwards.
func ParseFont(data []byte) (*Font, error) {
	if len(data) < fontHeaderSize {
		return nil, fmt.Errorf("%w: header truncated", ErrFontFormat)
	}
	le := binary.LittleEndian
	f := &Font{
		UnitsPerEm: Fixed(int16(le.Uint16(data[0:]))),
		Ascent:     Fixed(int16(le.Uint16(data[2:]))),
		Descent:    Fixed(int16(le.Uint16(data[4:]))),
		CapHeight:  Fixed(int16(le.Uint16(data[6:]))),
	}
	numRanges := int(le.Uint16(data[8:]))
	numGlyphs := int(le.Uint16(data[10:]))
	if f.UnitsPerEm <= 0 {
		return nil, fmt.Errorf("%w: units per em %d", ErrFontFormat, f.UnitsPerEm)
	}

	pos := fontHeaderSize
	tablesEnd := pos + numRanges*rangeSize + numGlyphs*glyphSize
	if tablesEnd > len(data) {
		return nil, fmt.Errorf("%w: tables truncated", ErrFontFormat)
	}

	f.ranges = make([]GlyphRange, numRanges)
	base := 0
	prevEnd := 0
	for i := range f.ranges {
		r := GlyphRange{
			Begin: le.Uint16(data[pos:]),
			End:   le.Uint16(data[pos+2:]),
			base:  base,
		}
		if r.Begin >= r.End || int(r.Begin) < prevEnd {
			return nil, fmt.Errorf("%w: range %d [%d, %d) out of order",
				ErrFontFormat, i, r.Begin, r.End)
		}
		f.ranges[i] = r
		base += int(r.End - r.Begin)
		prevEnd = int(r.End)
		pos += rangeSize
	}
	if base != numGlyphs {
		return nil, fmt.Errorf("%w: ranges cover %d glyphs, table has %d",
			ErrFontFormat, base, numGlyphs)
	}

	f.outlines = data[tablesEnd:]
	f.glyphs = make([]Glyph, numGlyphs)
	for i := range f.glyphs {
		g := Glyph{
			offset:  le.Uint16(data[pos:]),
			length:  le.Uint16(data[pos+2:]),
			Advance: Fixed(int16(le.Uint16(data[pos+4:]))),
		}
		if int(g.offset)+int(g.length) > len(f.outlines) {
			return nil, fmt.Errorf("%w: outline of glyph %d exceeds data",
				ErrFontFormat, i)
		}
		f.glyphs[i] = g
		pos += glyphSize
	}

	return f, nil
}

// Glyph returns the glyph for r.  The second return value is false if
// the font has no glyph for r.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	if r < 0 || r > 0xFFFF {
		return nil, false
	}
	cp := uint16(r)
	i := sort.Search(len(f.ranges), func(i int) bool {
		return f.ranges[i].End > cp
	})
	if i == len(f.ranges) || f.ranges[i].Begin > cp {
		return nil, false
	}
	rng := &f.ranges[i]
	return &f.glyphs[rng.base+int(cp-rng.Begin)], true
}

// Outline returns the command stream of g.
func (f *Font) Outline(g *Glyph) []byte {
	return f.outlines[int(g.offset) : int(g.offset)+int(g.length)]
}

// Ranges returns the code point ranges covered by the font.
func (f *Font) Ranges() []GlyphRange {
	return f.ranges
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}
