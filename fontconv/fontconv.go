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

// Package fontconv converts TrueType and OpenType fonts into the compact
// outline font format read by [tinyvec.ParseFont].
//
// Outlines are scaled to a small number of font units per em, so that
// all coordinates fit into the 16 bit fields of the command encoding.
// Only the characters of a chosen character set are kept.
package fontconv

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/tinyvec"
)

// DefaultUnitsPerEm is the em size used when Options.UnitsPerEm is zero.
const DefaultUnitsPerEm = 1000

// maxUnitsPerEm keeps typical glyphs, including accents and descenders,
// inside the coordinate range of the command encoding.
const maxUnitsPerEm = 1600

// Options control the conversion.
type Options struct {
	// UnitsPerEm is the em size of the converted font.  If zero,
	// DefaultUnitsPerEm is used.
	UnitsPerEm int

	// Charset selects the characters to convert: all printable
	// characters of the given 8-bit encoding.  If Charset and Runes are
	// both nil, printable ASCII is used.
	Charset *charmap.Charmap

	// Runes lists additional characters to convert.
	Runes []rune
}

// ErrNoGlyphs is returned when none of the requested characters is
// present in the font.
var ErrNoGlyphs = errors.New("fontconv: no glyphs converted")

// Convert parses an sfnt font file and returns the converted font data.
func Convert(src []byte, opt *Options) ([]byte, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("fontconv: %w", err)
	}
	b, err := NewBuilder(f, opt)
	if err != nil {
		return nil, err
	}
	return b.Bytes()
}

// NewBuilder converts the glyphs of f into a [tinyvec.FontBuilder].
// Characters missing from f are skipped.
func NewBuilder(f *sfnt.Font, opt *Options) (*tinyvec.FontBuilder, error) {
	if opt == nil {
		opt = &Options{}
	}
	upem := opt.UnitsPerEm
	if upem == 0 {
		upem = DefaultUnitsPerEm
	}
	if upem < 16 || upem > maxUnitsPerEm {
		return nil, fmt.Errorf("fontconv: invalid units per em %d", upem)
	}

	// Loading glyphs at a size of upem pixels per em gives coordinates in
	// the new font units, as 26.6 fixed point numbers.
	ppem := fixed.I(upem)
	var buf sfnt.Buffer

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("fontconv: %w", err)
	}
	b := &tinyvec.FontBuilder{
		UnitsPerEm: tinyvec.I(upem),
		Ascent:     fromInt26_6(m.Ascent),
		Descent:    -fromInt26_6(m.Descent),
		CapHeight:  fromInt26_6(m.CapHeight),
	}

	logger := tinyvec.Logger()
	for _, r := range opt.runes() {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("fontconv: %U: %w", r, err)
		}
		if gid == 0 {
			logger.Debug("fontconv: no glyph", "rune", r)
			continue
		}

		advance, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("fontconv: %U: %w", r, err)
		}
		segments, err := f.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("fontconv: %U: %w", r, err)
		}
		outline, err := encodeSegments(segments)
		if err != nil {
			return nil, fmt.Errorf("fontconv: %U: %w", r, err)
		}
		if err := b.AddGlyph(r, fromInt26_6(advance), outline); err != nil {
			return nil, fmt.Errorf("fontconv: %w", err)
		}
	}
	if b.Len() == 0 {
		return nil, ErrNoGlyphs
	}
	logger.Debug("fontconv: converted font", "glyphs", b.Len(), "upem", upem)
	return b, nil
}

// runes returns the sorted, de-duplicated list of characters selected by
// the options.
func (opt *Options) runes() []rune {
	var res []rune
	switch {
	case opt.Charset != nil:
		for i := range 256 {
			r := opt.Charset.DecodeByte(byte(i))
			if r != unicode.ReplacementChar && unicode.IsPrint(r) {
				res = append(res, r)
			}
		}
	case opt.Runes == nil:
		for r := rune(0x20); r < 0x7F; r++ {
			res = append(res, r)
		}
	}
	res = append(res, opt.Runes...)
	slices.Sort(res)
	return slices.Compact(res)
}

// encodeSegments converts an sfnt outline, with the y axis pointing
// down, into a command stream with the y axis pointing up.
func encodeSegments(segments sfnt.Segments) ([]byte, error) {
	var w outlineWriter
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			w.moveTo(fromPoint26_6(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			w.lineTo(fromPoint26_6(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			w.quadTo(fromPoint26_6(seg.Args[0]), fromPoint26_6(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			w.cubeTo(fromPoint26_6(seg.Args[0]), fromPoint26_6(seg.Args[1]), fromPoint26_6(seg.Args[2]))
		}
	}
	return w.finish()
}

// fromInt26_6 converts from 26.6 to 28.4 fixed point, rounding to
// nearest.
func fromInt26_6(x fixed.Int26_6) tinyvec.Fixed {
	return tinyvec.Fixed((x + 2) >> 2)
}

func fromPoint26_6(p fixed.Point26_6) tinyvec.Point {
	return tinyvec.Point{X: fromInt26_6(p.X), Y: -fromInt26_6(p.Y)}
}
