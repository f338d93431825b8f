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
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// rawFont encodes a font by hand.  Glyph i has advance i and an empty
// outline.
func rawFont(ranges [][2]uint16, numGlyphs int) []byte {
	le := binary.LittleEndian
	var buf []byte
	for _, v := range []uint16{1000 * FixedScale, 800 * FixedScale, 0x10000 - 200*FixedScale, 700 * FixedScale} {
		buf = le.AppendUint16(buf, v)
	}
	buf = le.AppendUint16(buf, uint16(len(ranges)))
	buf = le.AppendUint16(buf, uint16(numGlyphs))
	for _, r := range ranges {
		buf = le.AppendUint16(buf, r[0])
		buf = le.AppendUint16(buf, r[1])
	}
	for i := range numGlyphs {
		buf = le.AppendUint16(buf, 0)
		buf = le.AppendUint16(buf, 0)
		buf = le.AppendUint16(buf, uint16(i))
	}
	return buf
}

func TestGlyphRangeBoundary(t *testing.T) {
	f, err := ParseFont(rawFont([][2]uint16{{65, 70}, {70, 75}, {100, 101}}, 11))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		r     rune
		index Fixed // -1 for missing
	}{
		{64, -1},
		{65, 0},
		{69, 4},
		{70, 5}, // end of the first range, start of the second
		{74, 9},
		{75, -1},
		{99, -1},
		{100, 10},
		{101, -1},
		{0x10000 + 65, -1},
		{-1, -1},
	}
	for _, tc := range cases {
		g, ok := f.Glyph(tc.r)
		switch {
		case tc.index < 0 && ok:
			t.Errorf("%d: unexpected glyph %d", tc.r, g.Advance)
		case tc.index >= 0 && !ok:
			t.Errorf("%d: glyph not found", tc.r)
		case ok && g.Advance != tc.index:
			t.Errorf("%d: got glyph %d, want %d", tc.r, g.Advance, tc.index)
		}
	}
}

func TestFontBuilder(t *testing.T) {
	outline := func(n int) []byte {
		var e CommandEncoder
		e.MoveTo(Pt(n, 0))
		e.LineTo(Pt(n, n))
		e.Close()
		return e.Bytes()
	}

	b := &FontBuilder{UnitsPerEm: I(1000), Ascent: I(800), Descent: I(-200), CapHeight: I(700)}
	runes := []rune{'x', 'A', 'B', 'C', 0xE9, 0x20AC}
	for i, r := range runes {
		if err := b.AddGlyph(r, I(100+i), outline(i)); err != nil {
			t.Fatal(err)
		}
	}
	data, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	f, err := ParseFont(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.UnitsPerEm != I(1000) || f.Ascent != I(800) || f.Descent != I(-200) || f.CapHeight != I(700) {
		t.Errorf("metrics %d %d %d %d", f.UnitsPerEm, f.Ascent, f.Descent, f.CapHeight)
	}
	if f.NumGlyphs() != len(runes) || len(f.Ranges()) != 4 {
		t.Errorf("%d glyphs in %d ranges", f.NumGlyphs(), len(f.Ranges()))
	}
	for i, r := range runes {
		g, ok := f.Glyph(r)
		if !ok {
			t.Errorf("%q: missing", r)
			continue
		}
		if g.Advance != I(100+i) {
			t.Errorf("%q: advance %d", r, g.Advance)
		}
		if !bytes.Equal(f.Outline(g), outline(i)) {
			t.Errorf("%q: wrong outline", r)
		}
	}
	if _, ok := f.Glyph('D'); ok {
		t.Error("glyph for 'D'")
	}
}

func TestFontBuilderErrors(t *testing.T) {
	b := &FontBuilder{UnitsPerEm: I(1000)}
	if err := b.AddGlyph(0x10000, 0, nil); !errors.Is(err, ErrFontFormat) {
		t.Errorf("code point outside the BMP: %v", err)
	}
	if err := b.AddGlyph('a', I(3000), nil); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("huge advance: %v", err)
	}
	if err := b.AddGlyph('a', 0, make([]byte, 40000)); err != nil {
		t.Fatal(err)
	}
	if err := b.AddGlyph('b', 0, make([]byte, 40000)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Bytes(); !errors.Is(err, ErrFontFormat) {
		t.Errorf("oversized outline data: %v", err)
	}
}

func TestParseFontErrors(t *testing.T) {
	good := rawFont([][2]uint16{{65, 67}}, 2)
	outOfBounds := rawFont([][2]uint16{{65, 66}}, 1)
	binary.LittleEndian.PutUint16(outOfBounds[len(outOfBounds)-4:], 1) // length 1

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated header", good[:10]},
		{"truncated tables", good[:len(good)-1]},
		{"zero units per em", append([]byte{0, 0}, good[2:]...)},
		{"overlapping ranges", rawFont([][2]uint16{{65, 70}, {69, 72}}, 8)},
		{"unsorted ranges", rawFont([][2]uint16{{80, 81}, {65, 66}}, 2)},
		{"empty range", rawFont([][2]uint16{{65, 65}}, 0)},
		{"glyph count mismatch", rawFont([][2]uint16{{65, 70}}, 4)},
		{"outline out of bounds", outOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFont(tc.data); !errors.Is(err, ErrFontFormat) {
				t.Errorf("got %v, want ErrFontFormat", err)
			}
		})
	}

	if _, err := ParseFont(good); err != nil {
		t.Errorf("valid font rejected: %v", err)
	}
}
