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

package fontconv

import (
	"image"
	"image/draw"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/tinyvec"
)

func TestConvertASCII(t *testing.T) {
	data, err := Convert(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := tinyvec.ParseFont(data)
	if err != nil {
		t.Fatal(err)
	}

	if f.UnitsPerEm != tinyvec.I(DefaultUnitsPerEm) {
		t.Errorf("units per em %d", f.UnitsPerEm)
	}
	if !(f.Ascent > f.CapHeight && f.CapHeight > 0 && f.Descent < 0) {
		t.Errorf("implausible metrics: ascent %d, cap height %d, descent %d",
			f.Ascent, f.CapHeight, f.Descent)
	}
	if f.NumGlyphs() != 0x7F-0x20 || len(f.Ranges()) != 1 {
		t.Errorf("%d glyphs in %d ranges", f.NumGlyphs(), len(f.Ranges()))
	}

	space, ok := f.Glyph(' ')
	if !ok || space.Advance <= 0 || len(f.Outline(space)) != 0 {
		t.Error("space glyph is wrong")
	}
	a, ok := f.Glyph('A')
	if !ok || a.Advance <= 0 {
		t.Fatal("no glyph for 'A'")
	}
	cmds, err := tinyvec.DecodeCommands(f.Outline(a))
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) < 4 || cmds[0].Op != tinyvec.OpMoveTo || cmds[len(cmds)-1].Op != tinyvec.OpClose {
		t.Errorf("unexpected outline for 'A': %v", cmds)
	}
	if _, ok := f.Glyph(0xE9); ok {
		t.Error("glyph outside the character set")
	}
}

func TestOptions(t *testing.T) {
	ascii := (&Options{}).runes()
	if len(ascii) != 95 || ascii[0] != ' ' || ascii[94] != '~' {
		t.Errorf("default character set: %q", ascii)
	}

	latin1 := (&Options{Charset: charmap.ISO8859_1, Runes: []rune{'A', 0x20AC}}).runes()
	if !slices.IsSorted(latin1) {
		t.Error("runes not sorted")
	}
	for _, r := range []rune{' ', 'A', 0xE9, 0xFF, 0x20AC} {
		if _, found := slices.BinarySearch(latin1, r); !found {
			t.Errorf("%U missing", r)
		}
	}
	for _, r := range []rune{0x7F, 0x85, 0xA0} {
		if _, found := slices.BinarySearch(latin1, r); found {
			t.Errorf("non-printable %U included", r)
		}
	}
	if len(slices.Compact(slices.Clone(latin1))) != len(latin1) {
		t.Error("duplicate runes")
	}

	only := (&Options{Runes: []rune{'b', 'a', 'b'}}).runes()
	if !slices.Equal(only, []rune{'a', 'b'}) {
		t.Errorf("explicit runes: %q", only)
	}

	if _, err := Convert(goregular.TTF, &Options{UnitsPerEm: 5000}); err == nil {
		t.Error("huge em size accepted")
	}
	if _, err := Convert(goregular.TTF, &Options{Runes: []rune{0xE000}}); err != ErrNoGlyphs {
		t.Errorf("got %v, want ErrNoGlyphs", err)
	}
}

func TestOutlineWriter(t *testing.T) {
	var w outlineWriter
	w.moveTo(tinyvec.Pt(0, 0))
	w.lineTo(tinyvec.Pt(10, 0))
	w.lineTo(tinyvec.Pt(10, 10))
	w.quadTo(tinyvec.Pt(20, 10), tinyvec.Pt(20, 20))
	w.quadTo(tinyvec.Pt(20, 30), tinyvec.Pt(10, 30)) // reflected control point
	w.lineTo(tinyvec.Pt(10, 30))                     // zero length
	w.lineTo(tinyvec.Pt(0, 5))
	w.moveTo(tinyvec.Pt(50, 50))
	w.quadTo(tinyvec.Pt(50, 50), tinyvec.Pt(60, 40)) // control point at the start
	w.cubeTo(tinyvec.Pt(60, 30), tinyvec.Pt(50, 30), tinyvec.Pt(50, 50))
	data, err := w.finish()
	if err != nil {
		t.Fatal(err)
	}

	cmds, err := tinyvec.DecodeCommands(data)
	if err != nil {
		t.Fatal(err)
	}
	var ops []tinyvec.Opcode
	for _, c := range cmds {
		ops = append(ops, c.Op)
	}
	want := []tinyvec.Opcode{
		tinyvec.OpMoveTo, tinyvec.OpHLineTo, tinyvec.OpVLineTo, tinyvec.OpQuadTo,
		tinyvec.OpSmoothQuadTo, tinyvec.OpLineTo, tinyvec.OpClose,
		tinyvec.OpMoveTo, tinyvec.OpSmoothQuadTo, tinyvec.OpCubeTo, tinyvec.OpClose,
	}
	if !slices.Equal(ops, want) {
		t.Errorf("got %v\nwant %v", ops, want)
	}
}

// TestRenderGlyphs compares converted glyphs, filled by tinyvec, with the
// exact coverage of the original outlines.
func TestRenderGlyphs(t *testing.T) {
	const size = 64
	const emHeight = 48
	origin := image.Pt(8, 52)

	sf, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBuilder(sf, nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	f, err := tinyvec.ParseFont(data)
	if err != nil {
		t.Fatal(err)
	}

	var buf sfnt.Buffer
	for _, r := range "Oeg&" {
		t.Run(string(r), func(t *testing.T) {
			// reference
			gid, err := sf.GlyphIndex(&buf, r)
			if err != nil {
				t.Fatal(err)
			}
			segments, err := sf.LoadGlyph(&buf, gid, fixed.I(emHeight), nil)
			if err != nil {
				t.Fatal(err)
			}
			ras := vector.NewRasterizer(size, size)
			ras.DrawOp = draw.Src
			pt := func(p fixed.Point26_6) (float32, float32) {
				return float32(p.X)/64 + float32(origin.X), float32(p.Y)/64 + float32(origin.Y)
			}
			for _, seg := range segments {
				switch seg.Op {
				case sfnt.SegmentOpMoveTo:
					ras.MoveTo(pt(seg.Args[0]))
				case sfnt.SegmentOpLineTo:
					ras.LineTo(pt(seg.Args[0]))
				case sfnt.SegmentOpQuadTo:
					x1, y1 := pt(seg.Args[0])
					x2, y2 := pt(seg.Args[1])
					ras.QuadTo(x1, y1, x2, y2)
				case sfnt.SegmentOpCubeTo:
					x1, y1 := pt(seg.Args[0])
					x2, y2 := pt(seg.Args[1])
					x3, y3 := pt(seg.Args[2])
					ras.CubeTo(x1, y1, x2, y2, x3, y3)
				}
			}
			ras.ClosePath()
			ref := image.NewAlpha(image.Rect(0, 0, size, size))
			ras.Draw(ref, ref.Bounds(), image.Opaque, image.Point{})

			// tinyvec
			img := image.NewGray(image.Rect(0, 0, size, size))
			c, err := tinyvec.NewContext(tinyvec.NewImageSurface(img), tinyvec.ModeAA)
			if err != nil {
				t.Fatal(err)
			}
			defer c.Close()
			c.SetTextEmHeight(f, tinyvec.I(emHeight))
			c.SetOffset(tinyvec.Pt(origin.X, origin.Y))
			if err := c.BeginFill(); err != nil {
				t.Fatal(err)
			}
			if err := c.DrawString(string(r), f, tinyvec.AlignLeft, tinyvec.AnchorBaseline); err != nil {
				t.Fatal(err)
			}
			if err := c.EndFill(); err != nil {
				t.Fatal(err)
			}

			var sum, ink int
			for i := range ref.Pix {
				d := int(ref.Pix[i]) - int(img.Pix[i])
				sum += max(d, -d)
				ink += int(ref.Pix[i])
			}
			if ink == 0 {
				t.Fatal("empty reference")
			}
			if mean := float64(sum) / float64(size*size); mean > 8 {
				t.Errorf("mean difference %.2f", mean)
			}
		})
	}
}
