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

package display

import (
	"errors"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"seehuhn.de/go/tinyvec"
)

// ErrFontSize is returned by NewFonter for pixel sizes which cannot be
// described by tinyfont glyph metrics.
var ErrFontSize = errors.New("display: unsupported font size")

// Fonter renders a tinyvec outline font at a fixed pixel size, for use
// with [tinyfont.WriteLine] and related functions.  Glyphs are
// rasterised on first use and cached as bitmaps.
//
// A Fonter is not safe for concurrent use.
type Fonter struct {
	font     *tinyvec.Font
	emHeight int
	yAdvance uint8

	cache map[rune]*glyph
}

var _ tinyfont.Fonter = (*Fonter)(nil)

// NewFonter returns a Fonter which draws f with an em height of
// emHeight pixels.
func NewFonter(f *tinyvec.Font, emHeight int) (*Fonter, error) {
	if emHeight <= 0 || emHeight > 200 {
		return nil, ErrFontSize
	}
	fo := &Fonter{
		font:     f,
		emHeight: emHeight,
		cache:    make(map[rune]*glyph),
	}
	lineHeight := math.Round(fo.toPixels(f.Ascent - f.Descent))
	if lineHeight > math.MaxUint8 {
		return nil, ErrFontSize
	}
	fo.yAdvance = uint8(max(lineHeight, 0))
	return fo, nil
}

// toPixels converts a length in font units to pixels.
func (f *Fonter) toPixels(v tinyvec.Fixed) float64 {
	return v.Float() * float64(f.emHeight) / f.font.UnitsPerEm.Float()
}

// GetGlyph implements [tinyfont.Fonter].  Characters not in the font are
// drawn as '?', if available, or as an empty glyph.
func (f *Fonter) GetGlyph(r rune) tinyfont.Glypher {
	if g, ok := f.cache[r]; ok {
		return g
	}

	var g *glyph
	if tg, ok := f.font.Glyph(r); ok {
		g = f.render(r, tg)
	} else if r != '?' {
		g = f.GetGlyph('?').(*glyph)
	} else {
		g = &glyph{info: tinyfont.GlyphInfo{Rune: r}}
	}
	f.cache[r] = g
	return g
}

// GetYAdvance implements [tinyfont.Fonter].
func (f *Fonter) GetYAdvance() uint8 {
	return f.yAdvance
}

// render rasterises one glyph into a bitmap just large enough for its
// outline.
func (f *Fonter) render(r rune, tg *tinyvec.Glyph) *glyph {
	g := &glyph{
		info: tinyfont.GlyphInfo{
			Rune:     r,
			XAdvance: uint8(min(max(math.Round(f.toPixels(tg.Advance)), 0), math.MaxUint8)),
		},
	}

	outline := f.font.Outline(tg)
	xMin, yMin, xMax, yMax, ok := outlineBounds(outline)
	if !ok {
		return g
	}

	// pixel box, with the y axis pointing down
	left := int(math.Floor(f.toPixels(xMin)))
	right := int(math.Ceil(f.toPixels(xMax)))
	top := int(math.Floor(-f.toPixels(yMax)))
	bottom := int(math.Ceil(-f.toPixels(yMin)))
	width := min(right-left, math.MaxUint8)
	height := min(bottom-top, math.MaxUint8)
	if width <= 0 || height <= 0 || left < math.MinInt8 || left > math.MaxInt8 ||
		top < math.MinInt8 || top > math.MaxInt8 {
		return g
	}

	bm := tinyvec.NewBitmap(width, height)
	c, err := tinyvec.NewContext(bm, tinyvec.ModeMono)
	if err != nil {
		return g
	}
	defer c.Close()
	c.SetTextEmHeight(f.font, tinyvec.I(f.emHeight))
	c.SetOffset(tinyvec.Pt(-left, -top))
	if err := c.BeginFill(); err != nil {
		return g
	}
	drawErr := c.DrawCommands(tinyvec.Point{}, outline)
	if err := c.EndFill(); err != nil || drawErr != nil {
		return g
	}

	g.bitmap = bm
	g.info.Width = uint8(width)
	g.info.Height = uint8(height)
	g.info.XOffset = int8(left)
	g.info.YOffset = int8(top)
	return g
}

// glyph is a rasterised glyph.  The bitmap is nil for glyphs without
// visible pixels.
type glyph struct {
	info   tinyfont.GlyphInfo
	bitmap *tinyvec.Bitmap
}

// Draw implements [tinyfont.Glypher].  The point (x, y) is the glyph
// origin on the baseline.
func (g *glyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	if g.bitmap == nil {
		return
	}
	x0 := x + int16(g.info.XOffset)
	y0 := y + int16(g.info.YOffset)
	for j := range g.bitmap.Height {
		for i := range g.bitmap.Width {
			if g.bitmap.Pixel(i, j) == tinyvec.White {
				d.SetPixel(x0+int16(i), y0+int16(j), c)
			}
		}
	}
}

// Info implements [tinyfont.Glypher].
func (g *glyph) Info() tinyfont.GlyphInfo {
	return g.info
}

// outlineBounds returns the bounding box of all on-curve and control
// points of a command stream, including implied control points.  The
// result is false if the stream has no points or cannot be decoded.
func outlineBounds(data []byte) (xMin, yMin, xMax, yMax tinyvec.Fixed, ok bool) {
	cmds, err := tinyvec.DecodeCommands(data)
	if err != nil {
		return 0, 0, 0, 0, false
	}

	add := func(pts ...tinyvec.Point) {
		for _, p := range pts {
			if !ok {
				xMin, xMax, yMin, yMax = p.X, p.X, p.Y, p.Y
				ok = true
				continue
			}
			xMin = min(xMin, p.X)
			xMax = max(xMax, p.X)
			yMin = min(yMin, p.Y)
			yMax = max(yMax, p.Y)
		}
	}

	var cur, start, ctrl tinyvec.Point
	var prev tinyvec.Opcode
	implied := func(family ...tinyvec.Opcode) tinyvec.Point {
		for _, op := range family {
			if prev == op {
				return tinyvec.Point{X: 2*cur.X - ctrl.X, Y: 2*cur.Y - ctrl.Y}
			}
		}
		return cur
	}
	for _, cmd := range cmds {
		a := cmd.Args
		switch cmd.Op {
		case tinyvec.OpMoveTo:
			cur = tinyvec.Point{X: a[0], Y: a[1]}
			start = cur
		case tinyvec.OpLineTo:
			cur = tinyvec.Point{X: a[0], Y: a[1]}
		case tinyvec.OpHLineTo:
			cur.X = a[0]
		case tinyvec.OpVLineTo:
			cur.Y = a[0]
		case tinyvec.OpCubeTo:
			add(tinyvec.Point{X: a[0], Y: a[1]})
			ctrl = tinyvec.Point{X: a[2], Y: a[3]}
			cur = tinyvec.Point{X: a[4], Y: a[5]}
		case tinyvec.OpSmoothCubeTo:
			add(implied(tinyvec.OpCubeTo, tinyvec.OpSmoothCubeTo))
			ctrl = tinyvec.Point{X: a[0], Y: a[1]}
			cur = tinyvec.Point{X: a[2], Y: a[3]}
		case tinyvec.OpQuadTo:
			ctrl = tinyvec.Point{X: a[0], Y: a[1]}
			cur = tinyvec.Point{X: a[2], Y: a[3]}
		case tinyvec.OpSmoothQuadTo:
			ctrl = implied(tinyvec.OpQuadTo, tinyvec.OpSmoothQuadTo)
			cur = tinyvec.Point{X: a[0], Y: a[1]}
		case tinyvec.OpClose:
			cur = start
		}
		switch cmd.Op {
		case tinyvec.OpCubeTo, tinyvec.OpSmoothCubeTo, tinyvec.OpQuadTo, tinyvec.OpSmoothQuadTo:
			add(ctrl)
		}
		add(cur)
		prev = cmd.Op
	}
	return xMin, yMin, xMax, yMax, ok
}
