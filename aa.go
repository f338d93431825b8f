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
	"image/color"
	"math/bits"
)

// Anti-aliasing resolution.
const (
	subpixelCount = 8
	subpixelShift = 3

	// subscanlineUnit is the fixed-point distance between sub-scanlines.
	subscanlineUnit = FixedScale / subpixelCount
)

// samplingOffsets gives the horizontal sample position, in eighths of a
// pixel, for each sub-scanline.  The order is scrambled so that
// neighbouring sub-scanlines sample far apart.
var samplingOffsets = [subpixelCount]int32{2, 7, 4, 1, 6, 3, 0, 5}

// aaRasteriser fills with fractional coverage.  Each pixel has one flag
// byte; bit i belongs to sub-scanline i of the pixel row.
//
// The edge flag scheme follows Kiia Kallio, "Scanline edge-flag algorithm
// for antialiasing" (2007).
type aaRasteriser struct {
	width, height int
	flags         []byte

	dirtyMin, dirtyMax int // rows touched by plotEdge
}

func newAARasteriser(width, height int) *aaRasteriser {
	return &aaRasteriser{
		width:    width,
		height:   height,
		flags:    make([]byte, width*height),
		dirtyMin: height,
		dirtyMax: -1,
	}
}

func (r *aaRasteriser) subpixelAdjust() Fixed {
	return -1
}

// plotEdge toggles one bit per sub-scanline crossed by the segment a-b.
func (r *aaRasteriser) plotEdge(a, b Point) {
	top, bottom := orderEdge(a, b)
	var e edge
	if !e.initEdge(top, bottom, subscanlineUnit) {
		return
	}

	for e.height > 0 && e.y < 0 {
		e.step()
	}

	maxX := int32(r.width - 1)
	maxY := int32(r.height*subpixelCount - 1)
	if e.height > 0 && e.y <= maxY {
		r.dirtyMin = min(r.dirtyMin, int(e.y>>subpixelShift))
	}
	for e.height > 0 && e.y <= maxY {
		ySub := e.y & (subpixelCount - 1)
		mask := byte(1) << ySub
		pixelX, _ := floorDivMod(e.x+samplingOffsets[ySub], subpixelCount)
		pixelY := int(e.y >> subpixelShift)

		row := r.flags[pixelY*r.width:]
		if pixelX < 0 {
			row[0] ^= mask
		} else if pixelX <= maxX {
			row[pixelX] ^= mask
		}
		r.dirtyMax = max(r.dirtyMax, pixelY)
		e.step()
	}
}

// endFill blends the fill color into f, weighted by the number of
// sub-scanlines covering each pixel, and clears the flag plane.
func (r *aaRasteriser) endFill(f Frame, win window, fill color.RGBA) {
	rowMin := max(win.rowMin, 0)
	rowMax := min(win.rowMax, r.height-1)
	for y := rowMin; y <= rowMax; y++ {
		spanMin, spanMax := f.Span(y)
		spanMin = max(spanMin, win.colMin)
		spanMax = min(spanMax, win.colMax, r.width-1)

		flags := r.flags[y*r.width : (y+1)*r.width]
		var acc byte
		for x := max(win.colMin, 0); x <= spanMax; x++ {
			acc ^= flags[x]
			flags[x] = 0
			if x < spanMin {
				continue
			}
			if a := bits.OnesCount8(acc); a > 0 {
				f.SetPixel(x, y, blend(fill, f.Pixel(x, y), a))
			}
		}
	}

	r.clearDirty()
}

func (r *aaRasteriser) clearDirty() {
	if r.dirtyMax >= r.dirtyMin {
		clear(r.flags[r.dirtyMin*r.width : (r.dirtyMax+1)*r.width])
	}
	r.dirtyMin = r.height
	r.dirtyMax = -1
}

// blend mixes a/8 of src with (8-a)/8 of dst, rounding to nearest.
func blend(src, dst color.RGBA, a int) color.RGBA {
	mix := func(s, d uint8) uint8 {
		return uint8((int(s)*a + int(d)*(subpixelCount-a) + subpixelCount/2) / subpixelCount)
	}
	return color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: mix(src.A, dst.A),
	}
}
