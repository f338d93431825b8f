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

import "image/color"

// grayDither is the 1-bit pattern used for colors other than black and
// white on two-tone frames.  Odd rows use the complement, giving a
// checkerboard.
const grayDither = 0b01010101

// monoRasteriser fills with exact binary coverage, sampling every pixel at
// its center.  The flag plane holds one bit per pixel.
type monoRasteriser struct {
	width, height int
	stride        int
	flags         []byte

	dirtyMin, dirtyMax int // rows touched by plotEdge
}

func newMonoRasteriser(width, height int) *monoRasteriser {
	stride := (width + 7) / 8
	return &monoRasteriser{
		width:    width,
		height:   height,
		stride:   stride,
		flags:    make([]byte, stride*height),
		dirtyMin: height,
		dirtyMax: -1,
	}
}

// subpixelAdjust moves sample points to the pixel centers.
func (r *monoRasteriser) subpixelAdjust() Fixed {
	return -FixedScale / 2
}

// plotEdge toggles one flag bit per scanline crossed by the segment a-b.
// Crossings left of the plane toggle column 0, crossings right of it are
// dropped.
func (r *monoRasteriser) plotEdge(a, b Point) {
	top, bottom := orderEdge(a, b)
	var e edge
	if !e.initEdge(top, bottom, FixedScale) {
		return
	}

	for e.height > 0 && e.y < 0 {
		e.step()
	}

	maxX := int32(r.width - 1)
	maxY := int32(r.height - 1)
	if e.height > 0 && e.y <= maxY {
		r.dirtyMin = min(r.dirtyMin, int(e.y))
	}
	for e.height > 0 && e.y <= maxY {
		row := r.flags[int(e.y)*r.stride:]
		if e.x < 0 {
			row[0] ^= 1
		} else if e.x <= maxX {
			row[e.x/8] ^= 1 << (e.x % 8)
		}
		r.dirtyMax = max(r.dirtyMax, int(e.y))
		e.step()
	}
}

// endFill paints the pixels inside the path and clears the flag plane.
func (r *monoRasteriser) endFill(f Frame, win window, fill color.RGBA) {
	pattern := -1 // solid fill
	if f.TwoTone() && fill != White && fill != Black {
		pattern = grayDither
	}

	rowMin := max(win.rowMin, 0)
	rowMax := min(win.rowMax, r.height-1)
	for y := rowMin; y <= rowMax; y++ {
		spanMin, spanMax := f.Span(y)
		spanMin = max(spanMin, win.colMin)
		spanMax = min(spanMax, win.colMax, r.width-1)

		rowPattern := pattern
		if pattern >= 0 && y&1 == 0 {
			rowPattern = ^pattern & 0xFF
		}

		flags := r.flags[y*r.stride : (y+1)*r.stride]
		inside := false
		for x := max(win.colMin, 0); x <= spanMax; x++ {
			mask := byte(1) << (x % 8)
			if flags[x/8]&mask != 0 {
				inside = !inside
				flags[x/8] &^= mask
			}
			if !inside || x < spanMin {
				continue
			}
			if rowPattern < 0 {
				f.SetPixel(x, y, fill)
			} else if rowPattern&int(mask) != 0 {
				f.SetPixel(x, y, White)
			} else {
				f.SetPixel(x, y, Black)
			}
		}
	}

	r.clearDirty()
}

// clearDirty zeroes every row touched since the last call.
func (r *monoRasteriser) clearDirty() {
	if r.dirtyMax >= r.dirtyMin {
		clear(r.flags[r.dirtyMin*r.stride : (r.dirtyMax+1)*r.stride])
	}
	r.dirtyMin = r.height
	r.dirtyMax = -1
}
