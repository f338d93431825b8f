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

package testcases

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:        "overlapping_rect",
		Path:        overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:       64,
		Height:      64,
		Overlapping: true,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "donut",
		Path:   donut(32, 32, 26, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "unclosed_subpaths",
		Path:   unclosedSquares(),
		Width:  64,
		Height: 64,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	b := &builder{}
	for _, c := range [][2]float64{{cx1, cy1}, {cx2, cy2}} {
		b.moveTo(c[0], c[1]-size).
			lineTo(c[0]+size, c[1]+size).
			lineTo(c[0]-size, c[1]+size).
			close()
	}
	return b.path()
}

// overlappingRectangles builds two rectangles in the same direction.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	b := &builder{}
	for _, r := range [][4]float64{{x1a, y1a, x2a, y2a}, {x1b, y1b, x2b, y2b}} {
		b.moveTo(r[0], r[1]).
			lineTo(r[2], r[1]).
			lineTo(r[2], r[3]).
			lineTo(r[0], r[3]).
			close()
	}
	return b.path()
}

// ringShape builds a square with a square hole of opposite winding.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	o, i := outerSize, innerSize
	return (&builder{}).
		moveTo(cx-o, cy-o).
		lineTo(cx+o, cy-o).
		lineTo(cx+o, cy+o).
		lineTo(cx-o, cy+o).
		close().
		moveTo(cx-i, cy-i).
		lineTo(cx-i, cy+i).
		lineTo(cx+i, cy+i).
		lineTo(cx+i, cy-i).
		close().
		path()
}

// donut builds a circle with a circular hole.
func donut(cx, cy, outer, inner float64) path.Path {
	b := appendEllipse(&builder{}, cx, cy, outer, outer, false)
	return appendEllipse(b, cx, cy, inner, inner, true).path()
}

// manySmallShapes builds a grid of small diamonds.
func manySmallShapes(rows, cols int) path.Path {
	b := &builder{}
	for r := range rows {
		for c := range cols {
			cx := 8 + float64(c)*16
			cy := 8 + float64(r)*16
			b.moveTo(cx, cy-6).
				lineTo(cx+6, cy).
				lineTo(cx, cy+6).
				lineTo(cx-6, cy).
				close()
		}
	}
	return b.path()
}

// unclosedSquares builds two squares whose subpaths are closed by lines
// back to the start point instead of a close command.
func unclosedSquares() path.Path {
	return (&builder{}).
		moveTo(8, 8).lineTo(28, 8).lineTo(28, 28).lineTo(8, 28).lineTo(8, 8).
		moveTo(36, 36).lineTo(56, 36).lineTo(56, 56).lineTo(36, 56).lineTo(36, 36).
		path()
}
