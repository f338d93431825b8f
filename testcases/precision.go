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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(10, 10, 20, 20, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(10, 10, 20, 20, 0.25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(10, 10, 20, 20, 0.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(10, 10, 20, 20, 0.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_bar",
		Path:   rectangle(4, 30.25, 60, 31.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "sliver",
		Path:   triangle(2, 2, 62, 5, 2, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "small_shape_large_offset",
		Path:   rectangle(1500, 1500, 1510, 1510),
		Width:  64,
		Height: 64,
		CTM:    matrix.Identity.Translate(-1475, -1475),
	},
}

// offsetRectangle builds a w x h rectangle at (x1, y1), shifted by
// offset in both directions.
func offsetRectangle(x1, y1, w, h, offset float64) path.Path {
	x1 += offset
	y1 += offset
	return rectangle(x1, y1, x1+w, y1+h)
}
