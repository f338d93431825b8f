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
	"math"

	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:        "star",
		Path:        fivePointStar(32, 32, 25),
		Width:       64,
		Height:      64,
		Overlapping: true,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diamond",
		Path:   polygon(160, 120, 110, 4, 0),
		Width:  320,
		Height: 240,
	},
	{
		Name:   "hexagon",
		Path:   polygon(32, 32, 24, 6, math.Pi/6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clipped",
		Path:   rectangle(-20, -10, 84, 30),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "offscreen_left",
		Path:   triangle(-30, 10, 40, 32, -30, 54),
		Width:  64,
		Height: 64,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return (&builder{}).
		moveTo(x1, y1).
		lineTo(x2, y2).
		lineTo(x3, y3).
		close().
		path()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	b := &builder{}
	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	for i, k := range []int{0, 2, 4, 1, 3} {
		angle := float64(k)*2*math.Pi/5 - math.Pi/2
		x, y := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		if i == 0 {
			b.moveTo(x, y)
		} else {
			b.lineTo(x, y)
		}
	}
	return b.close().path()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return (&builder{}).
		moveTo(x1, y1).
		lineTo(x2, y1).
		lineTo(x2, y2).
		lineTo(x1, y2).
		close().
		path()
}

// polygon builds a regular polygon with n corners.
func polygon(cx, cy, r float64, n int, phase float64) path.Path {
	b := &builder{}
	for i := range n {
		angle := phase + float64(i)*2*math.Pi/float64(n)
		x, y := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		if i == 0 {
			b.moveTo(x, y)
		} else {
			b.lineTo(x, y)
		}
	}
	return b.close().path()
}
