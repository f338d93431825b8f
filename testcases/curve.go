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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_below",
		Path:   quadraticCurve(10, 20, 32, 55, 54, 20), // control point below chord
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_shallow",
		Path:   cubicCurve(10, 32, 22, 28, 42, 28, 54, 32), // control points near chord
		Width:  64,
		Height: 64,
	},
	{
		Name:        "cubic_loop",
		Path:        cubicCurve(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting loop
		Width:       64,
		Height:      64,
		Overlapping: true,
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32), // all control points coincident
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rect",
		Path:   roundedRect(8, 12, 56, 52, 10),
		Width:  64,
		Height: 64,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return (&builder{}).
		moveTo(x1, y1).
		quadTo(cx, cy, x2, y2).
		close().
		path()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return (&builder{}).
		moveTo(x1, y1).
		cubeTo(c1x, c1y, c2x, c2y, x2, y2).
		close().
		path()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) path.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&builder{}).
		moveTo(x1, y1).
		quadTo((x1+midX)/2, y1-20, midX, midY). // first quadratic curves up
		quadTo((midX+x2)/2, y2+20, x2, y2).     // second quadratic curves down
		close().
		path()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	return appendEllipse(&builder{}, cx, cy, rx, ry, false).path()
}

// appendEllipse adds a closed ellipse to b, starting at the right.
func appendEllipse(b *builder, cx, cy, rx, ry float64, reverse bool) *builder {
	kx := rx * kappa
	ky := ry * kappa

	b.moveTo(cx+rx, cy)
	if reverse {
		b.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		b.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		b.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		b.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		b.cubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		b.cubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		b.cubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		b.cubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	return b.close()
}

// roundedRect builds a rectangle with quarter circle corners of radius r.
func roundedRect(x1, y1, x2, y2, r float64) path.Path {
	k := r * kappa
	return (&builder{}).
		moveTo(x1+r, y1).
		lineTo(x2-r, y1).
		cubeTo(x2-r+k, y1, x2, y1+r-k, x2, y1+r).
		lineTo(x2, y2-r).
		cubeTo(x2, y2-r+k, x2-r+k, y2, x2-r, y2).
		lineTo(x1+r, y2).
		cubeTo(x1+r-k, y2, x1, y2-r+k, x1, y2-r).
		lineTo(x1, y1+r).
		cubeTo(x1, y1+r-k, x1+r-k, y1, x1+r, y1).
		close().
		path()
}
