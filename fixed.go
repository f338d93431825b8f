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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Fixed is a fixed-point number with 4 fractional bits.
type Fixed int32

// Fixed-point conversion constants.
const (
	FixedShift = 4
	FixedScale = 1 << FixedShift
)

// I converts an integer to fixed point.
func I(n int) Fixed {
	return Fixed(n * FixedScale)
}

// FromFloat converts x to fixed point, rounding to the nearest
// representable value.  Values outside the range of Fixed saturate.
func FromFloat(x float64) Fixed {
	v := math.Round(x * FixedScale)
	return Fixed(max(min(v, math.MaxInt32), math.MinInt32))
}

// Int truncates f toward zero.
func (f Fixed) Int() int {
	return int(f / FixedScale)
}

// Float returns f as a floating point number.
func (f Fixed) Float() float64 {
	return float64(f) / FixedScale
}

// Mul multiplies two fixed-point numbers.
func Mul(a, b Fixed) Fixed {
	return a * b / FixedScale
}

// Point is a pair of fixed-point coordinates.
type Point struct {
	X, Y Fixed
}

// Pt returns the point with integer coordinates (x, y).
func Pt(x, y int) Point {
	return Point{X: I(x), Y: I(y)}
}

// PointFromVec rounds v to the nearest fixed-point position.
func PointFromVec(v vec.Vec2) Point {
	return Point{X: FromFloat(v.X), Y: FromFloat(v.Y)}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// midpoint returns (p+q)/2, truncating toward zero like the rest of the
// fixed-point pipeline.
func midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// floorDivMod computes floor(numerator/denominator) and the matching
// non-negative remainder.  Go's / and % truncate toward zero, which would
// move every edge with a negative coordinate by one unit.
// The denominator must be positive.
func floorDivMod[T int32 | int64](numerator, denominator T) (floor, mod T) {
	floor = numerator / denominator
	mod = numerator % denominator
	if mod < 0 {
		floor--
		mod += denominator
	}
	return floor, mod
}

// ceilDiv returns ceil(value/unit) for positive unit.
func ceilDiv(value, unit int32) int32 {
	q, _ := floorDivMod(value-1+unit, unit)
	return q
}
