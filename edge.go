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

// edge walks a line segment one scanline at a time.
//
// Scanlines are spaced unit fixed-point steps apart: 16 for whole device
// rows, 2 for the eight sub-scanlines of the anti-aliased rasteriser.
// The x coordinate is measured in the same unit, and is always the
// ceiling of the exact intersection of the segment with the scanline.
type edge struct {
	x           int32
	xStep       int32
	numerator   int32
	denominator int32
	errorTerm   int32 // DDA carry for x
	y           int32 // current scanline
	height      int32 // scanlines left
}

// initEdge prepares e for the segment from top to bottom, which must
// satisfy top.Y <= bottom.Y.  It reports whether the segment crosses at
// least one scanline; segments which do not are not plotted at all.
func (e *edge) initEdge(top, bottom Point, unit int32) bool {
	e.y = ceilDiv(int32(top.Y), unit)
	yEnd := ceilDiv(int32(bottom.Y), unit)
	e.height = yEnd - e.y
	if e.height <= 0 {
		return false
	}

	dN := int32(bottom.Y - top.Y)
	dM := int32(bottom.X - top.X)

	// x at the first scanline, offset so that the floor division yields
	// the ceiling.  The products can exceed 32 bits for tall edges far
	// from the origin.
	initial := int64(dM)*int64(unit*e.y-int32(top.Y)) +
		int64(dN)*int64(top.X) - 1 + int64(dN)*int64(unit)
	x, errorTerm := floorDivMod(initial, int64(dN)*int64(unit))
	e.x, e.errorTerm = int32(x), int32(errorTerm)
	e.xStep, e.numerator = floorDivMod(dM*unit, dN*unit)
	e.denominator = dN * unit
	return true
}

// step advances e to the next scanline.
func (e *edge) step() {
	e.x += e.xStep
	e.y++
	e.height--

	e.errorTerm += e.numerator
	if e.errorTerm >= e.denominator {
		e.x++
		e.errorTerm -= e.denominator
	}
}

// orderEdge returns a and b sorted by y.
func orderEdge(a, b Point) (top, bottom Point) {
	if a.Y > b.Y {
		return b, a
	}
	return a, b
}
