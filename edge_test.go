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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		n, d, q, r int32
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{-8, 2, -4, 0},
		{0, 5, 0, 0},
		{-1, 16, -1, 15},
		{15, 16, 0, 15},
	}
	for _, tc := range cases {
		q, r := floorDivMod(tc.n, tc.d)
		if q != tc.q || r != tc.r {
			t.Errorf("floorDivMod(%d, %d) = %d, %d, want %d, %d",
				tc.n, tc.d, q, r, tc.q, tc.r)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		v, u, want int32
	}{
		{17, 16, 2},
		{16, 16, 1},
		{1, 16, 1},
		{0, 16, 0},
		{-1, 16, 0},
		{-16, 16, -1},
		{-17, 16, -1},
		{-33, 16, -2},
		{3, 2, 2},
		{-3, 2, -1},
	}
	for _, tc := range cases {
		if got := ceilDiv(tc.v, tc.u); got != tc.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tc.v, tc.u, got, tc.want)
		}
	}
}

func TestFixed(t *testing.T) {
	if I(3) != 48 {
		t.Errorf("I(3) = %d", I(3))
	}
	if got := Fixed(-40).Int(); got != -2 {
		t.Errorf("Int truncates to %d", got)
	}
	if got := Mul(I(3), I(5)/2); got != I(15)/2 {
		t.Errorf("Mul = %d", got)
	}
	if got := FromFloat(-1.53); got != -24 {
		t.Errorf("FromFloat(-1.53) = %d", got)
	}
	if got := FromFloat(1e20); got != 1<<31-1 {
		t.Errorf("FromFloat saturates to %d", got)
	}
	if got := PointFromVec(vec.Vec2{X: 0.5, Y: 2}); got != (Point{8, 32}) {
		t.Errorf("PointFromVec = %v", got)
	}
}

// exactCeil returns ceil(a/b) for b > 0.
func exactCeil(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

func TestEdgeMatchesExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() Fixed {
		return Fixed(rng.IntN(2*32768) - 32768)
	}
	for _, unit := range []int32{FixedScale, subscanlineUnit} {
		for range 2000 {
			top, bottom := orderEdge(Point{coord(), coord()}, Point{coord(), coord()})

			var e edge
			ok := e.initEdge(top, bottom, unit)
			wantY := exactCeil(int64(top.Y), int64(unit))
			wantHeight := exactCeil(int64(bottom.Y), int64(unit)) - wantY
			if ok != (wantHeight > 0) {
				t.Fatalf("%v-%v: initEdge returned %t", top, bottom, ok)
			}
			if !ok {
				continue
			}
			if int64(e.y) != wantY || int64(e.height) != wantHeight {
				t.Fatalf("%v-%v: y=%d height=%d, want %d %d",
					top, bottom, e.y, e.height, wantY, wantHeight)
			}

			dN := int64(bottom.Y - top.Y)
			dM := int64(bottom.X - top.X)
			for e.height > 0 {
				// x where the segment crosses scanline e.y, in units
				num := dN*int64(top.X) + dM*(int64(e.y)*int64(unit)-int64(top.Y))
				want := exactCeil(num, dN*int64(unit))
				if int64(e.x) != want {
					t.Fatalf("%v-%v, unit %d, scanline %d: x=%d, want %d",
						top, bottom, unit, e.y, e.x, want)
				}
				e.step()
			}
		}
	}
}

func TestEdgeHorizontal(t *testing.T) {
	var e edge
	if e.initEdge(Pt(1, 5), Pt(30, 5), FixedScale) {
		t.Error("horizontal edge was not skipped")
	}
	// between two scanlines
	if e.initEdge(Point{0, 17}, Point{40, 31}, FixedScale) {
		t.Error("edge without scanline crossing was not skipped")
	}
}
