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

// Package testcases holds the scenes used to test and preview the
// tinyvec rasterisers.  Every scene is filled with the even-odd rule.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)

	// Overlapping is set if parts of the path overlap, so that even-odd
	// and non-zero filling give different results.
	Overlapping bool
}

// builder records path commands.
type builder struct {
	cmds []path.Command
	pts  [][]vec.Vec2
}

func (b *builder) moveTo(x, y float64) *builder {
	return b.add(path.CmdMoveTo, pt(x, y))
}

func (b *builder) lineTo(x, y float64) *builder {
	return b.add(path.CmdLineTo, pt(x, y))
}

func (b *builder) quadTo(cx, cy, x, y float64) *builder {
	return b.add(path.CmdQuadTo, pt(cx, cy), pt(x, y))
}

func (b *builder) cubeTo(c1x, c1y, c2x, c2y, x, y float64) *builder {
	return b.add(path.CmdCubeTo, pt(c1x, c1y), pt(c2x, c2y), pt(x, y))
}

func (b *builder) close() *builder {
	return b.add(path.CmdClose)
}

func (b *builder) add(cmd path.Command, pts ...vec.Vec2) *builder {
	b.cmds = append(b.cmds, cmd)
	b.pts = append(b.pts, pts)
	return b
}

// path returns the recorded commands as a path iterator.
func (b *builder) path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, cmd := range b.cmds {
			if !yield(cmd, b.pts[i]) {
				return
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
