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
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrCoordinateRange is returned when a coordinate does not fit into the
// 16 bit fields of a command stream.
var ErrCoordinateRange = errors.New("tinyvec: coordinate out of range")

// CommandEncoder builds a command stream for [Context.DrawCommands].
//
// Coordinates are stored as 16 bit fixed-point numbers, so they must lie
// in the range [-2048, 2048).  The first out-of-range value is remembered
// and reported by Err; later calls are ignored.
type CommandEncoder struct {
	buf []byte
	err error
}

// Bytes returns the encoded stream.
func (e *CommandEncoder) Bytes() []byte {
	return e.buf
}

// Err returns the first error encountered while encoding.
func (e *CommandEncoder) Err() error {
	return e.err
}

// Reset discards the encoded data and any error.
func (e *CommandEncoder) Reset() {
	e.buf = e.buf[:0]
	e.err = nil
}

// MoveTo starts a new subpath at p.
func (e *CommandEncoder) MoveTo(p Point) {
	e.emit(OpMoveTo, p.X, p.Y)
}

// LineTo adds a line to p.
func (e *CommandEncoder) LineTo(p Point) {
	e.emit(OpLineTo, p.X, p.Y)
}

// HLineTo adds a horizontal line to x.
func (e *CommandEncoder) HLineTo(x Fixed) {
	e.emit(OpHLineTo, x)
}

// VLineTo adds a vertical line to y.
func (e *CommandEncoder) VLineTo(y Fixed) {
	e.emit(OpVLineTo, y)
}

// CubeTo adds a cubic Bézier curve with control points c1 and c2.
func (e *CommandEncoder) CubeTo(c1, c2, p Point) {
	e.emit(OpCubeTo, c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// SmoothCubeTo adds a cubic Bézier curve whose first control point is the
// reflection of the previous curve's second control point.
func (e *CommandEncoder) SmoothCubeTo(c2, p Point) {
	e.emit(OpSmoothCubeTo, c2.X, c2.Y, p.X, p.Y)
}

// QuadTo adds a quadratic Bézier curve with control point q.
func (e *CommandEncoder) QuadTo(q, p Point) {
	e.emit(OpQuadTo, q.X, q.Y, p.X, p.Y)
}

// SmoothQuadTo adds a quadratic Bézier curve whose control point is the
// reflection of the previous curve's control point.
func (e *CommandEncoder) SmoothQuadTo(p Point) {
	e.emit(OpSmoothQuadTo, p.X, p.Y)
}

// Close closes the current subpath.
func (e *CommandEncoder) Close() {
	e.emit(OpClose)
}

func (e *CommandEncoder) emit(op Opcode, args ...Fixed) {
	if e.err != nil {
		return
	}
	for _, a := range args {
		if a < math.MinInt16 || a > math.MaxInt16 {
			e.err = fmt.Errorf("%w: %g in %s record", ErrCoordinateRange, a.Float(), op)
			return
		}
	}
	e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(op))
	for _, a := range args {
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(int16(a)))
	}
}

// EncodePath converts p, transformed by m, into a command stream.
// The zero matrix is treated as the identity.
func EncodePath(p path.Path, m matrix.Matrix) ([]byte, error) {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	apply := func(v vec.Vec2) Point {
		return PointFromVec(vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		})
	}

	var e CommandEncoder
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			e.MoveTo(apply(pts[0]))
		case path.CmdLineTo:
			e.LineTo(apply(pts[0]))
		case path.CmdQuadTo:
			e.QuadTo(apply(pts[0]), apply(pts[1]))
		case path.CmdCubeTo:
			e.CubeTo(apply(pts[0]), apply(pts[1]), apply(pts[2]))
		case path.CmdClose:
			e.Close()
		}
		if e.err != nil {
			return nil, e.err
		}
	}
	return e.Bytes(), nil
}

// DrawPath adds the outline of p, transformed by m, to the current fill.
// Coordinates after applying m are in pixels, before the context's own
// offset and scale.
func (c *Context) DrawPath(p path.Path, m matrix.Matrix) error {
	if !c.filling {
		return ErrNoFill
	}
	data, err := EncodePath(p, m)
	if err != nil {
		return err
	}
	return c.DrawCommands(Point{}, data)
}
