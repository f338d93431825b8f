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
	"fmt"
)

// Opcode identifies a record in a command stream.  The values are the
// ASCII letters of the corresponding SVG path commands.
type Opcode uint16

// These are the opcodes understood by [Context.DrawCommands].
const (
	OpMoveTo       Opcode = 'M' // x y
	OpLineTo       Opcode = 'L' // x y
	OpHLineTo      Opcode = 'H' // x
	OpVLineTo      Opcode = 'V' // y
	OpCubeTo       Opcode = 'C' // x1 y1 x2 y2 x y
	OpSmoothCubeTo Opcode = 'S' // x2 y2 x y
	OpQuadTo       Opcode = 'Q' // x1 y1 x y
	OpSmoothQuadTo Opcode = 'T' // x y
	OpClose        Opcode = 'Z'
)

// NumArgs returns the number of parameters following op in a stream.
// The second return value is false for unknown opcodes.
func (op Opcode) NumArgs() (int, bool) {
	switch op {
	case OpMoveTo, OpLineTo, OpSmoothQuadTo:
		return 2, true
	case OpHLineTo, OpVLineTo:
		return 1, true
	case OpCubeTo:
		return 6, true
	case OpSmoothCubeTo, OpQuadTo:
		return 4, true
	case OpClose:
		return 0, true
	default:
		return 0, false
	}
}

func (op Opcode) String() string {
	if _, ok := op.NumArgs(); ok {
		return string(rune(op))
	}
	return fmt.Sprintf("Opcode(0x%04x)", uint16(op))
}

// FormatError reports malformed command data.
type FormatError struct {
	Offset int    // byte offset of the offending record
	Op     Opcode // opcode of the record, if it could be read
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tinyvec: bad command data at offset %d: %s", e.Offset, e.Reason)
}

// Command is one decoded record of a command stream.
type Command struct {
	Op   Opcode
	Args []Fixed
}

// maxArgs is the largest parameter count of any opcode.
const maxArgs = 6

// decodeCommand reads the record starting at data[pos:].  The returned
// arguments are stored in args.  On success, the offset of the next
// record is returned.
func decodeCommand(data []byte, pos int, args *[maxArgs]Fixed) (Opcode, int, int, error) {
	if len(data)-pos < 2 {
		return 0, 0, pos, &FormatError{Offset: pos, Reason: "truncated opcode"}
	}
	op := Opcode(binary.LittleEndian.Uint16(data[pos:]))
	n, ok := op.NumArgs()
	if !ok {
		return op, 0, pos, &FormatError{Offset: pos, Op: op, Reason: fmt.Sprintf("unknown opcode 0x%04x", uint16(op))}
	}
	end := pos + 2 + 2*n
	if end > len(data) {
		return op, 0, pos, &FormatError{Offset: pos, Op: op, Reason: fmt.Sprintf("truncated %s record", op)}
	}
	for i := range n {
		args[i] = Fixed(int16(binary.LittleEndian.Uint16(data[pos+2+2*i:])))
	}
	return op, n, end, nil
}

// DecodeCommands decodes a complete command stream.  If the data is
// malformed, the records before the error are returned together with a
// [*FormatError].
func DecodeCommands(data []byte) ([]Command, error) {
	var res []Command
	var args [maxArgs]Fixed
	pos := 0
	for pos < len(data) {
		op, n, next, err := decodeCommand(data, pos, &args)
		if err != nil {
			return res, err
		}
		res = append(res, Command{Op: op, Args: append([]Fixed(nil), args[:n]...)})
		pos = next
	}
	return res, nil
}

// curve families, for the reflection rule of the smooth commands
const (
	familyNone = iota
	familyCubic
	familyQuad
)

// DrawCommands adds the outline described by the command stream data to
// the current fill.  All coordinates are shifted by advance before the
// transform is applied.
//
// Curves are approximated by four line segments each.  If data is
// malformed, the remaining records are skipped and a [*FormatError] is
// returned; the edges plotted up to that point stay part of the fill.
func (c *Context) DrawCommands(advance Point, data []byte) error {
	if !c.filling {
		return ErrNoFill
	}

	// path state in path coordinates, for H, V and the smooth curves
	var cur, start, ctrl Point
	family := familyNone

	var args [maxArgs]Fixed
	var dev [3]Point
	pos := 0
	for pos < len(data) {
		op, _, next, err := decodeCommand(data, pos, &args)
		if err != nil {
			Logger().Error("tinyvec: aborting command stream",
				"offset", pos, "len", len(data), "err", err)
			return err
		}
		pos = next

		switch op {
		case OpMoveTo:
			cur = Point{args[0], args[1]}
			start = cur
			c.transformPoints(dev[:1], []Point{cur}, advance)
			c.cursor = dev[0]
			c.start = dev[0]
			family = familyNone

		case OpLineTo, OpHLineTo, OpVLineTo:
			switch op {
			case OpLineTo:
				cur = Point{args[0], args[1]}
			case OpHLineTo:
				cur.X = args[0]
			case OpVLineTo:
				cur.Y = args[0]
			}
			c.transformPoints(dev[:1], []Point{cur}, advance)
			c.lineTo(dev[0])
			family = familyNone

		case OpCubeTo, OpSmoothCubeTo:
			var pts [3]Point
			if op == OpCubeTo {
				pts = [3]Point{{args[0], args[1]}, {args[2], args[3]}, {args[4], args[5]}}
			} else {
				c1 := cur
				if family == familyCubic {
					c1 = reflect(ctrl, cur)
				}
				pts = [3]Point{c1, {args[0], args[1]}, {args[2], args[3]}}
			}
			ctrl = pts[1]
			cur = pts[2]
			c.transformPoints(dev[:], pts[:], advance)
			c.cubeTo(dev[0], dev[1], dev[2])
			family = familyCubic

		case OpQuadTo, OpSmoothQuadTo:
			var pts [2]Point
			if op == OpQuadTo {
				pts = [2]Point{{args[0], args[1]}, {args[2], args[3]}}
			} else {
				q := cur
				if family == familyQuad {
					q = reflect(ctrl, cur)
				}
				pts = [2]Point{q, {args[0], args[1]}}
			}
			ctrl = pts[0]
			cur = pts[1]
			c.transformPoints(dev[:2], pts[:], advance)
			c.quadTo(dev[0], dev[1])
			family = familyQuad

		case OpClose:
			c.lineTo(c.start)
			cur = start
			family = familyNone
		}
	}
	return nil
}

// lineTo plots an edge from the cursor to p, given in device space.
func (c *Context) lineTo(p Point) {
	c.raster.plotEdge(c.cursor, p)
	c.cursor = p
}

// quadTo elevates the quadratic from the cursor to a cubic and plots it.
func (c *Context) quadTo(q, p Point) {
	p0 := c.cursor
	c1 := Point{X: (p0.X + 2*q.X) / 3, Y: (p0.Y + 2*q.Y) / 3}
	c2 := Point{X: (p.X + 2*q.X) / 3, Y: (p.Y + 2*q.Y) / 3}
	c.cubeTo(c1, c2, p)
}

// cubeTo plots the cubic from the cursor as four line segments.
func (c *Context) cubeTo(c1, c2, p Point) {
	pts := flattenCubic(c.cursor, c1, c2, p)
	for _, q := range pts[1:] {
		c.lineTo(q)
	}
}

// flattenCubic returns the points at t = 0, 1/4, 1/2, 3/4, 1 of the
// cubic Bézier curve p0, c1, c2, p3, found by two rounds of midpoint
// subdivision.
func flattenCubic(p0, c1, c2, p3 Point) [5]Point {
	left, right := subdivide(p0, c1, c2, p3)
	ll, _ := subdivide(left[0], left[1], left[2], left[3])
	rl, _ := subdivide(right[0], right[1], right[2], right[3])
	return [5]Point{p0, ll[3], left[3], rl[3], p3}
}

// subdivide splits a cubic Bézier curve at t = 1/2 (de Casteljau).
func subdivide(p0, c1, c2, p3 Point) (left, right [4]Point) {
	m01 := midpoint(p0, c1)
	m12 := midpoint(c1, c2)
	m23 := midpoint(c2, p3)
	a := midpoint(m01, m12)
	b := midpoint(m12, m23)
	m := midpoint(a, b)
	return [4]Point{p0, m01, a, m}, [4]Point{m, b, m23, p3}
}

// reflect returns the reflection of ctrl through p.
func reflect(ctrl, p Point) Point {
	return Point{X: 2*p.X - ctrl.X, Y: 2*p.Y - ctrl.Y}
}
