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

package fontconv

import "seehuhn.de/go/tinyvec"

// outlineWriter encodes glyph contours, choosing the shortest command
// which reproduces each segment exactly.
type outlineWriter struct {
	enc tinyvec.CommandEncoder

	open      bool
	cur       tinyvec.Point
	quadCtrl  tinyvec.Point
	afterQuad bool
}

func (w *outlineWriter) moveTo(p tinyvec.Point) {
	w.closePath()
	w.enc.MoveTo(p)
	w.cur = p
	w.open = true
	w.afterQuad = false
}

func (w *outlineWriter) lineTo(p tinyvec.Point) {
	switch {
	case p == w.cur:
		return
	case p.Y == w.cur.Y:
		w.enc.HLineTo(p.X)
	case p.X == w.cur.X:
		w.enc.VLineTo(p.Y)
	default:
		w.enc.LineTo(p)
	}
	w.cur = p
	w.afterQuad = false
}

func (w *outlineWriter) quadTo(q, p tinyvec.Point) {
	implied := w.cur
	if w.afterQuad {
		implied = tinyvec.Point{X: 2*w.cur.X - w.quadCtrl.X, Y: 2*w.cur.Y - w.quadCtrl.Y}
	}
	if q == implied {
		w.enc.SmoothQuadTo(p)
	} else {
		w.enc.QuadTo(q, p)
	}
	w.cur = p
	w.quadCtrl = q
	w.afterQuad = true
}

func (w *outlineWriter) cubeTo(c1, c2, p tinyvec.Point) {
	w.enc.CubeTo(c1, c2, p)
	w.cur = p
	w.afterQuad = false
}

// closePath closes the current contour, if any.
func (w *outlineWriter) closePath() {
	if !w.open {
		return
	}
	w.enc.Close()
	w.open = false
	w.afterQuad = false
}

// finish closes the last contour and returns the encoded outline.
func (w *outlineWriter) finish() ([]byte, error) {
	w.closePath()
	if err := w.enc.Err(); err != nil {
		return nil, err
	}
	return w.enc.Bytes(), nil
}
