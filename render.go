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

// Package tinyvec fills vector paths and draws outline text on small
// displays.
//
// Paths are filled with the even-odd rule by a scanline edge-flag
// rasteriser, either with exact binary coverage ([ModeMono]) or with
// eight vertical sub-samples per pixel ([ModeAA]).  All geometry uses
// fixed-point numbers with four fractional bits.
//
// Outlines are given as compact command streams (see [Opcode] and
// [CommandEncoder]), and fonts are collections of such streams in a small
// binary format (see [Font]).  A [Context] draws onto any [Surface].
package tinyvec

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"

	"seehuhn.de/go/tinyvec/testcases"
)

// RenderExample fills a test scene into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (outside) to 255 (inside).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int, mode Mode) error {
	img := &image.Gray{
		Pix:    buf,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
	c, err := NewContext(NewImageSurface(img), mode)
	if err != nil {
		return err
	}
	defer c.Close()

	c.SetFillColor(White)
	if err := c.BeginFill(); err != nil {
		return err
	}
	drawErr := c.DrawPath(tc.Path, tc.CTM)
	if err := c.EndFill(); err != nil {
		return err
	}
	return drawErr
}
