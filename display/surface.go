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

// Package display connects tinyvec to the TinyGo display ecosystem.
//
// [Surface] lets a [tinyvec.Context] draw onto any
// [tinygo.org/x/drivers.Displayer], and [Fonter] makes tinyvec outline
// fonts available to code written for [tinygo.org/x/tinyfont].
package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"seehuhn.de/go/tinyvec"
)

// Surface is a [tinyvec.Surface] backed by a TinyGo display driver.
//
// Most display drivers cannot read pixels back, so the surface keeps a
// shadow copy of the screen contents.  Drawing changes the shadow copy;
// when the frame is released, the changed pixels are sent to the driver
// and Display is called.
type Surface struct {
	dev     drivers.Displayer
	width   int
	height  int
	twoTone bool

	shadow   []color.RGBA
	dirty    image.Rectangle
	captured bool
	err      error
}

// NewSurface returns a surface for dev.  The screen is assumed to be
// filled with the background color.  If twoTone is set, the surface
// reports itself as black and white, and anti-aliased fills are refused.
func NewSurface(dev drivers.Displayer, background color.RGBA, twoTone bool) *Surface {
	w, h := dev.Size()
	s := &Surface{
		dev:     dev,
		width:   max(int(w), 0),
		height:  max(int(h), 0),
		twoTone: twoTone,
	}
	s.shadow = make([]color.RGBA, s.width*s.height)
	for i := range s.shadow {
		s.shadow[i] = background
	}
	return s
}

// Capture implements [tinyvec.Surface].  Only one frame can be
// captured at a time; while a frame is outstanding, Capture returns nil.
func (s *Surface) Capture() tinyvec.Frame {
	if s.captured || s.width == 0 || s.height == 0 {
		return nil
	}
	s.captured = true
	return (*frame)(s)
}

// Release implements [tinyvec.Surface].  It writes the changed pixels to
// the display and calls its Display method.  Errors are logged and can
// be retrieved with [Surface.Err].
func (s *Surface) Release(tinyvec.Frame) {
	if !s.captured {
		return
	}
	s.captured = false
	if s.dirty.Empty() {
		return
	}

	for y := s.dirty.Min.Y; y < s.dirty.Max.Y; y++ {
		row := s.shadow[y*s.width:]
		for x := s.dirty.Min.X; x < s.dirty.Max.X; x++ {
			s.dev.SetPixel(int16(x), int16(y), row[x])
		}
	}
	s.dirty = image.Rectangle{}

	if err := s.dev.Display(); err != nil {
		s.err = err
		tinyvec.Logger().Warn("display: update failed", "err", err)
	}
}

// Err returns the error from the most recent failed display update.
func (s *Surface) Err() error {
	return s.err
}

// frame is the captured view of a Surface.
type frame Surface

func (f *frame) Size() (int, int) { return f.width, f.height }

func (f *frame) Span(int) (int, int) { return 0, f.width - 1 }

func (f *frame) TwoTone() bool { return f.twoTone }

func (f *frame) Pixel(x, y int) color.RGBA {
	return f.shadow[y*f.width+x]
}

func (f *frame) SetPixel(x, y int, c color.RGBA) {
	p := &f.shadow[y*f.width+x]
	if *p == c {
		return
	}
	*p = c
	f.dirty = f.dirty.Union(image.Rect(x, y, x+1, y+1))
}
