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
	"errors"
	"fmt"
	"image/color"
)

// Mode selects the fill algorithm of a [Context].
type Mode int

const (
	// ModeMono fills with exact binary coverage, sampling pixel centers.
	ModeMono Mode = iota

	// ModeAA fills with anti-aliasing, using 8 sub-scanlines per row.
	ModeAA
)

func (m Mode) String() string {
	switch m {
	case ModeMono:
		return "mono"
	case ModeAA:
		return "aa"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	// ErrNoSurface is returned when the host surface cannot be captured.
	ErrNoSurface = errors.New("tinyvec: surface unavailable")

	// ErrModeUnsupported is returned when a mode cannot be used with the
	// surface, for example anti-aliasing on a two-tone display.
	ErrModeUnsupported = errors.New("tinyvec: mode not supported by surface")

	// ErrFillActive is returned by operations which are not allowed
	// while a fill is in progress.
	ErrFillActive = errors.New("tinyvec: fill already in progress")

	// ErrNoFill is returned by drawing operations outside of
	// BeginFill/EndFill.
	ErrNoFill = errors.New("tinyvec: no fill in progress")

	// ErrClosed is returned after Close has been called.
	ErrClosed = errors.New("tinyvec: context closed")
)

// rasteriser is a fill strategy.  It owns the flag plane in which the
// edges of one fill session are accumulated.
type rasteriser interface {
	// subpixelAdjust returns the offset which places the strategy's
	// sample points correctly.
	subpixelAdjust() Fixed

	// plotEdge records a segment given in device coordinates.
	plotEdge(a, b Point)

	// endFill composites the recorded coverage inside win into f and
	// zeroes the flag plane.
	endFill(f Frame, win window, fill color.RGBA)
}

// window is the inclusive range of pixels an endFill needs to visit.
type window struct {
	rowMin, rowMax int
	colMin, colMax int
}

func newRasteriser(m Mode, width, height int) rasteriser {
	if m == ModeAA {
		return newAARasteriser(width, height)
	}
	return newMonoRasteriser(width, height)
}

// Context renders filled paths and text onto a [Surface].
//
// A drawing is made of fill sessions: BeginFill starts a session,
// DrawCommands, DrawPath and DrawString add outlines, and EndFill paints
// the interior of all outlines (even-odd rule) in the fill color.
//
// A Context is not safe for concurrent use.
type Context struct {
	surface Surface
	mode    Mode
	raster  rasteriser
	width   int
	height  int

	// bounding box of all points transformed during the current fill
	extentMin, extentMax Point

	// device space path state
	cursor, start Point

	offset         Point
	scaleFrom      Point
	scaleTo        Point
	subpixelAdjust Fixed

	fillColor color.RGBA
	filling   bool
}

// NewContext returns a context drawing onto s with the given mode.
// The frame size is taken from s at this point.  If s cannot be captured,
// ErrNoSurface is returned and the caller may try again later.  A frame
// without pixels also gives ErrNoSurface.
func NewContext(s Surface, mode Mode) (*Context, error) {
	c := &Context{
		surface:   s,
		fillColor: White,
		scaleFrom: Point{1, 1},
		scaleTo:   Point{1, 1},
	}
	if err := c.SetMode(mode); err != nil {
		return nil, err
	}
	return c, nil
}

// SetMode switches the fill algorithm, reallocating the flag plane.
// It must not be called during a fill.
func (c *Context) SetMode(mode Mode) error {
	if c.filling {
		return ErrFillActive
	}
	if c.surface == nil {
		return ErrClosed
	}

	f := c.surface.Capture()
	if f == nil {
		return ErrNoSurface
	}
	width, height := f.Size()
	twoTone := f.TwoTone()
	c.surface.Release(f)
	if width <= 0 || height <= 0 {
		return ErrNoSurface
	}

	if mode == ModeAA && twoTone {
		return ErrModeUnsupported
	}

	c.mode = mode
	c.width = width
	c.height = height
	c.raster = newRasteriser(mode, width, height)
	c.subpixelAdjust = c.raster.subpixelAdjust()
	Logger().Debug("tinyvec: context ready",
		"mode", mode, "width", width, "height", height)
	return nil
}

// Mode returns the current fill algorithm.
func (c *Context) Mode() Mode {
	return c.mode
}

// Close releases the flag plane.  The context cannot be used afterwards.
func (c *Context) Close() {
	c.raster = nil
	c.surface = nil
	c.filling = false
}

// SetFillColor sets the color used by EndFill.
func (c *Context) SetFillColor(col color.RGBA) {
	c.fillColor = col
}

// FillColor returns the color used by EndFill.
func (c *Context) FillColor() color.RGBA {
	return c.fillColor
}

// SetOffset sets the device-space translation applied to all points.
func (c *Context) SetOffset(offset Point) {
	c.offset = offset
}

// SetScale sets the scaling applied to all points: coordinates are
// multiplied by to and divided by from, separately on each axis.
// The components of from must be non-zero.
func (c *Context) SetScale(from, to Point) {
	c.scaleFrom = from
	c.scaleTo = to
}

// BeginFill starts a fill session.
func (c *Context) BeginFill() error {
	if c.raster == nil {
		return ErrClosed
	}
	if c.filling {
		return ErrFillActive
	}
	c.filling = true

	// an inverted box, so that the first point sets both corners
	c.extentMin = Point{I(c.width), I(c.height)}
	c.extentMax = Point{}

	c.cursor = Point{}
	c.start = Point{}
	return nil
}

// EndFill paints the interior of everything drawn since BeginFill and
// ends the session.  The flag plane is left empty.
func (c *Context) EndFill() error {
	if !c.filling {
		return ErrNoFill
	}
	c.filling = false

	f := c.surface.Capture()
	if f == nil {
		// the coverage cannot be used, but the plane must still be empty
		// for the next session
		c.raster.endFill(emptyFrame{}, window{rowMin: 0, rowMax: -1}, c.fillColor)
		return ErrNoSurface
	}
	defer c.surface.Release(f)

	win := window{
		rowMin: c.extentMin.Y.Int(),
		rowMax: c.extentMax.Y.Int(),
		colMin: c.extentMin.X.Int(),
		colMax: c.extentMax.X.Int(),
	}
	c.raster.endFill(f, win, c.fillColor)
	return nil
}

// transformPoints maps path coordinates to device space and grows the
// fill extents to include the results.
func (c *Context) transformPoints(dst, src []Point, advance Point) {
	for i, p := range src {
		q := Point{
			X: scaleCoord(p.X+advance.X, c.scaleTo.X, c.scaleFrom.X),
			Y: scaleCoord(p.Y+advance.Y, c.scaleTo.Y, c.scaleFrom.Y),
		}
		q.X += c.offset.X + c.subpixelAdjust
		q.Y += c.offset.Y + c.subpixelAdjust

		c.extentMin.X = min(c.extentMin.X, q.X)
		c.extentMin.Y = min(c.extentMin.Y, q.Y)
		c.extentMax.X = max(c.extentMax.X, q.X)
		c.extentMax.Y = max(c.extentMax.Y, q.Y)

		dst[i] = q
	}
}

// scaleCoord returns v*to/from.  The product is formed in 64 bits, since
// font units times a pixel size in Fixed easily exceed the int32 range.
func scaleCoord(v, to, from Fixed) Fixed {
	return Fixed(int64(v) * int64(to) / int64(from))
}

// emptyFrame is used to flush the flag plane when no frame is available.
type emptyFrame struct{}

func (emptyFrame) Size() (int, int)             { return 0, 0 }
func (emptyFrame) Span(int) (int, int)          { return 0, -1 }
func (emptyFrame) TwoTone() bool                { return false }
func (emptyFrame) Pixel(int, int) color.RGBA    { return color.RGBA{} }
func (emptyFrame) SetPixel(int, int, color.RGBA) {}
