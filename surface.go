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
	"image"
	"image/color"
	"image/draw"
)

// Surface is a drawing target owned by the host.
type Surface interface {
	// Capture grants exclusive access to the pixels until the frame is
	// passed to Release.  It returns nil if the pixels are unavailable.
	Capture() Frame

	// Release ends the access granted by Capture.
	Release(Frame)
}

// Frame is a captured, row-addressable pixel buffer.
type Frame interface {
	// Size returns the dimensions of the frame in pixels.
	Size() (width, height int)

	// Span returns the inclusive range of valid columns in row y.
	// Rows without valid pixels return maxX < minX.
	Span(y int) (minX, maxX int)

	// TwoTone reports whether the frame can only show black and white.
	TwoTone() bool

	// Pixel returns the color at (x, y).
	Pixel(x, y int) color.RGBA

	// SetPixel stores c at (x, y), converting it to the native format.
	SetPixel(x, y int, c color.RGBA)
}

// Common colors.
var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{A: 0xFF}
)

// ImageSurface draws into an in-memory image.
// The image bounds are translated so that the top-left pixel is (0, 0).
type ImageSurface struct {
	Img draw.Image
}

// NewImageSurface returns a surface drawing into img.
func NewImageSurface(img draw.Image) *ImageSurface {
	return &ImageSurface{Img: img}
}

// Capture implements [Surface].
func (s *ImageSurface) Capture() Frame {
	if s.Img == nil {
		return nil
	}
	return imageFrame{img: s.Img, origin: s.Img.Bounds().Min}
}

// Release implements [Surface].
func (s *ImageSurface) Release(Frame) {}

type imageFrame struct {
	img    draw.Image
	origin image.Point
}

func (f imageFrame) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f imageFrame) Span(y int) (int, int) {
	return 0, f.img.Bounds().Dx() - 1
}

func (f imageFrame) TwoTone() bool { return false }

func (f imageFrame) Pixel(x, y int) color.RGBA {
	c := f.img.At(f.origin.X+x, f.origin.Y+y)
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (f imageFrame) SetPixel(x, y int, c color.RGBA) {
	f.img.Set(f.origin.X+x, f.origin.Y+y, c)
}

// Framebuffer is a 16 bit per pixel RGB565 display buffer, as used by most
// small SPI displays.  Pixels are stored little-endian.
type Framebuffer struct {
	Width, Height int
	Stride        int // bytes per row
	Pix           []byte
}

// NewFramebuffer allocates a zeroed framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	return &Framebuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// Capture implements [Surface].
func (fb *Framebuffer) Capture() Frame {
	if fb.Pix == nil || len(fb.Pix) < fb.Stride*fb.Height {
		return nil
	}
	return fb
}

// Release implements [Surface].
func (fb *Framebuffer) Release(Frame) {}

// Size implements [Frame].
func (fb *Framebuffer) Size() (int, int) { return fb.Width, fb.Height }

// Span implements [Frame].
func (fb *Framebuffer) Span(y int) (int, int) { return 0, fb.Width - 1 }

// TwoTone implements [Frame].
func (fb *Framebuffer) TwoTone() bool { return false }

// Pixel implements [Frame].
func (fb *Framebuffer) Pixel(x, y int) color.RGBA {
	off := y*fb.Stride + 2*x
	p := uint16(fb.Pix[off]) | uint16(fb.Pix[off+1])<<8
	r, g, b := rgb888From565(p)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// SetPixel implements [Frame].
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	off := y*fb.Stride + 2*x
	p := rgb565(c.R, c.G, c.B)
	fb.Pix[off] = byte(p)
	fb.Pix[off+1] = byte(p >> 8)
}

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8(rr * 255 / 31), uint8(gg * 255 / 63), uint8(bb * 255 / 31)
}

// Bitmap is a 1 bit per pixel black and white display buffer.  Bit
// x%8 of byte x/8 in a row holds pixel x; a set bit is white.
type Bitmap struct {
	Width, Height int
	Stride        int // bytes per row
	Pix           []byte
}

// NewBitmap allocates a black bitmap.
func NewBitmap(width, height int) *Bitmap {
	stride := (width + 7) / 8
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// Capture implements [Surface].
func (bm *Bitmap) Capture() Frame {
	if bm.Pix == nil || len(bm.Pix) < bm.Stride*bm.Height {
		return nil
	}
	return bm
}

// Release implements [Surface].
func (bm *Bitmap) Release(Frame) {}

// Size implements [Frame].
func (bm *Bitmap) Size() (int, int) { return bm.Width, bm.Height }

// Span implements [Frame].
func (bm *Bitmap) Span(y int) (int, int) { return 0, bm.Width - 1 }

// TwoTone implements [Frame].
func (bm *Bitmap) TwoTone() bool { return true }

// Pixel implements [Frame].
func (bm *Bitmap) Pixel(x, y int) color.RGBA {
	if bm.Pix[y*bm.Stride+x/8]&(1<<(x%8)) != 0 {
		return White
	}
	return Black
}

// SetPixel implements [Frame].  Colors brighter than mid gray are white.
func (bm *Bitmap) SetPixel(x, y int, c color.RGBA) {
	mask := byte(1) << (x % 8)
	p := &bm.Pix[y*bm.Stride+x/8]
	if int(c.R)+int(c.G)+int(c.B) >= 3*0x80 {
		*p |= mask
	} else {
		*p &^= mask
	}
}
