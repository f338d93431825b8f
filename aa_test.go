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
	"image"
	"image/color"
	"testing"
)

func TestAAFullCoverage(t *testing.T) {
	bg := color.RGBA{R: 50, G: 60, B: 70, A: 0xFF}
	fg := color.RGBA{R: 10, G: 200, B: 30, A: 0xFF}

	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	for y := range 12 {
		for x := range 12 {
			img.SetRGBA(x, y, bg)
		}
	}
	c, err := NewContext(NewImageSurface(img), ModeAA)
	if err != nil {
		t.Fatal(err)
	}
	fill(t, c, fg, rectCommands(I(2), I(3), I(9), I(7)))

	for y := range 12 {
		for x := range 12 {
			want := bg
			if x >= 2 && x < 9 && y >= 3 && y < 7 {
				want = fg
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestAACoverageMonotonic(t *testing.T) {
	prev := 256
	for k := range Fixed(FixedScale + 1) {
		c, img := newTestContext(t, 8, 4, ModeAA)
		fill(t, c, White, rectCommands(I(4)+k, 0, I(7), I(4)))

		got := int(img.RGBAAt(4, 1).R)
		if got > prev {
			t.Errorf("coverage increased from %d to %d at offset %d/16", prev, got, k)
		}
		prev = got

		if left := img.RGBAAt(3, 1); left != Black {
			t.Errorf("pixel left of the edge changed to %v", left)
		}
		switch k {
		case 0:
			if got != 255 {
				t.Errorf("aligned edge: coverage %d", got)
			}
		case FixedScale:
			if got != 0 {
				t.Errorf("edge at next pixel: coverage %d", got)
			}
		}
	}
}

func TestAAVerticalCoverage(t *testing.T) {
	// each sub-scanline adds one eighth
	for k := range Fixed(9) {
		c, img := newTestContext(t, 4, 4, ModeAA)
		fill(t, c, White, rectCommands(0, I(1), I(4), I(1)+2*k))
		want := uint8((255*int(k) + 4) / 8)
		if got := img.RGBAAt(1, 1).R; got != want {
			t.Errorf("%d sub-scanlines: got %d, want %d", k, got, want)
		}
	}
}

func TestBlend(t *testing.T) {
	src := color.RGBA{R: 255, G: 0, B: 100, A: 255}
	dst := color.RGBA{R: 0, G: 255, B: 100, A: 255}
	cases := []struct {
		a    int
		want color.RGBA
	}{
		{0, dst},
		{8, src},
		{4, color.RGBA{R: 128, G: 128, B: 100, A: 255}},
		{1, color.RGBA{R: 32, G: 223, B: 100, A: 255}},
	}
	for _, tc := range cases {
		if got := blend(src, dst, tc.a); got != tc.want {
			t.Errorf("blend(%d) = %v, want %v", tc.a, got, tc.want)
		}
	}
}

func TestAATwoToneUnsupported(t *testing.T) {
	_, err := NewContext(NewBitmap(16, 16), ModeAA)
	if !errors.Is(err, ErrModeUnsupported) {
		t.Errorf("got %v, want ErrModeUnsupported", err)
	}
}

func TestAAFlagsCleared(t *testing.T) {
	c, img := newTestContext(t, 24, 24, ModeAA)

	var e CommandEncoder
	e.MoveTo(Pt(-6, 2))
	e.LineTo(Pt(30, 11))
	e.QuadTo(Pt(12, 40), Pt(3, -5))
	e.MoveTo(Pt(10, 10))
	e.LineTo(Pt(11, 23))
	fill(t, c, White, e.Bytes())

	r := c.raster.(*aaRasteriser)
	for i, b := range r.flags {
		if b != 0 {
			t.Fatalf("flag byte %d is %08b after EndFill", i, b)
		}
	}

	before := append([]byte(nil), img.Pix...)
	fill(t, c, color.RGBA{G: 0xFF, A: 0xFF})
	if string(before) != string(img.Pix) {
		t.Error("empty fill session changed the image")
	}
}

func TestAARightBoundary(t *testing.T) {
	const w = 8
	cases := []struct {
		x1   int
		want int // number of filled columns starting at 4
	}{
		{7, 3},  // the edge toggles the last column
		{8, 4},  // the edge is exactly at the right boundary
		{12, 4}, // the edge is past the boundary and dropped
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("x1=%d", tc.x1), func(t *testing.T) {
			c, img := newTestContext(t, w, 4, ModeAA)
			fill(t, c, White, rectCommands(I(4), I(0), I(tc.x1), I(4)))
			checkRect(t, img, image.Rect(4, 0, 4+tc.want, 4), White)
		})
	}
}

func TestAAOffscreenLeft(t *testing.T) {
	c, img := newTestContext(t, 8, 8, ModeAA)
	fill(t, c, White, rectCommands(I(-5), I(1), I(3), I(6)))
	checkRect(t, img, image.Rect(0, 1, 3, 6), White)

	// crossings left of the plane land in column 0 and cancel out
	c2, img2 := newTestContext(t, 8, 8, ModeAA)
	fill(t, c2, White, rectCommands(I(-9), I(1), I(-2), I(6)))
	checkRect(t, img2, image.Rectangle{}, White)

	// a fractional left edge still covers column 0 completely
	c3, img3 := newTestContext(t, 8, 8, ModeAA)
	fill(t, c3, White, rectCommands(-FixedScale/2, I(1), I(3), I(6)))
	checkRect(t, img3, image.Rect(0, 1, 3, 6), White)
}
