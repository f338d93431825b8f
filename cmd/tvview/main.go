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

// Command tvview shows the test scenes, rendered by tinyvec into an
// RGB565 framebuffer, in a desktop window.
//
// The left and right arrow keys select the scene, the space bar switches
// between monochrome and anti-aliased filling, and Escape quits.  With
// -png, a single frame is written to a file instead of opening a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/tinyvec"
	"seehuhn.de/go/tinyvec/fontconv"
	"seehuhn.de/go/tinyvec/testcases"
)

var (
	sceneColor = color.RGBA{R: 0xF0, G: 0xE0, B: 0xB0, A: 0xFF}
	textColor  = color.RGBA{R: 0x20, G: 0x90, B: 0xFF, A: 0xFF}
)

func main() {
	var scene, mode, fontFile, text, pngOut string
	var zoom int
	var verbose bool
	flag.StringVar(&scene, "scene", "curve_circle", "Scene to show first.")
	flag.StringVar(&mode, "mode", "aa", "Fill mode: mono or aa.")
	flag.StringVar(&fontFile, "font", "", "Font in tinyvec format (default: Go Regular).")
	flag.StringVar(&text, "text", "", "Text drawn over the scene.")
	flag.IntVar(&zoom, "zoom", 4, "Window zoom factor.")
	flag.StringVar(&pngOut, "png", "", "Write one frame to this PNG file and exit.")
	flag.BoolVar(&verbose, "v", false, "Log debug messages.")
	flag.Parse()

	if verbose {
		tinyvec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	v, err := newViewer(scene, mode, fontFile, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if pngOut != "" {
		err = writePNG(v, pngOut)
	} else {
		err = runWindow(v, zoom)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// viewer holds the scene selection and renders frames.
type viewer struct {
	names  []string
	scenes []testcases.TestCase
	index  int

	mode tinyvec.Mode
	font *tinyvec.Font
	text string
}

func newViewer(scene, mode, fontFile, text string) (*viewer, error) {
	v := &viewer{text: text}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			v.names = append(v.names, category+"_"+tc.Name)
			v.scenes = append(v.scenes, tc)
		}
	}
	v.index = slices.Index(v.names, scene)
	if v.index < 0 {
		return nil, fmt.Errorf("tvview: unknown scene %q", scene)
	}

	switch mode {
	case "mono":
		v.mode = tinyvec.ModeMono
	case "aa":
		v.mode = tinyvec.ModeAA
	default:
		return nil, fmt.Errorf("tvview: unknown mode %q", mode)
	}

	if text != "" {
		var data []byte
		var err error
		if fontFile != "" {
			data, err = os.ReadFile(fontFile)
		} else {
			data, err = fontconv.Convert(goregular.TTF, nil)
		}
		if err != nil {
			return nil, err
		}
		v.font, err = tinyvec.ParseFont(data)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (v *viewer) scene() testcases.TestCase {
	return v.scenes[v.index]
}

// step moves the scene selection by delta, wrapping around.
func (v *viewer) step(delta int) {
	n := len(v.scenes)
	v.index = ((v.index+delta)%n + n) % n
}

func (v *viewer) toggleMode() {
	if v.mode == tinyvec.ModeMono {
		v.mode = tinyvec.ModeAA
	} else {
		v.mode = tinyvec.ModeMono
	}
}

func (v *viewer) title() string {
	return fmt.Sprintf("tvview: %s (%s)", v.names[v.index], v.mode)
}

// render draws the current scene, and the text if any.
func (v *viewer) render() (*image.RGBA, error) {
	tc := v.scene()
	fb := tinyvec.NewFramebuffer(tc.Width, tc.Height)
	c, err := tinyvec.NewContext(fb, v.mode)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	c.SetFillColor(sceneColor)
	if err := c.BeginFill(); err != nil {
		return nil, err
	}
	drawErr := c.DrawPath(tc.Path, tc.CTM)
	if err := c.EndFill(); err != nil {
		return nil, err
	}
	if drawErr != nil {
		return nil, fmt.Errorf("%s: %w", v.names[v.index], drawErr)
	}

	if v.font != nil {
		c.SetTextEmHeight(v.font, tinyvec.I(max(tc.Height/5, 8)))
		c.SetOffset(tinyvec.Pt(tc.Width/2, tc.Height-1))
		c.SetFillColor(textColor)
		if err := c.BeginFill(); err != nil {
			return nil, err
		}
		drawErr := c.DrawString(v.text, v.font, tinyvec.AlignCenter, tinyvec.AnchorBottom)
		if err := c.EndFill(); err != nil {
			return nil, err
		}
		if drawErr != nil {
			return nil, drawErr
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	for y := range tc.Height {
		for x := range tc.Width {
			img.SetRGBA(x, y, fb.Pixel(x, y))
		}
	}
	return img, nil
}

func writePNG(v *viewer, fname string) error {
	img, err := v.render()
	if err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
