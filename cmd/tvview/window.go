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

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// runWindow shows the viewer in a desktop window.  It blocks until the
// window is closed.
func runWindow(v *viewer, zoom int) error {
	g := &game{v: v}
	if err := g.refresh(); err != nil {
		return err
	}

	tc := v.scene()
	ebiten.SetWindowSize(tc.Width*zoom, tc.Height*zoom)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	v   *viewer
	img *ebiten.Image
}

// refresh renders the current scene into the window image.
func (g *game) refresh() error {
	rgba, err := g.v.render()
	if err != nil {
		return err
	}
	b := rgba.Bounds()
	if g.img == nil || g.img.Bounds() != b {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(rgba.Pix)
	ebiten.SetWindowTitle(g.v.title())
	return nil
}

func (g *game) Update() error {
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.v.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.v.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.v.toggleMode()
	default:
		changed = false
	}
	if changed {
		return g.refresh()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	tc := g.v.scene()
	return tc.Width, tc.Height
}
