package tinyvec

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// benchmarkSizes stays below the 2048 pixel limit of the command encoding.
var benchmarkSizes = []int{20, 200, 1000}

// BenchmarkContextO benchmarks both fill modes drawing an "O" shape.
func BenchmarkContextO(b *testing.B) {
	for _, mode := range []Mode{ModeMono, ModeAA} {
		for _, size := range benchmarkSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", mode, size, size), func(b *testing.B) {
				dst := image.NewGray(image.Rect(0, 0, size, size))
				c, err := NewContext(NewImageSurface(dst), mode)
				if err != nil {
					b.Fatal(err)
				}
				defer c.Close()

				center := float64(size) / 2
				outerR := float64(size) * 0.45
				innerR := float64(size) * 0.30

				// encode once, as an application would store its outlines
				data, err := EncodePath(makeOPath(center, center, outerR, innerR), matrix.Identity)
				if err != nil {
					b.Fatal(err)
				}

				b.ReportAllocs()
				for b.Loop() {
					c.BeginFill()
					c.DrawCommands(Point{}, data)
					c.EndFill()
				}
			})
		}
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)

				// Outer circle (counter-clockwise)
				addCircleToVector(r, center, center, outerR, false)
				// Inner circle (clockwise)
				addCircleToVector(r, center, center, innerR, true)

				// Rasterize and composite
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkDrawString(b *testing.B) {
	fb := &FontBuilder{UnitsPerEm: I(100), Ascent: I(80), Descent: I(-20), CapHeight: I(70)}
	o, err := EncodePath(makeOPath(40, 35, 35, 25), matrix.Identity)
	if err != nil {
		b.Fatal(err)
	}
	for r := 'A'; r <= 'Z'; r++ {
		if err := fb.AddGlyph(r, I(80), o); err != nil {
			b.Fatal(err)
		}
	}
	data, err := fb.Bytes()
	if err != nil {
		b.Fatal(err)
	}
	f, err := ParseFont(data)
	if err != nil {
		b.Fatal(err)
	}

	c, err := NewContext(NewFramebuffer(320, 240), ModeAA)
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()
	c.SetTextEmHeight(f, I(24))
	c.SetOffset(Pt(160, 120))

	b.ReportAllocs()
	for b.Loop() {
		c.BeginFill()
		c.DrawString("THE QUICK BROWN FOX", f, AlignCenter, AnchorMiddle)
		c.EndFill()
	}
}

// makeOPath creates an "O" shape path.
// Outer circle is counter-clockwise, inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// Outer circle (counter-clockwise)
		addCircleToPath(yield, cx, cy, outerR, false)
		// Inner circle (clockwise)
		addCircleToPath(yield, cx, cy, innerR, true)
	}
}

// addCircleToPath adds a circle to a path using cubic Bézier curves.
// Uses a stack-allocated buffer to avoid heap allocations.
func addCircleToPath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	var buf [3]vec.Vec2 // stack-allocated, reused for each yield

	// control points of the four quarters, starting at the top
	var quarters [4][3]vec.Vec2
	if clockwise {
		quarters = [4][3]vec.Vec2{
			{{X: cx - kr, Y: cy - r}, {X: cx - r, Y: cy - kr}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy + kr}, {X: cx - kr, Y: cy + r}, {X: cx, Y: cy + r}},
			{{X: cx + kr, Y: cy + r}, {X: cx + r, Y: cy + kr}, {X: cx + r, Y: cy}},
			{{X: cx + r, Y: cy - kr}, {X: cx + kr, Y: cy - r}, {X: cx, Y: cy - r}},
		}
	} else {
		quarters = [4][3]vec.Vec2{
			{{X: cx + kr, Y: cy - r}, {X: cx + r, Y: cy - kr}, {X: cx + r, Y: cy}},
			{{X: cx + r, Y: cy + kr}, {X: cx + kr, Y: cy + r}, {X: cx, Y: cy + r}},
			{{X: cx - kr, Y: cy + r}, {X: cx - r, Y: cy + kr}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy - kr}, {X: cx - kr, Y: cy - r}, {X: cx, Y: cy - r}},
		}
	}

	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return
	}
	for _, q := range quarters {
		buf = q
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
	}
	yield(path.CmdClose, nil)
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
