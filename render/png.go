package render

import (
	"io"
	"math"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/origami/internal/fold"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
)

// Rasterise lines and points into one PNG, size pixels wide. The height
// follows the boundary's aspect ratio.
func PNG(path string, result fold.Result, boundary *geom.Boundary, size int, opts Options) error {
	if size <= 0 {
		return errors.Errorf("png size must be positive, got %d", size)
	}
	box := viewBox(boundary, opts.Padding)
	scale := float64(size) / box.Width()
	width := size
	height := int(math.Round(float64(size) * box.Height() / box.Width()))

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Scale(scale, scale)
	c.Translate(-box.Min.X, -box.Min.Y)

	// Line widths are in pixels, not user units. Anything thinner than half a
	// pixel vanishes.
	c.SetLineWidth(math.Max(0.5, opts.StrokeWidth*scale))
	most := maxCount(result.Segments, func(s fold.CountedSegment) int { return s.Count })
	for _, s := range result.Segments {
		c.SetRGBA(1, 1, 1, opts.opacity(s.Count, most))
		c.DrawLine(s.Segment.A.X, s.Segment.A.Y, s.Segment.B.X, s.Segment.B.Y)
		c.Stroke()
	}

	most = maxCount(result.Points, func(p fold.CountedPoint) int { return p.Count })
	for _, p := range result.Points {
		c.SetRGBA(1, 1, 1, opts.opacity(p.Count, most))
		c.DrawCircle(p.Value.X, p.Value.Y, opts.Radius)
		c.Fill()
	}

	vertices := boundary.Vertices()
	c.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		c.LineTo(v.X, v.Y)
	}
	c.ClosePath()
	c.SetRGB(1, 1, 1)
	c.Stroke()

	return errors.Wrap(c.SavePNG(path), "saving png")
}

// Show an image inline in terminals that support it.
func Preview(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "previewing png")
}

var nameOnce sync.Once

// A random readable base name for output files, like "mighty-heron".
func DefaultName() string {
	nameOnce.Do(petname.NonDeterministicMode)
	return petname.Generate(2, "-")
}
