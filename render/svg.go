package render

import (
	"fmt"
	"io"

	jgeom "github.com/jbeda/geom"
	"github.com/osuushi/origami/internal/fold"
	"github.com/osuushi/origami/internal/geom"
	"github.com/pkg/errors"
)

// Writes SVG elements, remembering the first write error so that callers can
// check once at the end.
type svgWriter struct {
	w   io.Writer
	err error
}

func (svg *svgWriter) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

func (svg *svgWriter) start(viewBox jgeom.Rect) {
	svg.printf(`<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="%f %f %f %f">`+"\n",
		viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
	svg.printf(`<rect x="%f" y="%f" width="%f" height="%f" fill="black" stroke="none"/>`+"\n",
		viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (svg *svgWriter) end() error {
	svg.printf("</svg>\n")
	return errors.Wrap(svg.err, "writing svg")
}

func (svg *svgWriter) outline(boundary *geom.Boundary, strokeWidth float64) {
	svg.printf(`<polygon fill="none" stroke="white" stroke-width="%g" points="`, strokeWidth)
	for i, v := range boundary.Vertices() {
		if i > 0 {
			svg.printf(" ")
		}
		svg.printf("%.8f,%.8f", v.X, v.Y)
	}
	svg.printf(`"/>` + "\n")
}

// One <line> per segment, in the order given, over a black background, with
// the boundary outlined on top.
func LinesSVG(w io.Writer, segments []fold.CountedSegment, boundary *geom.Boundary, opts Options) error {
	svg := &svgWriter{w: w}
	svg.start(viewBox(boundary, opts.Padding))

	most := maxCount(segments, func(s fold.CountedSegment) int { return s.Count })
	svg.printf(`<g fill="none" stroke="white" stroke-width="%g">`+"\n", opts.StrokeWidth)
	for _, s := range segments {
		svg.printf(`<line count="%d" x1="%.8f" y1="%.8f" x2="%.8f" y2="%.8f" stroke-opacity="%.4f"/>`+"\n",
			s.Count, s.Segment.A.X, s.Segment.A.Y, s.Segment.B.X, s.Segment.B.Y, opts.opacity(s.Count, most))
	}
	svg.printf("</g>\n")

	svg.outline(boundary, opts.StrokeWidth)
	return svg.end()
}

// One <circle> per point, in the order given.
func PointsSVG(w io.Writer, points []fold.CountedPoint, boundary *geom.Boundary, opts Options) error {
	svg := &svgWriter{w: w}
	svg.start(viewBox(boundary, opts.Padding))

	most := maxCount(points, func(p fold.CountedPoint) int { return p.Count })
	svg.printf(`<g fill="white" stroke="none">` + "\n")
	for _, p := range points {
		svg.printf(`<circle count="%d" cx="%.8f" cy="%.8f" r="%g" opacity="%.4f"/>`+"\n",
			p.Count, p.Value.X, p.Value.Y, opts.Radius, opts.opacity(p.Count, most))
	}
	svg.printf("</g>\n")
	return svg.end()
}
