package gridmerge

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var (
	GridColor   = color.RGBA{128, 128, 128, 255}
	MergedColor = color.RGBA{220, 40, 40, 255}
	ColumnColor = color.RGBA{40, 80, 220, 255}
	Background  = color.RGBA{255, 255, 255, 255}
)

// Preview is a top view of a merge: the original grid lines, the merged path and the column at the joint. The Y axis points up as in the model.
type Preview struct {
	Grids  []Line
	Path   *MergedPath
	Column *Point

	// Margin around the drawing and the column size, as a fraction of the largest extent of the drawing.
	Margin     float64
	ColumnSize float64
	StrokeSize float64
}

// NewPreview returns the preview of merging a and b. The merged path and column are only set when the lines intersect.
func NewPreview(a, b Line) *Preview {
	p := &Preview{
		Grids:      []Line{a, b},
		Margin:     0.1,
		ColumnSize: 0.04,
		StrokeSize: 0.005,
	}
	if joint, ok := Intersect(a, b); ok {
		path := BuildPath(a, b, joint)
		p.Path = &path
		p.Column = &joint
	}
	return p
}

// extent returns the largest side of the bounding box, or one for an empty drawing.
func (p *Preview) extent() float64 {
	r := p.Bounds()
	if d := math.Max(r.W, r.H); Epsilon < d {
		return d
	}
	return 1.0
}

// Bounds returns the bounding box of everything drawn, excluding the margin.
func (p *Preview) Bounds() Rect {
	pts := []Point{}
	for _, l := range p.Grids {
		pts = append(pts, l.Start, l.End)
	}
	if p.Path != nil {
		pts = append(pts, p.Path.Coords()...)
	}
	if p.Column != nil {
		pts = append(pts, *p.Column)
	}
	if len(pts) == 0 {
		return Rect{}
	}

	r := Rect{pts[0].X, pts[0].Y, 0.0, 0.0}
	for _, pt := range pts[1:] {
		r = r.AddPoint(pt)
	}
	return r
}

// viewBox returns the drawing bounds including the margin, in model coordinates.
func (p *Preview) viewBox() Rect {
	r := p.Bounds()
	m := p.Margin * p.extent()
	return Rect{r.X - m, r.Y - m, r.W + 2.0*m, r.H + 2.0*m}
}

// view returns the transformation from model coordinates to a Y-down image of the view box scaled by f.
func (p *Preview) view(f float64) Matrix {
	r := p.viewBox()
	return Identity.Scale(f, f).ReflectYAt(r.H/2.0).Translate(-r.X, -r.Y)
}

// columnRect returns the square of the column marker in model coordinates.
func (p *Preview) columnRect() Rect {
	c := *p.Column
	s := p.ColumnSize * p.extent()
	return Rect{c.X - s/2.0, c.Y - s/2.0, s, s}
}

// WriteFile writes the preview to a file, the format is chosen by the extension: .svg, .svgz or .png. No file is left behind on error.
func (p *Preview) WriteFile(filename string) error {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		write = func(w io.Writer) error { return p.WriteSVG(w, nil) }
	case ".svgz":
		write = func(w io.Writer) error { return p.WriteSVG(w, &SVGOptions{Compression: -1}) }
	case ".png":
		write = func(w io.Writer) error { return p.WritePNG(w, DefaultResolution) }
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}
