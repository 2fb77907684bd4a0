package gridmerge

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// DefaultResolution is the width in pixels of rasterized previews.
const DefaultResolution = 800

// Image rasterizes the preview to an image that is width pixels wide.
func (p *Preview) Image(width int) *image.RGBA {
	if width < 1 {
		width = DefaultResolution
	}
	r := p.viewBox()
	f := float64(width) / r.W
	height := int(math.Ceil(r.H * f))
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	m := p.view(f)
	stroke := p.StrokeSize * p.extent() * f
	ras := vector.NewRasterizer(width, height)
	for _, l := range p.Grids {
		fillStroke(ras, img, m.Dot(l.Start), m.Dot(l.End), stroke, GridColor)
	}
	if p.Path != nil {
		coords := p.Path.Coords()
		for i := 1; i < len(coords); i++ {
			fillStroke(ras, img, m.Dot(coords[i-1]), m.Dot(coords[i]), 2.0*stroke, MergedColor)
		}
	}
	if p.Column != nil {
		c := p.columnRect()
		a := m.Dot(Point{c.X, c.Y, 0.0})
		b := m.Dot(Point{c.X + c.W, c.Y + c.H, 0.0})
		ras.MoveTo(float32(a.X), float32(a.Y))
		ras.LineTo(float32(b.X), float32(a.Y))
		ras.LineTo(float32(b.X), float32(b.Y))
		ras.LineTo(float32(a.X), float32(b.Y))
		ras.ClosePath()
		fill(ras, img, ColumnColor)
	}
	return img
}

// fillStroke fills the rectangle of width w around the segment from a to b, in image coordinates.
func fillStroke(ras *vector.Rasterizer, img *image.RGBA, a, b Point, w float64, col color.RGBA) {
	d := b.Sub(a)
	d.Z = 0.0
	n := d.Length()
	if n < Epsilon {
		return
	}
	off := Point{-d.Y / n * w / 2.0, d.X / n * w / 2.0, 0.0}

	p0, p1 := a.Add(off), b.Add(off)
	p2, p3 := b.Sub(off), a.Sub(off)
	ras.MoveTo(float32(p0.X), float32(p0.Y))
	ras.LineTo(float32(p1.X), float32(p1.Y))
	ras.LineTo(float32(p2.X), float32(p2.Y))
	ras.LineTo(float32(p3.X), float32(p3.Y))
	ras.ClosePath()
	fill(ras, img, col)
}

func fill(ras *vector.Rasterizer, img *image.RGBA, col color.RGBA) {
	size := ras.Size()
	ras.Draw(img, image.Rect(0, 0, size.X, size.Y), image.NewUniform(col), image.Point{})
	ras.Reset(size.X, size.Y)
}

// WritePNG writes the preview as a PNG image that is width pixels wide.
func (p *Preview) WritePNG(w io.Writer, width int) error {
	return png.Encode(w, p.Image(width))
}
