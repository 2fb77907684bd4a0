package gridmerge

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

type SVGOptions struct {
	Compression int  // gzip level, zero for none
	Minify      bool // minify the output
}

var DefaultSVGOptions = SVGOptions{}

func toCSSColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteSVG writes the preview as an SVG image whose user units are model units.
func (p *Preview) WriteSVG(w io.Writer, opts *SVGOptions) error {
	if opts == nil {
		defaultOptions := DefaultSVGOptions
		opts = &defaultOptions
	}

	buf := &bytes.Buffer{}
	p.writeSVG(buf)
	if opts.Compression == 0 {
		return p.encodeSVG(w, buf, opts.Minify)
	}

	compression := opts.Compression
	if compression < gzip.HuffmanOnly || gzip.BestCompression < compression {
		compression = -1
	}
	zw, _ := gzip.NewWriterLevel(w, compression)
	if err := p.encodeSVG(zw, buf, opts.Minify); err != nil {
		zw.Close()
		return err
	}
	return zw.Close() // does not close underlying writer
}

func (p *Preview) encodeSVG(w io.Writer, buf *bytes.Buffer, minifySVG bool) error {
	if !minifySVG {
		_, err := buf.WriteTo(w)
		return err
	}
	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m.Minify("image/svg+xml", w, buf)
}

func (p *Preview) writeSVG(w *bytes.Buffer) {
	r := p.viewBox()
	m := p.view(1.0)
	stroke := num(p.StrokeSize * p.extent())

	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, num(r.W), num(r.H), num(r.W), num(r.H))
	fmt.Fprintf(w, `<rect width="%v" height="%v" fill="%s"/>`, num(r.W), num(r.H), toCSSColor(Background))
	for _, l := range p.Grids {
		a, b := m.Dot(l.Start), m.Dot(l.End)
		fmt.Fprintf(w, `<path d="M%v %vL%v %v" stroke="%s" stroke-width="%v" stroke-dasharray="%v %v" fill="none"/>`, num(a.X), num(a.Y), num(b.X), num(b.Y), toCSSColor(GridColor), stroke, stroke*4, stroke*2)
	}
	if p.Path != nil {
		w.WriteString(`<path d="`)
		for i, c := range p.Path.Coords() {
			c = m.Dot(c)
			if i == 0 {
				w.WriteString("M")
			} else {
				w.WriteString("L")
			}
			fmt.Fprintf(w, "%v %v", num(c.X), num(c.Y))
		}
		fmt.Fprintf(w, `" stroke="%s" stroke-width="%v" fill="none"/>`, toCSSColor(MergedColor), stroke*2)
	}
	if p.Column != nil {
		c := p.columnRect()
		pos := m.Dot(Point{c.X, c.Y + c.H, 0.0})
		fmt.Fprintf(w, `<rect x="%v" y="%v" width="%v" height="%v" fill="%s"/>`, num(pos.X), num(pos.Y), num(c.W), num(c.H), toCSSColor(ColumnColor))
	}
	w.WriteString("</svg>")
}
