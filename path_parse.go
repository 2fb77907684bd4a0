package gridmerge

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// parseNum parses a number after optional separators. It returns zero for n when no number could be read.
func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParseLine parses SVG path data describing a single straight segment, such as "M0 0L10 0" or "m5 -5v10". Supported commands are M, L, H and V and their relative variants. All coordinates get elevation z.
func ParseLine(s string, z float64) (Line, error) {
	path := []byte(s)
	coords := []Point{}

	var cmd byte
	x, y := 0.0, 0.0
	i := skipCommaWhitespace(path)
	for i < len(path) {
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return Line{}, fmt.Errorf("bad path data: expected command at position %d", i)
		} else if cmd == 'M' {
			cmd = 'L' // implicit lineto after moveto
		} else if cmd == 'm' {
			cmd = 'l'
		}

		var n int
		a, b := x, y
		switch cmd {
		case 'M', 'm', 'L', 'l':
			if a, n = parseNum(path[i:]); n == 0 {
				return Line{}, fmt.Errorf("bad path data: expected number at position %d", i)
			}
			i += n
			if b, n = parseNum(path[i:]); n == 0 {
				return Line{}, fmt.Errorf("bad path data: expected number at position %d", i)
			}
			i += n
			if cmd == 'm' || cmd == 'l' {
				a += x
				b += y
			}
		case 'H', 'h':
			if a, n = parseNum(path[i:]); n == 0 {
				return Line{}, fmt.Errorf("bad path data: expected number at position %d", i)
			}
			i += n
			if cmd == 'h' {
				a += x
			}
		case 'V', 'v':
			if b, n = parseNum(path[i:]); n == 0 {
				return Line{}, fmt.Errorf("bad path data: expected number at position %d", i)
			}
			i += n
			if cmd == 'v' {
				b += y
			}
		default:
			return Line{}, fmt.Errorf("bad path data: unsupported command %q, grid lines must be straight", cmd)
		}

		if (cmd == 'M' || cmd == 'm') && len(coords) != 0 {
			return Line{}, fmt.Errorf("bad path data: must contain a single subpath")
		} else if cmd != 'M' && cmd != 'm' && len(coords) == 0 {
			return Line{}, fmt.Errorf("bad path data: must start with a moveto")
		}
		coords = append(coords, Point{a, b, z})
		x, y = a, b
		i += skipCommaWhitespace(path[i:])
	}

	if len(coords) != 2 {
		return Line{}, fmt.Errorf("bad path data: must contain exactly two coordinates, got %d", len(coords))
	}
	return Line{coords[0], coords[1]}, nil
}

// MustParseLine parses SVG path data as in ParseLine and panics on error.
func MustParseLine(s string) Line {
	l, err := ParseLine(s, 0.0)
	if err != nil {
		panic(err)
	}
	return l
}

// ParsePoint parses a comma or whitespace separated coordinate "x,y" or "x,y,z".
func ParsePoint(s string) (Point, error) {
	b := []byte(s)
	vals := []float64{}
	i := skipCommaWhitespace(b)
	for i < len(b) {
		f, n := parseNum(b[i:])
		if n == 0 {
			return Point{}, fmt.Errorf("bad coordinate %q: expected number at position %d", s, i)
		}
		vals = append(vals, f)
		i += n
		i += skipCommaWhitespace(b[i:])
	}
	if len(vals) != 2 && len(vals) != 3 {
		return Point{}, fmt.Errorf("bad coordinate %q: expected 2 or 3 numbers", s)
	}
	p := Point{vals[0], vals[1], 0.0}
	if len(vals) == 3 {
		p.Z = vals[2]
	}
	return p, nil
}
