package model

import (
	"github.com/tdewolff/gridmerge"
)

// DefaultGridCategory is the category of grids that do not name one.
const DefaultGridCategory = "Grids"

// Coord is a point stored as [x, y, z].
type Coord [3]float64

// NewCoord returns the coordinate of p.
func NewCoord(p gridmerge.Point) Coord {
	return Coord{p.X, p.Y, p.Z}
}

// Point returns the coordinate as a point.
func (c Coord) Point() gridmerge.Point {
	return gridmerge.Point{X: c[0], Y: c[1], Z: c[2]}
}

// Level is a horizontal reference plane that columns are hosted on.
type Level struct {
	ID        gridmerge.ElementID `json:"id"`
	Name      string              `json:"name"`
	Elevation float64             `json:"elevation"`
}

// GridType is the type of grids and multi-segment grids.
type GridType struct {
	ID   gridmerge.ElementID `json:"id"`
	Name string              `json:"name"`
}

// FamilySymbol is a loadable type, such as a structural column size.
type FamilySymbol struct {
	ID       gridmerge.ElementID `json:"id"`
	Name     string              `json:"name"`
	Category string              `json:"category"`
}

// Grid is a straight grid line.
type Grid struct {
	ID       gridmerge.ElementID `json:"id"`
	Name     string              `json:"name"`
	TypeID   gridmerge.ElementID `json:"typeId"`
	Category string              `json:"category,omitempty"`
	Start    Coord               `json:"start"`
	End      Coord               `json:"end"`
}

func (g Grid) category() string {
	if g.Category == "" {
		return DefaultGridCategory
	}
	return g.Category
}

// Curve returns the grid line as a segment.
func (g Grid) Curve() gridmerge.Line {
	return gridmerge.Line{Start: g.Start.Point(), End: g.End.Point()}
}

// MultiSegmentGrid is a grid made of connected straight segments.
type MultiSegmentGrid struct {
	ID          gridmerge.ElementID `json:"id"`
	Name        string              `json:"name"`
	TypeID      gridmerge.ElementID `json:"typeId"`
	Coords      []Coord             `json:"coords"`
	PlaneOrigin Coord               `json:"planeOrigin"`
	PlaneNormal Coord               `json:"planeNormal"`
}

// Segments returns the straight segments between consecutive coordinates.
func (g MultiSegmentGrid) Segments() []gridmerge.Line {
	segs := []gridmerge.Line{}
	for i := 1; i < len(g.Coords); i++ {
		segs = append(segs, gridmerge.Line{Start: g.Coords[i-1].Point(), End: g.Coords[i].Point()})
	}
	return segs
}

// Column is a structural column placed at a point on a level.
type Column struct {
	ID       gridmerge.ElementID `json:"id"`
	TypeID   gridmerge.ElementID `json:"typeId"`
	LevelID  gridmerge.ElementID `json:"levelId"`
	Location Coord               `json:"location"`
}

// elements holds all elements of a document, it is what gets saved and what a transaction snapshots.
type elements struct {
	Levels            []Level            `json:"levels"`
	GridTypes         []GridType         `json:"gridTypes"`
	ColumnTypes       []FamilySymbol     `json:"columnTypes"`
	Grids             []Grid             `json:"grids"`
	MultiSegmentGrids []MultiSegmentGrid `json:"multiSegmentGrids"`
	Columns           []Column           `json:"columns"`
}

func (e elements) clone() elements {
	c := elements{
		Levels:            append([]Level{}, e.Levels...),
		GridTypes:         append([]GridType{}, e.GridTypes...),
		ColumnTypes:       append([]FamilySymbol{}, e.ColumnTypes...),
		Grids:             append([]Grid{}, e.Grids...),
		MultiSegmentGrids: make([]MultiSegmentGrid, len(e.MultiSegmentGrids)),
		Columns:           append([]Column{}, e.Columns...),
	}
	for i, g := range e.MultiSegmentGrids {
		g.Coords = append([]Coord{}, g.Coords...)
		c.MultiSegmentGrids[i] = g
	}
	return c
}

// maxID returns the largest element ID in use.
func (e elements) maxID() gridmerge.ElementID {
	id := gridmerge.ElementID(0)
	for _, l := range e.Levels {
		id = max(id, l.ID)
	}
	for _, t := range e.GridTypes {
		id = max(id, t.ID)
	}
	for _, t := range e.ColumnTypes {
		id = max(id, t.ID)
	}
	for _, g := range e.Grids {
		id = max(id, g.ID)
	}
	for _, g := range e.MultiSegmentGrids {
		id = max(id, g.ID)
	}
	for _, c := range e.Columns {
		id = max(id, c.ID)
	}
	return id
}
