package model

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/tdewolff/gridmerge"
)

var (
	ErrNotFound          = errors.New("element not found")
	ErrNoTransaction     = errors.New("modification outside of a transaction")
	ErrTransactionActive = errors.New("a transaction is already active")
	ErrTransactionClosed = errors.New("transaction already committed or rolled back")
)

// Document is an in-memory model of grids, levels, column types and columns. It implements gridmerge.Document. The Add methods set up a document, all other changes must happen inside a transaction.
type Document struct {
	mu     sync.Mutex
	elems  elements
	nextID gridmerge.ElementID
	tx     *transaction

	pick []string
}

// New returns an empty document.
func New() *Document {
	return &Document{nextID: 1}
}

func (doc *Document) newID() gridmerge.ElementID {
	id := doc.nextID
	doc.nextID++
	return id
}

func (doc *Document) modifiable() error {
	if doc.tx == nil {
		return ErrNoTransaction
	}
	return nil
}

// AddLevel adds a level and returns its ID.
func (doc *Document) AddLevel(name string, elevation float64) gridmerge.ElementID {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	id := doc.newID()
	doc.elems.Levels = append(doc.elems.Levels, Level{id, name, elevation})
	return id
}

// AddGridType adds a grid type and returns its ID.
func (doc *Document) AddGridType(name string) gridmerge.ElementID {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	id := doc.newID()
	doc.elems.GridTypes = append(doc.elems.GridTypes, GridType{id, name})
	return id
}

// AddColumnType adds a family symbol of the given category and returns its ID.
func (doc *Document) AddColumnType(category, name string) gridmerge.ElementID {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	id := doc.newID()
	doc.elems.ColumnTypes = append(doc.elems.ColumnTypes, FamilySymbol{id, name, category})
	return id
}

// AddGrid adds a grid line of the default category and returns its ID.
func (doc *Document) AddGrid(name string, typeID gridmerge.ElementID, curve gridmerge.Line) gridmerge.ElementID {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	id := doc.newID()
	doc.elems.Grids = append(doc.elems.Grids, Grid{
		ID:     id,
		Name:   name,
		TypeID: typeID,
		Start:  NewCoord(curve.Start),
		End:    NewCoord(curve.End),
	})
	return id
}

// Grids returns a copy of the grid lines.
func (doc *Document) Grids() []Grid {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return append([]Grid{}, doc.elems.Grids...)
}

// MultiSegmentGrids returns a copy of the multi-segment grids.
func (doc *Document) MultiSegmentGrids() []MultiSegmentGrid {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.elems.clone().MultiSegmentGrids
}

// Columns returns a copy of the columns.
func (doc *Document) Columns() []Column {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return append([]Column{}, doc.elems.Columns...)
}

// Grid returns the grid line with the given name.
func (doc *Document) Grid(name string) (Grid, bool) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	for _, g := range doc.elems.Grids {
		if g.Name == name {
			return g, true
		}
	}
	return Grid{}, false
}

////////////////////////////////////////////////////////////////

// Pick sets the grids that the next selection returns, by name and in order. Picking nothing makes the next selection behave as cancelled by the user.
func (doc *Document) Pick(names ...string) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.pick = append([]string{}, names...)
}

// SelectGrids returns the picked grids. The pick is consumed. Names that do not refer to a grid of the given category make the selection invalid.
func (doc *Document) SelectGrids(category string) (gridmerge.Selection, error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()

	names := doc.pick
	doc.pick = nil
	if len(names) == 0 {
		return gridmerge.Selection{Status: gridmerge.SelectionCancelled}, nil
	}

	grids := []gridmerge.Grid{}
	for _, name := range names {
		found := false
		for _, g := range doc.elems.Grids {
			if g.Name == name && g.category() == category {
				grids = append(grids, gridmerge.Grid{
					ID:     g.ID,
					Name:   g.Name,
					TypeID: g.TypeID,
					Curve:  g.Curve(),
				})
				found = true
				break
			}
		}
		if !found {
			gridmerge.Logger().Debug("selected element is not a grid", slog.String("name", name), slog.String("category", category))
			return gridmerge.Selection{Status: gridmerge.SelectionInvalid}, nil
		}
	}
	return gridmerge.Selection{Status: gridmerge.SelectionOK, Grids: grids}, nil
}

// FindColumnType returns the family symbol with the given category and name.
func (doc *Document) FindColumnType(category, name string) (gridmerge.ElementID, error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	for _, t := range doc.elems.ColumnTypes {
		if t.Category == category && t.Name == name {
			return t.ID, nil
		}
	}
	return gridmerge.InvalidElementID, fmt.Errorf("family symbol %q in %q: %w", name, category, ErrNotFound)
}

// FindLevel returns the level with the given name. An empty name returns the lowest level.
func (doc *Document) FindLevel(name string) (gridmerge.ElementID, error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	id, elevation := gridmerge.InvalidElementID, math.Inf(1)
	for _, l := range doc.elems.Levels {
		if name == "" && l.Elevation < elevation {
			id, elevation = l.ID, l.Elevation
		} else if name != "" && l.Name == name {
			return l.ID, nil
		}
	}
	if id == gridmerge.InvalidElementID {
		return id, fmt.Errorf("level %q: %w", name, ErrNotFound)
	}
	return id, nil
}

func (doc *Document) hasLevel(id gridmerge.ElementID) bool {
	for _, l := range doc.elems.Levels {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (doc *Document) hasColumnType(id gridmerge.ElementID) bool {
	for _, t := range doc.elems.ColumnTypes {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (doc *Document) hasGridType(id gridmerge.ElementID) bool {
	for _, t := range doc.elems.GridTypes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// CreateColumn places a column of the given type at a point on a level.
func (doc *Document) CreateColumn(at gridmerge.Point, typeID, levelID gridmerge.ElementID) (gridmerge.ElementID, error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if err := doc.modifiable(); err != nil {
		return gridmerge.InvalidElementID, err
	} else if !doc.hasColumnType(typeID) {
		return gridmerge.InvalidElementID, fmt.Errorf("column type %d: %w", typeID, ErrNotFound)
	} else if !doc.hasLevel(levelID) {
		return gridmerge.InvalidElementID, fmt.Errorf("level %d: %w", levelID, ErrNotFound)
	}

	id := doc.newID()
	doc.elems.Columns = append(doc.elems.Columns, Column{id, typeID, levelID, NewCoord(at)})
	return id, nil
}

// CreateMultiSegmentGrid adds a grid along the merged path.
func (doc *Document) CreateMultiSegmentGrid(typeID gridmerge.ElementID, path gridmerge.MergedPath, plane gridmerge.Plane, name string) (gridmerge.ElementID, error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if err := doc.modifiable(); err != nil {
		return gridmerge.InvalidElementID, err
	} else if !doc.hasGridType(typeID) {
		return gridmerge.InvalidElementID, fmt.Errorf("grid type %d: %w", typeID, ErrNotFound)
	}

	coords := []Coord{}
	for _, c := range path.Coords() {
		coords = append(coords, NewCoord(c))
	}
	id := doc.newID()
	doc.elems.MultiSegmentGrids = append(doc.elems.MultiSegmentGrids, MultiSegmentGrid{
		ID:          id,
		Name:        name,
		TypeID:      typeID,
		Coords:      coords,
		PlaneOrigin: NewCoord(plane.Origin),
		PlaneNormal: NewCoord(plane.Normal),
	})
	return id, nil
}

// Delete removes grids, multi-segment grids and columns. Either all IDs are removed or none.
func (doc *Document) Delete(ids ...gridmerge.ElementID) error {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if err := doc.modifiable(); err != nil {
		return err
	}

	del := map[gridmerge.ElementID]bool{}
	for _, id := range ids {
		del[id] = false
	}
	grids := doc.elems.Grids[:0:0]
	for _, g := range doc.elems.Grids {
		if _, ok := del[g.ID]; ok {
			del[g.ID] = true
			continue
		}
		grids = append(grids, g)
	}
	multis := doc.elems.MultiSegmentGrids[:0:0]
	for _, g := range doc.elems.MultiSegmentGrids {
		if _, ok := del[g.ID]; ok {
			del[g.ID] = true
			continue
		}
		multis = append(multis, g)
	}
	columns := doc.elems.Columns[:0:0]
	for _, c := range doc.elems.Columns {
		if _, ok := del[c.ID]; ok {
			del[c.ID] = true
			continue
		}
		columns = append(columns, c)
	}
	for _, id := range ids {
		if !del[id] {
			return fmt.Errorf("delete %d: %w", id, ErrNotFound)
		}
	}

	doc.elems.Grids = grids
	doc.elems.MultiSegmentGrids = multis
	doc.elems.Columns = columns
	return nil
}
