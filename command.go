package gridmerge

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNoIntersection is returned when the selected grid lines are parallel or coincident.
	ErrNoIntersection = errors.New("grid lines do not intersect")

	// ErrNotCoplanar is returned when the selected grid lines do not lie in the same horizontal plane.
	ErrNotCoplanar = errors.New("grid lines are not coplanar")

	// ErrSelection is returned when the selection does not consist of exactly two grid lines.
	ErrSelection = errors.New("select exactly two grid lines")
)

// ElementID identifies an element in a host document.
type ElementID int64

// InvalidElementID marks the absence of an element.
const InvalidElementID ElementID = -1

// Grid is a straight grid line as seen by the merge command.
type Grid struct {
	ID     ElementID
	Name   string
	TypeID ElementID
	Curve  Line
}

// Plane is a sketch plane given by an origin and a normal.
type Plane struct {
	Origin, Normal Point
}

// HorizontalPlane returns the plane through origin with normal +Z.
func HorizontalPlane(origin Point) Plane {
	return Plane{origin, Point{0.0, 0.0, 1.0}}
}

// SelectionStatus tells how an interactive selection ended.
type SelectionStatus int

// see SelectionStatus
const (
	SelectionOK SelectionStatus = iota
	SelectionCancelled
	SelectionInvalid
)

func (s SelectionStatus) String() string {
	switch s {
	case SelectionOK:
		return "OK"
	case SelectionCancelled:
		return "Cancelled"
	case SelectionInvalid:
		return "Invalid"
	}
	return fmt.Sprintf("SelectionStatus(%d)", int(s))
}

// Selection is the result of picking grids. Grids is only meaningful when Status is SelectionOK.
type Selection struct {
	Status SelectionStatus
	Grids  []Grid
}

// Selector lets the user pick elements of the given category.
type Selector interface {
	SelectGrids(category string) (Selection, error)
}

// Catalog looks up types and levels in the host document.
type Catalog interface {
	FindColumnType(category, name string) (ElementID, error)
	FindLevel(name string) (ElementID, error)
}

// ColumnFactory places point-based elements such as structural columns.
type ColumnFactory interface {
	CreateColumn(at Point, typeID, levelID ElementID) (ElementID, error)
}

// GridCommitter creates merged grids and removes the originals.
type GridCommitter interface {
	CreateMultiSegmentGrid(typeID ElementID, path MergedPath, plane Plane, name string) (ElementID, error)
	Delete(ids ...ElementID) error
}

// Transaction groups document changes so that they are applied all or nothing.
type Transaction interface {
	Commit() error
	Rollback() error
}

// Transactor starts transactions.
type Transactor interface {
	Begin(name string) (Transaction, error)
}

// Document is everything the merge command needs from the host.
type Document interface {
	Selector
	Catalog
	ColumnFactory
	GridCommitter
	Transactor
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(title, message string)
}

////////////////////////////////////////////////////////////////

// Options configure the merge command. All host context is passed explicitly.
type Options struct {
	GridCategory   string `json:"gridCategory,omitempty"`
	ColumnCategory string `json:"columnCategory,omitempty"`
	ColumnType     string `json:"columnType,omitempty"`
	Level          string `json:"level,omitempty"` // empty for the document's default level
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{
	GridCategory:   "Grids",
	ColumnCategory: "Structural Columns",
	ColumnType:     "300 x 450mm",
}

// Status is the outcome of a command.
type Status int

// see Status
const (
	Succeeded Status = iota
	Cancelled
	Failed
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "Succeeded"
	case Cancelled:
		return "Cancelled"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result describes what a command did. Column, Grid and Path are only set on success.
type Result struct {
	Status Status
	Column ElementID
	Grid   ElementID
	Path   MergedPath
}

// Command merges two selected grid lines into one multi-segment grid and places a column at their intersection.
type Command struct {
	Doc      Document
	Notifier Notifier // optional
	Options  *Options // nil for DefaultOptions
}

// Execute runs the command inside a single transaction. Cancelling the selection returns Cancelled and a nil error. On any failure the transaction is rolled back, the notifier is informed and Failed is returned along with the error.
func (cmd *Command) Execute() (Result, error) {
	opts := DefaultOptions
	if cmd.Options != nil {
		opts = *cmd.Options
	}

	tx, err := cmd.Doc.Begin("Merge grids")
	if err != nil {
		return cmd.fail(nil, err)
	}

	res, err := cmd.merge(opts)
	if err != nil {
		return cmd.fail(tx, err)
	} else if res.Status == Cancelled {
		if err := tx.Rollback(); err != nil {
			return cmd.fail(nil, err)
		}
		Logger().Debug("merge cancelled")
		return res, nil
	}

	if err := tx.Commit(); err != nil {
		return cmd.fail(tx, fmt.Errorf("commit: %w", err))
	}
	return res, nil
}

func (cmd *Command) merge(opts Options) (Result, error) {
	log := Logger()

	sel, err := cmd.Doc.SelectGrids(opts.GridCategory)
	if err != nil {
		return Result{}, fmt.Errorf("select: %w", err)
	}
	switch sel.Status {
	case SelectionCancelled:
		return Result{Status: Cancelled}, nil
	case SelectionInvalid:
		return Result{}, ErrSelection
	}
	if len(sel.Grids) != 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrSelection, len(sel.Grids))
	}
	a, b := sel.Grids[0], sel.Grids[1]
	log.Debug("selected grids", slog.String("a", a.Name), slog.String("b", b.Name))

	if !a.Curve.Coplanar(b.Curve) {
		return Result{}, fmt.Errorf("%s and %s: %w", a.Name, b.Name, ErrNotCoplanar)
	}
	joint, ok := Intersect(a.Curve, b.Curve)
	if !ok {
		return Result{}, fmt.Errorf("%s and %s: %w", a.Name, b.Name, ErrNoIntersection)
	}
	log.Debug("intersection", slog.Any("point", joint))

	columnType, err := cmd.Doc.FindColumnType(opts.ColumnCategory, opts.ColumnType)
	if err != nil {
		return Result{}, fmt.Errorf("column type %q: %w", opts.ColumnType, err)
	}
	level, err := cmd.Doc.FindLevel(opts.Level)
	if err != nil {
		return Result{}, fmt.Errorf("level %q: %w", opts.Level, err)
	}
	column, err := cmd.Doc.CreateColumn(joint, columnType, level)
	if err != nil {
		return Result{}, fmt.Errorf("create column: %w", err)
	}

	path := BuildPath(a.Curve, b.Curve, joint)
	if err := path.Validate(); err != nil {
		return Result{}, err
	}

	plane := HorizontalPlane(a.Curve.Start)
	grid, err := cmd.Doc.CreateMultiSegmentGrid(a.TypeID, path, plane, a.Name)
	if err != nil {
		return Result{}, fmt.Errorf("create grid: %w", err)
	}
	if err := cmd.Doc.Delete(a.ID, b.ID); err != nil {
		return Result{}, fmt.Errorf("delete grids: %w", err)
	}
	log.Debug("merged grids", slog.String("name", a.Name), slog.Any("path", path), slog.Int64("grid", int64(grid)), slog.Int64("column", int64(column)))
	return Result{Status: Succeeded, Column: column, Grid: grid, Path: path}, nil
}

func (cmd *Command) fail(tx Transaction, err error) (Result, error) {
	if tx != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", errRollback))
		}
	}
	Logger().Warn("merge rolled back", slog.Any("error", err))
	if cmd.Notifier != nil {
		cmd.Notifier.Notify("Tip", err.Error())
	}
	return Result{Status: Failed}, err
}
