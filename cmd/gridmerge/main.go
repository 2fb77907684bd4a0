package main

import (
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/gridmerge"
)

type Main struct{}

type Intersect struct {
	Z       float64 `default:"0" desc:"Elevation of both grid lines"`
	Preview string  `short:"p" desc:"Write a preview image (.svg, .svgz or .png)"`
	GeoJSON string  `desc:"Write the result as GeoJSON"`
	Verbose bool    `short:"v" desc:"Log debug messages"`
	A       string  `index:"0" desc:"First grid line as path data, eg. M0 0L10 0"`
	B       string  `index:"1" desc:"Second grid line as path data"`
}

type Merge struct {
	Model          string `short:"m" desc:"Model document (.json)"`
	Output         string `short:"o" desc:"Output document, defaults to overwriting the model"`
	Config         string `short:"c" desc:"Options file (.json)"`
	GridCategory   string `desc:"Category of grid lines"`
	ColumnCategory string `desc:"Category of column types"`
	ColumnType     string `desc:"Column type name"`
	Level          string `short:"l" desc:"Level to place the column on, defaults to the lowest level"`
	Preview        string `short:"p" desc:"Write a preview image (.svg, .svgz or .png)"`
	GeoJSON        string `desc:"Write the result as GeoJSON"`
	Verbose        bool   `short:"v" desc:"Log debug messages"`
	A              string `index:"0" desc:"Name of the first grid line"`
	B              string `index:"1" desc:"Name of the second grid line"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Merge two intersecting grid lines into one multi-segment grid with a column at the joint")
	root.AddCmd(&Intersect{}, "intersect", "Compute the intersection and merged path of two grid lines")
	root.AddCmd(&Merge{}, "merge", "Merge two grid lines of a model document")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func setVerbose(verbose bool) {
	if verbose {
		gridmerge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}
