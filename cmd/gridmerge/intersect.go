package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/gridmerge"
)

func (cmd *Intersect) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	a, err := gridmerge.ParseLine(cmd.A, cmd.Z)
	if err != nil {
		return fmt.Errorf("first grid line: %w", err)
	}
	b, err := gridmerge.ParseLine(cmd.B, cmd.Z)
	if err != nil {
		return fmt.Errorf("second grid line: %w", err)
	}

	preview := gridmerge.NewPreview(a, b)
	if err := printIntersection(os.Stdout, preview); err != nil {
		return err
	}
	return writeOutputs(preview, cmd.Preview, cmd.GeoJSON)
}

func printIntersection(w io.Writer, preview *gridmerge.Preview) error {
	if preview.Column == nil {
		_, err := fmt.Fprintln(w, "no intersection")
		return err
	}
	fmt.Fprintln(w, "Intersection:", *preview.Column)
	_, err := fmt.Fprintln(w, "Merged path:", preview.Path)
	return err
}

func writeOutputs(preview *gridmerge.Preview, previewFile, geojsonFile string) error {
	if previewFile != "" {
		if err := preview.WriteFile(previewFile); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	if geojsonFile != "" {
		b, err := json.MarshalIndent(preview.FeatureCollection(), "", "  ")
		if err != nil {
			return fmt.Errorf("geojson: %w", err)
		}
		if err := os.WriteFile(geojsonFile, b, 0644); err != nil {
			return fmt.Errorf("geojson: %w", err)
		}
	}
	return nil
}
