package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/gridmerge"
	"github.com/tdewolff/gridmerge/model"
)

const maxConfigSize = 64 * 1024 // 64kB

// loadOptions reads merge options from a JSON file. Fields omitted from the file retain their default values.
func loadOptions(path string) (gridmerge.Options, error) {
	opts := gridmerge.DefaultOptions
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return opts, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return opts, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigSize {
		return opts, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigSize)
	}

	b, err := os.ReadFile(cleanPath)
	if err != nil {
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(b, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config file: %w", err)
	}
	return opts, nil
}

// options returns the merge options from the config file overridden by flags.
func (cmd *Merge) options() (gridmerge.Options, error) {
	opts := gridmerge.DefaultOptions
	if cmd.Config != "" {
		var err error
		if opts, err = loadOptions(cmd.Config); err != nil {
			return opts, err
		}
	}
	if cmd.GridCategory != "" {
		opts.GridCategory = cmd.GridCategory
	}
	if cmd.ColumnCategory != "" {
		opts.ColumnCategory = cmd.ColumnCategory
	}
	if cmd.ColumnType != "" {
		opts.ColumnType = cmd.ColumnType
	}
	if cmd.Level != "" {
		opts.Level = cmd.Level
	}
	return opts, nil
}

func (cmd *Merge) Run() error {
	if cmd.Model == "" || cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	opts, err := cmd.options()
	if err != nil {
		return err
	}

	doc, err := model.Open(cmd.Model)
	if err != nil {
		return err
	}

	// grid lines are gone after merging, keep them for the preview
	a, okA := doc.Grid(cmd.A)
	b, okB := doc.Grid(cmd.B)

	doc.Pick(cmd.A, cmd.B)
	merge := &gridmerge.Command{
		Doc:     doc,
		Options: &opts,
	}
	res, err := merge.Execute()
	if err != nil {
		return err
	} else if res.Status != gridmerge.Succeeded {
		fmt.Println(res.Status)
		return nil
	}
	fmt.Printf("Merged %s and %s into grid %d with column %d: %v\n", cmd.A, cmd.B, res.Grid, res.Column, res.Path)

	output := cmd.Output
	if output == "" {
		output = cmd.Model
	}
	if err := doc.WriteFile(output); err != nil {
		return err
	}

	if okA && okB {
		preview := gridmerge.NewPreview(a.Curve(), b.Curve())
		return writeOutputs(preview, cmd.Preview, cmd.GeoJSON)
	}
	return nil
}
