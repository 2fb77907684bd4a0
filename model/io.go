package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tdewolff/gridmerge"
)

// MaxFileSize is the largest document Open accepts.
const MaxFileSize = 1 * 1024 * 1024 // 1MB

// Load reads a document from JSON.
func Load(r io.Reader) (*Document, error) {
	elems := elements{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	seen := map[gridmerge.ElementID]bool{}
	check := func(id gridmerge.ElementID) error {
		if id <= 0 {
			return fmt.Errorf("invalid element ID %d", id)
		} else if seen[id] {
			return fmt.Errorf("duplicate element ID %d", id)
		}
		seen[id] = true
		return nil
	}
	for _, l := range elems.Levels {
		if err := check(l.ID); err != nil {
			return nil, err
		}
	}
	for _, t := range elems.GridTypes {
		if err := check(t.ID); err != nil {
			return nil, err
		}
	}
	for _, t := range elems.ColumnTypes {
		if err := check(t.ID); err != nil {
			return nil, err
		}
	}
	for _, g := range elems.Grids {
		if err := check(g.ID); err != nil {
			return nil, err
		}
	}
	for _, g := range elems.MultiSegmentGrids {
		if err := check(g.ID); err != nil {
			return nil, err
		}
	}
	for _, c := range elems.Columns {
		if err := check(c.ID); err != nil {
			return nil, err
		}
	}
	return &Document{elems: elems, nextID: elems.maxID() + 1}, nil
}

// Open reads a document from a .json file of at most MaxFileSize bytes.
func Open(path string) (*Document, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("document file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document file: %w", err)
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("document file too large: %d bytes (max %d)", fileInfo.Size(), MaxFileSize)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes the document as indented JSON.
func (doc *Document) Save(w io.Writer) error {
	doc.mu.Lock()
	elems := doc.elems.clone()
	doc.mu.Unlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(elems)
}

// WriteFile saves the document to a file.
func (doc *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
