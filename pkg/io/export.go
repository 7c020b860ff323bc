package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/isobench/pkg/graph"
)

// WriteGraphs writes each graph as one graph6 line to w.
func WriteGraphs(w io.Writer, gs []*graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, g := range gs {
		if _, err := bw.WriteString(g.Graph6()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportFile writes gs to path, creating parent directories as needed. A
// path ending in JSONExt gets a JSON array, any other a graph6 file. An
// existing file is replaced.
func ExportFile(path string, gs []*graph.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	write := WriteGraphs
	if isJSON(path) {
		write = WriteJSON
	}
	if err := write(f, gs); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteJSON encodes gs as an indented JSON array of node-link graphs.
// The output can be read back with [ReadJSON].
func WriteJSON(w io.Writer, gs []*graph.Graph) error {
	if gs == nil {
		gs = []*graph.Graph{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gs); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
