package results

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/matzehuels/isobench/pkg/pipeline"
)

// Header is the first CSV row.
var Header = []string{"node_count", "average_time", "is_isomorphic"}

// WriteCSV writes res as CSV with the average time per pair in seconds.
func WriteCSV(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, set := range [][]pipeline.Measurement{res.Isomorphic, res.NonIsomorphic} {
		for _, m := range set {
			if err := cw.Write(row(m)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(m pipeline.Measurement) []string {
	return []string{
		strconv.Itoa(m.NodeCount),
		strconv.FormatFloat(m.Average.Seconds(), 'f', 6, 64),
		strconv.FormatBool(m.Isomorphic),
	}
}

// ExportCSV writes res to a CSV file at path, creating parent directories.
func ExportCSV(path string, res *pipeline.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, res); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
