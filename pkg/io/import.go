package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/graph"
)

// maxLineSize bounds a single graph6 line. A graph on n vertices needs about
// n*n/12 bytes, so this admits graphs with well over 10,000 vertices.
const maxLineSize = 16 << 20

const graph6Header = ">>graph6<<"

// ReadGraphs decodes one graph6 string per line from r.
//
// Blank lines are skipped, as is a ">>graph6<<" header. The first malformed
// line aborts decoding with an INVALID_FORMAT error naming the line.
// ReadGraphs does not close r.
func ReadGraphs(r io.Reader) ([]*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []*graph.Graph
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		text = strings.TrimPrefix(text, graph6Header)
		if text == "" {
			continue
		}
		g, err := graph.ParseGraph6(text)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "line %d", line)
		}
		out = append(out, g)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read after line %d", line)
	}
	return out, nil
}

// ImportFile reads every graph in the file at path: a JSON array when path
// ends in JSONExt, graph6 lines otherwise. A missing file yields a
// FILE_NOT_FOUND error.
func ImportFile(path string) ([]*graph.Graph, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	read := ReadGraphs
	if isJSON(path) {
		read = ReadJSON
	}
	gs, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gs, nil
}

// ReadJSON decodes a JSON array of node-link graphs from r.
func ReadJSON(r io.Reader) ([]*graph.Graph, error) {
	var gs []*graph.Graph
	if err := json.NewDecoder(r).Decode(&gs); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode")
	}
	return gs, nil
}
