package io

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/isobench/pkg/errors"
)

// Directory and file names of the dataset layout.
const (
	IsomorphicDir    = "isomorphic"
	NonIsomorphicDir = "non_isomorphic"
	Ext              = ".g6"
	JSONExt          = ".json"
)

// Entry is one "<n>.g6" file of a dataset directory.
type Entry struct {
	NodeCount int
	Path      string
}

// FileName returns the conventional file name for graphs on n vertices.
func FileName(n int) string {
	return strconv.Itoa(n) + Ext
}

// ScanDir lists the regular "<n>.g6" files directly inside dir, ordered by
// vertex count. Files whose stem is not a non-negative integer are returned
// in skipped so the caller can report them.
func ScanDir(dir string) (entries []Entry, skipped []string, err error) {
	items, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "dataset directory %s", dir)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", dir, err)
	}

	for _, it := range items {
		name := it.Name()
		if !it.Type().IsRegular() || !strings.HasSuffix(name, Ext) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(name, Ext))
		if err != nil || n < 0 {
			skipped = append(skipped, filepath.Join(dir, name))
			continue
		}
		entries = append(entries, Entry{NodeCount: n, Path: filepath.Join(dir, name)})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.NodeCount, b.NodeCount); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return entries, skipped, nil
}

// Layout locates the two sets of a dataset.
type Layout struct {
	// Isomorphic is the directory whose files hold isomorphic graphs.
	Isomorphic string

	// NonIsomorphic is the directory of pairwise non-isomorphic graphs, or
	// empty when the dataset has none.
	NonIsomorphic string
}

// ResolveLayout inspects a dataset root. root/isomorphic is used when it
// exists, otherwise root itself holds the isomorphic set. root/non_isomorphic
// is optional.
func ResolveLayout(root string) (Layout, error) {
	if err := errs.ValidatePath(root); err != nil {
		return Layout{}, err
	}
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return Layout{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "dataset %s", root)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return Layout{}, errs.New(errs.ErrCodeInvalidPath, "dataset %s is not a directory", root)
	}

	l := Layout{Isomorphic: root}
	if isDir(filepath.Join(root, IsomorphicDir)) {
		l.Isomorphic = filepath.Join(root, IsomorphicDir)
	}
	if isDir(filepath.Join(root, NonIsomorphicDir)) {
		l.NonIsomorphic = filepath.Join(root, NonIsomorphicDir)
	}
	return l, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), JSONExt)
}
