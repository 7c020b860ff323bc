package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteKinds(t *testing.T) {
	kinds, directive := completeKinds(nil, nil, "")
	if !slices.Contains(kinds, "tree") || !slices.Contains(kinds, "regular_bipartite") {
		t.Errorf("completeKinds() = %v", kinds)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}
}

func TestCompleteFormats(t *testing.T) {
	formats, _ := completeFormats(nil, nil, "")
	want := []string{"dot", "svg", "pdf", "png"}
	if !slices.Equal(formats, want) {
		t.Errorf("completeFormats() = %v, want %v", formats, want)
	}
}

func TestCompleteGraphFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"10.g6", "12.g6", "graphs.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "isomorphic"), 0755); err != nil {
		t.Fatal(err)
	}

	prefix := dir + string(filepath.Separator)
	got, _ := completeGraphFiles(nil, nil, prefix)
	want := []string{
		prefix + "10.g6",
		prefix + "12.g6",
		prefix + "graphs.json",
		prefix + "isomorphic" + string(filepath.Separator),
	}
	if !slices.Equal(got, want) {
		t.Errorf("completeGraphFiles() = %v, want %v", got, want)
	}

	got, _ = completeGraphFiles(nil, nil, prefix+"1")
	if len(got) != 2 {
		t.Errorf("completeGraphFiles(prefix 1) = %v, want the two .g6 files", got)
	}
}
