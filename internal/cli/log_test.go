package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Info("measured", "files", 3)
	assert.Contains(t, buf.String(), "measured")
	assert.Contains(t, buf.String(), "files=3")
}

func TestAttachLogFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "isobench.log")
	l := newLogger(&console, log.InfoLevel)

	closer := attachLogFile(l, &console, path)
	l.Info("run stored", "run", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run stored")
	assert.Contains(t, console.String(), "run stored")
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Benchmark complete")

	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "Benchmark complete (")
	assert.True(t, strings.HasSuffix(out, "s)"), out)
}

func TestLoggerContext(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, log.WarnLevel)

	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}
