package datadir

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "minutes")

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWatcher_ReportsNewPDF(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "fomcminutes20250618.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ev, err := w.WaitForEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, ev.Path)
}

func TestWatcher_IgnoresPartialAndHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "minutes.pdf.part"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.pdf"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0600))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err = w.WaitForEvent(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWatcher_WaitFailsAfterClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.WaitForEvent(context.Background())
	assert.Error(t, err)
}

func TestInteresting(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"fomcminutes20250618.pdf", true},
		{"minutes.PDF", true},
		{"notes.txt", true},
		{"minutes.pdf.part", false},
		{".minutes.pdf", false},
		{"readme.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, interesting(tt.path))
		})
	}
}
