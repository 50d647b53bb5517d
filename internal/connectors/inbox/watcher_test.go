package inbox

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txtOnly(path string) bool {
	return strings.HasSuffix(path, ".txt")
}

func TestWatcher_Existing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan.pdf"), []byte("p"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".draft.txt"), []byte("h"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0700))

	paths, err := New(dir, txtOnly).Existing()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, paths)
}

func TestWatcher_Existing_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil).Existing()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcher_Watch_ReportsNewFile(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, txtOnly).WithDebounce(20 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, err := w.Watch(ctx)
	require.NoError(t, err)

	target := filepath.Join(dir, "lease.txt")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.pdf"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(target, []byte("Payment due in 30 days."), 0600))

	select {
	case got := <-paths:
		assert.Equal(t, target, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for inbox file")
	}
}

func TestWatcher_Watch_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, txtOnly).WithDebounce(150 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, err := w.Watch(ctx)
	require.NoError(t, err)

	target := filepath.Join(dir, "msa.txt")
	f, err := os.Create(target)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = f.WriteString("clause\n")
		require.NoError(t, err)
		require.NoError(t, f.Sync())
		time.Sleep(10 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	select {
	case got := <-paths:
		assert.Equal(t, target, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for inbox file")
	}

	select {
	case extra := <-paths:
		t.Fatalf("unexpected second report for %s", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_Watch_Twice(t *testing.T) {
	w := New(t.TempDir(), nil)
	defer w.Close()

	_, err := w.Watch(context.Background())
	require.NoError(t, err)
	_, err = w.Watch(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyWatching)
}

func TestWatcher_Watch_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil).Watch(context.Background())
	assert.Error(t, err)
}

func TestWatcher_ChannelClosesOnCancel(t *testing.T) {
	w := New(t.TempDir(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	paths, err := w.Watch(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, open := <-paths:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
	assert.NoError(t, w.Close())
}

func TestWatcher_ChannelClosesOnClose(t *testing.T) {
	w := New(t.TempDir(), nil)

	paths, err := w.Watch(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	select {
	case _, open := <-paths:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestHandleFsEvent(t *testing.T) {
	tests := []struct {
		name      string
		setupFile bool
		setupDir  bool
		file      string
		operation fsnotify.Op
		expected  bool
	}{
		{"create file", true, false, "a.txt", fsnotify.Create, true},
		{"write file", true, false, "a.txt", fsnotify.Write, true},
		{"write and chmod", true, false, "a.txt", fsnotify.Write | fsnotify.Chmod, true},
		{"chmod only", true, false, "a.txt", fsnotify.Chmod, false},
		{"remove", false, false, "a.txt", fsnotify.Remove, false},
		{"rename", false, false, "a.txt", fsnotify.Rename, false},
		{"create vanished file", false, false, "a.txt", fsnotify.Create, false},
		{"create directory", false, true, "dir.txt", fsnotify.Create, false},
		{"hidden file", true, false, ".a.txt", fsnotify.Create, false},
		{"filtered extension", true, false, "a.pdf", fsnotify.Create, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.file)
			if tt.setupFile {
				require.NoError(t, os.WriteFile(path, []byte("content"), 0600))
			}
			if tt.setupDir {
				require.NoError(t, os.Mkdir(path, 0700))
			}

			got, ok := New(dir, txtOnly).handleFsEvent(fsnotify.Event{Name: path, Op: tt.operation})
			assert.Equal(t, tt.expected, ok)
			if tt.expected {
				assert.Equal(t, path, got)
			}
		})
	}
}
