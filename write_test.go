package submit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submit "github.com/pkgsmith/manifest-pr"
)

func TestWriteChanges(t *testing.T) {
	changes := submit.ChangeSet{
		{Path: "a.txt", Content: "hello"},
		{Path: "dir/b.txt", Content: "world"},
	}

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, submit.WriteChanges(changes, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	content, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	// Directory components of the change path are flattened away.
	content, err = os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(content))
}

func TestWriteChangesSkipsEntriesWithoutFileName(t *testing.T) {
	changes := submit.ChangeSet{
		{Path: "", Content: "ignored"},
		{Path: "/", Content: "ignored"},
		{Path: "a.txt", Content: "kept"},
	}

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, submit.WriteChanges(changes, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}

func TestWriteChangesOverwrites(t *testing.T) {
	changes := submit.ChangeSet{
		{Path: "a.txt", Content: "hello"},
		{Path: "dir/b.txt", Content: "world"},
	}

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, submit.WriteChanges(changes, dir))
	require.NoError(t, submit.WriteChanges(changes, dir))

	content, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestWriteChangesReportsWriteFailure(t *testing.T) {
	changes := submit.ChangeSet{
		{Path: "good.txt", Content: "kept"},
		{Path: "bad\x00name.txt", Content: "never written"},
		{Path: "dir/also-good.txt", Content: "kept too"},
	}

	dir := filepath.Join(t.TempDir(), "out")
	err := submit.WriteChanges(changes, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")

	// Writes that succeeded stay on disk.
	_, statErr := os.Stat(filepath.Join(dir, "good.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "also-good.txt"))
	assert.NoError(t, statErr)
}

func TestWriteChangesOutputDirFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("not a directory"), 0644))

	err := submit.WriteChanges(submit.ChangeSet{{Path: "a.txt", Content: "hello"}}, filepath.Join(file, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}
