package remove

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile_PreservesContentAndMode(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.bin")
	require.NoError(t, os.WriteFile(src, []byte("cross-volume payload"), 0o640))

	dst := filepath.Join(tmp, "dst.bin")
	require.NoError(t, copyFile(src, dst))

	assert.Equal(t, "cross-volume payload", readFile(t, dst))
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestCopyFile_RefusesExistingDestination(t *testing.T) {
	tmp := t.TempDir()
	src := writeFile(t, tmp, "src.txt", "new")
	dst := writeFile(t, tmp, "dst.txt", "already here")

	require.Error(t, copyFile(src, dst))
	assert.Equal(t, "already here", readFile(t, dst))
}

func TestTrashDir_SequenceAdvances(t *testing.T) {
	tmp := t.TempDir()
	td := newTrashDir(filepath.Join(tmp, "trash"))
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	a := writeFile(t, tmp, "same.txt", "a")
	entryA, err := td.relocate(a, now)
	require.NoError(t, err)

	b := writeFile(t, tmp, "same.txt", "b")
	entryB, err := td.relocate(b, now)
	require.NoError(t, err)

	// Identical basename and timestamp, distinct destinations.
	assert.NotEqual(t, entryA.TrashPath, entryB.TrashPath)
	assert.Equal(t, "20260301_103000_000001_same.txt", filepath.Base(entryA.TrashPath))
	assert.Equal(t, "20260301_103000_000002_same.txt", filepath.Base(entryB.TrashPath))
}

func TestTrashDir_EmptyRootRejected(t *testing.T) {
	td := newTrashDir("")
	_, err := td.relocate("/nope", time.Now())
	require.Error(t, err)
}
