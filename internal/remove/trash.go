package remove

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// trashNameFormat is the timestamp half of a trash entry name. Timestamps
// alone are second-granular, so a monotonic counter is appended to keep
// rapid repeated deletions of identically named files from colliding.
const trashNameFormat = "20060102_150405"

type trashDir struct {
	root    string
	seq     atomic.Uint64
	created atomic.Bool
}

func newTrashDir(root string) *trashDir {
	return &trashDir{root: root}
}

// ensure creates the trash root with owner-only access. Only called when a
// relocation is actually about to happen, never in dry run.
func (t *trashDir) ensure() error {
	if t.created.Load() {
		return nil
	}
	if t.root == "" {
		return errors.New("trash directory not configured")
	}
	if err := os.MkdirAll(t.root, 0o700); err != nil {
		return fmt.Errorf("create trash dir: %w", err)
	}
	t.created.Store(true)
	return nil
}

// relocate moves src into the trash under {timestamp}_{counter}_{basename}.
// Move semantics: atomic rename on the same volume, copy-then-delete when
// crossing volumes. On success exactly one live copy exists, at the trash
// location, with content unaltered.
func (t *trashDir) relocate(src string, now time.Time) (domain.TrashEntry, error) {
	if err := t.ensure(); err != nil {
		return domain.TrashEntry{}, err
	}

	base := filepath.Base(src)
	stamp := now.Format(trashNameFormat)
	var dst string
	for {
		n := t.seq.Add(1)
		dst = filepath.Join(t.root, fmt.Sprintf("%s_%06d_%s", stamp, n, base))
		if _, err := os.Lstat(dst); os.IsNotExist(err) {
			break
		}
		// Name taken by an earlier run in the same second; bump and retry.
	}

	if err := moveFile(src, dst); err != nil {
		return domain.TrashEntry{}, err
	}
	return domain.TrashEntry{OriginalPath: src, TrashPath: dst, MovedAt: now}, nil
}

// moveFile renames src to dst, falling back to copy-then-delete-original
// when the rename crosses filesystem volumes. Rename atomicity only holds
// within one volume, so neither primitive is assumed to cover both cases.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("rename %s: %w", src, err)
	}

	if cerr := copyFile(src, dst); cerr != nil {
		// The copy failed or is incomplete; remove the partial destination
		// so the source stays the single live copy.
		os.Remove(dst)
		return cerr
	}
	if rerr := os.Remove(src); rerr != nil {
		// Destination is complete; removing it again would risk losing both.
		// Surface the leftover source instead.
		return fmt.Errorf("remove original after copy %s: %w", src, rerr)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("sync %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}

func deleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
