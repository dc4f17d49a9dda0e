package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// Filter restricts which regular files the walker emits.
// The extension check runs before the size checks, and both run before any
// hashing, cheapest first.
type Filter struct {
	// Extensions is a case-insensitive suffix allow-set including the dot
	// (".jpg"). Empty means no extension filter.
	Extensions []string

	// MinSize excludes files smaller than this many bytes. Inclusive: a
	// file of exactly MinSize bytes passes.
	MinSize int64

	// MaxSize excludes files larger than this many bytes when positive.
	// Inclusive: a file of exactly MaxSize bytes passes. Zero means no cap.
	MaxSize int64
}

// Walker enumerates candidate regular files under a validated root.
// It is one-shot: Walk may be called once and the emitted sequence is not
// restartable. Symbolic links are never followed or recorded.
type Walker struct {
	root    string
	allow   map[string]struct{}
	filter  Filter
	log     zerolog.Logger
	walked  bool
	skipped int
	failed  int
}

// NewWalker validates root and returns a walker over it. Validation happens
// before any traversal: a missing root yields domain.ErrRootNotExist and a
// non-directory root yields domain.ErrNotDirectory.
func NewWalker(root string, filter Filter, log zerolog.Logger) (*Walker, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRootNotExist, root)
		}
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, root)
	}

	allow := make(map[string]struct{}, len(filter.Extensions))
	for _, ext := range filter.Extensions {
		allow[strings.ToLower(ext)] = struct{}{}
	}
	return &Walker{root: abs, allow: allow, filter: filter, log: log}, nil
}

// Root returns the absolute root the walker was built for.
func (w *Walker) Root() string { return w.root }

// Skipped returns how many files the filters excluded. Valid after Walk.
func (w *Walker) Skipped() int { return w.skipped }

// Failed returns how many entries were dropped on stat errors. Valid after Walk.
func (w *Walker) Failed() int { return w.failed }

// Walk visits every regular file under the root in traversal order and calls
// emit for each record that passes the filters. Records carry size and mtime;
// the digest is unset. Per-entry errors are logged and skipped; the walk only
// stops early on context cancellation, checked between entries.
func (w *Walker) Walk(ctx context.Context, emit func(domain.FileRecord)) error {
	if w.walked {
		return fmt.Errorf("walker is one-shot: walk already consumed")
	}
	w.walked = true

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			w.failed++
			w.log.Warn().Err(err).Str("path", path).Msg("cannot access entry, skipping")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		// WalkDir reports symlinks without following them; a link to a
		// directory is never descended into and a link to a file is never
		// recorded, so cycles and double counting cannot happen.
		if !d.Type().IsRegular() {
			return nil
		}

		if len(w.allow) > 0 {
			ext := strings.ToLower(filepath.Ext(path))
			if _, ok := w.allow[ext]; !ok {
				w.skipped++
				return nil
			}
		}

		info, ierr := d.Info()
		if ierr != nil {
			w.failed++
			w.log.Warn().Err(ierr).Str("path", path).Msg("cannot stat file, skipping")
			return nil
		}
		size := info.Size()
		if size < w.filter.MinSize {
			w.skipped++
			return nil
		}
		if w.filter.MaxSize > 0 && size > w.filter.MaxSize {
			w.skipped++
			return nil
		}

		emit(domain.FileRecord{Path: path, Size: size, ModTime: info.ModTime()})
		return nil
	})
}
