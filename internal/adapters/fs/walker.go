// Package fs provides file system adapters for walking and hashing files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every non-directory entry below root as a path relative to root,
// in the order the file system reports them. Directories whose name is in prune are
// not descended into.
//
// A subdirectory that cannot be read is yielded with its relative path and an error
// wrapping domain.ErrDirUnreadable, then skipped. Any other traversal error, including
// an unreadable root, is yielded with an empty path and ends the walk.
func (w *Walker) WalkFiles(root string, prune []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d == nil || !d.IsDir() || path == root {
					return err
				}
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					return err
				}
				if !yield(rel, errors.Join(domain.ErrDirUnreadable, zerr.With(zerr.Wrap(err, "directory skipped"), "path", rel))) {
					return filepath.SkipAll
				}
				return filepath.SkipDir
			}

			if d.IsDir() {
				if path != root && slices.Contains(prune, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			if !yield(rel, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root))
		}
	}
}
