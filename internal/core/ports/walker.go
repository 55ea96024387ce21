package ports

import "iter"

// SourceWalker enumerates files below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type SourceWalker interface {
	// WalkFiles yields file paths relative to root, skipping directories named in prune.
	// An unreadable subdirectory is yielded with its relative path and a non-nil error and
	// the sequence continues. A fatal traversal error is yielded once with an empty path
	// and ends the sequence.
	WalkFiles(root string, prune []string) iter.Seq2[string, error]
}
