package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// FormatFilter decides which files the formatter touches.
type FormatFilter struct {
	Extensions  []string
	ExcludeDirs []string
}

// DefaultFormatFilter matches C and C++ sources outside build and vendor trees.
func DefaultFormatFilter() FormatFilter {
	return FormatFilter{
		Extensions:  []string{".cpp", ".hpp", ".c", ".h"},
		ExcludeDirs: []string{"build", "vendor"},
	}
}

// Match reports whether relPath should be formatted.
// Excluded names are checked against every path component, not only the parent.
func (f FormatFilter) Match(relPath string) bool {
	return slices.Contains(f.Extensions, filepath.Ext(relPath)) && !f.Excludes(relPath)
}

// Excludes reports whether any component of relPath is an excluded directory name.
func (f FormatFilter) Excludes(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(relPath)), "/") {
		if slices.Contains(f.ExcludeDirs, part) {
			return true
		}
	}
	return false
}

// FormatReport summarizes a formatting sweep.
type FormatReport struct {
	// Matched lists every file handed to the formatter, in traversal order.
	Matched []string
	// Changed lists files whose content differs after formatting.
	Changed []string
	// Failed lists files for which the formatter did not succeed.
	Failed []string
}
