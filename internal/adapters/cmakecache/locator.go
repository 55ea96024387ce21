package cmakecache

import (
	"errors"
	"os"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactLocator = (*Locator)(nil)

// Locator implements ports.ArtifactLocator over the build directory's cache file.
type Locator struct {
	parser ports.CacheParser
}

// NewLocator creates a Locator using parser to read the cache.
func NewLocator(parser ports.CacheParser) *Locator {
	return &Locator{parser: parser}
}

// Locate returns the project name from layout's cache file, or fallback when the
// file has no project name entry. A missing or unreadable cache file is fatal.
func (l *Locator) Locate(layout domain.Layout, fallback string) (string, error) {
	path := layout.CachePath()

	f, err := os.Open(path) //nolint:gosec // path derives from the project layout
	if err != nil {
		return "", errors.Join(domain.ErrCacheNotFound, zerr.With(zerr.Wrap(err, "failed to open cache file"), "path", path))
	}
	defer f.Close() //nolint:errcheck // read-only

	name, found, err := l.parser.ProjectName(f)
	if err != nil {
		return "", errors.Join(domain.ErrCacheNotFound, zerr.With(err, "path", path))
	}
	if !found {
		return fallback, nil
	}
	return name, nil
}
