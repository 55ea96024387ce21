// Package cmakecache reads the project name out of a CMakeCache.txt file.
package cmakecache

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProjectNameKey prefixes the cache entry carrying the top-level project name.
const ProjectNameKey = "CMAKE_PROJECT_NAME:STATIC="

var _ ports.CacheParser = PrefixParser{}

// PrefixParser finds the project name by literal line-prefix matching.
type PrefixParser struct {
	// Key is the line prefix identifying the entry. Empty means ProjectNameKey.
	Key string
}

// ProjectName scans every line of r. Each line starting with the key overwrites the
// previous value, so the last match wins. The value is everything after the first '='.
func (p PrefixParser) ProjectName(r io.Reader) (string, bool, error) {
	key := p.Key
	if key == "" {
		key = ProjectNameKey
	}

	var (
		name  string
		found bool
	)

	// Cache entries such as compiler flag lists have no length bound, so lines are
	// read whole rather than through a size-capped scanner.
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, zerr.Wrap(err, domain.ErrCacheParseFailed.Error())
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.HasPrefix(line, key) {
			_, value, _ := strings.Cut(line, "=")
			name = value
			found = true
		}
		if err != nil {
			break
		}
	}

	return name, found, nil
}
