package ports

import (
	"io"

	"go.trai.ch/voltdev/internal/core/domain"
)

// ArtifactLocator discovers the name of the binary produced by a build.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactLocator interface {
	// Locate returns the project name recorded in the build cache, or fallback when the
	// cache carries none. A missing or unreadable cache is an error.
	Locate(layout domain.Layout, fallback string) (string, error)
}

// CacheParser extracts the project name from build cache metadata.
type CacheParser interface {
	// ProjectName reports the project name found in r and whether one was present.
	ProjectName(r io.Reader) (string, bool, error)
}
