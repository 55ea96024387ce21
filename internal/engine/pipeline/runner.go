package pipeline

import (
	"go.trai.ch/voltdev/internal/core/domain"
)

// CompilerInvocation returns the command running the freshly built compiler on the test input.
func CompilerInvocation(layout domain.Layout, project string, p domain.Platform) domain.Command {
	return domain.Command{
		Name: layout.BinaryPath(project, p),
		Args: []string{layout.TestInput, "-o", layout.ArtifactName(p)},
		Dir:  layout.Root,
	}
}
