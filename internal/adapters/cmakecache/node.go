package cmakecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/voltdev/internal/core/ports"
)

// NodeID is the unique identifier for the artifact locator Graft node.
const NodeID graft.ID = "adapter.cmakecache"

func init() {
	graft.Register(graft.Node[ports.ArtifactLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactLocator, error) {
			return NewLocator(PrefixParser{}), nil
		},
	})
}
