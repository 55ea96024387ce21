package formatter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/voltdev/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/voltdev/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/voltdev/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/voltdev/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/voltdev/internal/core/ports"
)

// NodeID is the unique identifier for the formatter Graft node.
const NodeID graft.ID = "engine.formatter"

func init() {
	graft.Register(graft.Node[*Formatter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.HasherNodeID,
			shell.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Formatter, error) {
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(walker, hasher, executor, log, tel), nil
		},
	})
}
