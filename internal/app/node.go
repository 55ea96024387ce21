package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/voltdev/internal/adapters/cmakecache"         //nolint:depguard // Wired in app layer
	"go.trai.ch/voltdev/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/voltdev/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/voltdev/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/voltdev/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/voltdev/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/voltdev/internal/engine/formatter"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			cmakecache.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			progrock.NodeID,
			formatter.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ArtifactLocator](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
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

	f, err := graft.Dep[*formatter.Formatter](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, locator, hasher, log, tel, f), nil
}
