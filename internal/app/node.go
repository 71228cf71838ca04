package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/script"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/lode/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			script.NodeID,
			fs.LoaderNodeID,
			fs.NormalizerNodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			report.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			engine, err := graft.Dep[ports.Engine](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.SourceLoader](ctx)
			if err != nil {
				return nil, err
			}

			normalizer, err := graft.Dep[ports.PathNormalizer](ctx)
			if err != nil {
				return nil, err
			}

			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			reportWriter, err := graft.Dep[ports.ReportWriter](ctx)
			if err != nil {
				return nil, err
			}

			return New(engine, loader, normalizer, configLoader, log, tracer, reportWriter), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Tracer: tracer,
	}, nil
}
