package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/logger"
	"go.trai.ch/lode/internal/core/ports"
)

const (
	// NormalizerNodeID is the unique identifier for the path normalizer node.
	NormalizerNodeID graft.ID = "adapter.fs.normalizer"
	// LoaderNodeID is the unique identifier for the source loader node.
	LoaderNodeID graft.ID = "adapter.fs.loader"
)

func init() {
	// Normalizer Node
	graft.Register(graft.Node[ports.PathNormalizer]{
		ID:        NormalizerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PathNormalizer, error) {
			return NewNormalizer(), nil
		},
	})

	// Loader Node
	graft.Register(graft.Node[ports.SourceLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
