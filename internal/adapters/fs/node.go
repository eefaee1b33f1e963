package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the spec hasher Graft node.
const NodeID graft.ID = "adapter.spec_hasher"

func init() {
	graft.Register(graft.Node[ports.SpecHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SpecHasher, error) {
			return NewHasher(), nil
		},
	})
}
