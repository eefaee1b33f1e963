package registry

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the install registry Graft node.
const NodeID graft.ID = "adapter.install_registry"

func init() {
	graft.Register(graft.Node[ports.InstallRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallRegistry, error) {
			dir, err := os.UserCacheDir()
			if err != nil {
				dir = "."
			}
			return NewStore(filepath.Join(dir, "forge", "installs.json"))
		},
	})
}
