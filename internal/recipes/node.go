package recipes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/recipes/cp2k"
	"go.trai.ch/forge/internal/recipes/fftw"
	"go.trai.ch/forge/internal/recipes/vasp"
)

// NodeID is the unique identifier for the recipe registry Graft node.
const NodeID graft.ID = "engine.recipes"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return Default(), nil
		},
	})
}

// Default returns the registry holding every built-in recipe.
func Default() *Registry {
	return NewRegistry(
		cp2k.New(),
		fftw.New(),
		vasp.New(),
	)
}
