// Package recipes holds the package-build recipes and their registry.
package recipes

import (
	"sort"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps package names to their recipes.
type Registry struct {
	byName map[string]ports.Recipe
}

// NewRegistry builds a registry from the given recipes.
func NewRegistry(rs ...ports.Recipe) *Registry {
	byName := make(map[string]ports.Recipe, len(rs))
	for _, r := range rs {
		byName[r.Name()] = r
	}
	return &Registry{byName: byName}
}

// Lookup returns the recipe for a package name.
func (r *Registry) Lookup(name string) (ports.Recipe, error) {
	recipe, ok := r.byName[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPackage, "package", name)
	}
	return recipe, nil
}

// Names returns the registered package names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
