// Package ports defines the core interfaces for the application.
package ports

import (
	"go.trai.ch/forge/internal/core/domain"
)

// Recipe is a package-build recipe: the declarative surface of one package
// plus its build-option translator.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe.go -destination=mocks/mock_recipe.go -package=mocks
type Recipe interface {
	// Name returns the package name the recipe builds.
	Name() string

	// Variants returns the declared build options, in declaration order.
	Variants() domain.VariantSet

	// Dependencies returns the dependency edges the recipe expects the
	// external resolver to have satisfied.
	Dependencies() []domain.DependencyEdge

	// Translate deterministically maps the resolved spec and build context to
	// the flag set and invocation plan driving the package's build system.
	//
	// It fails with domain.ErrUnsupportedConfiguration when no flag mapping
	// exists for the spec's compiler family or variant combination, and with
	// domain.ErrMissingExternalResource when a required resource path is
	// absent or does not reference an existing file.
	Translate(spec *domain.Spec, bc domain.BuildContext) (*domain.FlagSet, *domain.Plan, error)
}
