// Package vasp builds the Vienna Ab-initio Simulation Package. The VASP
// tarball ships its own makefiles; the build is driven purely through
// environment variables and a serial make.
package vasp

import (
	"go.trai.ch/forge/internal/core/domain"
)

// Recipe implements ports.Recipe for VASP.
type Recipe struct{}

// New returns the VASP recipe.
func New() *Recipe { return &Recipe{} }

// Name returns the package name.
func (*Recipe) Name() string { return "vasp" }

// Variants returns the declared build options. VASP has none.
func (*Recipe) Variants() domain.VariantSet {
	return domain.NewVariantSet()
}

// Dependencies returns the dependency edges the resolver must satisfy.
func (*Recipe) Dependencies() []domain.DependencyEdge {
	return []domain.DependencyEdge{
		domain.Depends("intel-mkl", ""),
	}
}

// Translate produces the single make invocation VASP needs. The makefiles
// read the link mode and install location from the environment. Parallel
// make breaks the build, so no -j flag is ever passed.
func (*Recipe) Translate(spec *domain.Spec, bc domain.BuildContext) (*domain.FlagSet, *domain.Plan, error) {
	plan := &domain.Plan{Package: "vasp", Version: spec.Version}
	plan.Add(domain.RunEnv(bc.Stage, map[string]string{
		"CRAYPE_LINK_TYPE": "static",
		"INSTALL_DIR":      bc.Prefix,
	}, "make", "all"))
	return &domain.FlagSet{}, plan, nil
}
