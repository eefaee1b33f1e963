package ports

import "go.trai.ch/forge/internal/core/domain"

// SpecLoader reads a resolved specfile, the handoff artifact the external
// concretizer produces.
//
//go:generate go run go.uber.org/mock/mockgen -source=spec_loader.go -destination=mocks/mock_spec_loader.go -package=mocks
type SpecLoader interface {
	// Load parses the specfile at path and returns the root spec together
	// with the build context (stage, prefix, external resources) recorded in
	// the file.
	Load(path string) (*domain.Spec, domain.BuildContext, error)
}
