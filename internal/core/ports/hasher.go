package ports

import "go.trai.ch/forge/internal/core/domain"

// SpecHasher computes deterministic spec identities.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type SpecHasher interface {
	// Hash returns a stable hex digest of the spec: name, version, compiler,
	// variants and the full dependency graph. Two identical specs always
	// hash identically; the digest names stage directories and registry keys.
	Hash(spec *domain.Spec) string
}
