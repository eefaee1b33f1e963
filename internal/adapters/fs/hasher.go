// Package fs provides filesystem-adjacent helpers: deterministic spec
// hashing for stage and registry naming.
package fs

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.SpecHasher = (*Hasher)(nil)

// Hasher computes stable spec identities with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns a 16-hex-digit digest of the spec. The serialization is
// canonical: variants are sorted by name and the dependency graph is hashed
// recursively in sorted order, so identical specs always hash identically.
func (h *Hasher) Hash(spec *domain.Spec) string {
	hasher := xxhash.New()
	hashSpec(spec, hasher)
	return fmt.Sprintf("%016x", hasher.Sum64())
}

func hashSpec(spec *domain.Spec, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(spec.Name.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(spec.Version.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(spec.Compiler.Name)
	_, _ = hasher.Write([]byte{'@'})
	_, _ = hasher.WriteString(spec.Compiler.Version.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(spec.Arch)
	_, _ = hasher.Write([]byte{0})

	names := make([]string, 0, len(spec.Variants))
	for name := range spec.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(spec.Variants[name].String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	deps := make([]*domain.Spec, len(spec.Dependencies))
	copy(deps, spec.Dependencies)
	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Name.String() < deps[j].Name.String()
	})
	for _, dep := range deps {
		hashSpec(dep, hasher)
	}
	_, _ = hasher.Write([]byte{0})
}
