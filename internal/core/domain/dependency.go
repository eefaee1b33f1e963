package domain

import "go.trai.ch/zerr"

// DepType tags when a dependency is needed.
type DepType int

const (
	// DepLink marks a dependency linked into the package.
	DepLink DepType = iota
	// DepBuild marks a dependency only needed while building.
	DepBuild
)

// DependencyEdge declares a dependency a recipe expects the resolver to have
// satisfied: package name, version constraint, an optional condition over the
// depending spec, and a build/link tag. Resolution itself happens upstream;
// the edge is only used to verify the handed-over spec graph is complete.
type DependencyEdge struct {
	Name       string
	Constraint Range
	Type       DepType

	// When gates the edge on the depending spec. A nil predicate always applies.
	When func(*Spec) bool
}

// Depends declares an unconditional link-time dependency edge.
func Depends(name, constraint string) DependencyEdge {
	return DependencyEdge{Name: name, Constraint: MustParseRange(constraint)}
}

// DependsWhen declares a conditional link-time dependency edge.
func DependsWhen(name, constraint string, when func(*Spec) bool) DependencyEdge {
	return DependencyEdge{Name: name, Constraint: MustParseRange(constraint), When: when}
}

// BuildDepends declares an unconditional build-only dependency edge.
func BuildDepends(name, constraint string) DependencyEdge {
	return DependencyEdge{Name: name, Constraint: MustParseRange(constraint), Type: DepBuild}
}

// BuildDependsWhen declares a conditional build-only dependency edge.
func BuildDependsWhen(name, constraint string, when func(*Spec) bool) DependencyEdge {
	return DependencyEdge{Name: name, Constraint: MustParseRange(constraint), Type: DepBuild, When: when}
}

// CheckEdges verifies that every applicable edge is satisfied by the spec's
// dependency graph: the dependency must be present and its version must lie
// inside the declared constraint.
func CheckEdges(spec *Spec, edges []DependencyEdge) error {
	for _, e := range edges {
		if e.When != nil && !e.When(spec) {
			continue
		}
		dep, ok := spec.Dep(e.Name)
		if !ok {
			return zerr.With(zerr.With(ErrMissingDependency, "package", spec.Name.String()), "dependency", e.Name)
		}
		if !e.Constraint.Contains(dep.Version) {
			err := zerr.With(ErrDependencyConflict, "package", spec.Name.String())
			err = zerr.With(err, "dependency", e.Name)
			err = zerr.With(err, "version", dep.Version.String())
			return err
		}
	}
	return nil
}
