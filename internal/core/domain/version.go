package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a dot-separated package version such as "3.3.6-pl2" or "2011.12".
// Components are compared numerically when both sides are numeric and
// lexically otherwise, so "5.2" sorts before "5.10".
type Version struct {
	raw   string
	parts []string
}

// ParseVersion parses a version string. The empty string yields the zero
// Version, which compares lower than any concrete version.
func ParseVersion(s string) Version {
	if s == "" {
		return Version{}
	}
	return Version{
		raw:   s,
		parts: strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '-' }),
	}
}

// String returns the original version string.
func (v Version) String() string { return v.raw }

// IsZero reports whether the version is unset.
func (v Version) IsZero() bool { return v.raw == "" }

// Component returns the numeric value of the i-th component, or 0 when the
// component is absent or non-numeric.
func (v Version) Component(i int) int {
	if i >= len(v.parts) {
		return 0
	}
	n, err := strconv.Atoi(v.parts[i])
	if err != nil {
		return 0
	}
	return n
}

// Compare returns -1, 0 or 1 depending on whether v sorts before, equal to or
// after other.
func (v Version) Compare(other Version) int {
	return comparePartial(v.parts, other.parts, max(len(v.parts), len(other.parts)))
}

// comparePartial compares at most n leading components of a against b.
// Missing components compare lower than any present component.
func comparePartial(a, b []string, n int) int {
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a) && i >= len(b):
			return 0
		case i >= len(a):
			return -1
		case i >= len(b):
			return 1
		}
		if c := compareComponent(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareComponent(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// Range is an inclusive version range with optional bounds, parsed from the
// constraint syntax used in resolved specs: "3:" (at least 3), ":4.999"
// (at most 4.999), "2011.12:2016.13", or a single version for a prefix match.
type Range struct {
	lo, hi       Version
	hasLo, hasHi bool
}

// ParseRange parses a version range. An empty constraint matches everything.
func ParseRange(s string) (Range, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "@")
	if s == "" {
		return Range{}, nil
	}
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		// Single version: prefix match, e.g. "4.3" matches 4.3.1.
		v := ParseVersion(s)
		return Range{lo: v, hi: v, hasLo: true, hasHi: true}, nil
	}
	var r Range
	if lo != "" {
		r.lo = ParseVersion(lo)
		r.hasLo = true
	}
	if hi != "" {
		r.hi = ParseVersion(hi)
		r.hasHi = true
	}
	if r.hasLo && r.hasHi && r.lo.Compare(r.hi) > 0 {
		return Range{}, zerr.With(zerr.New("version range lower bound exceeds upper bound"), "range", s)
	}
	return r, nil
}

// MustParseRange parses a range known to be valid at compile time. It panics
// on malformed input and is intended for recipe dependency declarations.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether v lies within the range. Bounds are inclusive and
// compared component-wise up to the bound's own precision, so ":2" contains
// 2.1.5 and "2014.5" contains 2014.5.003.
func (r Range) Contains(v Version) bool {
	if r.hasLo && comparePartial(v.parts, r.lo.parts, max(len(v.parts), len(r.lo.parts))) < 0 {
		return false
	}
	if r.hasHi && comparePartial(v.parts, r.hi.parts, len(r.hi.parts)) > 0 {
		return false
	}
	return true
}
