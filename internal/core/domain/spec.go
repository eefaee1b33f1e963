package domain

import (
	"path/filepath"
	"strings"
)

// Spec is the resolved, concrete description of one package build: version,
// variant selections, compiler and the resolved dependency specs. It is
// constructed once by the specfile loader from the external resolver's output
// and treated as read-only afterwards.
type Spec struct {
	Name     InternedString
	Version  Version
	Compiler Compiler

	// Arch is the target architecture string, e.g. "linux-x86_64".
	Arch string

	// Variants maps variant name to the selected value. Validated against the
	// recipe's declarations before translation.
	Variants map[string]VariantValue

	// Dependencies are the resolved dependency specs, each already installed
	// into its own Prefix by previous pipeline runs.
	Dependencies []*Spec

	// Prefix is the installation prefix: the target prefix for the root spec,
	// the existing install location for dependency specs.
	Prefix string

	// LibNames are the library basenames the package provides (e.g. "fftw3"
	// for libfftw3). Used to answer link-flag queries from dependents.
	LibNames []string

	// Static selects static over shared libraries for this spec.
	Static bool

	// MPIFC is the Fortran compiler wrapper an MPI dependency provides.
	MPIFC string
}

// Enabled reports whether a boolean variant is selected on.
func (s *Spec) Enabled(variant string) bool {
	v, ok := s.Variants[variant]
	return ok && v.Kind == VariantBool && v.Bool
}

// VariantEnum returns the selected value of an enumerated variant, or the
// empty string when the variant is absent.
func (s *Spec) VariantEnum(variant string) string {
	v, ok := s.Variants[variant]
	if !ok || v.Kind != VariantEnum {
		return ""
	}
	return v.Enum
}

// Satisfies reports whether the spec's version lies in the given range
// constraint (e.g. "3:", ":4.999").
func (s *Spec) Satisfies(constraint string) bool {
	r, err := ParseRange(constraint)
	if err != nil {
		return false
	}
	return r.Contains(s.Version)
}

// Dep returns the dependency spec with the given package name, searching the
// dependency graph depth-first.
func (s *Spec) Dep(name string) (*Spec, bool) {
	for _, d := range s.Dependencies {
		if d.Name.String() == name {
			return d, true
		}
		if sub, ok := d.Dep(name); ok {
			return sub, true
		}
	}
	return nil, false
}

// HasDep reports whether a package appears anywhere in the dependency graph.
func (s *Spec) HasDep(name string) bool {
	_, ok := s.Dep(name)
	return ok
}

// DepSatisfies reports whether a dependency is present and its version lies
// in the given range.
func (s *Spec) DepSatisfies(name, constraint string) bool {
	d, ok := s.Dep(name)
	return ok && d.Satisfies(constraint)
}

// HeaderFlags returns the preprocessor flag string pointing at the spec's
// include directory. Every dependency-like spec provides this capability.
func (s *Spec) HeaderFlags() string {
	return "-I" + filepath.Join(s.Prefix, "include")
}

// IncludeDir returns a subdirectory of the spec's include tree.
func (s *Spec) IncludeDir(elem ...string) string {
	return filepath.Join(append([]string{s.Prefix, "include"}, elem...)...)
}

// LibDir returns the spec's library directory.
func (s *Spec) LibDir() string {
	return filepath.Join(s.Prefix, "lib")
}

// Libs returns the spec's libraries, honoring its static/shared selection.
func (s *Spec) Libs() LibraryList {
	return s.LibsWith(s.Static)
}

// LibsWith returns the spec's libraries in the requested linkage flavor.
// Dependents use this to force the flavor their own static variant selects.
func (s *Spec) LibsWith(static bool) LibraryList {
	ext := ".so"
	if static {
		ext = ".a"
	}
	var l LibraryList
	for _, name := range s.LibNames {
		l = l.Add(filepath.Join(s.LibDir(), "lib"+name+ext))
	}
	return l
}

// LibraryList is an ordered list of library files, with the occasional
// literal linker flag mixed in (e.g. -lstdc++). Emission order is
// significant: static linkers resolve symbols left to right.
type LibraryList struct {
	files []string
}

// NewLibraryList builds a list from explicit library file paths.
func NewLibraryList(files ...string) LibraryList {
	return LibraryList{files: files}
}

// Add returns a list with the given files appended.
func (l LibraryList) Add(files ...string) LibraryList {
	out := make([]string, 0, len(l.files)+len(files))
	out = append(out, l.files...)
	out = append(out, files...)
	return LibraryList{files: out}
}

// Concat returns the concatenation of two lists, preserving order.
func (l LibraryList) Concat(other LibraryList) LibraryList {
	return l.Add(other.files...)
}

// Files returns the library file paths.
func (l LibraryList) Files() []string {
	return l.files
}

// SearchFlags returns the -L flags for the directories containing the
// libraries, first occurrence order, deduplicated.
func (l LibraryList) SearchFlags() string {
	seen := make(map[string]bool, len(l.files))
	var flags []string
	for _, f := range l.files {
		if strings.HasPrefix(f, "-") {
			continue
		}
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			flags = append(flags, "-L"+dir)
		}
	}
	return strings.Join(flags, " ")
}

// LinkFlags returns the -l flags derived from the library basenames, in list
// order. Files without the lib prefix are emitted as literal paths.
func (l LibraryList) LinkFlags() string {
	var flags []string
	for _, f := range l.files {
		if strings.HasPrefix(f, "-") {
			flags = append(flags, f)
			continue
		}
		base := filepath.Base(f)
		base = strings.TrimSuffix(strings.TrimSuffix(base, ".a"), ".so")
		if name, ok := strings.CutPrefix(base, "lib"); ok {
			flags = append(flags, "-l"+name)
			continue
		}
		flags = append(flags, f)
	}
	return strings.Join(flags, " ")
}

// LDFlags returns search flags followed by link flags.
func (l LibraryList) LDFlags() string {
	search, link := l.SearchFlags(), l.LinkFlags()
	if search == "" {
		return link
	}
	if link == "" {
		return search
	}
	return search + " " + link
}
