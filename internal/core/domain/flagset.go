package domain

// FlagSet holds the per-channel flag sequences assembled for one build.
// Channels are append-only and emission order is preserved end to end: later
// flags may need to override earlier ones, and link-library order matters to
// static linkers. A FlagSet is built fresh per install invocation, owned by a
// single translation call, and discarded once the build tool has run.
type FlagSet struct {
	// Defines are preprocessor macro definitions (-D...).
	Defines []string
	// CPPFlags are flags common to every preprocessing step.
	CPPFlags []string
	// CFlags, CXXFlags and FCFlags are per-language compile flags.
	CFlags   []string
	CXXFlags []string
	FCFlags  []string
	// LDFlags are linker flags, typically library search paths.
	LDFlags []string
	// Libs are the libraries to link, as full file paths, in link order.
	Libs []string
}

// Define appends preprocessor definitions.
func (f *FlagSet) Define(defs ...string) { f.Defines = append(f.Defines, defs...) }

// AllCompilers appends the same flags to the C, C++ and Fortran channels.
func (f *FlagSet) AllCompilers(flags ...string) {
	f.CFlags = append(f.CFlags, flags...)
	f.CXXFlags = append(f.CXXFlags, flags...)
	f.FCFlags = append(f.FCFlags, flags...)
}

// AddLibs appends library files in link order.
func (f *FlagSet) AddLibs(l LibraryList) { f.Libs = append(f.Libs, l.Files()...) }

// Clone returns a deep copy of the flag set.
func (f *FlagSet) Clone() *FlagSet {
	out := &FlagSet{}
	out.Defines = append(out.Defines, f.Defines...)
	out.CPPFlags = append(out.CPPFlags, f.CPPFlags...)
	out.CFlags = append(out.CFlags, f.CFlags...)
	out.CXXFlags = append(out.CXXFlags, f.CXXFlags...)
	out.FCFlags = append(out.FCFlags, f.FCFlags...)
	out.LDFlags = append(out.LDFlags, f.LDFlags...)
	out.Libs = append(out.Libs, f.Libs...)
	return out
}

// Contains reports whether any channel carries the given flag. Used by tests
// and by dry-run reporting; assembly itself never queries backwards.
func (f *FlagSet) Contains(flag string) bool {
	for _, ch := range [][]string{f.Defines, f.CPPFlags, f.CFlags, f.CXXFlags, f.FCFlags, f.LDFlags, f.Libs} {
		for _, s := range ch {
			if s == flag {
				return true
			}
		}
	}
	return false
}
