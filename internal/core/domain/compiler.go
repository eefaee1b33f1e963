package domain

import "go.trai.ch/zerr"

// CompilerFamily is the closed set of compiler families forge knows how to
// drive. Recipes key their flag tables by family; a family missing from a
// recipe's table is an unsupported configuration, never a silent default.
type CompilerFamily string

const (
	// FamilyGCC is the GNU compiler collection.
	FamilyGCC CompilerFamily = "gcc"
	// FamilyIntel is the Intel classic compiler suite.
	FamilyIntel CompilerFamily = "intel"
	// FamilyClang is the LLVM clang compiler.
	FamilyClang CompilerFamily = "clang"
)

// ParseCompilerFamily maps a compiler name from a resolved spec onto the
// closed family set.
func ParseCompilerFamily(name string) (CompilerFamily, error) {
	switch CompilerFamily(name) {
	case FamilyGCC, FamilyIntel, FamilyClang:
		return CompilerFamily(name), nil
	}
	return "", zerr.With(ErrUnsupportedConfiguration, "compiler", name)
}

// OpenMPFlag returns the flag that enables OpenMP for the family.
func (f CompilerFamily) OpenMPFlag() string {
	switch f {
	case FamilyIntel:
		return "-qopenmp"
	default:
		return "-fopenmp"
	}
}

// StdCXXLibs returns the linker arguments needed to pull in the C++ standard
// library when linking with the Fortran driver.
func (f CompilerFamily) StdCXXLibs() []string {
	switch f {
	case FamilyIntel:
		return []string{"-cxxlib"}
	default:
		return []string{"-lstdc++"}
	}
}

// Compiler identifies the toolchain a spec was concretized against, including
// the concrete driver paths the resolver discovered.
type Compiler struct {
	Name    string
	Version Version
	Family  CompilerFamily

	// Driver paths. FC and F77 may be empty for toolchains without Fortran.
	CC  string
	CXX string
	FC  string
	F77 string
}

// HasFortran reports whether the toolchain provides both Fortran drivers.
func (c Compiler) HasFortran() bool {
	return c.FC != "" && c.F77 != ""
}
