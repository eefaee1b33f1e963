// Package cp2k builds the CP2K quantum chemistry and solid state physics
// suite. CP2K has no configure step: the build is driven entirely by an
// architecture makefile fragment written into arch/ before running make.
package cp2k

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/emit"
	"go.trai.ch/zerr"
)

// LibSMMResource names the externally supplied libsmm.a archive. The library
// is hand-tuned per CPU and not distributed, so the resolver cannot provide
// it; the path comes in through the build context instead.
const LibSMMResource = "LIBSMM_PATH"

// optFlags is the closed per-family optimization flag table. Families
// missing here cannot build CP2K.
var optFlags = map[domain.CompilerFamily][]string{
	domain.FamilyGCC: {
		"-O2",
		"-mtune=native",
		"-funroll-loops",
		"-ffast-math",
		"-ftree-vectorize",
	},
	domain.FamilyIntel: {
		"-O2",
		"-ip",
		"-pc64",
		"-unroll",
	},
}

// Recipe implements ports.Recipe for CP2K.
type Recipe struct{}

// New returns the CP2K recipe.
func New() *Recipe { return &Recipe{} }

// Name returns the package name.
func (*Recipe) Name() string { return "cp2k" }

// Variants returns the declared build options.
func (*Recipe) Variants() domain.VariantSet {
	return domain.NewVariantSet(
		domain.Bool("static", true, "Favor static over dynamic linking"),
		domain.Bool("mpi", true, "Enable MPI support"),
		domain.Enum("smm", "libxsmm", []string{"libxsmm", "libsmm", "none"},
			"Library for small matrix multiplications"),
		domain.Bool("plumed", false, "Enable PLUMED support"),
	)
}

// Dependencies returns the dependency edges the resolver must satisfy.
func (*Recipe) Dependencies() []domain.DependencyEdge {
	mpi := func(s *domain.Spec) bool { return s.Enabled("mpi") }
	return []domain.DependencyEdge{
		domain.BuildDepends("python", ""),
		domain.Depends("lapack", ""),
		domain.Depends("blas", ""),
		domain.Depends("fftw", "3:"),
		domain.DependsWhen("libint", "1.1.4:1.2", func(s *domain.Spec) bool {
			return s.Satisfies("3.0:5.999")
		}),
		domain.DependsWhen("libxsmm", "", func(s *domain.Spec) bool {
			return s.VariantEnum("smm") == "libxsmm"
		}),
		domain.Depends("libxc", "2.2.2:"),
		domain.DependsWhen("mpi", "2:", mpi),
		domain.DependsWhen("scalapack", "", mpi),
		domain.DependsWhen("elpa", "2011.12:2016.13", mpi),
		domain.DependsWhen("pexsi", "0.9.0:0.9.999", func(s *domain.Spec) bool {
			return s.Enabled("mpi") && s.Satisfies(":4.999")
		}),
		domain.DependsWhen("pexsi", "0.10.0:", func(s *domain.Spec) bool {
			return s.Enabled("mpi") && s.Satisfies("5.0:")
		}),
		domain.DependsWhen("superlu-dist", "", mpi),
		domain.DependsWhen("parmetis", "", mpi),
		domain.DependsWhen("metis", "", mpi),
		domain.DependsWhen("plumed", "", func(s *domain.Spec) bool { return s.Enabled("plumed") }),
		// CP2K 3.0 needs an experimental libwannier.a that only ships with
		// the wannier90 package.
		domain.DependsWhen("wannier90", "", func(s *domain.Spec) bool {
			return s.Satisfies("3.0") && s.Enabled("mpi")
		}),
	}
}

// Translate assembles the architecture makefile fragment and the make
// invocation for the resolved spec.
func (r *Recipe) Translate(spec *domain.Spec, bc domain.BuildContext) (*domain.FlagSet, *domain.Plan, error) {
	family := spec.Compiler.Family
	opt, ok := optFlags[family]
	if !ok {
		err := zerr.With(domain.ErrUnsupportedConfiguration, "package", r.Name())
		return nil, nil, zerr.With(err, "compiler", spec.Compiler.Name)
	}

	static := spec.Enabled("static")
	arch := spec.Arch + "-" + spec.Compiler.Name
	version := "sopt"
	if spec.Enabled("mpi") {
		version = "popt"
	}

	fs := &domain.FlagSet{}
	fs.Define(
		"-D__DATA_DIR="+bc.PrefixPath("data"),
		"-DNDEBUG",
		"-D__FFTW3",
		"-D__LIBINT",
		"-D__LIBINT_MAX_AM=6",
		"-D__LIBDERIV_MAX_AM1=5",
		"-D__LIBXC",
	)
	if spec.HasDep("intel-mkl") {
		fs.Define("-D__FFTSG")
	}

	fs.AllCompilers(opt...)

	switch family {
	case domain.FamilyIntel:
		fs.Define("-D__INTEL", "-D__HAS_ISO_C_BINDING", "-D__USE_CP2K_TRACE", "-D__MKL")
		fs.CFlags = append(fs.CFlags, "-fp-model precise")
		fs.CXXFlags = append(fs.CXXFlags, "-fp-model precise")
		fs.FCFlags = append(fs.FCFlags,
			"-fp-model source",
			"-heap-arrays 64",
			"-diag-disable 8290,8291,10010,10212,11060",
			"-free",
			"-fpp",
		)
	case domain.FamilyGCC:
		fs.FCFlags = append(fs.FCFlags, "-ffree-form", "-ffree-line-length-none")
	}

	fftw, _ := spec.Dep("fftw")
	libxc, _ := spec.Dep("libxc")
	lapack, _ := spec.Dep("lapack")
	blas, _ := spec.Dep("blas")
	libint, _ := spec.Dep("libint")

	fs.FCFlags = append(fs.FCFlags, fftw.HeaderFlags(), libxc.HeaderFlags())

	fs.LDFlags = append(fs.LDFlags,
		fftw.LibsWith(static).
			Concat(lapack.LibsWith(static)).
			Concat(blas.LibsWith(static)).
			Concat(libxc.LibsWith(static)).
			SearchFlags(),
	)

	libs := libint.LibsWith(static)

	if spec.Enabled("mpi") {
		var err error
		libs, err = r.mpiFlags(spec, fs, libs, static)
		if err != nil {
			return nil, nil, err
		}
	}

	libs, err := r.smmFlags(spec, bc, fs, libs, static)
	if err != nil {
		return nil, nil, err
	}

	frag := &emit.Fragment{}

	if spec.Enabled("plumed") {
		plumed, _ := spec.Dep("plumed")
		frag.Include(filepath.Join(plumed.Prefix, "lib", "plumed", "src", "lib", "Plumed.inc"))
		fs.Define("-D__PLUMED2")
		libs = libs.Concat(plumed.LibsWith(static))
	}

	// Closing re-append: under static linking the math libraries must appear
	// again after everything that references them.
	libs = libs.
		Concat(libxc.LibsWith(static)).
		Concat(fftw.LibsWith(static)).
		Concat(lapack.LibsWith(static)).
		Concat(blas.LibsWith(static))

	fs.Libs = libs.Files()

	frag.Set("CC", spec.Compiler.CC)
	if family == domain.FamilyIntel {
		// The Intel arch files of CP2K keep CPP commented out and rely on
		// -fpp instead of a separate ${CPP} <file>.F > <file>.f90 pass.
		frag.Set("CPP", "# "+spec.Compiler.CC+" -P")
		frag.Set("AR", "xiar -r")
	} else {
		frag.Set("CPP", "# "+spec.Compiler.CC+" -E")
		frag.Set("AR", "ar -r")
	}

	fc := spec.Compiler.FC
	if spec.Enabled("mpi") {
		if mpi, ok := spec.Dep("mpi"); ok && mpi.MPIFC != "" {
			fc = mpi.MPIFC
		}
	}
	frag.Set("FC", fc)
	frag.Set("LD", fc)
	frag.Blank()

	// Per-channel concatenation: the preprocessor definitions feed every
	// compile channel, appended after the flags accumulated so far.
	fs.CPPFlags = append(fs.CPPFlags, fs.Defines...)
	fs.CFlags = append(fs.CFlags, fs.CPPFlags...)
	fs.CXXFlags = append(fs.CXXFlags, fs.CPPFlags...)
	fs.FCFlags = append(fs.FCFlags, fs.CPPFlags...)

	frag.SetList("DFLAGS", fs.Defines)
	frag.SetList("CPPFLAGS", fs.CPPFlags)
	frag.SetList("CFLAGS", fs.CFlags)
	frag.SetList("CXXFLAGS", fs.CXXFlags)
	frag.SetList("FCFLAGS", fs.FCFlags)
	frag.SetList("LDFLAGS", fs.LDFlags)
	if family == domain.FamilyIntel {
		frag.SetList("LDFLAGS_C", append(slices.Clone(fs.LDFlags), "-nofor_main"))
	}
	frag.SetList("LIBS", fs.Libs)

	makefiles := bc.StagePath("makefiles")
	plan := &domain.Plan{Package: r.Name(), Version: spec.Version}
	plan.Add(
		domain.WriteFile(bc.StagePath("arch", arch+"."+version), frag.Bytes()),
		// The CP2K makefiles derive paths from PWD, which make inherits from
		// the caller, so it has to be pinned to the makefiles directory.
		domain.RunEnv(makefiles, map[string]string{"PWD": makefiles},
			"make", "ARCH="+arch, "VERSION="+version),
		domain.CopyTree(bc.StagePath("exe", arch), bc.PrefixPath("bin")),
		domain.CopyTree(bc.StagePath("data"), bc.PrefixPath("data")),
	)

	return fs, plan, nil
}

// mpiFlags appends the parallel-build defines, include paths and libraries.
func (r *Recipe) mpiFlags(spec *domain.Spec, fs *domain.FlagSet, libs domain.LibraryList, static bool) (domain.LibraryList, error) {
	if spec.DepSatisfies("mpi", "3:") {
		fs.Define("-D__MPI_VERSION=3")
	} else if spec.DepSatisfies("mpi", "2:") {
		fs.Define("-D__MPI_VERSION=2")
	}

	fs.Define("-D__parallel", "-D__LIBPEXSI", "-D__SCALAPACK")

	elpa, _ := spec.Dep("elpa")
	if spec.Satisfies(":4.999") {
		switch {
		case elpa.Satisfies(":2014.5.999"):
			fs.Define("-D__ELPA")
		case elpa.Satisfies("2014.6:2015.10.999"):
			fs.Define("-D__ELPA2")
		default:
			fs.Define("-D__ELPA3")
		}
	} else {
		fs.Define(fmt.Sprintf("-D__ELPA=%d%02d", elpa.Version.Component(0), elpa.Version.Component(1)))
		fs.FCFlags = append(fs.FCFlags,
			"-I"+elpa.IncludeDir("elpa-"+elpa.Version.String(), "elpa"))
	}

	pexsi, _ := spec.Dep("pexsi")
	fs.FCFlags = append(fs.FCFlags,
		"-I"+elpa.IncludeDir("elpa-"+elpa.Version.String(), "modules"),
		"-I"+filepath.Join(pexsi.Prefix, "fortran"),
	)

	scalapack, _ := spec.Dep("scalapack")
	fs.LDFlags = append(fs.LDFlags, scalapack.LibsWith(static).SearchFlags())

	superlu, _ := spec.Dep("superlu-dist")
	parmetis, _ := spec.Dep("parmetis")
	metis, _ := spec.Dep("metis")
	mpi, _ := spec.Dep("mpi")

	libs = libs.
		Concat(elpa.LibsWith(static)).
		Concat(pexsi.LibsWith(static)).
		Concat(superlu.LibsWith(static)).
		Concat(parmetis.LibsWith(static)).
		Concat(metis.LibsWith(static)).
		Concat(scalapack.LibsWith(static)).
		Concat(mpi.LibsWith(static)).
		Add(spec.Compiler.Family.StdCXXLibs()...)

	// superlu-dist 4.3 ships duplicate symbols; the override flag has to
	// come before every other linker flag.
	if spec.DepSatisfies("superlu-dist", "4.3") {
		fs.LDFlags = slices.Insert(fs.LDFlags, 0, "-Wl,--allow-multiple-definition")
	}

	if wannier, ok := spec.Dep("wannier90"); ok {
		fs.Define("-D__WANNIER90")
		libs = libs.Add(filepath.Join(wannier.Prefix, "lib", "libwannier.a"))
	}

	return libs, nil
}

// smmFlags wires the selected small-matrix-multiplication library.
func (r *Recipe) smmFlags(spec *domain.Spec, bc domain.BuildContext, fs *domain.FlagSet, libs domain.LibraryList, static bool) (domain.LibraryList, error) {
	switch spec.VariantEnum("smm") {
	case "libsmm":
		path, ok := bc.Resources[LibSMMResource]
		if !ok || path == "" {
			err := zerr.With(domain.ErrMissingExternalResource, "resource", LibSMMResource)
			return libs, zerr.With(err, "hint", "point it to the absolute path of the libsmm.a file")
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			err := zerr.With(domain.ErrMissingExternalResource, "resource", LibSMMResource)
			return libs, zerr.With(err, "path", path)
		}
		fs.Define("-D__HAS_smm_dnn", "-D__HAS_smm_vec")
		libs = libs.Add(path)
	case "libxsmm":
		libxsmm, _ := spec.Dep("libxsmm")
		fs.Define("-D__LIBXSMM")
		fs.FCFlags = append(fs.FCFlags, libxsmm.HeaderFlags())
		fs.LDFlags = append(fs.LDFlags, libxsmm.LibsWith(static).SearchFlags())
		libs = libs.Concat(libxsmm.LibsWith(static))
	}
	return libs, nil
}
