package cp2k_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/recipes/cp2k"
)

func dep(name, version, prefix string, libs ...string) *domain.Spec {
	return &domain.Spec{
		Name:     domain.NewInternedString(name),
		Version:  domain.ParseVersion(version),
		Prefix:   prefix,
		LibNames: libs,
	}
}

// testSpec builds a fully resolved cp2k spec the way the external resolver
// would hand it over.
func testSpec(t *testing.T, version string, overrides map[string]domain.VariantValue) *domain.Spec {
	t.Helper()

	mpi := dep("mpich", "3.1", "/opt/mpich", "mpich")
	mpi.Name = domain.NewInternedString("mpi")
	mpi.MPIFC = "/opt/mpich/bin/mpif90"

	pexsiVersion := "0.10.1"
	if domain.ParseVersion(version).Component(0) < 5 {
		pexsiVersion = "0.9.2"
	}

	s := &domain.Spec{
		Name:    domain.NewInternedString("cp2k"),
		Version: domain.ParseVersion(version),
		Arch:    "local",
		Compiler: domain.Compiler{
			Name:    "gcc",
			Version: domain.ParseVersion("7.2.0"),
			Family:  domain.FamilyGCC,
			CC:      "/usr/bin/gcc",
			CXX:     "/usr/bin/g++",
			FC:      "/usr/bin/gfortran",
			F77:     "/usr/bin/gfortran",
		},
		Dependencies: []*domain.Spec{
			dep("python", "2.7.14", "/opt/python"),
			dep("lapack", "3.9.1", "/opt/lapack", "lapack"),
			dep("blas", "3.9.1", "/opt/blas", "blas"),
			dep("fftw", "3.3.6", "/opt/fftw", "fftw3"),
			dep("libint", "1.1.6", "/opt/libint", "int"),
			dep("libxc", "3.0.0", "/opt/libxc", "xcf90", "xc"),
			dep("libxsmm", "1.8.2", "/opt/libxsmm", "xsmm", "xsmmf"),
			mpi,
			dep("scalapack", "2.0.2", "/opt/scalapack", "scalapack"),
			dep("elpa", "2016.11.001", "/opt/elpa", "elpa"),
			dep("pexsi", pexsiVersion, "/opt/pexsi", "pexsi"),
			dep("superlu-dist", "5.1.3", "/opt/superlu", "superlu_dist"),
			dep("parmetis", "4.0.3", "/opt/parmetis", "parmetis"),
			dep("metis", "5.1.0", "/opt/metis", "metis"),
			dep("plumed", "2.4.0", "/opt/plumed", "plumed"),
		},
	}

	variants, err := cp2k.New().Variants().Apply(overrides)
	require.NoError(t, err)
	s.Variants = variants
	return s
}

func testContext() domain.BuildContext {
	return domain.BuildContext{Stage: "/stage/cp2k", Prefix: "/opt/cp2k"}
}

func TestTranslate_Serial(t *testing.T) {
	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"mpi": domain.BoolValue(false),
		"smm": domain.EnumValue("none"),
	})

	fs, plan, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	require.Contains(t, fs.Defines, "-D__FFTW3")
	require.Contains(t, fs.Defines, "-D__LIBXC")
	require.NotContains(t, fs.Defines, "-D__parallel")
	require.NotContains(t, fs.Defines, "-D__SCALAPACK")

	// The serial build writes a .sopt arch file and builds VERSION=sopt.
	require.Equal(t, domain.StepWriteFile, plan.Steps[0].Kind)
	require.Equal(t, "/stage/cp2k/arch/local-gcc.sopt", plan.Steps[0].Path)
	require.Contains(t, plan.Steps[1].Args, "VERSION=sopt")
	require.Contains(t, plan.Steps[1].Args, "ARCH=local-gcc")
}

func TestTranslate_MPI(t *testing.T) {
	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	})

	fs, plan, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	require.Contains(t, fs.Defines, "-D__parallel")
	require.Contains(t, fs.Defines, "-D__SCALAPACK")
	require.Contains(t, fs.Defines, "-D__MPI_VERSION=3")
	// cp2k 5.x encodes the ELPA version into the define.
	require.Contains(t, fs.Defines, "-D__ELPA=201611")

	require.Equal(t, "/stage/cp2k/arch/local-gcc.popt", plan.Steps[0].Path)
	require.Contains(t, plan.Steps[1].Args, "VERSION=popt")

	// The MPI wrapper drives both compilation and linking.
	content := string(plan.Steps[0].Content)
	require.Contains(t, content, "FC = /opt/mpich/bin/mpif90\n")
	require.Contains(t, content, "LD = /opt/mpich/bin/mpif90\n")

	// Static linking re-appends the math libraries at the end.
	libs := fs.Libs
	require.GreaterOrEqual(t, len(libs), 4)
	require.Equal(t, "/opt/blas/lib/libblas.a", libs[len(libs)-1])
	require.Equal(t, "/opt/lapack/lib/liblapack.a", libs[len(libs)-2])
	require.Equal(t, "/opt/fftw/lib/libfftw3.a", libs[len(libs)-3])
}

func TestTranslate_LegacyELPADefines(t *testing.T) {
	spec := testSpec(t, "4.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	})

	fs, _, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	// cp2k 4.x selects the generational define from the ELPA version.
	require.Contains(t, fs.Defines, "-D__ELPA3")
	require.NotContains(t, fs.Defines, "-D__ELPA=201611")
}

func TestTranslate_UnsupportedCompiler(t *testing.T) {
	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	})
	spec.Compiler.Name = "clang"
	spec.Compiler.Family = domain.FamilyClang

	_, _, err := cp2k.New().Translate(spec, testContext())
	require.ErrorIs(t, err, domain.ErrUnsupportedConfiguration)
}

func TestTranslate_Intel(t *testing.T) {
	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	})
	spec.Compiler = domain.Compiler{
		Name:    "intel",
		Version: domain.ParseVersion("17.0.4"),
		Family:  domain.FamilyIntel,
		CC:      "/opt/intel/bin/icc",
		CXX:     "/opt/intel/bin/icpc",
		FC:      "/opt/intel/bin/ifort",
		F77:     "/opt/intel/bin/ifort",
	}

	fs, plan, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	require.Contains(t, fs.Defines, "-D__INTEL")
	require.Contains(t, fs.FCFlags, "-fp-model source")

	content := string(plan.Steps[0].Content)
	require.Contains(t, content, "AR = xiar -r\n")
	require.Contains(t, content, "-nofor_main")
	require.Contains(t, content, "LDFLAGS_C = ")
	// Intel links the C++ runtime through the driver flag, not -lstdc++.
	require.Contains(t, fs.Libs, "-cxxlib")
	require.NotContains(t, fs.Libs, "-lstdc++")
}

func TestTranslate_SuperluWorkaround(t *testing.T) {
	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	})
	for _, d := range spec.Dependencies {
		if d.Name.String() == "superlu-dist" {
			d.Version = domain.ParseVersion("4.3")
		}
	}

	fs, _, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	// The duplicate-symbol override must be the very first linker flag.
	require.Equal(t, "-Wl,--allow-multiple-definition", fs.LDFlags[0])
}

func TestTranslate_LibSMM(t *testing.T) {
	recipe := cp2k.New()
	bc := testContext()

	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("libsmm"),
	})

	// Missing resource.
	_, _, err := recipe.Translate(spec, bc)
	require.ErrorIs(t, err, domain.ErrMissingExternalResource)

	// Resource pointing at a directory.
	bc.Resources = map[string]string{cp2k.LibSMMResource: t.TempDir()}
	_, _, err = recipe.Translate(spec, bc)
	require.ErrorIs(t, err, domain.ErrMissingExternalResource)

	// Valid archive file.
	path := filepath.Join(t.TempDir(), "libsmm.a")
	require.NoError(t, os.WriteFile(path, []byte("!<arch>\n"), 0o644))
	bc.Resources = map[string]string{cp2k.LibSMMResource: path}

	fs, _, err := recipe.Translate(spec, bc)
	require.NoError(t, err)
	require.Contains(t, fs.Defines, "-D__HAS_smm_dnn")
	require.Contains(t, fs.Defines, "-D__HAS_smm_vec")
	require.Contains(t, fs.Libs, path)
}

func TestTranslate_LibXSMM(t *testing.T) {
	spec := testSpec(t, "5.1", nil)

	fs, _, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	require.Contains(t, fs.Defines, "-D__LIBXSMM")
	require.Contains(t, fs.FCFlags, "-I/opt/libxsmm/include")
	require.Contains(t, fs.Libs, "/opt/libxsmm/lib/libxsmm.a")
}

func TestTranslate_Deterministic(t *testing.T) {
	recipe := cp2k.New()
	bc := testContext()

	_, plan1, err := recipe.Translate(testSpec(t, "5.1", nil), bc)
	require.NoError(t, err)
	_, plan2, err := recipe.Translate(testSpec(t, "5.1", nil), bc)
	require.NoError(t, err)

	require.Equal(t, len(plan1.Steps), len(plan2.Steps))
	require.Equal(t, string(plan1.Steps[0].Content), string(plan2.Steps[0].Content))
}

func TestTranslate_DisabledVariantIsSubset(t *testing.T) {
	recipe := cp2k.New()
	bc := testContext()

	without, _, err := recipe.Translate(testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	}), bc)
	require.NoError(t, err)

	with, _, err := recipe.Translate(testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm":    domain.EnumValue("none"),
		"plumed": domain.BoolValue(true),
	}), bc)
	require.NoError(t, err)

	// Every flag of the disabled build appears in the enabled build, and the
	// variant's own define only in the latter.
	for _, d := range without.Defines {
		require.Contains(t, with.Defines, d)
	}
	require.Contains(t, with.Defines, "-D__PLUMED2")
	require.NotContains(t, without.Defines, "-D__PLUMED2")
	require.NotContains(t, without.Libs, "/opt/plumed/lib/libplumed.a")
	require.Contains(t, with.Libs, "/opt/plumed/lib/libplumed.a")
}

func TestTranslate_FragmentLayout(t *testing.T) {
	spec := testSpec(t, "5.1", map[string]domain.VariantValue{
		"smm": domain.EnumValue("none"),
	})

	_, plan, err := cp2k.New().Translate(spec, testContext())
	require.NoError(t, err)

	content := string(plan.Steps[0].Content)
	for _, key := range []string{"CC = ", "CPP = #", "AR = ar -r", "DFLAGS = ", "CPPFLAGS = ", "CFLAGS = ", "CXXFLAGS = ", "FCFLAGS = ", "LDFLAGS = ", "LIBS = "} {
		require.Contains(t, content, key)
	}
	// Data files ship with the install.
	last := plan.Steps[len(plan.Steps)-1]
	require.Equal(t, domain.StepCopyTree, last.Kind)
	require.Equal(t, "/opt/cp2k/data", last.Dst)
	require.True(t, strings.HasSuffix(plan.Steps[len(plan.Steps)-2].Dst, "bin"))
}
