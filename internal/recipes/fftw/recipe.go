// Package fftw builds the FFTW discrete Fourier transform library. FFTW is
// an autotools package built once per enabled floating-point precision, each
// precision in its own subdirectory of the stage.
package fftw

import (
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/emit"
	"go.trai.ch/zerr"
)

// precision is one fan-out target: the variant selecting it, the build
// subdirectory, and the extra configure option it needs.
type precision struct {
	variant string
	dir     string
	option  string
}

// Fan-out order is fixed so plans stay deterministic.
var precisions = []precision{
	{variant: "double", dir: "double"},
	{variant: "float", dir: "float", option: "--enable-float"},
	{variant: "long_double", dir: "long-double", option: "--enable-long-double"},
	{variant: "quad", dir: "quad", option: "--enable-quad-precision"},
}

// Recipe implements ports.Recipe for FFTW.
type Recipe struct{}

// New returns the FFTW recipe.
func New() *Recipe { return &Recipe{} }

// Name returns the package name.
func (*Recipe) Name() string { return "fftw" }

// Variants returns the declared build options.
func (*Recipe) Variants() domain.VariantSet {
	return domain.NewVariantSet(
		domain.Bool("float", true, "Produces a single precision version of the library"),
		domain.Bool("double", true, "Produces a double precision version of the library"),
		domain.Bool("long_double", true, "Produces a long double precision version of the library"),
		domain.Bool("quad", false, "Produces a quad precision version of the library (works only with GCC and libquadmath)"),
		domain.Bool("openmp", false, "Enable OpenMP support"),
		domain.Bool("mpi", true, "Activate MPI support"),
		domain.Bool("pfft_patches", false, "Add extra transpose functions for PFFT compatibility"),
	)
}

// Dependencies returns the dependency edges the resolver must satisfy.
func (*Recipe) Dependencies() []domain.DependencyEdge {
	pfft := func(s *domain.Spec) bool { return s.Enabled("pfft_patches") }
	return []domain.DependencyEdge{
		domain.DependsWhen("mpi", "", func(s *domain.Spec) bool { return s.Enabled("mpi") }),
		domain.BuildDependsWhen("automake", "", pfft),
		domain.BuildDependsWhen("autoconf", "", pfft),
		domain.BuildDependsWhen("libtool", "", pfft),
	}
}

// Translate assembles the per-precision configure/make/install fan-out.
func (r *Recipe) Translate(spec *domain.Spec, bc domain.BuildContext) (*domain.FlagSet, *domain.Plan, error) {
	family := spec.Compiler.Family

	base := emit.NewConfigureArgs(bc.Prefix)
	base.Add("--enable-shared", "--enable-threads")
	if !spec.Compiler.HasFortran() {
		base.Disable("fortran")
	}
	if spec.Satisfies(":2") {
		base.Enable("type-prefix")
	}

	fs := &domain.FlagSet{}
	if spec.Enabled("openmp") {
		// Apple's clang builds but silently drops OpenMP support.
		if family == domain.FamilyClang && strings.HasSuffix(spec.Compiler.Version.String(), "-apple") {
			err := zerr.With(domain.ErrUnsupportedConfiguration, "package", r.Name())
			return nil, nil, zerr.With(err, "reason", "Apple's clang does not support OpenMP")
		}
		base.Enable("openmp")
		if spec.Satisfies(":2") {
			// libtool in the 2.x tree strips CFLAGS from the link line, so
			// the OpenMP flag has to ride in front of configure's arguments.
			flag := family.OpenMPFlag()
			base.Prepend("CFLAGS=" + flag)
			fs.CFlags = append(fs.CFlags, flag)
		}
	}
	if spec.Enabled("mpi") {
		base.Enable("mpi")
	}

	if spec.Enabled("quad") && family != domain.FamilyGCC {
		err := zerr.With(domain.ErrUnsupportedConfiguration, "package", r.Name())
		return nil, nil, zerr.With(err, "reason", "quad precision requires GCC and libquadmath")
	}

	// SIMD is only wired up for x86_64 and only for the single and double
	// precision builds.
	sse2 := strings.Contains(spec.Arch, "x86_64") && spec.Satisfies("3:")

	plan := &domain.Plan{Package: r.Name(), Version: spec.Version}
	if spec.Enabled("pfft_patches") {
		plan.Add(domain.Run(bc.Stage, "autoreconf", "-ifv"))
	}

	for _, p := range precisions {
		if !spec.Enabled(p.variant) {
			continue
		}
		// Quad and long double variants only exist in the 3.x tree.
		if (p.variant == "long_double" || p.variant == "quad") && !spec.Satisfies("3:") {
			continue
		}

		args := base.Clone()
		if p.option != "" {
			args.Add(p.option)
		}
		if sse2 && (p.variant == "double" || p.variant == "float") {
			args.Enable("sse2")
		}

		dir := bc.StagePath(p.dir)
		plan.Add(
			domain.Mkdir(dir),
			domain.Run(dir, "../configure", args.List()...),
			domain.Run(dir, "make"),
			domain.Run(dir, "make", "install"),
		)
	}

	return fs, plan, nil
}
