package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/recipes"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockSpecLoader
	runner   *mocks.MockPlanRunner
	hasher   *mocks.MockSpecHasher
	registry *mocks.MockInstallRegistry
	recipe   *mocks.MockRecipe
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockSpecLoader(ctrl),
		runner:   mocks.NewMockPlanRunner(ctrl),
		hasher:   mocks.NewMockSpecHasher(ctrl),
		registry: mocks.NewMockInstallRegistry(ctrl),
		recipe:   mocks.NewMockRecipe(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	f.recipe.EXPECT().Name().Return("fftw").AnyTimes()
	f.app = app.New(f.loader, f.runner, f.hasher, f.registry, recipes.NewRegistry(f.recipe), logger)
	return f
}

func testSpec() *domain.Spec {
	return &domain.Spec{
		Name:    domain.NewInternedString("fftw"),
		Version: domain.ParseVersion("3.3.6"),
		Compiler: domain.Compiler{
			Name:   "gcc",
			Family: domain.FamilyGCC,
		},
	}
}

func testPlan() *domain.Plan {
	p := &domain.Plan{Package: "fftw", Version: domain.ParseVersion("3.3.6")}
	p.Add(domain.Run("/stage/fftw/double", "make"))
	return p
}

func TestApp_Install(t *testing.T) {
	f := newFixture(t)
	bc := domain.BuildContext{Stage: "/stage/fftw", Prefix: "/opt/fftw"}
	plan := testPlan()

	f.loader.EXPECT().Load("fftw.yaml").Return(testSpec(), bc, nil)
	f.recipe.EXPECT().Variants().Return(domain.NewVariantSet())
	f.recipe.EXPECT().Dependencies().Return(nil)
	f.hasher.EXPECT().Hash(gomock.Any()).Return("abc123")
	f.registry.EXPECT().Get("abc123").Return(nil, nil)
	f.recipe.EXPECT().Translate(gomock.Any(), bc).Return(&domain.FlagSet{}, plan, nil)
	f.runner.EXPECT().Run(gomock.Any(), plan).Return(nil)
	f.registry.EXPECT().Record(gomock.Any()).DoAndReturn(func(rec domain.InstallRecord) error {
		require.Equal(t, "fftw", rec.Package)
		require.Equal(t, "abc123", rec.SpecHash)
		require.Equal(t, "/opt/fftw", rec.Prefix)
		return nil
	})

	require.NoError(t, f.app.Install(context.Background(), "fftw.yaml", ""))
}

func TestApp_Install_AlreadyInstalled(t *testing.T) {
	f := newFixture(t)
	bc := domain.BuildContext{Stage: "/stage/fftw", Prefix: "/opt/fftw"}

	f.loader.EXPECT().Load("fftw.yaml").Return(testSpec(), bc, nil)
	f.recipe.EXPECT().Variants().Return(domain.NewVariantSet())
	f.recipe.EXPECT().Dependencies().Return(nil)
	f.hasher.EXPECT().Hash(gomock.Any()).Return("abc123")
	f.registry.EXPECT().Get("abc123").Return(&domain.InstallRecord{
		Package: "fftw", SpecHash: "abc123", Prefix: "/opt/fftw",
	}, nil)
	f.recipe.EXPECT().Translate(gomock.Any(), bc).Return(&domain.FlagSet{}, testPlan(), nil)
	// Runner and registry.Record must never be called.

	require.NoError(t, f.app.Install(context.Background(), "fftw.yaml", ""))
}

func TestApp_Install_PrefixOverride(t *testing.T) {
	f := newFixture(t)
	bc := domain.BuildContext{Stage: "/stage/fftw", Prefix: "/opt/fftw"}

	f.loader.EXPECT().Load("fftw.yaml").Return(testSpec(), bc, nil)
	f.recipe.EXPECT().Variants().Return(domain.NewVariantSet())
	f.recipe.EXPECT().Dependencies().Return(nil)
	f.hasher.EXPECT().Hash(gomock.Any()).Return("abc123")
	f.registry.EXPECT().Get("abc123").Return(nil, nil)
	f.recipe.EXPECT().Translate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *domain.Spec, got domain.BuildContext) (*domain.FlagSet, *domain.Plan, error) {
			require.Equal(t, "/custom/prefix", got.Prefix)
			return &domain.FlagSet{}, testPlan(), nil
		})
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
	f.registry.EXPECT().Record(gomock.Any()).Return(nil)

	require.NoError(t, f.app.Install(context.Background(), "fftw.yaml", "/custom/prefix"))
}

func TestApp_Install_UnknownPackage(t *testing.T) {
	f := newFixture(t)

	spec := testSpec()
	spec.Name = domain.NewInternedString("gromacs")
	f.loader.EXPECT().Load("gromacs.yaml").Return(spec, domain.BuildContext{}, nil)

	err := f.app.Install(context.Background(), "gromacs.yaml", "")
	require.ErrorIs(t, err, domain.ErrUnknownPackage)
}

func TestApp_Install_BuildFailure(t *testing.T) {
	f := newFixture(t)
	bc := domain.BuildContext{Stage: "/stage/fftw", Prefix: "/opt/fftw"}

	f.loader.EXPECT().Load("fftw.yaml").Return(testSpec(), bc, nil)
	f.recipe.EXPECT().Variants().Return(domain.NewVariantSet())
	f.recipe.EXPECT().Dependencies().Return(nil)
	f.hasher.EXPECT().Hash(gomock.Any()).Return("abc123")
	f.registry.EXPECT().Get("abc123").Return(nil, nil)
	f.recipe.EXPECT().Translate(gomock.Any(), bc).Return(&domain.FlagSet{}, testPlan(), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ErrExternalToolFailure)
	// A failed build records nothing.

	err := f.app.Install(context.Background(), "fftw.yaml", "")
	require.ErrorIs(t, err, domain.ErrExternalToolFailure)
}

func TestApp_Install_LoadError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("broken.yaml").Return(nil, domain.BuildContext{}, errors.New("no such file"))

	err := f.app.Install(context.Background(), "broken.yaml", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load specfile")
}

func TestApp_DefaultStageNamedByHash(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("fftw.yaml").Return(testSpec(), domain.BuildContext{Prefix: "/opt/fftw"}, nil)
	f.recipe.EXPECT().Variants().Return(domain.NewVariantSet())
	f.recipe.EXPECT().Dependencies().Return(nil)
	f.hasher.EXPECT().Hash(gomock.Any()).Return("abc123")
	f.recipe.EXPECT().Translate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *domain.Spec, got domain.BuildContext) (*domain.FlagSet, *domain.Plan, error) {
			require.Contains(t, got.Stage, "fftw-3.3.6-abc123")
			return &domain.FlagSet{}, testPlan(), nil
		})

	var buf bytes.Buffer
	require.NoError(t, f.app.Plan(context.Background(), "fftw.yaml", "", &buf))
}

func TestApp_Plan(t *testing.T) {
	f := newFixture(t)
	bc := domain.BuildContext{Stage: "/stage/fftw", Prefix: "/opt/fftw"}

	fs := &domain.FlagSet{
		Defines: []string{"-D__FFTW3"},
		LDFlags: []string{"-L/opt/fftw/lib"},
	}

	f.loader.EXPECT().Load("fftw.yaml").Return(testSpec(), bc, nil)
	f.recipe.EXPECT().Variants().Return(domain.NewVariantSet())
	f.recipe.EXPECT().Dependencies().Return(nil)
	f.hasher.EXPECT().Hash(gomock.Any()).Return("abc123")
	f.recipe.EXPECT().Translate(gomock.Any(), bc).Return(fs, testPlan(), nil)
	// A dry run never touches the runner or the registry.

	var buf bytes.Buffer
	require.NoError(t, f.app.Plan(context.Background(), "fftw.yaml", "", &buf))

	out := buf.String()
	require.Contains(t, out, "fftw@3.3.6")
	require.Contains(t, out, "hash=abc123")
	require.Contains(t, out, "DFLAGS = -D__FFTW3")
	require.Contains(t, out, "LDFLAGS = -L/opt/fftw/lib")
	require.Contains(t, out, "run [/stage/fftw/double] make")
}
