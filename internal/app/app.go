// Package app implements the application layer for forge.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/recipes"
	"go.trai.ch/zerr"
)

// App represents the main application logic: driving one package build from
// specfile to populated prefix.
type App struct {
	loader   ports.SpecLoader
	runner   ports.PlanRunner
	hasher   ports.SpecHasher
	registry ports.InstallRegistry
	recipes  *recipes.Registry
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.SpecLoader,
	runner ports.PlanRunner,
	hasher ports.SpecHasher,
	registry ports.InstallRegistry,
	recipeRegistry *recipes.Registry,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		runner:   runner,
		hasher:   hasher,
		registry: registry,
		recipes:  recipeRegistry,
		logger:   logger,
	}
}

// Install builds and installs the package described by the specfile. The
// whole build is fail-fast: any failing step aborts, nothing is recorded,
// and a re-run expects a clean stage.
func (a *App) Install(ctx context.Context, specPath, prefixOverride string) error {
	spec, bc, hash, plan, _, err := a.prepare(specPath, prefixOverride)
	if err != nil {
		return err
	}

	if rec, err := a.registry.Get(hash); err == nil && rec != nil {
		a.logger.Info(fmt.Sprintf("%s@%s already installed at %s", spec.Name, spec.Version, rec.Prefix))
		return nil
	}

	a.logger.Info(fmt.Sprintf("installing %s@%s (%s) into %s", spec.Name, spec.Version, hash, bc.Prefix))

	if err := a.runner.Run(ctx, plan); err != nil {
		return zerr.Wrap(err, "build failed")
	}

	if err := a.registry.Record(domain.InstallRecord{
		Package:     spec.Name.String(),
		Version:     spec.Version.String(),
		SpecHash:    hash,
		Prefix:      bc.Prefix,
		InstalledAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("installed %s@%s", spec.Name, spec.Version))
	return nil
}

// Plan runs the translation pipeline without executing anything and renders
// the assembled flag set and invocation plan to w.
func (a *App) Plan(_ context.Context, specPath, prefixOverride string, w io.Writer) error {
	spec, _, hash, plan, flags, err := a.prepare(specPath, prefixOverride)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s@%s %%%s arch=%s hash=%s\n", spec.Name, spec.Version, spec.Compiler.Name, spec.Arch, hash)
	writeChannel(w, "DFLAGS", flags.Defines)
	writeChannel(w, "CPPFLAGS", flags.CPPFlags)
	writeChannel(w, "CFLAGS", flags.CFlags)
	writeChannel(w, "CXXFLAGS", flags.CXXFlags)
	writeChannel(w, "FCFLAGS", flags.FCFlags)
	writeChannel(w, "LDFLAGS", flags.LDFlags)
	writeChannel(w, "LIBS", flags.Libs)
	fmt.Fprintln(w, "plan:")
	for i, step := range plan.Steps {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, step.Describe())
	}
	return nil
}

// prepare runs the shared front half of both use-cases: load, validate,
// hash, translate.
func (a *App) prepare(specPath, prefixOverride string) (*domain.Spec, domain.BuildContext, string, *domain.Plan, *domain.FlagSet, error) {
	fail := func(err error) (*domain.Spec, domain.BuildContext, string, *domain.Plan, *domain.FlagSet, error) {
		return nil, domain.BuildContext{}, "", nil, nil, err
	}

	spec, bc, err := a.loader.Load(specPath)
	if err != nil {
		return fail(zerr.Wrap(err, "failed to load specfile"))
	}
	if prefixOverride != "" {
		bc.Prefix = prefixOverride
	}

	recipe, err := a.recipes.Lookup(spec.Name.String())
	if err != nil {
		return fail(err)
	}

	// Typed variant validation: unknown names and out-of-domain values fail
	// before anything touches the filesystem.
	variants, err := recipe.Variants().Apply(spec.Variants)
	if err != nil {
		return fail(zerr.With(err, "package", spec.Name.String()))
	}
	spec.Variants = variants

	if err := domain.CheckEdges(spec, recipe.Dependencies()); err != nil {
		return fail(err)
	}

	hash := a.hasher.Hash(spec)
	if bc.Stage == "" {
		// Without an explicit stage the unpacked source tree is expected in a
		// hash-named scratch directory, unique per resolved spec.
		bc.Stage = filepath.Join(os.TempDir(), "forge",
			spec.Name.String()+"-"+spec.Version.String()+"-"+hash)
	}

	flags, plan, err := recipe.Translate(spec, bc)
	if err != nil {
		return fail(err)
	}
	return spec, bc, hash, plan, flags, nil
}

func writeChannel(w io.Writer, name string, flags []string) {
	if len(flags) == 0 {
		return
	}
	fmt.Fprintf(w, "%s = %s\n", name, strings.Join(flags, " "))
}
