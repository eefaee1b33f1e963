// Package specfile loads resolved specs from the YAML handoff file the
// external concretizer writes.
package specfile

import (
	"os"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SpecLoader = (*Loader)(nil)

// Loader implements ports.SpecLoader for YAML specfiles.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the specfile at path.
func (l *Loader) Load(path string) (*domain.Spec, domain.BuildContext, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, domain.BuildContext{}, zerr.With(zerr.Wrap(err, domain.ErrSpecReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.BuildContext{}, zerr.With(zerr.Wrap(err, domain.ErrSpecParseFailed.Error()), "path", path)
	}

	spec, err := buildSpec(&file.Spec, true)
	if err != nil {
		return nil, domain.BuildContext{}, zerr.With(err, "path", path)
	}

	bc := domain.BuildContext{
		Stage:     file.Build.Stage,
		Prefix:    file.Build.Prefix,
		Resources: file.Build.Resources,
	}
	if bc.Prefix == "" {
		bc.Prefix = spec.Prefix
	}
	return spec, bc, nil
}

// buildSpec converts a DTO into a domain spec, recursing into dependencies.
// Only the root spec must carry a compiler; dependency specs are already
// installed and only answer path and version queries.
func buildSpec(dto *SpecDTO, root bool) (*domain.Spec, error) {
	if dto.Name == "" || dto.Version == "" {
		return nil, zerr.With(domain.ErrSpecIncomplete, "field", "name/version")
	}

	spec := &domain.Spec{
		Name:     domain.NewInternedString(dto.Name),
		Version:  domain.ParseVersion(dto.Version),
		Arch:     dto.Arch,
		Prefix:   dto.Prefix,
		LibNames: dto.Libs,
		Static:   dto.Static,
		MPIFC:    dto.MPIFC,
	}

	if root || dto.Compiler.Name != "" {
		compiler, err := buildCompiler(&dto.Compiler, dto.Name)
		if err != nil {
			return nil, err
		}
		spec.Compiler = compiler
	}

	variants, err := buildVariants(dto.Variants, dto.Name)
	if err != nil {
		return nil, err
	}
	spec.Variants = variants

	for i := range dto.Dependencies {
		dep, err := buildSpec(&dto.Dependencies[i], false)
		if err != nil {
			return nil, err
		}
		spec.Dependencies = append(spec.Dependencies, dep)
	}

	return spec, nil
}

func buildCompiler(dto *CompilerDTO, pkg string) (domain.Compiler, error) {
	if dto.Name == "" {
		return domain.Compiler{}, zerr.With(zerr.With(domain.ErrSpecIncomplete, "package", pkg), "field", "compiler")
	}
	family, err := domain.ParseCompilerFamily(dto.Name)
	if err != nil {
		return domain.Compiler{}, err
	}
	return domain.Compiler{
		Name:    dto.Name,
		Version: domain.ParseVersion(dto.Version),
		Family:  family,
		CC:      dto.CC,
		CXX:     dto.CXX,
		FC:      dto.FC,
		F77:     dto.F77,
	}, nil
}

// buildVariants converts the loosely typed YAML variant map into typed
// selections. Booleans become boolean variants, strings become enum
// selections; anything else is a parse error.
func buildVariants(raw map[string]any, pkg string) (map[string]domain.VariantValue, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]domain.VariantValue, len(raw))
	for name, val := range raw {
		switch v := val.(type) {
		case bool:
			out[name] = domain.BoolValue(v)
		case string:
			out[name] = domain.EnumValue(v)
		default:
			err := zerr.With(domain.ErrSpecParseFailed, "package", pkg)
			err = zerr.With(err, "variant", name)
			return nil, zerr.With(err, "reason", "variant values must be booleans or strings")
		}
	}
	return out, nil
}
