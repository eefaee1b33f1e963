package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingExternalResource is returned when a required externally supplied
	// path (e.g. a pre-built library archive) is absent or does not exist on disk.
	ErrMissingExternalResource = zerr.New("missing external resource")

	// ErrUnsupportedConfiguration is returned when no flag mapping exists for the
	// requested compiler family or variant combination.
	ErrUnsupportedConfiguration = zerr.New("unsupported configuration")

	// ErrExternalToolFailure is returned when an external build or install command
	// exits non-zero.
	ErrExternalToolFailure = zerr.New("external tool failed")

	// ErrUnknownVariant is returned when a spec selects a variant the recipe does
	// not declare.
	ErrUnknownVariant = zerr.New("unknown variant")

	// ErrInvalidVariantValue is returned when a variant selection is outside the
	// declared domain of the variant.
	ErrInvalidVariantValue = zerr.New("invalid variant value")

	// ErrUnknownPackage is returned when no recipe is registered for the
	// requested package name.
	ErrUnknownPackage = zerr.New("no recipe for package")

	// ErrMissingDependency is returned when a recipe requires a dependency the
	// resolved spec does not carry.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrDependencyConflict is returned when a resolved dependency is present but
	// its version falls outside the recipe's declared constraint.
	ErrDependencyConflict = zerr.New("dependency outside declared version range")

	// ErrSpecReadFailed is returned when the specfile cannot be read.
	ErrSpecReadFailed = zerr.New("failed to read specfile")

	// ErrSpecParseFailed is returned when the specfile cannot be parsed.
	ErrSpecParseFailed = zerr.New("failed to parse specfile")

	// ErrSpecIncomplete is returned when the specfile is missing a required field
	// (name, version or compiler). A concretized spec always carries these.
	ErrSpecIncomplete = zerr.New("specfile is not fully concretized")

	// ErrInvalidStep is returned when a plan contains a step the runner does not
	// understand.
	ErrInvalidStep = zerr.New("invalid plan step")

	// ErrRegistryReadFailed is returned when the install registry cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read install registry")

	// ErrRegistryWriteFailed is returned when the install registry cannot be written.
	ErrRegistryWriteFailed = zerr.New("failed to write install registry")
)
