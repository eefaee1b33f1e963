package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// VariantKind discriminates the domain of a variant.
type VariantKind int

const (
	// VariantBool is an on/off build option.
	VariantBool VariantKind = iota
	// VariantEnum is a build option over a fixed set of string values.
	VariantEnum
)

// VariantValue is a selected value for a variant: either a boolean or one of
// the declared enum values.
type VariantValue struct {
	Kind VariantKind
	Bool bool
	Enum string
}

// BoolValue returns a boolean variant selection.
func BoolValue(b bool) VariantValue {
	return VariantValue{Kind: VariantBool, Bool: b}
}

// EnumValue returns an enumerated variant selection.
func EnumValue(s string) VariantValue {
	return VariantValue{Kind: VariantEnum, Enum: s}
}

// String renders the value the way specs spell it.
func (v VariantValue) String() string {
	if v.Kind == VariantEnum {
		return v.Enum
	}
	if v.Bool {
		return "true"
	}
	return "false"
}

// Variant declares a build option: its name, domain and default. Declarations
// live on the recipe; selected values live on the Spec.
type Variant struct {
	Name        string
	Kind        VariantKind
	Default     VariantValue
	Values      []string // enum domain, nil for bool variants
	Description string
}

// Bool declares a boolean variant.
func Bool(name string, def bool, description string) Variant {
	return Variant{Name: name, Kind: VariantBool, Default: BoolValue(def), Description: description}
}

// Enum declares an enumerated variant.
func Enum(name, def string, values []string, description string) Variant {
	return Variant{Name: name, Kind: VariantEnum, Default: EnumValue(def), Values: values, Description: description}
}

// VariantSet is the ordered collection of variants a recipe declares.
// Declaration order is the order variant flags are assembled in.
type VariantSet struct {
	decls []Variant
}

// NewVariantSet builds a variant set from declarations.
func NewVariantSet(decls ...Variant) VariantSet {
	return VariantSet{decls: decls}
}

// Declarations returns the variants in declaration order.
func (s VariantSet) Declarations() []Variant {
	return s.decls
}

// Apply validates the selections against the declared variants and fills in
// defaults for variants the spec does not mention. Unknown variant names and
// values outside an enum's domain fail fast.
func (s VariantSet) Apply(selections map[string]VariantValue) (map[string]VariantValue, error) {
	out := make(map[string]VariantValue, len(s.decls))
	for _, d := range s.decls {
		out[d.Name] = d.Default
	}
	for name, val := range selections {
		d, ok := s.lookup(name)
		if !ok {
			return nil, zerr.With(ErrUnknownVariant, "variant", name)
		}
		if val.Kind != d.Kind {
			return nil, zerr.With(zerr.With(ErrInvalidVariantValue, "variant", name), "value", val.String())
		}
		if d.Kind == VariantEnum && !slices.Contains(d.Values, val.Enum) {
			return nil, zerr.With(zerr.With(ErrInvalidVariantValue, "variant", name), "value", val.Enum)
		}
		out[name] = val
	}
	return out, nil
}

func (s VariantSet) lookup(name string) (Variant, bool) {
	for _, d := range s.decls {
		if d.Name == name {
			return d, true
		}
	}
	return Variant{}, false
}
