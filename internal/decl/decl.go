// Package decl loads bounded-integer declarations from CUE or YAML and
// resolves them into concrete bounds ready for code generation.
//
// A declaration names a type, its representation and a range:
//
//	bounded: {
//		Percent: {repr: "uint8", range: "0..=100"}
//		Nibble:  {repr: "i8", kind: "enum", range: "-8..8"}
//	}
//
// Enum declarations get one named constant per value, so their range must
// be closed and must evaluate to integers.
package decl

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Kind selects how a declaration is emitted.
type Kind string

const (
	// KindStruct emits a bounded.Value alias with a runtime range.
	KindStruct Kind = "struct"
	// KindEnum emits a named integer type with one constant per value.
	KindEnum Kind = "enum"
)

// Declaration is one declared bounded type as written in the source file.
type Declaration struct {
	Name  string `yaml:"name" json:"name"`
	Repr  string `yaml:"repr" json:"repr"`
	Kind  Kind   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Range string `yaml:"range,omitempty" json:"range,omitempty"`
	Doc   string `yaml:"doc,omitempty" json:"doc,omitempty"`

	Pos Position `yaml:"-" json:"-"`
}

// Position locates a declaration in its source file.
type Position struct {
	File   string
	Line   int
	Column int
}

// IsValid reports whether p carries a line number.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	switch {
	case !p.IsValid():
		return p.File
	case p.Column > 0:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	default:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
}

// DefaultMaxVariants caps the size of an enum declaration.
const DefaultMaxVariants = 1 << 16

// Options controls resolution.
type Options struct {
	// MaxVariants is the largest enum range accepted. Zero means
	// DefaultMaxVariants.
	MaxVariants uint64

	// FailFast stops ResolveAll at the first failing declaration.
	FailFast bool

	Logger *slog.Logger
}

func (o Options) maxVariants() uint64 {
	if o.MaxVariants == 0 {
		return DefaultMaxVariants
	}
	return o.MaxVariants
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Variant is one named value of an enum declaration.
type Variant struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// VariantName names the enum case for i: N<|i|> below zero, Z0 for zero
// and P<i> above. Names sort in the same order as their values only when
// compared numerically, so callers keep them in Variants order.
func VariantName(i int64) string {
	switch {
	case i < 0:
		return "N" + strconv.FormatUint(uint64(-(i+1))+1, 10)
	case i == 0:
		return "Z0"
	default:
		return "P" + strconv.FormatInt(i, 10)
	}
}

// Variants lists the cases for lo..=hi in ascending order. The first case
// has value lo and each following case is one greater.
func Variants(lo, hi int64) []Variant {
	if lo > hi {
		return nil
	}
	out := make([]Variant, 0, uint64(hi)-uint64(lo)+1)
	for i := lo; ; i++ {
		out = append(out, Variant{Name: VariantName(i), Value: i})
		if i == hi {
			return out
		}
	}
}
