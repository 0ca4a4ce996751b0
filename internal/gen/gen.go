// Package gen emits Go source for resolved bounded-integer declarations.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"log/slog"
	"strings"

	"github.com/roach88/bounded/internal/decl"
)

// DefaultImportPath is the import path of the bounded package.
const DefaultImportPath = "github.com/roach88/bounded"

// Options controls emission.
type Options struct {
	// Package is the package clause of the generated file.
	Package string

	// ImportPath locates the bounded package. Empty means DefaultImportPath.
	ImportPath string

	Logger *slog.Logger
}

// Generate renders decls as one gofmt'ed Go file. Struct declarations become
// aliases of bounded.Int bound to a range variable; enum declarations become
// named integer types with one constant per value and range-checked decoders.
func Generate(decls []*decl.Resolved, opts Options) ([]byte, error) {
	if len(decls) == 0 {
		return nil, errors.New("gen: no declarations")
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "types"
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("gen: invalid package name %q", pkg)
	}
	importPath := opts.ImportPath
	if importPath == "" {
		importPath = DefaultImportPath
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var b bytes.Buffer
	b.WriteString("// Code generated by boundgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if hasEnum(decls) {
		fmt.Fprintf(&b, "import (\n\t%q\n\t%q\n)\n", importPath, yamlImportPath)
	} else {
		fmt.Fprintf(&b, "import %q\n", importPath)
	}

	for _, d := range decls {
		b.WriteByte('\n')
		switch d.Kind {
		case decl.KindEnum:
			writeEnum(&b, d)
		default:
			writeStruct(&b, d)
		}
		logger.Debug("emitted declaration", "name", d.Name, "kind", d.Kind)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}
	return src, nil
}

// writeStruct emits an alias of bounded.Int whose bounds type returns the
// declared range, so each declaration is a distinct type.
func writeStruct(b *bytes.Buffer, d *decl.Resolved) {
	t := d.Repr.GoType()
	writeDoc(b, d, fmt.Sprintf("%s is %s %s in %s.", d.Name, article(t), t, d.Interval()))
	fmt.Fprintf(b, "type %s = bounded.Int[%s, %sBounds]\n\n", d.Name, t, d.Name)

	fmt.Fprintf(b, "// %sRange is the range of %s values.\n", d.Name, d.Name)
	fmt.Fprintf(b, "var %sRange = %s\n\n", d.Name, rangeExpr(d, t))

	fmt.Fprintf(b, "// %sBounds binds %sRange to the %s type.\n", d.Name, d.Name, d.Name)
	fmt.Fprintf(b, "type %sBounds struct{}\n\n", d.Name)
	fmt.Fprintf(b, "// Range returns %sRange.\n", d.Name)
	fmt.Fprintf(b, "func (%sBounds) Range() bounded.Range[%s] {\n\treturn %sRange\n}\n\n", d.Name, t, d.Name)

	fmt.Fprintf(b, "// New%s returns n as a %s, reporting false when n is out of range.\n", d.Name, d.Name)
	fmt.Fprintf(b, "func New%s(n %s) (%s, bool) {\n\treturn bounded.NewInt[%s, %sBounds](n)\n}\n", d.Name, t, d.Name, t, d.Name)
}

// writeEnum emits a named integer type with one constant per value. Its
// range is a bounded.Range of the named type itself, and its decoders reject
// integers that are not one of the constants.
func writeEnum(b *bytes.Buffer, d *decl.Resolved) {
	t := d.Repr.GoType()
	writeDoc(b, d, fmt.Sprintf("%s is %s %s with one constant per value in %s.", d.Name, article(t), t, d.Interval()))
	fmt.Fprintf(b, "type %s %s\n\n", d.Name, t)

	b.WriteString("const (\n")
	for i, v := range d.Variants {
		if i == 0 {
			fmt.Fprintf(b, "\t%s%s %s = %s\n", d.Name, v.Name, d.Name, iotaPlus(v.Value))
			continue
		}
		fmt.Fprintf(b, "\t%s%s\n", d.Name, v.Name)
	}
	b.WriteString(")\n\n")

	fmt.Fprintf(b, "// %sRange is the range of %s values.\n", d.Name, d.Name)
	fmt.Fprintf(b, "var %sRange = %s\n\n", d.Name, rangeExpr(d, d.Name))

	fmt.Fprintf(b, "// Bounded converts x to a bounded value, reporting false when x is not\n")
	fmt.Fprintf(b, "// one of the %s constants.\n", d.Name)
	fmt.Fprintf(b, "func (x %s) Bounded() (bounded.Value[%s], bool) {\n", d.Name, d.Name)
	fmt.Fprintf(b, "\treturn %sRange.New(x)\n}\n", d.Name)

	for _, c := range enumCodecs {
		fmt.Fprintf(b, "\n// %s %s\n", c.method, fmt.Sprintf(c.doc, d.Name+"Range"))
		fmt.Fprintf(b, "func (x *%s) %s(%s) error {\n", d.Name, c.method, c.params)
		fmt.Fprintf(b, "\treturn %sRange.%s(x, %s)\n}\n", d.Name, c.decoder, c.arg)
	}
}

const yamlImportPath = "gopkg.in/yaml.v3"

var enumCodecs = []struct {
	method, doc, params, decoder, arg string
}{
	{"UnmarshalJSON", "decodes a JSON number, rejecting values outside %s.", "data []byte", "DecodeJSON", "data"},
	{"UnmarshalText", "decodes a base-10 integer, rejecting values outside %s.", "text []byte", "DecodeText", "text"},
	{"UnmarshalYAML", "decodes a YAML integer, rejecting values outside %s.", "node *yaml.Node", "DecodeYAML", "node"},
	{"Scan", "implements sql.Scanner, rejecting values outside %s.", "src any", "DecodeSQL", "src"},
}

func hasEnum(decls []*decl.Resolved) bool {
	for _, d := range decls {
		if d.Kind == decl.KindEnum {
			return true
		}
	}
	return false
}

func writeDoc(b *bytes.Buffer, d *decl.Resolved, fallback string) {
	doc := d.Doc
	if doc == "" {
		doc = fallback
	}
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		fmt.Fprintf(b, "// %s\n", line)
	}
}

// rangeExpr picks the narrowest constructor for the open sides. typ is the
// type argument: the representation for struct kinds, the named type for enums.
func rangeExpr(d *decl.Resolved, typ string) string {
	switch {
	case d.Min.Open && d.Max.Open:
		return fmt.Sprintf("bounded.FullRange[%s]()", typ)
	case d.Min.Open:
		return fmt.Sprintf("bounded.RangeTo[%s](%s)", typ, d.Max.GoExpr())
	case d.Max.Open:
		return fmt.Sprintf("bounded.RangeFrom[%s](%s)", typ, d.Min.GoExpr())
	}
	return fmt.Sprintf("bounded.MustRange[%s](%s, %s)", typ, d.Min.GoExpr(), d.Max.GoExpr())
}

func iotaPlus(n int64) string {
	switch {
	case n == 0:
		return "iota"
	case n < 0:
		return fmt.Sprintf("iota - %d", uint64(-(n+1))+1)
	}
	return fmt.Sprintf("iota + %d", n)
}

func article(goType string) string {
	if strings.HasPrefix(goType, "int") {
		return "an"
	}
	return "a"
}
