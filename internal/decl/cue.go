package decl

import (
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	cuetoken "cuelang.org/go/cue/token"
)

// schema closes each declaration so misspelt fields are rejected.
const schema = `
#Declaration: {
	repr:   string
	kind?:  "struct" | "enum"
	range?: string
	doc?:   string
}
`

// LoadCUE loads the declarations under the top-level `bounded` field of the
// CUE package at path, which may be a directory or a single .cue file.
// Declarations are returned in source order; one error is collected per
// invalid declaration.
func LoadCUE(path string) ([]Declaration, []error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, []error{&Error{Field: "file", Code: ErrCodeDecode, Message: err.Error(), Err: err}}
	}

	cfg := &load.Config{Dir: path}
	args := []string{"."}
	if !info.IsDir() {
		cfg.Dir = filepath.Dir(path)
		args = []string{filepath.Base(path)}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return nil, []error{&Error{Field: "file", Code: ErrCodeDecode, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{formatCUEError(inst.Err, "file")}
	}

	ctx := cuecontext.New()
	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{formatCUEError(err, "file")}
	}
	return compileAll(ctx, value)
}

// LoadCUEString is LoadCUE over in-memory source.
func LoadCUEString(filename, src string) ([]Declaration, []error) {
	ctx := cuecontext.New()
	value := ctx.CompileString(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, []error{formatCUEError(err, "file")}
	}
	return compileAll(ctx, value)
}

func compileAll(ctx *cue.Context, value cue.Value) ([]Declaration, []error) {
	root := value.LookupPath(cue.ParsePath("bounded"))
	if !root.Exists() {
		return nil, []error{&Error{
			Field:   "bounded",
			Code:    ErrCodeMissingField,
			Message: "no top-level bounded field",
			Pos:     position(value.Pos()),
		}}
	}

	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Declaration"))
	iter, err := root.Fields()
	if err != nil {
		return nil, []error{formatCUEError(err, "bounded")}
	}

	var (
		decls []Declaration
		errs  []error
	)
	for iter.Next() {
		v := iter.Value()
		if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
			errs = append(errs, formatCUEError(err, iter.Selector().String()))
			continue
		}
		d, err := CompileCUE(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, *d)
	}
	return decls, errs
}

// CompileCUE converts one declaration struct into a Declaration. The name is
// the struct's label; a missing doc field falls back to the field's comment.
func CompileCUE(v cue.Value) (*Declaration, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err, "")
	}

	d := &Declaration{Pos: position(v.Pos())}
	if sels := v.Path().Selectors(); len(sels) > 0 {
		d.Name = sels[len(sels)-1].String()
	}

	reprVal := v.LookupPath(cue.ParsePath("repr"))
	if !reprVal.Exists() {
		return nil, &Error{Field: d.Name + ".repr", Code: ErrCodeMissingField, Message: "repr is required", Pos: d.Pos}
	}

	var err error
	if d.Repr, err = reprVal.String(); err != nil {
		return nil, formatCUEError(err, d.Name+".repr")
	}
	if d.Range, err = optionalString(v, "range"); err != nil {
		return nil, formatCUEError(err, d.Name+".range")
	}
	kind, err := optionalString(v, "kind")
	if err != nil {
		return nil, formatCUEError(err, d.Name+".kind")
	}
	d.Kind = Kind(kind)
	if d.Doc, err = optionalString(v, "doc"); err != nil {
		return nil, formatCUEError(err, d.Name+".doc")
	}

	if d.Doc == "" {
		var parts []string
		for _, cg := range v.Doc() {
			parts = append(parts, strings.TrimSpace(cg.Text()))
		}
		d.Doc = strings.Join(parts, "\n")
	}
	return d, nil
}

func optionalString(v cue.Value, field string) (string, error) {
	f := v.LookupPath(cue.ParsePath(field))
	if !f.Exists() {
		return "", nil
	}
	return f.String()
}

func position(p cuetoken.Pos) Position {
	if !p.IsValid() {
		return Position{}
	}
	return Position{File: p.Filename(), Line: p.Line(), Column: p.Column()}
}

// formatCUEError keeps the first error's position.
func formatCUEError(err error, field string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Field: field, Code: ErrCodeDecode, Message: err.Error(), Err: err}
	}
	first := errs[0]
	e := &Error{Field: field, Code: ErrCodeDecode, Message: first.Error(), Err: err}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		e.Pos = position(positions[0])
	}
	if e.Field == "" {
		e.Field = "cue"
	}
	return e
}
