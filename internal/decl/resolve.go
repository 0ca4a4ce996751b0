package decl

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/bounded/internal/constexpr"
	"github.com/roach88/bounded/internal/repr"
)

// Bound is one side of a resolved range.
type Bound struct {
	// Open is set when the side was omitted; the native extreme applies.
	Open bool `json:"open,omitempty"`

	// Value is the evaluated bound. Meaningful when the bound is Exact.
	Value int64 `json:"value"`

	// Expr is a Go constant expression carried verbatim because it uses
	// syntax the evaluator does not fold, e.g. shifts or named constants.
	Expr string `json:"expr,omitempty"`
}

// Exact reports whether the bound was evaluated to Value.
func (b Bound) Exact() bool { return !b.Open && b.Expr == "" }

// GoExpr renders a closed bound as Go source.
func (b Bound) GoExpr() string {
	if b.Expr != "" {
		return b.Expr
	}
	return strconv.FormatInt(b.Value, 10)
}

func (b Bound) String() string {
	if b.Open {
		return "open"
	}
	return b.GoExpr()
}

// Resolved is a declaration with its bounds evaluated and checked.
type Resolved struct {
	Name     string    `json:"name"`
	Doc      string    `json:"doc,omitempty"`
	Kind     Kind      `json:"kind"`
	Repr     repr.Kind `json:"repr"`
	Min      Bound     `json:"min"`
	Max      Bound     `json:"max"`
	Variants []Variant `json:"variants,omitempty"`
	Pos      Position  `json:"-"`
}

// Len returns the number of values in the range when both sides are known.
// A full 64-bit range has 2^64 values and reports 0.
func (r *Resolved) Len() (uint64, bool) {
	if r.Min.Expr != "" || r.Max.Expr != "" {
		return 0, false
	}
	lo := uint64(r.Repr.MinInt64())
	if r.Min.Exact() {
		lo = uint64(r.Min.Value)
	}
	hi := r.Repr.MaxUint64()
	if r.Max.Exact() {
		hi = uint64(r.Max.Value)
	}
	return hi - lo + 1, true
}

// Interval renders the effective closed range, filling open sides with the
// representation's extremes, e.g. "[1024, 65535]".
func (r *Resolved) Interval() string {
	lo, hi := r.Repr.MinString(), r.Repr.MaxString()
	if !r.Min.Open {
		lo = r.Min.GoExpr()
	}
	if !r.Max.Open {
		hi = r.Max.GoExpr()
	}
	return "[" + lo + ", " + hi + "]"
}

// Resolve validates d and evaluates its range.
func Resolve(d Declaration, opts Options) (*Resolved, error) {
	name := norm.NFC.String(strings.TrimSpace(d.Name))
	if !token.IsIdentifier(name) {
		return nil, &Error{
			Field:   "name",
			Code:    ErrCodeName,
			Message: fmt.Sprintf("%q is not a valid Go identifier", d.Name),
			Pos:     d.Pos,
		}
	}

	if strings.TrimSpace(d.Repr) == "" {
		return nil, &Error{Field: name + ".repr", Code: ErrCodeMissingField, Message: "repr is required", Pos: d.Pos}
	}
	k, err := repr.Lookup(d.Repr)
	if err != nil {
		return nil, &Error{Field: name + ".repr", Code: ErrCodeRepr, Message: err.Error(), Pos: d.Pos, Err: err}
	}

	kind := d.Kind
	switch kind {
	case "":
		kind = KindStruct
	case KindStruct, KindEnum:
	default:
		return nil, &Error{
			Field:   name + ".kind",
			Code:    ErrCodeKind,
			Message: fmt.Sprintf("kind must be %q or %q, got %q", KindStruct, KindEnum, kind),
			Pos:     d.Pos,
		}
	}

	r := &Resolved{
		Name: name,
		Doc:  strings.TrimSpace(d.Doc),
		Kind: kind,
		Repr: k,
		Pos:  d.Pos,
	}
	src := d.Range
	if strings.TrimSpace(src) == "" {
		src = ".."
	}

	if kind == KindEnum {
		err = r.resolveEnum(src, opts)
	} else {
		err = r.resolveStruct(src)
	}
	if err != nil {
		return nil, err
	}

	opts.logger().Debug("resolved declaration",
		"name", r.Name, "kind", r.Kind, "repr", r.Repr.Name,
		"min", r.Min.String(), "max", r.Max.String())
	return r, nil
}

func (r *Resolved) resolveEnum(src string, opts Options) error {
	re, err := constexpr.ParseRange(src)
	if err != nil {
		return r.rangeError(src, ErrCodeRange, err)
	}
	lo, hi, err := re.EvalClosed()
	if err != nil {
		code := ErrCodeRange
		if constexpr.ErrorCode(err) == constexpr.ErrCodeOpenRange {
			code = ErrCodeOpenRange
		}
		return r.rangeError(src, code, err)
	}
	r.Min, r.Max = Bound{Value: lo}, Bound{Value: hi}
	if err := r.checkExact(); err != nil {
		return err
	}

	n := uint64(hi) - uint64(lo) + 1
	if limit := opts.maxVariants(); n == 0 || n > limit {
		return &Error{
			Field:   r.Name + ".range",
			Code:    ErrCodeTooLarge,
			Message: fmt.Sprintf("enum range %d..=%d has more than %d variants", lo, hi, limit),
			Pos:     r.Pos,
		}
	}
	r.Variants = Variants(lo, hi)
	return nil
}

func (r *Resolved) resolveStruct(src string) error {
	rt, err := constexpr.SplitRange(src)
	if err != nil {
		return r.rangeError(src, ErrCodeRange, err)
	}

	r.Min.Open, r.Max.Open = !rt.HasLo, !rt.HasHi
	if rt.HasLo {
		if r.Min, err = structBound(rt.Lo, rt.LoAt, false); err != nil {
			return r.rangeError(src, ErrCodeRange, err)
		}
	}
	if rt.HasHi {
		if r.Max, err = structBound(rt.Hi, rt.HiAt, !rt.Inclusive); err != nil {
			return r.rangeError(src, ErrCodeRange, err)
		}
	}
	return r.checkExact()
}

// structBound evaluates one side of a struct range. Syntax outside the
// evaluator's grammar is kept as a Go expression for the compiler to check.
func structBound(text string, at int, exclusive bool) (Bound, error) {
	e, err := constexpr.ParseAt(text, at)
	if err != nil {
		if !verbatim(err) {
			return Bound{}, err
		}
		expr := strings.TrimSpace(constexpr.StripSuffixes(text))
		if exclusive {
			expr = "(" + expr + ") - 1"
		}
		if _, perr := parser.ParseExpr(expr); perr != nil {
			return Bound{}, err
		}
		return Bound{Expr: expr}, nil
	}
	if exclusive {
		e = constexpr.Decrement(e)
	}
	v, err := constexpr.Evaluate(e)
	if err != nil {
		return Bound{}, err
	}
	return Bound{Value: v}, nil
}

// verbatim reports whether a parse failure may be deferred to the Go
// compiler: identifiers, calls, shifts and integers wider than int64.
func verbatim(err error) bool {
	var e *constexpr.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == constexpr.ErrCodeUnsupported ||
		e.Code == constexpr.ErrCodeLiteral && e.Construct == "integer literal"
}

// checkExact validates the evaluated sides against the representation and
// against each other.
func (r *Resolved) checkExact() error {
	for _, side := range []struct {
		name string
		b    Bound
	}{{"minimum", r.Min}, {"maximum", r.Max}} {
		if side.b.Exact() && !r.Repr.Contains(side.b.Value) {
			return &Error{
				Field: r.Name + ".range",
				Code:  ErrCodeUnfit,
				Message: fmt.Sprintf("%s %d does not fit in %s [%s, %s]",
					side.name, side.b.Value, r.Repr.Name, r.Repr.MinString(), r.Repr.MaxString()),
				Pos: r.Pos,
			}
		}
	}
	if r.Min.Exact() && r.Max.Exact() && r.Min.Value > r.Max.Value {
		return &Error{
			Field:   r.Name + ".range",
			Code:    ErrCodeInverted,
			Message: fmt.Sprintf("minimum %d exceeds maximum %d", r.Min.Value, r.Max.Value),
			Pos:     r.Pos,
		}
	}
	return nil
}

func (r *Resolved) rangeError(src, code string, err error) *Error {
	return &Error{
		Field:   r.Name + ".range",
		Code:    code,
		Message: fmt.Sprintf("%q: %v", src, err),
		Pos:     r.Pos,
		Err:     err,
	}
}

// ResolveAll resolves every declaration, collecting one error per failing
// declaration unless opts.FailFast is set. Names must be unique.
func ResolveAll(decls []Declaration, opts Options) ([]*Resolved, []error) {
	var (
		out  []*Resolved
		errs []error
		seen = make(map[string]Position)
	)
	for _, d := range decls {
		r, err := Resolve(d, opts)
		if err == nil {
			if first, dup := seen[r.Name]; dup {
				msg := "declared more than once"
				if first.IsValid() {
					msg += fmt.Sprintf(" (first at %s)", first)
				}
				err = &Error{Field: r.Name, Code: ErrCodeDuplicate, Message: msg, Pos: d.Pos}
			} else {
				seen[r.Name] = d.Pos
			}
		}
		if err != nil {
			errs = append(errs, err)
			if opts.FailFast {
				return out, errs
			}
			continue
		}
		out = append(out, r)
	}
	return out, errs
}
