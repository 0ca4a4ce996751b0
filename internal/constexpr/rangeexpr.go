package constexpr

import "strings"

// RangeExpr is a parsed range `a..b` or `a..=b` with either side optional,
// except that `..=` requires an upper bound.
type RangeExpr struct {
	Source string

	// From and To are nil for an open side. A half-open upper bound b is
	// stored as (b) - 1, so To is always inclusive.
	From, To Expr

	// Inclusive records whether the source used `..=`.
	Inclusive bool
}

// Bounds is an evaluated range. HasMin and HasMax are false for open sides.
type Bounds struct {
	Min, Max       int64
	HasMin, HasMax bool
}

// Closed reports whether both sides are present.
func (b Bounds) Closed() bool { return b.HasMin && b.HasMax }

// RangeText is a range split into its operand texts without parsing them.
type RangeText struct {
	Lo, Hi       string
	LoAt, HiAt   int // byte offsets of Lo and Hi in the source
	Inclusive    bool
	HasLo, HasHi bool
}

// SplitRange splits src at its `..` or `..=` operator.
func SplitRange(src string) (RangeText, error) {
	idx := strings.Index(src, "..")
	if idx < 0 {
		return RangeText{}, newError(ErrCodeRangeSyntax, 0, "expected a range such as a..b or a..=b, found %q", src)
	}

	rt := RangeText{Lo: src[:idx]}
	rhs := idx + 2
	if rhs < len(src) && src[rhs] == '=' {
		rt.Inclusive = true
		rhs++
	}
	if more := strings.Index(src[rhs:], ".."); more >= 0 {
		e := newError(ErrCodeUnsupported, rhs+more, "expected simple expression, found nested range")
		e.Construct = "range"
		return RangeText{}, e
	}
	rt.Hi, rt.HiAt = src[rhs:], rhs
	rt.HasLo = strings.TrimSpace(rt.Lo) != ""
	rt.HasHi = strings.TrimSpace(rt.Hi) != ""
	if rt.Inclusive && !rt.HasHi {
		return RangeText{}, newError(ErrCodeRangeSyntax, idx, "inclusive range with no upper bound")
	}
	return rt, nil
}

// ParseRange parses src as a range expression. Each operand is parsed with
// Parse; error offsets point into src.
func ParseRange(src string) (*RangeExpr, error) {
	rt, err := SplitRange(src)
	if err != nil {
		return nil, err
	}

	r := &RangeExpr{Source: src, Inclusive: rt.Inclusive}
	if rt.HasLo {
		from, err := ParseAt(rt.Lo, rt.LoAt)
		if err != nil {
			return nil, err
		}
		r.From = from
	}
	if !rt.HasHi {
		return r, nil
	}
	to, err := ParseAt(rt.Hi, rt.HiAt)
	if err != nil {
		return nil, err
	}
	if !r.Inclusive {
		to = Decrement(to)
	}
	r.To = to
	return r, nil
}

// Decrement wraps e as (e) - 1, turning an exclusive upper bound into an
// inclusive one without evaluating it.
func Decrement(e Expr) Expr {
	at := e.Pos()
	return &Binary{Offset: at, Op: Sub, X: &Group{Offset: at, X: e}, Y: &Lit{Offset: at, Value: 1}}
}

// Eval evaluates both present sides.
func (r *RangeExpr) Eval() (Bounds, error) {
	var b Bounds
	if r.From != nil {
		v, err := Evaluate(r.From)
		if err != nil {
			return Bounds{}, err
		}
		b.Min, b.HasMin = v, true
	}
	if r.To != nil {
		v, err := Evaluate(r.To)
		if err != nil {
			return Bounds{}, err
		}
		b.Max, b.HasMax = v, true
	}
	return b, nil
}

// EvalClosed evaluates a range whose sides must both be present.
func (r *RangeExpr) EvalClosed() (lo, hi int64, err error) {
	if r.From == nil || r.To == nil {
		return 0, 0, newError(ErrCodeOpenRange, 0, "the bounds of an enum range must be closed")
	}
	b, err := r.Eval()
	if err != nil {
		return 0, 0, err
	}
	return b.Min, b.Max, nil
}

// String renders the range with both sides inclusive, e.g. `-8..=(6 + 2) - 1`.
func (r *RangeExpr) String() string {
	var sb strings.Builder
	if r.From != nil {
		sb.WriteString(Format(r.From))
	}
	if r.To == nil {
		sb.WriteString("..")
		return sb.String()
	}
	sb.WriteString("..=")
	sb.WriteString(Format(r.To))
	return sb.String()
}
