package constexpr

import (
	"strconv"
	"strings"
)

// Expr is a sealed interface over the node types of the bound grammar:
// *Lit, *Unary, *Binary and *Group.
type Expr interface {
	// Pos is the byte offset of the node in its source.
	Pos() int
	expr()
}

// Lit is an integer literal.
type Lit struct {
	Offset int
	Value  int64
}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	Neg UnaryOp = iota + 1 // -x
	Not                    // ~x, bitwise complement
)

// Unary is a prefix operation.
type Unary struct {
	Offset int
	Op     UnaryOp
	X      Expr
}

// BinaryOp is an infix operator.
type BinaryOp int

const (
	Add BinaryOp = iota + 1
	Sub
	Mul
	Div
	Rem
	Xor
	And
	Or
)

// Binary is an infix operation.
type Binary struct {
	Offset int
	Op     BinaryOp
	X, Y   Expr
}

// Group is a parenthesised expression. It is transparent to evaluation.
type Group struct {
	Offset int
	X      Expr
}

func (e *Lit) Pos() int    { return e.Offset }
func (e *Unary) Pos() int  { return e.Offset }
func (e *Binary) Pos() int { return e.Offset }
func (e *Group) Pos() int  { return e.Offset }

func (*Lit) expr()    {}
func (*Unary) expr()  {}
func (*Binary) expr() {}
func (*Group) expr()  {}

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "^"
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Rem:
		return "%"
	case Xor:
		return "^"
	case And:
		return "&"
	case Or:
		return "|"
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Format renders e as a Go constant expression. Bitwise not is written as
// Go's unary ^, so the output can be emitted verbatim into Go source.
func Format(e Expr) string {
	var b strings.Builder
	format(&b, e)
	return b.String()
}

func format(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Lit:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *Unary:
		b.WriteString(n.Op.String())
		// Parens keep "- -1" from becoming the decrement token and bind
		// the operator to a whole binary operand.
		switch x := n.X.(type) {
		case *Unary, *Binary:
			formatParen(b, x)
		case *Lit:
			if x.Value < 0 {
				formatParen(b, x)
			} else {
				format(b, x)
			}
		default:
			format(b, x)
		}
	case *Binary:
		p := n.Op.precedence()
		if x, ok := n.X.(*Binary); ok && x.Op.precedence() < p {
			formatParen(b, x)
		} else {
			format(b, n.X)
		}
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		if y, ok := n.Y.(*Binary); ok && y.Op.precedence() <= p {
			formatParen(b, y)
		} else {
			format(b, n.Y)
		}
	case *Group:
		formatParen(b, n.X)
	}
}

func formatParen(b *strings.Builder, e Expr) {
	b.WriteByte('(')
	format(b, e)
	b.WriteByte(')')
}

// precedence follows Go: multiplicative operators and & bind tighter than
// additive operators, ^ and |.
func (op BinaryOp) precedence() int {
	switch op {
	case Mul, Div, Rem, And:
		return 5
	}
	return 4
}
