package constexpr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"regexp"
	"strconv"
	"strings"
)

// Parse parses src into an Expr, rejecting anything outside the bound grammar.
func Parse(src string) (Expr, error) {
	return ParseAt(src, 0)
}

// ParseAt parses src, reporting offsets shifted by base. It lets range
// operands be parsed separately while errors still point into the full text.
func ParseAt(src string, base int) (Expr, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseExprFrom(fset, "", blankSuffixes(src), 0)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			return nil, newError(ErrCodeSyntax, base+list[0].Pos.Offset, "%s", list[0].Msg)
		}
		return nil, newError(ErrCodeSyntax, base, "%v", err)
	}
	c := &converter{fset: fset, base: base}
	return c.convert(node)
}

// suffixed matches an integer literal followed directly by a type suffix
// such as 5i8 or 0xFFu16. The suffix is ignored.
var suffixed = regexp.MustCompile(`\b(0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|[0-9][0-9_]*)(i8|i16|i32|i64|i128|isize|u8|u16|u32|u64|u128|usize)\b`)

// StripSuffixes removes integer type suffixes from src.
func StripSuffixes(src string) string {
	return suffixed.ReplaceAllString(src, "$1")
}

// blankSuffixes replaces integer type suffixes with spaces so that offsets
// into src stay valid.
func blankSuffixes(src string) string {
	return suffixed.ReplaceAllStringFunc(src, func(m string) string {
		lit := suffixed.FindStringSubmatch(m)[1]
		return lit + strings.Repeat(" ", len(m)-len(lit))
	})
}

type converter struct {
	fset *token.FileSet
	base int
}

func (c *converter) offset(p token.Pos) int {
	return c.base + c.fset.Position(p).Offset
}

func (c *converter) reject(code string, p token.Pos, construct, format string, args ...any) *Error {
	e := newError(code, c.offset(p), format, args...)
	e.Construct = construct
	return e
}

func (c *converter) convert(n ast.Expr) (Expr, error) {
	switch n := n.(type) {
	case *ast.BasicLit:
		return c.literal(n, false)

	case *ast.ParenExpr:
		x, err := c.convert(n.X)
		if err != nil {
			return nil, err
		}
		return &Group{Offset: c.offset(n.Lparen), X: x}, nil

	case *ast.UnaryExpr:
		var op UnaryOp
		switch n.Op {
		case token.SUB:
			op = Neg
			// -9223372036854775808 is the one literal whose magnitude
			// only fits once negated.
			if lit, ok := n.X.(*ast.BasicLit); ok && lit.Kind == token.INT {
				if v, err := c.literal(lit, true); err == nil {
					return &Lit{Offset: c.offset(n.OpPos), Value: v.(*Lit).Value}, nil
				}
			}
		case token.TILDE, token.XOR, token.NOT:
			op = Not
		default:
			return nil, c.reject(ErrCodeUnsupported, n.OpPos, "operator "+n.Op.String(),
				"unary operator %s not supported; use - or ~", n.Op)
		}
		x, err := c.convert(n.X)
		if err != nil {
			return nil, err
		}
		return &Unary{Offset: c.offset(n.OpPos), Op: op, X: x}, nil

	case *ast.BinaryExpr:
		op, ok := binaryOps[n.Op]
		if !ok {
			return nil, c.reject(ErrCodeUnsupported, n.OpPos, "operator "+n.Op.String(),
				"operator %s not supported in this context", n.Op)
		}
		x, err := c.convert(n.X)
		if err != nil {
			return nil, err
		}
		y, err := c.convert(n.Y)
		if err != nil {
			return nil, err
		}
		return &Binary{Offset: c.offset(n.OpPos), Op: op, X: x, Y: y}, nil

	default:
		what := describe(n)
		return nil, c.reject(ErrCodeUnsupported, n.Pos(), what, "expected simple expression, found %s", what)
	}
}

// literal converts an integer literal. With negated set, the literal is
// read as its own negation so that the most negative int64 is accepted.
func (c *converter) literal(n *ast.BasicLit, negated bool) (Expr, error) {
	if n.Kind != token.INT {
		what := literalKinds[n.Kind]
		return nil, c.reject(ErrCodeLiteral, n.ValuePos, what, "literal must be integer, found %s %s", what, n.Value)
	}
	text := n.Value
	if negated {
		text = "-" + text
	}
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return nil, c.reject(ErrCodeLiteral, n.ValuePos, "integer literal",
			"integer literal %s does not fit in 64 bits", n.Value)
	}
	if negated {
		// Only the boundary case is folded; other negations stay Unary nodes.
		if v != -1<<63 {
			return nil, errNotFolded
		}
	}
	return &Lit{Offset: c.offset(n.ValuePos), Value: v}, nil
}

var errNotFolded = errors.New("not folded")

var binaryOps = map[token.Token]BinaryOp{
	token.ADD: Add,
	token.SUB: Sub,
	token.MUL: Mul,
	token.QUO: Div,
	token.REM: Rem,
	token.XOR: Xor,
	token.AND: And,
	token.OR:  Or,
}

var literalKinds = map[token.Token]string{
	token.FLOAT:  "floating-point literal",
	token.IMAG:   "imaginary literal",
	token.CHAR:   "character literal",
	token.STRING: "string literal",
}

// describe names a Go expression node for error messages.
func describe(n ast.Expr) string {
	switch n := n.(type) {
	case *ast.Ident:
		return fmt.Sprintf("identifier %q", n.Name)
	case *ast.CallExpr:
		return "function call"
	case *ast.SelectorExpr:
		return "selector expression"
	case *ast.IndexExpr, *ast.IndexListExpr:
		return "index expression"
	case *ast.SliceExpr:
		return "slice expression"
	case *ast.StarExpr:
		return "pointer expression"
	case *ast.CompositeLit:
		return "composite literal"
	case *ast.FuncLit:
		return "function literal"
	case *ast.TypeAssertExpr:
		return "type assertion"
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return "type expression"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}
