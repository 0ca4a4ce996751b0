// Package constexpr resolves integer bounds from restricted constant expressions.
//
// The accepted grammar is deliberately small:
//
//	expr  = lit | "(" expr ")" | unop expr | expr binop expr
//	unop  = "-" | "~" | "!" | "^"          // "~", "!" and "^" are bitwise not
//	binop = "+" | "-" | "*" | "/" | "%" | "^" | "&" | "|"
//
// Expressions are parsed with Go's expression parser, so precedence follows Go:
// "&" binds like "*", and "|" and "^" bind like "+". Integer literals may carry
// a type suffix such as 5i8 or 0xFFu16, which is ignored. The parse is then
// converted into a closed set of node types. Anything outside the
// grammar (identifiers, calls, shifts, comparisons, non-integer literals) is
// rejected with an *Error naming the construct and its position. Nothing is
// coerced.
//
// Evaluation uses an int64 accumulator. Division and remainder truncate toward
// zero. Division by zero and accumulator overflow are errors.
package constexpr
