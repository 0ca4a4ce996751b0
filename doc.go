// Package bounded provides integers confined to a closed range.
//
// A Range[T] describes the allowed values [MinValue, MaxValue] of a fixed-width
// integer type T. Either side may be left open, in which case it defaults to the
// native extreme of T and is never checked. The zero Range is the full range of T.
//
// A Value[T] is produced only through its Range and always satisfies
//
//	MinValue <= v <= MaxValue
//
// with the single exception of Range.NewUnchecked, whose precondition is the
// caller's responsibility.
//
// Arithmetic comes in four policies:
//
//   - default (Add, Sub, Mul, ...): panics with *ArithmeticError when the primitive
//     operation overflows, divides by zero, or leaves the range
//   - checked (CheckedAdd, ...): reports failure through a boolean
//   - saturating (SaturatingAdd, ...): clamps to the primitive then to the range
//   - wrapping (NewWrapping, WrappingAdd, ...): maps into the range with a
//     Euclidean modulo anchored at MinValue
//
// A Value carries its Range at run time, so Values with different ranges share
// a type and the zero Value spans the full range of T. Int[T, B] moves the
// range into the type through a Bounds implementation B: each B yields a
// distinct type, its zero value is in range, and its decoders always check
// against B's range. Generated code declares one Int per struct declaration.
//
// Operations that only make sense for signed types (Neg, Abs, CheckedAbs,
// SaturatingNeg, SaturatingAbs) are package functions constrained to
// constraints.Signed, so they do not exist for unsigned values.
package bounded
