//go:build boundeddebug

package bounded

// Built with -tags boundeddebug, NewUnchecked asserts its precondition.
const debugAssertions = true
