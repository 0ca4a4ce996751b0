//go:build !boundeddebug

package bounded

const debugAssertions = false
