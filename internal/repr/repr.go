// Package repr describes the fixed-width integer representations a bounded
// type can be declared over.
package repr

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind is a primitive integer representation.
type Kind struct {
	// Name is the Go type name, e.g. "int8" or "uintptr".
	Name   string `json:"name"`
	Signed bool   `json:"signed"`
	Bits   int    `json:"bits"`
}

var kinds = []Kind{
	{"int8", true, 8},
	{"int16", true, 16},
	{"int32", true, 32},
	{"int64", true, 64},
	{"int", true, 64},
	{"uint8", false, 8},
	{"uint16", false, 16},
	{"uint32", false, 32},
	{"uint64", false, 64},
	{"uint", false, 64},
	{"uintptr", false, 64},
}

// Short spellings accepted in declarations.
var aliases = map[string]string{
	"i8":    "int8",
	"i16":   "int16",
	"i32":   "int32",
	"i64":   "int64",
	"isize": "int",
	"u8":    "uint8",
	"u16":   "uint16",
	"u32":   "uint32",
	"u64":   "uint64",
	"usize": "uint",
	"byte":  "uint8",
	"rune":  "int32",
}

// Lookup resolves a representation name. Go names and short aliases such as u8 are
// accepted; 128-bit widths are rejected because Go has no such primitive.
func Lookup(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, k := range kinds {
		if k.Name == name {
			return k, nil
		}
	}
	switch name {
	case "i128", "u128", "int128", "uint128":
		return Kind{}, fmt.Errorf("representation %q: 128-bit integers have no Go primitive", name)
	}
	return Kind{}, fmt.Errorf("unknown representation %q (expected one of %s)", name, strings.Join(Names(), ", "))
}

// Names lists the canonical representation names in sorted order.
func Names() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Name
	}
	sort.Strings(out)
	return out
}

// GoType is the Go type name used in generated source.
func (k Kind) GoType() string { return k.Name }

func (k Kind) String() string { return k.Name }

// MinInt64 is the native minimum. Every representation's minimum fits.
func (k Kind) MinInt64() int64 {
	if !k.Signed {
		return 0
	}
	return -1 << (k.Bits - 1)
}

// MaxUint64 is the native maximum.
func (k Kind) MaxUint64() uint64 {
	if k.Signed {
		return 1<<(k.Bits-1) - 1
	}
	if k.Bits == 64 {
		return math.MaxUint64
	}
	return 1<<k.Bits - 1
}

// MinString renders the native minimum in decimal.
func (k Kind) MinString() string { return strconv.FormatInt(k.MinInt64(), 10) }

// MaxString renders the native maximum in decimal.
func (k Kind) MaxString() string { return strconv.FormatUint(k.MaxUint64(), 10) }

// Contains reports whether n is representable in k.
func (k Kind) Contains(n int64) bool {
	if n < k.MinInt64() {
		return false
	}
	return n < 0 || uint64(n) <= k.MaxUint64()
}

// IsMin and IsMax report whether n is the native extreme of k.
func (k Kind) IsMin(n int64) bool { return n == k.MinInt64() }

func (k Kind) IsMax(n int64) bool { return n >= 0 && uint64(n) == k.MaxUint64() }
