package bounded

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Serialization delegates to the underlying integer. Decoding checks the
// decoded integer against the receiver's range, so decode into a Value that
// already carries the intended range (for example one obtained from
// Range.Min). A zero Value decodes against the full range of T. Int carries
// its range in its type and has no such caveat.

// MarshalText implements encoding.TextMarshaler.
func (x Value[T]) MarshalText() ([]byte, error) {
	return []byte(formatRaw(x.v)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Value[T]) UnmarshalText(text []byte) error {
	return x.r.DecodeText(&x.v, text)
}

// MarshalJSON encodes x as a JSON number.
func (x Value[T]) MarshalJSON() ([]byte, error) {
	return []byte(formatRaw(x.v)), nil
}

// UnmarshalJSON decodes a JSON number. A JSON null leaves x unchanged.
func (x *Value[T]) UnmarshalJSON(data []byte) error {
	return x.r.DecodeJSON(&x.v, data)
}

// MarshalYAML encodes x as a YAML integer.
func (x Value[T]) MarshalYAML() (interface{}, error) {
	return x.v, nil
}

// UnmarshalYAML decodes a YAML integer scalar, including 0x/0o/0b forms.
func (x *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	return x.r.DecodeYAML(&x.v, node)
}

// Value implements driver.Valuer. Unsigned values above math.MaxInt64 cannot
// be stored in an int64 column and are rejected.
func (x Value[T]) Value() (driver.Value, error) {
	if !isSigned[T]() && uint64(x.v) > math.MaxInt64 {
		return nil, fmt.Errorf("bounded: %s does not fit in an int64 column", formatRaw(x.v))
	}
	return int64(x.v), nil
}

// Scan implements sql.Scanner for integer, text and blob columns.
func (x *Value[T]) Scan(src any) error {
	return x.r.DecodeSQL(&x.v, src)
}

// The Decode methods back the codecs of Value and Int, and of named integer
// types that keep their range in a variable. Each stores into *dst only when
// the decoded integer is in r.

// DecodeJSON decodes a JSON number into *dst. A JSON null leaves *dst unchanged.
func (r Range[T]) DecodeJSON(dst *T, data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	return r.decode(dst, string(data), 10)
}

// DecodeText decodes a base-10 integer into *dst.
func (r Range[T]) DecodeText(dst *T, text []byte) error {
	return r.decode(dst, string(text), 10)
}

// DecodeYAML decodes a YAML integer scalar into *dst, including 0x/0o/0b forms.
func (r Range[T]) DecodeYAML(dst *T, node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an integer scalar", node.Line)
	}
	if err := r.decode(dst, node.Value, 0); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// DecodeSQL scans an integer, text or blob column value into *dst.
func (r Range[T]) DecodeSQL(dst *T, src any) error {
	switch s := src.(type) {
	case int64:
		n, ok := fromInt64[T](s)
		if !ok || !r.InRange(n) {
			return r.rangeError(strconv.FormatInt(s, 10))
		}
		*dst = n
		return nil
	case []byte:
		return r.decode(dst, string(s), 10)
	case string:
		return r.decode(dst, s, 10)
	case nil:
		return fmt.Errorf("bounded: cannot scan NULL into %T", dst)
	default:
		return fmt.Errorf("bounded: cannot scan %T into %T", src, dst)
	}
}

func (r Range[T]) decode(dst *T, s string, base int) error {
	n, err := parseRaw[T](s, base)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return r.rangeError(s)
		}
		return err
	}
	if !r.InRange(n) {
		return r.rangeError(s)
	}
	*dst = n
	return nil
}

func (r Range[T]) rangeError(text string) *RangeError {
	return &RangeError{
		Value: text,
		Min:   formatRaw(r.MinValue()),
		Max:   formatRaw(r.MaxValue()),
	}
}
