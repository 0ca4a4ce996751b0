package repr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		signed bool
		bits   int
	}{
		{"int8", "int8", true, 8},
		{"i8", "int8", true, 8},
		{"u16", "uint16", false, 16},
		{"isize", "int", true, 64},
		{"usize", "uint", false, 64},
		{"byte", "uint8", false, 8},
		{" uintptr ", "uintptr", false, 64},
	}
	for _, tt := range tests {
		k, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, k.GoType())
		assert.Equal(t, tt.signed, k.Signed)
		assert.Equal(t, tt.bits, k.Bits)
	}
}

func TestLookupRejects(t *testing.T) {
	_, err := Lookup("i128")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "128-bit")

	_, err = Lookup("float32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown representation")
	assert.Contains(t, err.Error(), "int16")
}

func TestExtremes(t *testing.T) {
	i8, _ := Lookup("int8")
	assert.Equal(t, "-128", i8.MinString())
	assert.Equal(t, "127", i8.MaxString())

	u64, _ := Lookup("uint64")
	assert.Equal(t, "0", u64.MinString())
	assert.Equal(t, "18446744073709551615", u64.MaxString())

	i64, _ := Lookup("int64")
	assert.Equal(t, int64(math.MinInt64), i64.MinInt64())
	assert.Equal(t, uint64(math.MaxInt64), i64.MaxUint64())
	assert.True(t, i64.IsMin(math.MinInt64))
	assert.True(t, i64.IsMax(math.MaxInt64))
}

func TestContains(t *testing.T) {
	i8, _ := Lookup("int8")
	assert.True(t, i8.Contains(-128))
	assert.True(t, i8.Contains(127))
	assert.False(t, i8.Contains(128))
	assert.False(t, i8.Contains(-129))

	u16, _ := Lookup("uint16")
	assert.False(t, u16.Contains(-1))
	assert.True(t, u16.Contains(65535))
	assert.False(t, u16.Contains(65536))

	u64, _ := Lookup("uint64")
	assert.True(t, u64.Contains(math.MaxInt64))
	assert.False(t, u64.Contains(math.MinInt64))
}
