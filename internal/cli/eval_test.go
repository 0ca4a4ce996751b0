package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a subcommand built by newCmd with args and returns stdout.
func execute(t *testing.T, format string, newCmd func(*RootOptions) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newCmd(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"5", "5\n"},
		{"6+2", "8\n"},
		{"3*4-1", "11\n"},
		{"~0x0F & 0xFF", "240\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, "text", NewEvalCommand, tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, out, tt.expr)
	}

	out, err := execute(t, "text", NewEvalCommand, "--", "-3")
	require.NoError(t, err)
	assert.Equal(t, "-3\n", out)
}

func TestEvalRanges(t *testing.T) {
	out, err := execute(t, "text", NewEvalCommand, "--", "-8..6+2")
	require.NoError(t, err)
	assert.Equal(t, "-8..=7\n", out)

	out, err = execute(t, "text", NewEvalCommand, "0..")
	require.NoError(t, err)
	assert.Equal(t, "0..\n", out)

	out, err = execute(t, "json", NewEvalCommand, "..=10")
	require.NoError(t, err)
	var resp struct {
		Status string     `json:"status"`
		Data   EvalResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Data.Min)
	require.NotNil(t, resp.Data.Max)
	assert.Equal(t, int64(10), *resp.Data.Max)
	assert.Equal(t, "..=10", resp.Data.Canonical)
}

func TestEvalJSON(t *testing.T) {
	out, err := execute(t, "json", NewEvalCommand, "(1+2)*3")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   EvalResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Data.Value)
	assert.Equal(t, int64(9), *resp.Data.Value)
	assert.Equal(t, "(1 + 2) * 3", resp.Data.Canonical)
}

func TestEvalDivisionByZero(t *testing.T) {
	out, err := execute(t, "text", NewEvalCommand, "7/0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E204")
	assert.Contains(t, out, "Error [E204]: attempt to divide 7 by zero")
	assert.Contains(t, out, "  7/0\n   ^\n")
}

func TestEvalUnsupportedJSON(t *testing.T) {
	out, err := execute(t, "json", NewEvalCommand, "x+1")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E202", resp.Error.Code)
	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, `identifier "x"`, details["construct"])
	assert.Equal(t, float64(0), details["offset"])
}

func TestInspectScenarios(t *testing.T) {
	out, err := execute(t, "text", NewInspectCommand, "i8", "--", "-3..2")
	require.NoError(t, err)
	assert.Equal(t, "repr:    int8\nkind:    struct\nnative:  [-128, 127]\nrange:   [-3, 1]\nlen:     5\n", out)

	out, err = execute(t, "text", NewInspectCommand, "u16", "3..=7", "--value", "8", "--value", "5", "--value", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "range:   [3, 7]")
	assert.Contains(t, out, "8: out of range, saturating 7, wrapping 3")
	assert.Contains(t, out, "5: in range, saturating 5, wrapping 5")
	assert.Contains(t, out, "2: out of range, saturating 3, wrapping 7")
}

func TestInspectFullWidth(t *testing.T) {
	out, err := execute(t, "json", NewInspectCommand, "uint64", "..")
	require.NoError(t, err)

	var resp struct {
		Data InspectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "18446744073709551616", resp.Data.Len)
	assert.Equal(t, "0", resp.Data.Min)
	assert.Equal(t, "18446744073709551615", resp.Data.Max)
}

func TestInspectEnumAndErrors(t *testing.T) {
	out, err := execute(t, "text", NewInspectCommand, "i8", "--enum", "--", "-8..=7")
	require.NoError(t, err)
	assert.Contains(t, out, "kind:    enum")
	assert.Contains(t, out, "variants: 16")

	out, err = execute(t, "text", NewInspectCommand, "i8", "0..", "--enum")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E305]")
	assert.Contains(t, out, "the bounds of an enum range must be closed")

	_, err = execute(t, "text", NewInspectCommand, "i128", "0..1")
	assert.Contains(t, err.Error(), "E302")

	_, err = execute(t, "text", NewInspectCommand, "u8", "0..=9", "--value", "300")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "text", NewInspectCommand, "u32", "0..1 << 4", "--value", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not constant integers")
}

func TestVariants(t *testing.T) {
	out, err := execute(t, "text", NewVariantsCommand, "i8", "--", "-2..=2")
	require.NoError(t, err)
	assert.Equal(t, "N2 = -2\nN1 = -1\nZ0 = 0\nP1 = 1\nP2 = 2\n", out)

	out, err = execute(t, "json", NewVariantsCommand, "i8", "--", "-8..8")
	require.NoError(t, err)
	var resp struct {
		Data []struct {
			Name  string `json:"name"`
			Value int64  `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 16)
	assert.Equal(t, "N8", resp.Data[0].Name)
	assert.Equal(t, int64(-8), resp.Data[0].Value)
	assert.Equal(t, "P7", resp.Data[15].Name)

	_, err = execute(t, "text", NewVariantsCommand, "u8", "0..=9", "--max-variants", "5")
	assert.Contains(t, err.Error(), "E308")
}
