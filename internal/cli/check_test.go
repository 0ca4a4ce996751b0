package cli

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCUE = `
package types

bounded: {
	Percent: {repr: "uint8", range: "0..=100"}
	Port: {repr: "uint16", range: "1024.."}
	Dice: {repr: "u8", kind: "enum", range: "1..=6"}
}
`

const invalidCUE = `
package types

bounded: {
	Ok: {repr: "int8", range: "0..=1"}
	Wide: {repr: "int8", range: "0..=200"}
	Open: {repr: "int8", kind: "enum", range: "0.."}
	Zero: {repr: "int8", range: "0..=1/0"}
}
`

func writeCUE(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.cue"), []byte(src), 0644))
	return dir
}

func TestCheckValid(t *testing.T) {
	out, err := execute(t, "text", NewCheckCommand, writeCUE(t, validCUE))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ 3 declaration(s) valid")
	assert.Contains(t, out, "  Percent: struct uint8 [0, 100]")
	assert.Contains(t, out, "  Port: struct uint16 [1024, 65535]")
	assert.Contains(t, out, "  Dice: enum uint8 [1, 6]")
}

func TestCheckValidJSON(t *testing.T) {
	out, err := execute(t, "json", NewCheckCommand, filepath.Join("testdata", "decls", "types.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Valid        bool `json:"valid"`
			Declarations []struct {
				Name string `json:"name"`
				Kind string `json:"kind"`
				Repr struct {
					Name string `json:"name"`
				} `json:"repr"`
			} `json:"declarations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	require.Len(t, resp.Data.Declarations, 3)
	assert.Equal(t, "Nibble", resp.Data.Declarations[2].Name)
	assert.Equal(t, "enum", resp.Data.Declarations[2].Kind)
	assert.Equal(t, "int8", resp.Data.Declarations[2].Repr.Name)
}

func TestCheckCollectsAllErrors(t *testing.T) {
	out, err := execute(t, "text", NewCheckCommand, writeCUE(t, invalidCUE))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed with 3 error(s)")

	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, "E306: Wide.range: maximum 200 does not fit in int8")
	assert.Contains(t, out, "E305: Open.range:")
	assert.Contains(t, out, "E304: Zero.range:")
}

func TestCheckErrorsJSON(t *testing.T) {
	out, err := execute(t, "json", NewCheckCommand, writeCUE(t, invalidCUE))
	require.Error(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Valid  bool         `json:"valid"`
			Errors []CheckError `json:"errors"`
		} `json:"data"`
		Error *CLIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 3)
	assert.Equal(t, "E306", resp.Data.Errors[0].Code)
	assert.Equal(t, "Wide.range", resp.Data.Errors[0].Field)
	assert.Equal(t, "E306", resp.Error.Code)
}

func TestCheckMissingPath(t *testing.T) {
	out, err := execute(t, "text", NewCheckCommand, "/nonexistent/declarations")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E005")
	assert.Contains(t, out, "not found")
}

func TestCheckEmptyCUE(t *testing.T) {
	dir := writeCUE(t, "package types\n\nbounded: {}\n")
	_, err := execute(t, "text", NewCheckCommand, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E003")
}

func TestGenGolden(t *testing.T) {
	out, err := execute(t, "text", NewGenCommand,
		filepath.Join("testdata", "decls", "types.yaml"), "--package", "config")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "gen_yaml", []byte(out))
}

func TestGenToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "types_gen.go")
	out, err := execute(t, "text", NewGenCommand, writeCUE(t, validCUE), "-o", outFile)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Generated 3 type(s) in "+outFile)

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package types")
	assert.Contains(t, string(src), "var PortRange = bounded.RangeFrom[uint16](1024)")
	assert.Contains(t, string(src), "DiceP1 Dice = iota + 1")
}

func TestGenJSON(t *testing.T) {
	out, err := execute(t, "json", NewGenCommand, filepath.Join("testdata", "decls", "types.yaml"))
	require.NoError(t, err)

	var resp struct {
		Data GenResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 3, resp.Data.Types)
	assert.Contains(t, resp.Data.Source, "package types")
}

func TestGenRefusesInvalidDeclarations(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "types_gen.go")
	_, err := execute(t, "text", NewGenCommand, writeCUE(t, invalidCUE), "-o", outFile)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, statErr := os.Stat(outFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenUnwritableOutput(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "missing", "dir", "types_gen.go")
	out, err := execute(t, "text", NewGenCommand, writeCUE(t, validCUE), "-o", outFile)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "E007: writing "+outFile)
	assert.Contains(t, out, "Error [E007]")
}
