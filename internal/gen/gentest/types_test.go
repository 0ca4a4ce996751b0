package gentest

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/bounded"
)

type settings struct {
	Percent Percent `json:"percent" yaml:"percent"`
	Port    Port    `json:"port" yaml:"port"`
	Small   Small   `json:"small" yaml:"small"`
	Any     Any     `json:"any" yaml:"any"`
	Dice    Dice    `json:"dice" yaml:"dice"`
	Nibble  Nibble  `json:"nibble" yaml:"nibble"`
}

func TestZeroValuesAreInRange(t *testing.T) {
	var s settings
	assert.Equal(t, uint8(0), s.Percent.Get())
	assert.Equal(t, uint16(1024), s.Port.Get())
	assert.Equal(t, int8(0), s.Small.Get())
	assert.Equal(t, int64(0), s.Any.Get())

	assert.Panics(t, func() { s.Port.Sub(1) })
	assert.Equal(t, uint16(1029), s.Port.Add(5).Get())
}

func TestJSONRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"percent", `{"percent":101}`, "between 0 and 100"},
		{"port", `{"port":80}`, "between 1024 and 65535"},
		{"small", `{"small":2}`, "between -3 and 1"},
		{"dice", `{"dice":9}`, "between 1 and 6"},
		{"dice zero", `{"dice":0}`, "between 1 and 6"},
		{"nibble", `{"nibble":4}`, "between -4 and 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s settings
			err := json.Unmarshal([]byte(tt.input), &s)
			require.Error(t, err)
			assert.ErrorIs(t, err, bounded.ErrOutOfRange)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{"percent":42,"port":8080,"small":-3,"any":-9223372036854775808,"dice":6,"nibble":-4}`
	var s settings
	require.NoError(t, json.Unmarshal([]byte(in), &s))
	assert.Equal(t, DiceP6, s.Dice)
	assert.Equal(t, NibbleN4, s.Nibble)
	assert.Equal(t, int8(-3), s.Small.Get())

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestYAMLRejectsOutOfRange(t *testing.T) {
	var s settings
	err := yaml.Unmarshal([]byte("port: 7\n"), &s)
	assert.ErrorContains(t, err, "line 1: integer out of range, expected it to be between 1024 and 65535")

	err = yaml.Unmarshal([]byte("dice: 1\nnibble: -5\n"), &s)
	assert.ErrorContains(t, err, "line 2: integer out of range, expected it to be between -4 and 3")

	require.NoError(t, yaml.Unmarshal([]byte("percent: 0x20\ndice: 3\n"), &s))
	assert.Equal(t, uint8(32), s.Percent.Get())
	assert.Equal(t, DiceP3, s.Dice)
}

func TestTextRejectsOutOfRange(t *testing.T) {
	var d Dice
	assert.Error(t, d.UnmarshalText([]byte("7")))
	require.NoError(t, d.UnmarshalText([]byte("2")))
	assert.Equal(t, DiceP2, d)

	var p Percent
	assert.Error(t, p.UnmarshalText([]byte("200")))
}

func TestConstructors(t *testing.T) {
	_, ok := NewPort(80)
	assert.False(t, ok)
	p, ok := NewPort(443 * 10)
	require.True(t, ok)
	assert.Equal(t, uint16(4430), p.Get())

	v, ok := NibbleZ0.Bounded()
	require.True(t, ok)
	assert.Equal(t, Nibble(0), v.Get())
	_, ok = Nibble(7).Bounded()
	assert.False(t, ok)
}

func TestSQLScan(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "types.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE rolls (id INTEGER PRIMARY KEY, dice INTEGER NOT NULL, port INTEGER NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO rolls (id, dice, port) VALUES (1, 4, 2048), (2, 9, 22)`)
	require.NoError(t, err)

	var d Dice
	var p Port
	require.NoError(t, db.QueryRow(`SELECT dice, port FROM rolls WHERE id = 1`).Scan(&d, &p))
	assert.Equal(t, DiceP4, d)
	assert.Equal(t, uint16(2048), p.Get())

	err = db.QueryRow(`SELECT dice FROM rolls WHERE id = 2`).Scan(&d)
	assert.ErrorContains(t, err, "between 1 and 6")
	err = db.QueryRow(`SELECT port FROM rolls WHERE id = 2`).Scan(&p)
	assert.ErrorContains(t, err, "between 1024 and 65535")
}
