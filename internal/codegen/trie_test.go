package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePairs() []NameIndex {
	return []NameIndex{
		{Name: "red", Index: 0},
		{Name: "green", Index: 1},
		{Name: "greenLight", Index: 2},
	}
}

func TestDispatchTableLookup(t *testing.T) {
	t.Parallel()

	table, err := NewDispatchTable(samplePairs())
	require.NoError(t, err)

	require.Equal(t, 0, table.Lookup([]byte("red")))
	require.Equal(t, 1, table.Lookup([]byte("green")))
	require.Equal(t, 2, table.Lookup([]byte("greenLight")))

	require.Equal(t, -1, table.Lookup([]byte("gree")))
	require.Equal(t, -1, table.Lookup([]byte("greenLightX")))
	require.Equal(t, -1, table.Lookup([]byte("blue")))
	require.Equal(t, -1, table.Lookup(nil))
}

func TestDispatchTableRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewDispatchTable([]NameIndex{
		{Name: "red", Index: 0},
		{Name: "red", Index: 1},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestDispatchTableCompile(t *testing.T) {
	t.Parallel()

	table, err := NewDispatchTable(samplePairs())
	require.NoError(t, err)

	code := table.Compile("GetPaletteIndex")
	require.True(t, strings.HasPrefix(code, "func GetPaletteIndex(name []byte) int {\n"))
	require.Contains(t, code, "size := len(name)")
	require.Contains(t, code, "return -1")

	// Prefixes shared by several names dispatch on the first byte; a
	// uniquely determined remainder becomes one suffix compare.
	require.Contains(t, code, "switch name[0] {")
	require.Contains(t, code, `case 'r':`)
	require.Contains(t, code, `case 'g':`)
	require.Contains(t, code, `string(name[1:]) == "ed"`)

	// "green" terminates where "greenLight" continues, so depth 5 gets a
	// length check plus a dispatch into the remaining unique suffix.
	require.Contains(t, code, "if size == 5 {")
	require.Contains(t, code, `case 'L':`)
	require.Contains(t, code, `string(name[6:]) == "ight"`)
	require.NotContains(t, code, `"greenLight"`)
}

func TestDispatchTableCompileSingleName(t *testing.T) {
	t.Parallel()

	table, err := NewDispatchTable([]NameIndex{{Name: "windowBg", Index: 0}})
	require.NoError(t, err)

	code := table.Compile("GetPaletteIndex")
	require.Contains(t, code, `if size == 8 && string(name[0:]) == "windowBg" {`)
	require.NotContains(t, code, "switch")
}
