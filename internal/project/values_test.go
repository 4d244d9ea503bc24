package project

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/styletools/stylec/internal/style"
)

func yamlNode(t *testing.T, text string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	require.NotEmpty(t, doc.Content)
	return doc.Content[0]
}

func emptyModule() *style.Module {
	return &style.Module{Path: "widgets.yaml", Kind: style.KindStyle}
}

func TestParseValueNodeLiterals(t *testing.T) {
	t.Parallel()

	module := emptyModule()

	point, err := parseValueNode(module, style.Type{Tag: style.TagPoint}, yamlNode(t, "[4, -6]"))
	require.NoError(t, err)
	require.Equal(t, style.Point{X: 4, Y: -6}, point.Point)

	margins, err := parseValueNode(module, style.Type{Tag: style.TagMargins}, yamlNode(t, "[1, 2, 3, 4]"))
	require.NoError(t, err)
	require.Equal(t, style.Margins{Left: 1, Top: 2, Right: 3, Bottom: 4}, margins.Margins)

	color, err := parseValueNode(module, style.Type{Tag: style.TagColor}, yamlNode(t, `"#1a2b3c"`))
	require.NoError(t, err)
	require.Equal(t, style.Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, color.Color)
	require.Empty(t, color.CopyOf)

	cursor, err := parseValueNode(module, style.Type{Tag: style.TagCursor}, yamlNode(t, "pointer"))
	require.NoError(t, err)
	require.Equal(t, "pointer", cursor.Str)
}

func TestParseValueNodeRejectsWrongArity(t *testing.T) {
	t.Parallel()

	module := emptyModule()

	_, err := parseValueNode(module, style.Type{Tag: style.TagPoint}, yamlNode(t, "[4]"))
	require.Error(t, err)

	_, err = parseValueNode(module, style.Type{Tag: style.TagMargins}, yamlNode(t, "[1, 2, 3]"))
	require.Error(t, err)
}

func TestParseValueNodeRejectsBadNames(t *testing.T) {
	t.Parallel()

	module := emptyModule()

	_, err := parseValueNode(module, style.Type{Tag: style.TagCursor}, yamlNode(t, "grab"))
	require.Error(t, err)

	_, err = parseValueNode(module, style.Type{Tag: style.TagAlign}, yamlNode(t, "middle"))
	require.Error(t, err)
}

func TestDecodeFont(t *testing.T) {
	t.Parallel()

	module := emptyModule()

	font, err := parseValueNode(module, style.Type{Tag: style.TagFont}, yamlNode(t, `
size: 14
family: semibold
flags: [bold, underline]
`))
	require.NoError(t, err)
	require.Equal(t, 14, font.Font.Size)
	require.Equal(t, "semibold", font.Font.Family)
	require.Equal(t, 5, font.Font.Flags)

	_, err = parseValueNode(module, style.Type{Tag: style.TagFont}, yamlNode(t, "size: 0"))
	require.Error(t, err)

	_, err = parseValueNode(module, style.Type{Tag: style.TagFont}, yamlNode(t, `
size: 14
flags: [shiny]
`))
	require.Error(t, err)
}

func TestDecodeIcon(t *testing.T) {
	t.Parallel()

	module := emptyModule()
	module.Variables = append(module.Variables, style.Variable{
		Name: []string{"menuIconFg"},
		Value: style.Value{
			Type:  style.Type{Tag: style.TagColor},
			Color: style.Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff},
		},
	})

	icon, err := parseValueNode(module, style.Type{Tag: style.TagIcon}, yamlNode(t, `
- file: menu_settings
  color: menuIconFg
  offset: [2, 0]
- file: menu_badge
  color: "#ff0000"
`))
	require.NoError(t, err)
	require.Len(t, icon.Icon.Parts, 2)

	first := icon.Icon.Parts[0]
	require.Equal(t, "menu_settings", first.Filename)
	require.Equal(t, "menuIconFg", first.Color.CopyOf)
	require.Equal(t, style.Point{X: 2, Y: 0}, first.Offset.Point)

	second := icon.Icon.Parts[1]
	require.Empty(t, second.Color.CopyOf)
	require.Equal(t, uint8(0xff), second.Color.Color.R)
	require.Equal(t, style.Point{}, second.Offset.Point)

	_, err = parseValueNode(module, style.Type{Tag: style.TagIcon}, yamlNode(t, `
- color: "#ff0000"
`))
	require.Error(t, err)
}

func TestDecodeStructFields(t *testing.T) {
	t.Parallel()

	module := emptyModule()
	module.Structs = append(module.Structs, style.Struct{
		Name: "Label",
		Fields: []style.StructField{
			{Name: "margin", Type: style.Type{Tag: style.TagMargins}},
			{Name: "fg", Type: style.Type{Tag: style.TagColor}},
		},
	})

	value, err := parseValueNode(module, style.Type{Tag: style.TagStruct, Name: "Label"}, yamlNode(t, `
fg: "#333333"
margin: [1, 1, 1, 1]
`))
	require.NoError(t, err)
	require.Len(t, value.Fields, 2)
	// Fields come back in declaration order regardless of literal order.
	require.Equal(t, "margin", value.Fields[0].Name)
	require.Equal(t, "fg", value.Fields[1].Name)

	_, err = parseValueNode(module, style.Type{Tag: style.TagStruct, Name: "Label"}, yamlNode(t, `
fg: "#333333"
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing field")

	_, err = parseValueNode(module, style.Type{Tag: style.TagStruct, Name: "Label"}, yamlNode(t, `
fg: "#333333"
margin: [1, 1, 1, 1]
shadow: "#000000"
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown field")
}

func TestAliasValueTypeMismatch(t *testing.T) {
	t.Parallel()

	module := emptyModule()
	module.Variables = append(module.Variables, style.Variable{
		Name: []string{"origin"},
		Value: style.Value{
			Type:  style.Type{Tag: style.TagPoint},
			Point: style.Point{X: 1, Y: 2},
		},
	})

	want := style.Type{Tag: style.TagSize}
	_, err := aliasValue(module, "origin", &want)
	require.Error(t, err)

	wantPoint := style.Type{Tag: style.TagPoint}
	value, err := aliasValue(module, "origin", &wantPoint)
	require.NoError(t, err)
	require.Equal(t, "origin", value.CopyOf)
	require.Equal(t, style.Point{X: 1, Y: 2}, value.Point)
}
