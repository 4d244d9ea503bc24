package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTagRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tag := range []Tag{
		TagInt, TagDouble, TagPixels, TagString, TagColor, TagPoint,
		TagSize, TagCursor, TagAlign, TagMargins, TagFont, TagIcon, TagStruct,
	} {
		require.Equal(t, tag, ParseTag(tag.String()))
	}
	require.Equal(t, TagInvalid, ParseTag("invalid"))
	require.Equal(t, TagInvalid, ParseTag("rectangle"))
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("#1a2B3c")
	require.NoError(t, err)
	require.Equal(t, Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}, c)

	c, err = ParseColor("#1a2b3c80")
	require.NoError(t, err)
	require.Equal(t, uint8(0x80), c.A)

	_, err = ParseColor("#12345")
	require.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	require.Error(t, err)
}

func TestHexValueOmitsOpaqueAlpha(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1a2b3c", HexValue(Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}))
	require.Equal(t, "1a2b3c80", HexValue(Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}))
}

func TestModuleBaseName(t *testing.T) {
	t.Parallel()

	palette := &Module{Path: "styles/colors.palette.yaml", Kind: KindPalette}
	require.Equal(t, "palette", palette.BaseName())

	widgets := &Module{Path: "styles/widgets.style.yaml", Kind: KindStyle}
	require.Equal(t, "style_widgets", widgets.BaseName())
}

func TestFindVariableSearchesIncludes(t *testing.T) {
	t.Parallel()

	base := &Module{
		Path: "colors.palette.yaml",
		Kind: KindPalette,
		Variables: []Variable{
			{Name: []string{"windowBg"}, Value: Value{Type: Type{Tag: TagColor}}},
		},
	}
	child := &Module{
		Path:     "widgets.style.yaml",
		Kind:     KindStyle,
		Includes: []*Module{base},
		Variables: []Variable{
			{Name: []string{"toastPadding"}, Value: Value{Type: Type{Tag: TagMargins}}},
		},
	}

	v, owner := child.FindVariable("windowBg")
	require.NotNil(t, v)
	require.Same(t, base, owner)

	v, owner = child.FindVariable("toastPadding")
	require.NotNil(t, v)
	require.Same(t, child, owner)

	v, _ = child.FindVariable("missing")
	require.Nil(t, v)
}

func TestFindStructSearchesIncludes(t *testing.T) {
	t.Parallel()

	base := &Module{
		Structs: []Struct{{Name: "Toast", Fields: []StructField{{Name: "padding", Type: Type{Tag: TagMargins}}}}},
	}
	child := &Module{Includes: []*Module{base}}

	require.NotNil(t, child.FindStruct("Toast"))
	require.Nil(t, child.FindStructHere("Toast"))
	require.Nil(t, child.FindStruct("Missing"))
}

func TestValueFallbackName(t *testing.T) {
	t.Parallel()

	alias := Value{Type: Type{Tag: TagColor}, CopyOf: "windowBg"}
	require.Equal(t, "windowBg", alias.FallbackName())

	literal := Value{Type: Type{Tag: TagColor}, Color: Color{Fallback: "windowBgOver"}}
	require.Equal(t, "windowBgOver", literal.FallbackName())

	plain := Value{Type: Type{Tag: TagColor}}
	require.Equal(t, "", plain.FallbackName())
}
