package codegen

import (
	"bytes"
	"fmt"

	"github.com/styletools/stylec/internal/style"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

const themePreamble = `//
// This is a color scheme file. Each line carries one named color as
// 'name: #RRGGBB;' (or #RRGGBBAA when the color is translucent), or
// 'name: otherName;' when the color simply follows another one.
//
// Edit the values and load the file at runtime to restyle the
// application without recompiling. Lines ending in '// otherName;'
// show which color the value was derived from originally.
//

`

// WriteTheme renders the palette module as a human-readable theme file and
// writes it only when the rendered bytes differ from what is on disk, so an
// unchanged palette never triggers downstream rebuilds. It reports whether
// a write happened.
func WriteTheme(module *style.Module, path string) (bool, error) {
	content, err := renderTheme(module)
	if err != nil {
		return false, err
	}
	return writeFileIfChanged(path, content)
}

func renderTheme(module *style.Module) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(themePreamble)

	indices := make(map[string]int, len(module.Variables))
	for i, variable := range module.Variables {
		indices[variable.Identifier()] = i
	}

	for _, variable := range module.Variables {
		name := variable.Identifier()
		if variable.Value.Type.Tag != style.TagColor {
			return nil, stylecerrors.NewEmitError(stylecerrors.CodeNonColorInPalette, name, "palette module holds a non-color variable")
		}

		colorString := style.HexValue(variable.Value.Color)
		fallbackIndex, hasFallback := indices[variable.Value.FallbackName()]
		if variable.Value.FallbackName() == "" {
			hasFallback = false
		}
		if !hasFallback {
			fmt.Fprintf(&buf, "%s: #%s;\n", name, colorString)
			continue
		}

		fallback := module.Variables[fallbackIndex]
		if fallback.Value.Type.Tag != style.TagColor {
			return nil, stylecerrors.NewEmitError(stylecerrors.CodeNonColorInPalette, fallback.Identifier(), "fallback is not a color")
		}
		if colorString == style.HexValue(fallback.Value.Color) {
			fmt.Fprintf(&buf, "%s: %s;\n", name, fallback.Identifier())
		} else {
			fmt.Fprintf(&buf, "%s: #%s; // %s;\n", name, colorString, fallback.Identifier())
		}
	}

	return buf.Bytes(), nil
}
