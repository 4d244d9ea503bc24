package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor reads a "#rrggbb" or "#rrggbbaa" literal, case-insensitive.
func ParseColor(text string) (Color, error) {
	hex := strings.TrimPrefix(text, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("bad color literal %q: want #rrggbb or #rrggbbaa", text)
	}

	channels := [4]uint8{0, 0, 0, 255}
	for i := 0; i*2 < len(hex); i++ {
		parsed, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bad color literal %q: %w", text, err)
		}
		channels[i] = uint8(parsed)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// HexValue formats a color as lowercase hex digits without the leading '#',
// appending the alpha pair only when alpha is not 255. This is the form
// theme files carry.
func HexValue(c Color) string {
	result := fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 255 {
		result += fmt.Sprintf("%02x", c.A)
	}
	return result
}
