// Package styles is the runtime support package for generated style modules.
// The stylec compiler emits Go files that construct these types; applications
// read style values through the generated accessors.
package styles

// ColorData is the raw channel storage behind a Color handle.
type ColorData struct {
	R, G, B, A uint8
}

// Color is a handle to channel storage. Plain assignment shares the
// underlying cell (palette slots hand out handles to their own storage);
// Clone produces an independently owned copy.
type Color struct {
	data *ColorData
}

// NewColor returns a Color owning fresh storage with the given channels.
func NewColor(r, g, b, a uint8) Color {
	return Color{data: &ColorData{R: r, G: g, B: b, A: a}}
}

// Clone returns a Color owning a copy of the referenced channels.
func (c Color) Clone() Color {
	if c.data == nil {
		return Color{}
	}
	d := *c.data
	return Color{data: &d}
}

// Valid reports whether the handle references storage.
func (c Color) Valid() bool { return c.data != nil }

func (c Color) Red() uint8   { return c.data.R }
func (c Color) Green() uint8 { return c.data.G }
func (c Color) Blue() uint8  { return c.data.B }
func (c Color) Alpha() uint8 { return c.data.A }
