package styles

// Point is a pixel position. Generated initializers reference the module's
// scale-adjusted pixel variables, so values track the active display scale.
type Point struct {
	X, Y int
}

// Size is a pixel extent.
type Size struct {
	W, H int
}

// Margins are four pixel paddings in left, top, right, bottom order.
type Margins struct {
	Left, Top, Right, Bottom int
}

// FontFlags is a bit set of style flags.
type FontFlags int

const (
	FontBold FontFlags = 1 << iota
	FontItalic
	FontUnderline
)

// Font describes a font request. Family is an index into the process-wide
// family registry, zero when the definition named no family.
type Font struct {
	Size   int
	Flags  FontFlags
	Family int
}

// Cursor mirrors the cursor names available in style definitions.
type Cursor int

const (
	CurDefault Cursor = iota
	CurPointer
	CurText
	CurCross
)

// Align mirrors the alignment names available in style definitions.
type Align int

const (
	AlignTopleft Align = iota
	AlignTop
	AlignTopright
	AlignLeft
	AlignCenter
	AlignRight
	AlignBottomleft
	AlignBottom
	AlignBottomright
)

// IconMask holds one icon's packed multi-resolution raster blob, embedded
// into the generated module as a byte slice.
type IconMask struct {
	data []byte
}

// NewIconMask wraps an embedded blob.
func NewIconMask(data []byte) *IconMask {
	return &IconMask{data: data}
}

// Data returns the packed blob.
func (m *IconMask) Data() []byte { return m.data }

// MonoIcon is one tinted, offset part of a composite icon.
type MonoIcon struct {
	Mask   *IconMask
	Color  Color
	Offset Point
}

// Icon is an ordered sequence of parts drawn back to front.
type Icon struct {
	Parts []MonoIcon
}
