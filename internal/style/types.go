// Package style defines the in-memory model of parsed style definitions:
// typed named values, struct declarations, and modules with include edges.
// The model is produced once by the loader and is read-only afterwards.
package style

// Tag enumerates the semantic types a named value can have. Every consumer
// switches exhaustively over this set; adding a tag means touching each of
// those switches.
type Tag int

const (
	TagInvalid Tag = iota
	TagInt
	TagDouble
	TagPixels
	TagString
	TagColor
	TagPoint
	TagSize
	TagCursor
	TagAlign
	TagMargins
	TagFont
	TagIcon
	TagStruct
)

var tagNames = map[Tag]string{
	TagInvalid: "invalid",
	TagInt:     "int",
	TagDouble:  "double",
	TagPixels:  "pixels",
	TagString:  "string",
	TagColor:   "color",
	TagPoint:   "point",
	TagSize:    "size",
	TagCursor:  "cursor",
	TagAlign:   "align",
	TagMargins: "margins",
	TagFont:    "font",
	TagIcon:    "icon",
	TagStruct:  "struct",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "invalid"
}

// ParseTag maps a type name from a module definition to its tag. Unknown
// names yield TagInvalid.
func ParseTag(name string) Tag {
	for tag, known := range tagNames {
		if known == name && tag != TagInvalid {
			return tag
		}
	}
	return TagInvalid
}

// Type is a value's semantic type. Name is set only for TagStruct.
type Type struct {
	Tag  Tag
	Name string
}

// Point is a literal 2D position in pixels.
type Point struct {
	X, Y int
}

// Size is a literal 2D extent in pixels.
type Size struct {
	W, H int
}

// Margins are four literal pixel paddings.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Color is a literal 4-channel color. Fallback optionally names another
// palette color this one inherits from when it carries no override.
type Color struct {
	R, G, B, A uint8
	Fallback   string
}

// Font is a literal font descriptor.
type Font struct {
	Size   int
	Flags  int
	Family string
}

// IconPart is one layer of a composite icon: a raster asset reference (the
// base path with dash-separated modifier names appended), a tint color and
// a pixel offset. Color and Offset are full values so they can alias other
// declarations.
type IconPart struct {
	Filename string
	Color    Value
	Offset   Value
}

// Icon is an ordered sequence of parts.
type Icon struct {
	Parts []IconPart
}

// Field is one named field inside a struct-typed literal value.
type Field struct {
	Name  string
	Type  Type
	Value Value
}
