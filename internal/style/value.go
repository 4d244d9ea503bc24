package style

// Value is a tagged union: a literal payload matching its Type, optionally
// marked as an alias of another named value via CopyOf. An alias still
// carries the referent's payload as recorded at load time, so palette
// fallbacks and theme export can read the aliased data without another
// lookup. Exactly one payload field is meaningful per tag.
type Value struct {
	Type   Type
	CopyOf string

	Int     int
	Double  float64
	Str     string
	Color   Color
	Point   Point
	Size    Size
	Margins Margins
	Font    Font
	Icon    Icon
	Fields  []Field
}

// IsCopy reports whether the value aliases another named value.
func (v Value) IsCopy() bool { return v.CopyOf != "" }

// FallbackName returns the palette fallback for a color value: the alias
// target when the value is a copy, otherwise the color's recorded fallback
// name (empty for none).
func (v Value) FallbackName() string {
	if v.CopyOf != "" {
		return v.CopyOf
	}
	return v.Color.Fallback
}
