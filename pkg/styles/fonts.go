package styles

var fontFamilies []string

// RegisterFontFamily interns a family name and returns its one-based index.
// Repeated registrations of the same name return the original index.
// Generated modules call this from their init routines, before any
// concurrent reader exists.
func RegisterFontFamily(family string) int {
	for i, known := range fontFamilies {
		if known == family {
			return i + 1
		}
	}
	fontFamilies = append(fontFamilies, family)
	return len(fontFamilies)
}

// FontFamily returns the family registered under a one-based index, or the
// empty string for index zero or an unknown index.
func FontFamily(index int) string {
	if index < 1 || index > len(fontFamilies) {
		return ""
	}
	return fontFamilies[index-1]
}
