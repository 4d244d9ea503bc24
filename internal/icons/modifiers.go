// Package icons holds the named raster modifiers a style definition can
// append to an icon asset reference. Modifiers transform both base
// resolutions in place before the atlas is composed.
package icons

import "image"

// Modifier rewrites the nominal and double-resolution rasters destructively.
type Modifier func(png100x, png200x *image.NRGBA)

var registry = map[string]Modifier{
	"invert":          invert,
	"flip_horizontal": flipHorizontal,
}

// Lookup resolves a modifier name, returning nil when unknown. An unknown
// name in a style definition is a configuration error, not a data error.
func Lookup(name string) Modifier {
	return registry[name]
}

func invert(png100x, png200x *image.NRGBA) {
	for _, img := range []*image.NRGBA{png100x, png200x} {
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i+0] = 255 - img.Pix[i+0]
			img.Pix[i+1] = 255 - img.Pix[i+1]
			img.Pix[i+2] = 255 - img.Pix[i+2]
		}
	}
}

func flipHorizontal(png100x, png200x *image.NRGBA) {
	for _, img := range []*image.NRGBA{png100x, png200x} {
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for left, right := bounds.Min.X, bounds.Max.X-1; left < right; left, right = left+1, right-1 {
				li := img.PixOffset(left, y)
				ri := img.PixOffset(right, y)
				for c := 0; c < 4; c++ {
					img.Pix[li+c], img.Pix[ri+c] = img.Pix[ri+c], img.Pix[li+c]
				}
			}
		}
	}
}
