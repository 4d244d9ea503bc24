package styles

import "math"

// Scale is a display scale code counted in quarters of the base scale:
// four quarters is 100%. This closed set is the only one the compiler and
// generated code ever switch over; the retina mode is separate and exempt
// from pixel adjustment entirely.
type Scale int

const (
	ScaleOne           Scale = 4
	ScaleOneAndQuarter Scale = 5
	ScaleOneAndHalf    Scale = 6
	ScaleTwo           Scale = 8
)

// Scales lists the supported codes in ascending order. The first entry is
// the identity scale; generated switch statements cover the rest.
var Scales = []Scale{ScaleOne, ScaleOneAndQuarter, ScaleOneAndHalf, ScaleTwo}

var scaleNames = map[Scale]string{
	ScaleOne:           "100%",
	ScaleOneAndQuarter: "125%",
	ScaleOneAndHalf:    "150%",
	ScaleTwo:           "200%",
}

func (s Scale) String() string {
	if name, ok := scaleNames[s]; ok {
		return name
	}
	return "invalid"
}

// PxAdjust rescales a pixel magnitude for a scale code. Rounding floors
// with a small bias so exact quarter multiples stay stable; negative
// magnitudes mirror the positive result.
func PxAdjust(value int, scale Scale) int {
	if value < 0 {
		return -PxAdjust(-value, scale)
	}
	return int(math.Floor(float64(value)*float64(scale)/4 + 0.1))
}

var (
	currentScale = ScaleOne
	retinaMode   bool
)

// SetScale selects the display scale. Generated init routines read it once;
// call it before initializing any style module.
func SetScale(scale Scale) { currentScale = scale }

// CurrentScale returns the selected display scale.
func CurrentScale() Scale { return currentScale }

// SetRetina switches the native high-density mode that skips pixel
// adjustment.
func SetRetina(retina bool) { retinaMode = retina }

// Retina reports whether the native high-density mode is active.
func Retina() bool { return retinaMode }
