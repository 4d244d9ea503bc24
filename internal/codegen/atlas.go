package codegen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/styletools/stylec/internal/icons"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
	"github.com/styletools/stylec/pkg/styles"
)

// placeholderPrefix marks a size-only icon key carrying no raster data.
const placeholderPrefix = "size://"

// BuildIconMask turns one icon asset key into the embeddable blob. A
// "size://WxH" style key ("size://w,h") produces a small tagged record the
// consuming runtime synthesizes an empty mask from; any other key names a
// raster pair on disk, resolved relative to assetDir, that gets validated,
// modified, resampled and packed into one lossless composite.
func BuildIconMask(key, assetDir string) ([]byte, error) {
	if strings.HasPrefix(key, placeholderPrefix) {
		return placeholderRecord(key)
	}
	return composeRaster(key, assetDir)
}

// placeholderRecord encodes the generate-by-size entry: a fixed text tag, a
// fixed size sub-tag, then width and height as two big-endian 32-bit
// integers.
func placeholderRecord(key string) ([]byte, error) {
	dims := strings.Split(strings.TrimPrefix(key, placeholderPrefix), ",")
	if len(dims) < 2 {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeBadPlaceholderSize, key, "bad dimensions", nil)
	}
	width, werr := strconv.Atoi(dims[0])
	height, herr := strconv.Atoi(dims[1])
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeBadPlaceholderSize, key, "bad dimensions", nil)
	}

	var buf bytes.Buffer
	buf.WriteString("GENERATE:")
	buf.WriteString("SIZE:")
	binary.Write(&buf, binary.BigEndian, int32(width))  //nolint:errcheck
	binary.Write(&buf, binary.BigEndian, int32(height)) //nolint:errcheck
	return buf.Bytes(), nil
}

func composeRaster(key, assetDir string) ([]byte, error) {
	pathAndModifiers := strings.Split(key, "-")
	base := pathAndModifiers[0]
	modifiers := pathAndModifiers[1:]

	path100 := filepath.Join(assetDir, base+".png")
	path200 := filepath.Join(assetDir, base+"@2x.png")

	img100, err := loadPNG(path100)
	if err != nil {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeAssetNotFound, path100, "could not open icon file", err)
	}
	img200, err := loadPNG(path200)
	if err != nil {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeAssetNotFound, path200, "could not open icon file", err)
	}

	if img100.ColorModel() != img200.ColorModel() {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeBadIconFormat, path100, "1x and 2x icons have different format", nil)
	}

	w100, h100 := img100.Bounds().Dx(), img100.Bounds().Dy()
	w200, h200 := img200.Bounds().Dx(), img200.Bounds().Dy()
	if w100*2 != w200 || h100*2 != h200 {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeBadIconSize, path100,
			fmt.Sprintf("bad icons size, 1x: %dx%d, 2x: %dx%d", w100, h100, w200, h200), nil)
	}

	png100 := toNRGBA(img100)
	png200 := toNRGBA(img200)

	for _, name := range modifiers {
		modifier := icons.Lookup(name)
		if modifier == nil {
			return nil, stylecerrors.NewAssetError(stylecerrors.CodeModifierNotFound, base, "unknown modifier "+name, nil)
		}
		modifier(png100, png200)
	}

	// The two extra resolutions resample down from the 2x raster, ignoring
	// aspect constraints; the target extents come from the same discrete
	// scale set pixel magnitudes adjust with.
	png125 := resample(png200, styles.PxAdjust(w100, styles.ScaleOneAndQuarter), styles.PxAdjust(h100, styles.ScaleOneAndQuarter))
	png150 := resample(png200, styles.PxAdjust(w100, styles.ScaleOneAndHalf), styles.PxAdjust(h100, styles.ScaleOneAndHalf))

	// Composite layout: top band 2x then 1x side by side, bottom band 3/2
	// then 5/4. The canvas is pre-filled fully opaque so padding bytes are
	// deterministic and the encoded blob reproducible.
	composed := image.NewNRGBA(image.Rect(0, 0, w200+w100, h200+png150.Bounds().Dy()))
	xdraw.Draw(composed, composed.Bounds(), image.NewUniform(color.NRGBA{A: 255}), image.Point{}, xdraw.Src)
	xdraw.Draw(composed, png200.Bounds(), png200, image.Point{}, xdraw.Src)
	xdraw.Draw(composed, png100.Bounds().Add(image.Pt(w200, 0)), png100, image.Point{}, xdraw.Src)
	xdraw.Draw(composed, png150.Bounds().Add(image.Pt(0, h200)), png150, image.Point{}, xdraw.Src)
	xdraw.Draw(composed, png125.Bounds().Add(image.Pt(png150.Bounds().Dx(), h200)), png125, image.Point{}, xdraw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, composed); err != nil {
		return nil, stylecerrors.NewAssetError(stylecerrors.CodeIOFailure, base, "could not encode composite", err)
	}
	return buf.Bytes(), nil
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(out, out.Bounds(), img, bounds.Min, xdraw.Src)
	return out
}

func resample(src *image.NRGBA, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out
}
