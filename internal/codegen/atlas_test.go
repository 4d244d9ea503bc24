package codegen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	// One translucent pixel keeps the encoder on the alpha color type.
	img.SetNRGBA(0, 0, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 128})
	return img
}

func writeIconPair(t *testing.T, dir, base string, w, h int) {
	t.Helper()
	writePNG(t, filepath.Join(dir, base+".png"), solidNRGBA(w, h, color.NRGBA{R: 200, A: 255}))
	writePNG(t, filepath.Join(dir, base+"@2x.png"), solidNRGBA(2*w, 2*h, color.NRGBA{R: 200, A: 255}))
}

func TestBuildIconMaskComposite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeIconPair(t, dir, "menu_settings", 4, 4)

	blob, err := BuildIconMask("menu_settings", dir)
	require.NoError(t, err)

	composed, err := png.Decode(bytes.NewReader(blob))
	require.NoError(t, err)

	// Top band: 8x8 2x beside 4x4 1x. Bottom band: 6x6 3/2 beside 5x5
	// 5/4, so the canvas is 12 wide and 14 tall.
	require.Equal(t, 12, composed.Bounds().Dx())
	require.Equal(t, 14, composed.Bounds().Dy())

	// The unused bottom-right region keeps the opaque prefill.
	_, _, _, a := composed.At(11, 13).RGBA()
	require.Equal(t, uint32(0xffff), a)
}

func TestBuildIconMaskAppliesModifiers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeIconPair(t, dir, "menu_settings", 4, 4)

	plain, err := BuildIconMask("menu_settings", dir)
	require.NoError(t, err)
	inverted, err := BuildIconMask("menu_settings-invert", dir)
	require.NoError(t, err)
	require.NotEqual(t, plain, inverted)

	_, err = BuildIconMask("menu_settings-sparkle", dir)
	var assetErr *stylecerrors.AssetError
	require.ErrorAs(t, err, &assetErr)
	require.Equal(t, stylecerrors.CodeModifierNotFound, assetErr.Code)
}

func TestBuildIconMaskRejectsSizeMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "broken.png"), solidNRGBA(3, 4, color.NRGBA{A: 255}))
	writePNG(t, filepath.Join(dir, "broken@2x.png"), solidNRGBA(8, 8, color.NRGBA{A: 255}))

	_, err := BuildIconMask("broken", dir)
	var assetErr *stylecerrors.AssetError
	require.ErrorAs(t, err, &assetErr)
	require.Equal(t, stylecerrors.CodeBadIconSize, assetErr.Code)
	require.Contains(t, err.Error(), "bad icons size, 1x: 3x4, 2x: 8x8")
}

func TestBuildIconMaskRejectsFormatMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "gray.png"), image.NewGray(image.Rect(0, 0, 4, 4)))
	writePNG(t, filepath.Join(dir, "gray@2x.png"), solidNRGBA(8, 8, color.NRGBA{A: 255}))

	_, err := BuildIconMask("gray", dir)
	var assetErr *stylecerrors.AssetError
	require.ErrorAs(t, err, &assetErr)
	require.Equal(t, stylecerrors.CodeBadIconFormat, assetErr.Code)
}

func TestBuildIconMaskMissingAsset(t *testing.T) {
	t.Parallel()

	_, err := BuildIconMask("ghost", t.TempDir())
	var assetErr *stylecerrors.AssetError
	require.ErrorAs(t, err, &assetErr)
	require.Equal(t, stylecerrors.CodeAssetNotFound, assetErr.Code)
}

func TestPlaceholderRecord(t *testing.T) {
	t.Parallel()

	blob, err := BuildIconMask("size://24,16", "")
	require.NoError(t, err)
	require.Equal(t, []byte("GENERATE:SIZE:\x00\x00\x00\x18\x00\x00\x00\x10"), blob)

	for _, key := range []string{"size://24", "size://0,16", "size://24,-1", "size://w,h"} {
		_, err := BuildIconMask(key, "")
		var assetErr *stylecerrors.AssetError
		require.ErrorAs(t, err, &assetErr)
		require.Equal(t, stylecerrors.CodeBadPlaceholderSize, assetErr.Code)
	}
}
