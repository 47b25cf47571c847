package media_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"

	"github.com/BruksfildServices01/barberpro/internal/media"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestSquareThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 300))

	dst, err := media.SquareThumbnail(src, 256)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), dst.Bounds())

	_, err = media.SquareThumbnail(image.NewRGBA(image.Rect(0, 0, 0, 10)), 256)
	assert.ErrorIs(t, err, media.ErrEmptyImage)
}

func TestAvatar(t *testing.T) {
	out, err := media.Avatar(pngOf(t, 400, 200))
	require.NoError(t, err)

	cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, media.AvatarSize, cfg.Width)
	assert.Equal(t, media.AvatarSize, cfg.Height)
}

func TestAvatarRejectsGarbage(t *testing.T) {
	_, err := media.Avatar(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, media.ErrUnsupported)
}
