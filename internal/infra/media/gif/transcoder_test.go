package gif

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngImage encodes a solid-color PNG with the given dimensions.
func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTranscoder_TranscodeToSquareGIF(t *testing.T) {
	t.Run("produces a square gif from a landscape source", func(t *testing.T) {
		tr := NewTranscoder()

		media, err := tr.TranscodeToSquareGIF(context.Background(), pngImage(t, 400, 200))

		require.NoError(t, err)
		assert.Equal(t, "image/gif", media.MIMEType)

		decoded, err := gif.Decode(bytes.NewReader(media.Data))
		require.NoError(t, err)
		assert.Equal(t, 200, decoded.Bounds().Dx())
		assert.Equal(t, 200, decoded.Bounds().Dy())
	})

	t.Run("bounds the output to the configured max dimension", func(t *testing.T) {
		tr := NewTranscoder(WithMaxDimension(100))

		media, err := tr.TranscodeToSquareGIF(context.Background(), pngImage(t, 300, 300))

		require.NoError(t, err)

		decoded, err := gif.Decode(bytes.NewReader(media.Data))
		require.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
		assert.Equal(t, 100, decoded.Bounds().Dy())
	})

	t.Run("keeps a small square source at its original size", func(t *testing.T) {
		tr := NewTranscoder()

		media, err := tr.TranscodeToSquareGIF(context.Background(), pngImage(t, 64, 64))

		require.NoError(t, err)

		decoded, err := gif.Decode(bytes.NewReader(media.Data))
		require.NoError(t, err)
		assert.Equal(t, 64, decoded.Bounds().Dx())
		assert.Equal(t, 64, decoded.Bounds().Dy())
	})

	t.Run("rejects bytes that are not a decodable image", func(t *testing.T) {
		tr := NewTranscoder()

		_, err := tr.TranscodeToSquareGIF(context.Background(), []byte("not an image"))

		assert.Error(t, err)
	})
}

func TestCenterCropSquare(t *testing.T) {
	t.Run("crops the long edge symmetrically", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 100, 60))

		square := centerCropSquare(src)

		assert.Equal(t, 60, square.Bounds().Dx())
		assert.Equal(t, 60, square.Bounds().Dy())
	})

	t.Run("returns a square source unchanged", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 80, 80))

		assert.Equal(t, src.Bounds(), centerCropSquare(src).Bounds())
	})
}
