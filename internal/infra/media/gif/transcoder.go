package gif

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"

	"github.com/flarebot/saleswatch/internal/announce"

	"golang.org/x/image/draw"

	// Registered decoders for the source formats the feed serves.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// defaultMaxDimension is the square edge length the publish platform accepts
// for GIF attachments.
const defaultMaxDimension = 700

// gifMIMEType is the MIME type reported for transcoded media.
const gifMIMEType = "image/gif"

// transcoder converts source images into square GIFs. Animated webp inputs
// are decoded to their first frame; the Go webp decoder carries no animation
// support.
type transcoder struct {
	maxDimension int
}

// Compile-time assertion to ensure transcoder implements the MediaTranscoder interface.
var _ announce.MediaTranscoder = (*transcoder)(nil)

// TranscoderOption configures the transcoder.
type TranscoderOption func(*transcoder)

// WithMaxDimension overrides the square edge length of the output GIF.
// Default: 700.
func WithMaxDimension(n int) TranscoderOption {
	return func(t *transcoder) {
		t.maxDimension = n
	}
}

// NewTranscoder creates a MediaTranscoder producing square GIFs bounded to
// the configured max dimension.
func NewTranscoder(opts ...TranscoderOption) *transcoder {
	t := &transcoder{
		maxDimension: defaultMaxDimension,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// TranscodeToSquareGIF implements the announce.MediaTranscoder interface. It
// decodes the source image, center-crops it to a square, scales it down to
// the bounded edge length and encodes the result as a GIF.
func (t *transcoder) TranscodeToSquareGIF(ctx context.Context, data []byte) (announce.Media, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return announce.Media{}, fmt.Errorf("decoding source image: %w", err)
	}

	square := centerCropSquare(src)

	edge := square.Bounds().Dx()
	if edge > t.maxDimension {
		edge = t.maxDimension
	}

	scaled := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), square, square.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := gif.Encode(&buf, scaled, nil); err != nil {
		return announce.Media{}, fmt.Errorf("encoding %s image as gif: %w", format, err)
	}

	return announce.Media{
		Data:     buf.Bytes(),
		MIMEType: gifMIMEType,
	}, nil
}

// centerCropSquare returns the largest centered square view of the image.
func centerCropSquare(src image.Image) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == height {
		return src
	}

	edge := min(width, height)
	x0 := bounds.Min.X + (width-edge)/2
	y0 := bounds.Min.Y + (height-edge)/2
	crop := image.Rect(x0, y0, x0+edge, y0+edge)

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}

	if s, ok := src.(subImager); ok {
		return s.SubImage(crop)
	}

	out := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.Copy(out, image.Point{}, src, crop, draw.Src, nil)
	return out
}
