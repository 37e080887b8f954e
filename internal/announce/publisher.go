package announce

import "context"

// Media is an encoded media item ready to be attached to a post.
type Media struct {
	Data     []byte // encoded media bytes
	MIMEType string // e.g. "image/gif"
}

// Publisher defines the capability of creating posts on the social platform.
type Publisher interface {
	// PublishText creates a text-only post.
	PublishText(ctx context.Context, text string) error

	// PublishWithMedia uploads the given media item and creates a post with
	// the text and the media attached.
	PublishWithMedia(ctx context.Context, text string, media Media) error
}

// MediaFetcher retrieves the raw bytes of an image from its source location.
type MediaFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// MediaTranscoder converts a source image into the animated/static format and
// aspect ratio the publish platform requires: square, bounded max dimension.
type MediaTranscoder interface {
	TranscodeToSquareGIF(ctx context.Context, image []byte) (Media, error)
}
