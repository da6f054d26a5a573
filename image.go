package asciimotion

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// StillSource is a FrameSource over a single decoded image.
type StillSource struct {
	img  image.Image
	done bool
}

// NewStillSource decodes one image from r. Any format registered with the
// image package is accepted: png, jpeg, gif, bmp and webp.
func NewStillSource(r io.Reader) (*StillSource, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &StillSource{img: img}, nil
}

// OpenStill decodes the image file at path.
func OpenStill(path string) (*StillSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewStillSource(f)
}

// Next returns the image once, then io.EOF.
func (s *StillSource) Next() (image.Image, error) {
	if s.done {
		return nil, io.EOF
	}
	s.done = true
	return s.img, nil
}

func (s *StillSource) Close() error {
	return nil
}

// IsStill reports whether path names a still image by its extension.
func IsStill(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
		return true
	}
	return false
}
