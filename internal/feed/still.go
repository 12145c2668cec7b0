package feed

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
)

// Still is a feed showing one decoded image.
type Still struct {
	name   string
	frame  *image.RGBA
	paused bool
}

// NewStill wraps img.
func NewStill(name string, img image.Image) *Still {
	return &Still{name: name, frame: toRGBA(img)}
}

// OpenStill decodes the PNG or JPEG at path.
func OpenStill(path string) (*Still, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open still: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewStill(filepath.Base(path), img), nil
}

// Name returns the file name.
func (s *Still) Name() string { return s.name }

// FrameSize returns the image size.
func (s *Still) FrameSize() (int, int, bool) {
	b := s.frame.Bounds()
	return b.Dx(), b.Dy(), true
}

// Advancing reports whether the feed is unpaused.
func (s *Still) Advancing() bool { return !s.paused }

// Frame returns the image.
func (s *Still) Frame() *image.RGBA { return s.frame }

// Update is a no-op; the picture never changes.
func (s *Still) Update() {}

// SetPaused pauses or resumes the feed.
func (s *Still) SetPaused(paused bool) { s.paused = paused }

// Paused reports whether the feed is paused.
func (s *Still) Paused() bool { return s.paused }

// Ended is always false.
func (s *Still) Ended() bool { return false }
