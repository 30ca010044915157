package dump

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/rawcolor/pixel"
)

// TrueTypeFace returns the Go Regular font face at size points.
func TrueTypeFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("dump: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// ImageSink renders dumps as text lines on an image. Each call replaces the
// previous contents; lines that don't fit are dropped.
type ImageSink struct {
	// Image to render on.
	Image *pixel.PackedImage

	// Face used for text, basicfont.Face7x13 if nil.
	Face font.Face

	// Foreground and Background colors.
	Foreground, Background pixel.Packed
}

// NewImage returns a sink rendering white on black on a new w×h image.
func NewImage(w, h int) *ImageSink {
	return &ImageSink{
		Image:      pixel.NewPackedImage(w, h),
		Foreground: pixel.White,
		Background: pixel.Black,
	}
}

func (s *ImageSink) face() font.Face {
	if s.Face != nil {
		return s.Face
	}
	return basicfont.Face7x13
}

func (s *ImageSink) Bytes(label string, p []byte, stride int) error {
	lines := append([]string{fmt.Sprintf("%s (%d bytes)", label, len(p))}, Rows(p, stride)...)
	s.render(lines)
	return nil
}

func (s *ImageSink) String(label, v string) error {
	s.render([]string{label, v})
	return nil
}

func (s *ImageSink) render(lines []string) {
	s.Image.Fill(s.Background)

	var (
		face    = s.face()
		metrics = face.Metrics()
		height  = metrics.Height.Ceil()
		bounds  = s.Image.Bounds()
		d       = &font.Drawer{
			Dst:  s.Image,
			Src:  image.NewUniform(s.Foreground),
			Face: face,
		}
	)
	if height <= 0 {
		return
	}
	for i, line := range lines {
		y := bounds.Min.Y + i*height + metrics.Ascent.Ceil()
		if y > bounds.Max.Y {
			break
		}
		d.Dot = fixed.P(bounds.Min.X, y)
		d.DrawString(expandTabs(line))
	}
}

func expandTabs(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			out = append(out, ' ')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// DisplaySink renders dumps on a display device.
type DisplaySink struct {
	*ImageSink
	dev display.Drawer
}

// NewDisplay returns a sink rendering on dev, sized to its bounds.
func NewDisplay(dev display.Drawer) *DisplaySink {
	size := dev.Bounds().Size()
	return &DisplaySink{
		ImageSink: NewImage(size.X, size.Y),
		dev:       dev,
	}
}

func (s *DisplaySink) Bytes(label string, p []byte, stride int) error {
	if err := s.ImageSink.Bytes(label, p, stride); err != nil {
		return err
	}
	return s.flush()
}

func (s *DisplaySink) String(label, v string) error {
	if err := s.ImageSink.String(label, v); err != nil {
		return err
	}
	return s.flush()
}

func (s *DisplaySink) flush() error {
	return s.dev.Draw(s.dev.Bounds(), s.Image, image.Point{})
}
