package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawable image that can be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

var _ Image = (*PackedImage)(nil)

// PackedImage is a 32-bits per pixel image of Packed colors.
type PackedImage struct {
	Buffer
}

func NewPackedImage(w, h int) *PackedImage {
	return &PackedImage{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

func (p *PackedImage) ColorModel() color.Model {
	return PackedModel
}

func (p *PackedImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *PackedImage) At(x, y int) color.Color {
	return p.PackedAt(x, y)
}

// PackedAt returns the color at (x, y), or Transparent out of bounds.
func (p *PackedImage) PackedAt(x, y int) Packed {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Transparent
	}
	return Load(p.Pix[p.PixOffset(x, y):])
}

func (p *PackedImage) Set(x, y int, c color.Color) {
	p.SetPacked(x, y, packedModel(c).(Packed))
}

// SetPacked sets the color at (x, y); out of bounds writes are ignored.
func (p *PackedImage) SetPacked(x, y int, c Packed) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	c.Put(p.Pix[p.PixOffset(x, y):])
}

func (p *PackedImage) Fill(c color.Color) {
	value := packedModel(c).(Packed).Bytes()
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		copy(p.Pix[i:], value[:])
	}
}
