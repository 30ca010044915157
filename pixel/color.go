package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/rng"
)

// PackedModel is the color model for Packed colors.
var PackedModel color.Model = color.ModelFunc(packedModel)

// ErrHex is returned when parsing a malformed hex color.
var ErrHex = errors.New("pixel: invalid hex color")

// order is the byte order of the packed format; fixed, not the host order.
var order = binary.LittleEndian

// Common colors.
var (
	Transparent = Packed(0x00000000)
	Black       = Packed(0x000000ff)
	White       = Packed(0xffffffff)
)

// Packed is a 32-bit color written as 0xRRGGBBAA.
//
// Components are not alpha-premultiplied.
type Packed uint32

// Pack the components in a 32-bit color.
func Pack(r, g, b, a uint8) Packed {
	return Packed(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Unpack returns the color components; it is the inverse of Pack.
func (c Packed) Unpack() (r, g, b, a uint8) {
	return c.Red(), c.Green(), c.Blue(), c.Alpha()
}

func (c Packed) Red() uint8   { return uint8(c >> 24) }
func (c Packed) Green() uint8 { return uint8(c >> 16) }
func (c Packed) Blue() uint8  { return uint8(c >> 8) }
func (c Packed) Alpha() uint8 { return uint8(c) }

// Bytes returns the color in storage order: alpha, blue, green, red.
func (c Packed) Bytes() [4]byte {
	var b [4]byte
	order.PutUint32(b[:], uint32(c))
	return b
}

// FromBytes decodes a color stored as alpha, blue, green, red.
func FromBytes(b [4]byte) Packed {
	return Packed(order.Uint32(b[:]))
}

// Put stores the color in the first four bytes of p.
func (c Packed) Put(p []byte) {
	order.PutUint32(p, uint32(c))
}

// Load reads a color from the first four bytes of p.
func Load(p []byte) Packed {
	return Packed(order.Uint32(p))
}

func (c Packed) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// String returns the color as #rrggbbaa.
func (c Packed) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

func packedModel(c color.Color) color.Color {
	if _, ok := c.(Packed); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B, n.A)
}

// ParseHex parses a color in one of the forms RGB, RGBA, RRGGBB or RRGGBBAA,
// with an optional leading #. Colors without alpha are opaque.
func ParseHex(s string) (Packed, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 0xff
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return 0, fmt.Errorf("%w %q", ErrHex, s)
			}
			v[i] = n<<4 | n
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := nibble(hex[i])
			lo, ok2 := nibble(hex[i+1])
			if !ok1 || !ok2 {
				return 0, fmt.Errorf("%w %q", ErrHex, s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return 0, fmt.Errorf("%w %q", ErrHex, s)
	}
	return Pack(v[0], v[1], v[2], v[3]), nil
}

func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// RandomOpaque returns a color with random red, green and blue and full alpha.
//
// It draws three values from src, in the order blue, green, red.
func RandomOpaque(src rng.Source) Packed {
	b := rng.Byte(src)
	g := rng.Byte(src)
	r := rng.Byte(src)
	return Pack(r, g, b, 0xff)
}

// Random returns a color with all four components random.
//
// It draws four values from src, in the order alpha, blue, green, red.
func Random(src rng.Source) Packed {
	a := rng.Byte(src)
	b := rng.Byte(src)
	g := rng.Byte(src)
	r := rng.Byte(src)
	return Pack(r, g, b, a)
}

// FillRandomOpaque sets every color in dst with RandomOpaque, in index order.
func FillRandomOpaque(dst []Packed, src rng.Source) {
	for i := range dst {
		dst[i] = RandomOpaque(src)
	}
	rawcolor.Logger().Debug("filled random opaque colors", zap.Int("count", len(dst)))
}
