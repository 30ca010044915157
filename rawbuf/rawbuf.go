// Package rawbuf treats arrays of arbitrary fixed-size elements as opaque
// byte regions and bulk initializes them.
//
// A region is described by an element count n and an element size in bytes;
// all functions touch exactly the first n*typeSize bytes and never read them.
package rawbuf

import (
	"fmt"
	"math/bits"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/rng"
)

// Size returns n*typeSize, or an error if either is negative or the product
// does not fit in an int.
func Size(n, typeSize int) (int, error) {
	if n < 0 || typeSize < 0 {
		return 0, fmt.Errorf("rawbuf: negative size %d*%d: %w", n, typeSize, rawcolor.ErrOutOfBounds)
	}
	hi, lo := bits.Mul64(uint64(n), uint64(typeSize))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, fmt.Errorf("rawbuf: size %d*%d: %w", n, typeSize, rawcolor.ErrOverflow)
	}
	return int(lo), nil
}

const maxInt = int(^uint(0) >> 1)

func region(buf []byte, n, typeSize int) ([]byte, error) {
	size, err := Size(n, typeSize)
	if err != nil {
		return nil, err
	}
	if len(buf) < size {
		return nil, fmt.Errorf("rawbuf: need %d bytes, buffer has %d: %w", size, len(buf), rawcolor.ErrOutOfBounds)
	}
	return buf[:size], nil
}

// FillHigh sets every bit of the n*typeSize byte region to 1.
func FillHigh(buf []byte, n, typeSize int) error {
	p, err := region(buf, n, typeSize)
	if err != nil {
		return err
	}
	fill(p, 0xff)
	return nil
}

// FillLow sets every bit of the n*typeSize byte region to 0.
func FillLow(buf []byte, n, typeSize int) error {
	p, err := region(buf, n, typeSize)
	if err != nil {
		return err
	}
	fill(p, 0x00)
	return nil
}

// FillRandom sets every byte of the n*typeSize byte region to a random value,
// drawing one value per byte in index order.
func FillRandom(buf []byte, n, typeSize int, src rng.Source) error {
	p, err := region(buf, n, typeSize)
	if err != nil {
		return err
	}
	for i := range p {
		p[i] = rng.Byte(src)
	}
	return nil
}

func fill(p []byte, value byte) {
	for i := range p {
		p[i] = value
	}
}
