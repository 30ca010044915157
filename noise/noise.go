// Package noise applies bounded random perturbation to image shaped buffers.
//
// A buffer holds width × height pixels of bytesPerPixel bytes each. Every
// byte is replaced by itself plus a random delta drawn from
// [-intensity, +intensity), clamped to [0, 255]. The range is asymmetric: it
// holds one more negative value than positive ones.
package noise

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/dump"
	"github.com/BeatGlow/rawcolor/pixel"
	"github.com/BeatGlow/rawcolor/rng"
)

const maxInt = int(^uint(0) >> 1)

// Job describes one pass over a buffer.
type Job struct {
	// Settings are logged, one entry per value, and otherwise ignored.
	Settings []int

	// Width of the buffer in pixels.
	Width int

	// Height of the buffer in pixels.
	Height int

	// BytesPerPixel is the pixel stride in bytes.
	BytesPerPixel int

	// Intensity is the maximum magnitude of the perturbation.
	Intensity uint8
}

// Size returns the number of bytes covered by the job.
func (j Job) Size() (int, error) {
	return BufferSize(j.Width, j.Height, j.BytesPerPixel)
}

// BufferSize returns width*height*bytesPerPixel. All values must be positive
// and the product must fit in an int.
func BufferSize(width, height, bytesPerPixel int) (int, error) {
	if width <= 0 || height <= 0 || bytesPerPixel <= 0 {
		return 0, fmt.Errorf("noise: %dx%dx%d: %w", width, height, bytesPerPixel, rawcolor.ErrInvalidDimensions)
	}
	size, ok := mul(width, height)
	if ok {
		size, ok = mul(size, bytesPerPixel)
	}
	if !ok {
		return 0, fmt.Errorf("noise: %dx%dx%d: %w", width, height, bytesPerPixel, rawcolor.ErrOverflow)
	}
	return size, nil
}

func mul(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, false
	}
	return int(lo), true
}

// Fuzzer perturbs buffers with values drawn from Source.
//
// A Fuzzer is not safe for concurrent use.
type Fuzzer struct {
	// Source of randomness, one draw per perturbed byte.
	Source rng.Source

	// Sink receives the input and output of every processed job, if set.
	Sink dump.Sink
}

// New returns a Fuzzer drawing from src.
func New(src rng.Source) *Fuzzer {
	return &Fuzzer{Source: src}
}

// Byte returns original moved by a random delta in [-intensity, +intensity),
// clamped to [0, 255]. An intensity of zero returns original without drawing.
func (f *Fuzzer) Byte(original, intensity uint8) uint8 {
	if intensity == 0 {
		return original
	}
	delta := f.Source.IntN(2*int(intensity)) - int(intensity)
	return clamp(int(original) + delta)
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return uint8(v)
	}
}

// Process writes a perturbed copy of the job's region of input to output and
// returns the computed region size.
//
// Both buffers must hold at least the computed size and must not overlap.
func (f *Fuzzer) Process(job Job, input, output []byte) (int, error) {
	size, err := job.Size()
	if err != nil {
		return 0, err
	}

	log := rawcolor.Logger().With(zap.String("job", uuid.NewString()))
	for _, setting := range job.Settings {
		log.Debug("fake update setting", zap.Int("setting", setting))
	}

	if len(input) < size {
		return 0, fmt.Errorf("noise: input has %d bytes, need %d: %w", len(input), size, rawcolor.ErrOutOfBounds)
	}
	if len(output) < size {
		return 0, fmt.Errorf("noise: output has %d bytes, need %d: %w", len(output), size, rawcolor.ErrOutOfBounds)
	}
	input, output = input[:size], output[:size]
	if overlaps(input, output) {
		return 0, fmt.Errorf("noise: %w", rawcolor.ErrOverlap)
	}

	log.Debug("processing buffer",
		zap.Int("width", job.Width),
		zap.Int("height", job.Height),
		zap.Int("bytes_per_pixel", job.BytesPerPixel),
		zap.Uint8("intensity", job.Intensity),
		zap.Int("size", size))

	for i, v := range input {
		output[i] = f.Byte(v, job.Intensity)
	}

	if f.Sink != nil {
		stride := job.Width * job.BytesPerPixel
		if err = f.Sink.Bytes("input", input, stride); err != nil {
			return size, err
		}
		if err = f.Sink.Bytes("output", output, stride); err != nil {
			return size, err
		}
	}

	log.Debug("processed buffer", zap.Int("size", size))
	return size, nil
}

// ProcessImage writes a perturbed copy of src to dst. Both images must have
// the same size; alpha bytes are perturbed like the color bytes.
func (f *Fuzzer) ProcessImage(dst, src *pixel.PackedImage, intensity uint8) error {
	size := src.Bounds().Size()
	if v := dst.Bounds().Size(); !v.Eq(size) {
		return fmt.Errorf("noise: image size %s does not match %s: %w", v, size, rawcolor.ErrInvalidDimensions)
	}
	job := Job{
		Width:         size.X,
		Height:        size.Y,
		BytesPerPixel: 4,
		Intensity:     intensity,
	}
	_, err := f.Process(job, src.Pix, dst.Pix)
	return err
}

// overlaps reports if a and b share any backing memory.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var (
		a0 = uintptr(unsafe.Pointer(unsafe.SliceData(a)))
		b0 = uintptr(unsafe.Pointer(unsafe.SliceData(b)))
		a1 = a0 + uintptr(len(a))
		b1 = b0 + uintptr(len(b))
	)
	return a0 < b1 && b0 < a1
}
