// Package rawcolor contains primitives for exchanging raw, untyped memory with
// code on the other side of a language boundary.
//
// The sub packages implement the pieces:
//
//   - [github.com/BeatGlow/rawcolor/pixel] packs and unpacks 32-bit colors
//   - [github.com/BeatGlow/rawcolor/rawbuf] bulk initializes opaque byte regions
//   - [github.com/BeatGlow/rawcolor/noise] perturbs image shaped buffers
//   - [github.com/BeatGlow/rawcolor/handle] manages opaque 4-byte color records
//   - [github.com/BeatGlow/rawcolor/rng] supplies seeded pseudo-random numbers
//   - [github.com/BeatGlow/rawcolor/dump] renders buffers for diagnostics
//
// This package holds the errors and the logger shared by all of them.
package rawcolor

import (
	"errors"
	"os"
)

// debug selects the development logger as the default.
var debug = os.Getenv("RAWCOLOR_DEBUG") != ""

// Errors
var (
	ErrOutOfBounds       = errors.New("rawcolor: buffer out of bounds")
	ErrOverflow          = errors.New("rawcolor: arithmetic overflow")
	ErrInvalidRange      = errors.New("rawcolor: invalid range")
	ErrInvalidDimensions = errors.New("rawcolor: invalid dimensions")
	ErrOverlap           = errors.New("rawcolor: input and output buffers overlap")
	ErrPointerElement    = errors.New("rawcolor: element type contains pointers")
	ErrInvalidHandle     = errors.New("rawcolor: invalid handle")
	ErrUseAfterRelease   = errors.New("rawcolor: handle used after release")
	ErrDoubleRelease     = errors.New("rawcolor: handle released twice")
)
