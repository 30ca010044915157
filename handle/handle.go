// Package handle manages owned 4-byte color records reached only through
// opaque handles.
//
// Records live in an [Arena]. A [Handle] is valid from Create until Destroy;
// every use afterwards is detected and reported, since released slots are
// reused under a new generation.
//
// An Arena is not safe for concurrent use.
package handle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/pixel"
)

// Record field offsets, matching the packed color byte order.
const (
	offsetAlpha = iota
	offsetBlue
	offsetGreen
	offsetRed
	recordSize
)

// Handle refers to a color record in an Arena. The zero Handle is invalid.
type Handle struct {
	arena *Arena
	slot  uint32
	gen   uint32
}

// Arena owns color records.
type Arena struct {
	data []byte
	gens []uint32 // odd while the slot is live
	free []uint32
	live int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return new(Arena)
}

// Len returns the number of live records.
func (a *Arena) Len() int {
	return a.live
}

// Create allocates a zeroed record.
func (a *Arena) Create() Handle {
	var slot uint32
	if n := len(a.free); n > 0 {
		slot = a.free[n-1]
		a.free = a.free[:n-1]
		clear(a.data[slot*recordSize : (slot+1)*recordSize])
	} else {
		slot = uint32(len(a.gens))
		a.gens = append(a.gens, 0)
		a.data = append(a.data, make([]byte, recordSize)...)
	}
	a.gens[slot]++
	a.live++

	rawcolor.Logger().Debug("created color record", zap.Uint32("slot", slot), zap.Uint32("gen", a.gens[slot]))
	return Handle{arena: a, slot: slot, gen: a.gens[slot]}
}

// Destroy releases the record. Destroying a handle twice is an error.
func (a *Arena) Destroy(h Handle) error {
	if _, err := a.record(h); err != nil {
		if errors.Is(err, rawcolor.ErrUseAfterRelease) {
			return fmt.Errorf("handle: destroy slot %d: %w", h.slot, rawcolor.ErrDoubleRelease)
		}
		return err
	}
	a.gens[h.slot]++
	a.free = append(a.free, h.slot)
	a.live--

	rawcolor.Logger().Debug("destroyed color record", zap.Uint32("slot", h.slot))
	return nil
}

// record returns the 4 bytes of a live record.
func (a *Arena) record(h Handle) ([]byte, error) {
	if h.arena != a || h.gen == 0 || int(h.slot) >= len(a.gens) {
		return nil, rawcolor.ErrInvalidHandle
	}
	if a.gens[h.slot] != h.gen {
		return nil, rawcolor.ErrUseAfterRelease
	}
	offset := h.slot * recordSize
	return a.data[offset : offset+recordSize : offset+recordSize], nil
}

func (a *Arena) field(h Handle, offset int) (uint8, error) {
	p, err := a.record(h)
	if err != nil {
		return 0, fmt.Errorf("handle: read slot %d: %w", h.slot, err)
	}
	return p[offset], nil
}

// SetValues writes all four components of the record.
func (a *Arena) SetValues(h Handle, r, g, b, alpha uint8) error {
	p, err := a.record(h)
	if err != nil {
		return fmt.Errorf("handle: write slot %d: %w", h.slot, err)
	}
	p[offsetRed] = r
	p[offsetGreen] = g
	p[offsetBlue] = b
	p[offsetAlpha] = alpha
	return nil
}

func (a *Arena) Red(h Handle) (uint8, error)   { return a.field(h, offsetRed) }
func (a *Arena) Green(h Handle) (uint8, error) { return a.field(h, offsetGreen) }
func (a *Arena) Blue(h Handle) (uint8, error)  { return a.field(h, offsetBlue) }
func (a *Arena) Alpha(h Handle) (uint8, error) { return a.field(h, offsetAlpha) }

// Packed decodes the record into a packed color.
func (a *Arena) Packed(h Handle) (pixel.Packed, error) {
	p, err := a.record(h)
	if err != nil {
		return 0, fmt.Errorf("handle: decode slot %d: %w", h.slot, err)
	}
	return pixel.Load(p), nil
}
