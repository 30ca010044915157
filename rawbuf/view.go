package rawbuf

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/rng"
)

// View returns the bytes backing s. The view aliases s: writes through it
// change the elements.
//
// Only element types without pointers are accepted, since arbitrary bytes
// written over a pointer would corrupt the heap.
func View[T any](s []T) ([]byte, error) {
	typ := reflect.TypeFor[T]()
	if !plain(typ) {
		return nil, fmt.Errorf("rawbuf: view of []%s: %w", typ, rawcolor.ErrPointerElement)
	}
	if len(s) == 0 || typ.Size() == 0 {
		return []byte{}, nil
	}
	size, err := Size(len(s), int(typ.Size()))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size), nil
}

// plain reports if values of typ hold no pointers.
func plain(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return typ.Len() == 0 || plain(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if !plain(typ.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FillHighOf sets every bit of every element of s to 1.
func FillHighOf[T any](s []T) error {
	p, err := View(s)
	if err != nil {
		return err
	}
	fill(p, 0xff)
	return nil
}

// FillLowOf sets every bit of every element of s to 0.
func FillLowOf[T any](s []T) error {
	p, err := View(s)
	if err != nil {
		return err
	}
	fill(p, 0x00)
	return nil
}

// FillRandomOf sets every byte of every element of s to a random value.
func FillRandomOf[T any](s []T, src rng.Source) error {
	p, err := View(s)
	if err != nil {
		return err
	}
	for i := range p {
		p[i] = rng.Byte(src)
	}
	return nil
}
