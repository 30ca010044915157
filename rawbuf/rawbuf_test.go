package rawbuf

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/rng"
)

func TestSize(t *testing.T) {
	tests := []struct {
		n, typeSize int
		want        int
		err         error
	}{
		{0, 4, 0, nil},
		{9, 4, 36, nil},
		{3, 0, 0, nil},
		{-1, 4, 0, rawcolor.ErrOutOfBounds},
		{4, -1, 0, rawcolor.ErrOutOfBounds},
		{math.MaxInt, 2, 0, rawcolor.ErrOverflow},
		{math.MaxInt, math.MaxInt, 0, rawcolor.ErrOverflow},
		{math.MaxInt, 1, math.MaxInt, nil},
	}
	for _, test := range tests {
		v, err := Size(test.n, test.typeSize)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("Size(%d, %d): expected %v, got %v", test.n, test.typeSize, test.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Size(%d, %d): unexpected error %v", test.n, test.typeSize, err)
		} else if v != test.want {
			t.Errorf("Size(%d, %d): expected %d, got %d", test.n, test.typeSize, test.want, v)
		}
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		Name string
		Fill func([]byte, int, int) error
		Want byte
	}{
		{"high", FillHigh, 0xff},
		{"low", FillLow, 0x00},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			for _, shape := range [][2]int{{0, 4}, {1, 1}, {9, 4}, {3, 12}} {
				n, size := shape[0], shape[1]
				buf := bytes.Repeat([]byte{0x5a}, n*size+3)
				if err := test.Fill(buf, n, size); err != nil {
					it.Fatalf("%dx%d: unexpected error %v", n, size, err)
				}
				for i, v := range buf[:n*size] {
					if v != test.Want {
						it.Fatalf("%dx%d: byte %d is %#02x, expected %#02x", n, size, i, v, test.Want)
					}
				}
				for i, v := range buf[n*size:] {
					if v != 0x5a {
						it.Errorf("%dx%d: byte %d past the region was modified to %#02x", n, size, n*size+i, v)
					}
				}
			}
		})
	}
}

func TestFillOutOfBounds(t *testing.T) {
	buf := make([]byte, 7)
	if err := FillHigh(buf, 2, 4); !errors.Is(err, rawcolor.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := FillLow(buf, 2, 4); !errors.Is(err, rawcolor.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := FillRandom(buf, 2, 4, rng.New(1)); !errors.Is(err, rawcolor.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := FillHigh(buf, math.MaxInt, 4); !errors.Is(err, rawcolor.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	for i, v := range buf {
		if v != 0 {
			t.Errorf("byte %d was modified to %#02x on error", i, v)
		}
	}
}

func TestFillRandomDeterministic(t *testing.T) {
	a := make([]byte, 36)
	b := make([]byte, 36)
	if err := FillRandom(a, 9, 4, rng.New(1234)); err != nil {
		t.Fatal(err)
	}
	if err := FillRandom(b, 9, 4, rng.New(1234)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("expected identical output for the same seed, got\n%x\n%x", a, b)
	}

	// One draw per byte, in index order.
	src := rng.New(1234)
	for i, v := range a {
		if want := rng.Byte(src); v != want {
			t.Fatalf("byte %d: expected %#02x, got %#02x", i, want, v)
		}
	}
}

func TestFillRandomSequence(t *testing.T) {
	buf := make([]byte, 12)
	if err := FillRandom(buf, 3, 4, rng.New(42)); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x9f, 0xe4, 0xc7, 0x71,
		0x81, 0x75, 0x54, 0xca,
		0xc1, 0xc5, 0xf8, 0xe8,
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("expected % x, got % x", want, buf)
	}
}

type testRecord struct {
	A uint8
	B uint16
	C [3]int32
	D float64
}

type testPointerRecord struct {
	A uint8
	B *int
}

func TestView(t *testing.T) {
	s := make([]uint32, 4)
	p, err := View(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 16 {
		t.Fatalf("expected 16 byte view, got %d", len(p))
	}
	p[0] = 0xff
	if s[0] == 0 {
		t.Error("expected writes through the view to reach the slice")
	}

	records := make([]testRecord, 3)
	if p, err = View(records); err != nil {
		t.Fatal(err)
	} else if want := 3 * int(unsafe.Sizeof(testRecord{})); len(p) != want {
		t.Errorf("expected %d byte view, got %d", want, len(p))
	}

	if _, err = View(make([]testPointerRecord, 1)); !errors.Is(err, rawcolor.ErrPointerElement) {
		t.Errorf("expected ErrPointerElement, got %v", err)
	}
	if _, err = View(make([]string, 1)); !errors.Is(err, rawcolor.ErrPointerElement) {
		t.Errorf("expected ErrPointerElement, got %v", err)
	}

	if p, err = View([]int64(nil)); err != nil || len(p) != 0 {
		t.Errorf("expected empty view, got %d bytes, %v", len(p), err)
	}
}

func TestFillOf(t *testing.T) {
	records := make([]testRecord, 5)
	if err := FillHighOf(records); err != nil {
		t.Fatal(err)
	}
	for i, r := range records {
		if r.A != 0xff || r.B != 0xffff || r.C[2] != -1 {
			t.Errorf("record %d: expected all bits set, got %+v", i, r)
		}
	}

	if err := FillLowOf(records); err != nil {
		t.Fatal(err)
	}
	for i, r := range records {
		if r != (testRecord{}) {
			t.Errorf("record %d: expected zero value, got %+v", i, r)
		}
	}

	ints := make([]uint64, 8)
	if err := FillRandomOf(ints, rng.New(5)); err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 64)
	if err := FillRandom(want, 8, 8, rng.New(5)); err != nil {
		t.Fatal(err)
	}
	got, _ := View(ints)
	if !bytes.Equal(got, want) {
		t.Errorf("expected typed fill to match byte fill, got\n%x\n%x", got, want)
	}

	if err := FillHighOf(make([]*int, 1)); !errors.Is(err, rawcolor.ErrPointerElement) {
		t.Errorf("expected ErrPointerElement, got %v", err)
	}
}
