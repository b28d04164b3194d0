package sfload

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	h, err := ParseHeader(makeImage(payload))
	if err != nil {
		t.Fatalf("ParseHeader() = %v", err)
	}
	if h.Magic != Magic {
		t.Errorf("Magic = %#08x, want %#08x", h.Magic, uint32(Magic))
	}
	if h.Length != uint32(len(payload)) {
		t.Errorf("Length = %d, want %d", h.Length, len(payload))
	}
}

func TestParseHeaderBadMagic(t *testing.T) {
	image := makeImage([]byte{1, 2, 3})
	binary.BigEndian.PutUint32(image[0:], 0x53415232) // "SAR2"
	if _, err := ParseHeader(image); !errors.Is(err, ErrBadMagic) {
		t.Errorf("ParseHeader() = %v, want ErrBadMagic", err)
	}
}

func TestParseHeaderTooLarge(t *testing.T) {
	image := makeImage(nil)
	binary.BigEndian.PutUint32(image[4:], MaxLength+1)
	if _, err := ParseHeader(image); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ParseHeader() = %v, want ErrTooLarge", err)
	}
}

func TestParseHeaderMaxLengthAccepted(t *testing.T) {
	image := makeImage(make([]byte, MaxLength))
	if _, err := ParseHeader(image); err != nil {
		t.Errorf("ParseHeader() = %v, want nil at the size limit", err)
	}
}

func TestParseHeaderShortBuffer(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		if _, err := ParseHeader(make([]byte, n)); !errors.Is(err, ErrTruncated) {
			t.Errorf("ParseHeader(%d bytes) = %v, want ErrTruncated", n, err)
		}
	}
}

func TestParseHeaderDeclaredLengthPastBuffer(t *testing.T) {
	image := makeImage([]byte{1, 2, 3})
	binary.BigEndian.PutUint32(image[4:], 4)
	if _, err := ParseHeader(image); !errors.Is(err, ErrTruncated) {
		t.Errorf("ParseHeader() = %v, want ErrTruncated", err)
	}
}
