package sfload

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic is the gateware image tag, "SAR1" in ASCII.
	Magic = 0x53415231

	// MaxLength is the largest payload the target accepts; anything
	// bigger than the target's bitstream cannot be a valid image.
	MaxLength = 0x220000

	// HeaderSize is the length of the [magic:4][length:4] prefix.
	HeaderSize = 8
)

// Header is the fixed 8-byte prefix of a gateware image.
type Header struct {
	Magic  uint32
	Length uint32 // payload bytes following the header
}

// ParseHeader validates the image prefix and declared extent. It reads
// both fields big-endian and accepts only an in-bounds "SAR1" image.
// It touches no hardware; Loader.Load refuses to drive any signal until
// this has passed.
func ParseHeader(image []byte) (Header, error) {
	if len(image) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d byte header", ErrTruncated, len(image))
	}

	h := Header{
		Magic:  binary.BigEndian.Uint32(image[0:]),
		Length: binary.BigEndian.Uint32(image[4:]),
	}

	if h.Magic != Magic {
		return Header{}, fmt.Errorf("%w: got %#08x", ErrBadMagic, h.Magic)
	}
	if h.Length > MaxLength {
		return Header{}, fmt.Errorf("%w: %#x bytes", ErrTooLarge, h.Length)
	}
	if uint64(len(image)) < HeaderSize+uint64(h.Length) {
		return Header{}, fmt.Errorf("%w: header declares %#x payload bytes, buffer holds %#x",
			ErrTruncated, h.Length, len(image)-HeaderSize)
	}
	return h, nil
}
