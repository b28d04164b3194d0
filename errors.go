package sfload

import "errors"

var (
	// ErrBadMagic indicates the image header does not start with the
	// "SAR1" tag.
	ErrBadMagic = errors.New("gateware magic not found")

	// ErrTooLarge indicates the declared payload length exceeds
	// MaxLength (corrupted header, or not a gateware image at all).
	ErrTooLarge = errors.New("gateware too large (corrupted?)")

	// ErrTruncated indicates the buffer is shorter than the header, or
	// shorter than the payload length the header declares.
	ErrTruncated = errors.New("gateware image truncated")

	// ErrInitTimeout indicates INIT_B stayed low after the PROGRAM_B
	// reset pulse was released: the FPGA never left its memory clear
	// phase (unpowered, held in reset, or faulty).
	ErrInitTimeout = errors.New("slave FPGA did not initialize")

	// ErrAborted indicates INIT_B went low while the bitstream was
	// being shifted: the FPGA detected a framing or CRC error in the
	// partial bitstream and aborted configuration.
	ErrAborted = errors.New("slave FPGA error: INIT_B went low")

	// ErrDoneTimeout indicates DONE was not asserted within 100ms of
	// the last payload byte (corrupt gateware, or the FPGA is not
	// strapped for slave serial mode).
	ErrDoneTimeout = errors.New("slave FPGA not DONE")
)
