package sfload

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Bit positions of the configuration lines in the port registers. DONE
// and INIT_B are driven by the FPGA and show up in the input register;
// the rest are host outputs.
const (
	CCLK     uint8 = 1 << 0
	DIN      uint8 = 1 << 1
	DONE     uint8 = 1 << 2
	InitB    uint8 = 1 << 3
	ProgramB uint8 = 1 << 4
)

// Protocol timing. These are hardware contracts from the target's data
// sheet, not tunables.
const (
	// [Xilinx-DS181|Table 17] TPROGRAM: PROGRAM_B must stay low for at
	// least 250ns to register a reset. 1µs is comfortably above that.
	programPulse = 1 * time.Microsecond

	// [Xilinx-DS181|Table 17] TPL: INIT_B rises at most 5ms after
	// PROGRAM_B is released.
	initWait = 5 * time.Millisecond

	// DONE must come up within this long of the last payload byte,
	// given continued CCLK activity.
	doneTimeout = 100 * time.Millisecond
)

// Registers is the register-level transport to the slave FPGA's
// configuration port: one output-enable register, one output register
// and one input register, all using the line bit masks above.
// Implementations are PinPort (periph.io pins) and RPiPort (go-rpio);
// tests supply a simulated target.
type Registers interface {
	SetOutputEnable(mask uint8) error
	WriteOutputs(value uint8) error
	ReadInputs() (uint8, error)
}

// Loader drives one slave serial configuration interface. It holds no
// state between Load calls; a failed load is retried by calling Load
// again, which restarts the whole handshake.
type Loader struct {
	reg Registers
	cfg Config
}

// New creates a Loader on the given register transport.
func New(reg Registers, opts ...Option) *Loader {
	if reg == nil {
		panic("register transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loader{reg: reg, cfg: cfg}
}

// Load validates the gateware image and configures the FPGA with it:
// reset via PROGRAM_B, wait for INIT_B, shift the payload MSB first
// while watching INIT_B for a mid-stream abort, then clock 0xFF filler
// until DONE comes up. The image buffer is never modified.
//
// Any returned error is terminal for this call. The header errors
// (ErrBadMagic, ErrTooLarge, ErrTruncated) are reported before any
// signal is driven.
func (l *Loader) Load(image []byte) error {
	hdr, err := ParseHeader(image)
	if err != nil {
		return err
	}
	payload := image[HeaderSize : HeaderSize+int64(hdr.Length)]

	l.cfg.Logger.Info("loading slave FPGA gateware",
		zap.Uint32("length", hdr.Length))

	if err := l.reg.SetOutputEnable(CCLK | DIN | ProgramB); err != nil {
		return err
	}

	// Reset pulse, then give INIT_B its full rise time before sampling.
	if err := l.reg.WriteOutputs(0); err != nil {
		return err
	}
	l.cfg.Clock.Sleep(programPulse)
	if err := l.reg.WriteOutputs(ProgramB); err != nil {
		return err
	}
	l.cfg.Clock.Sleep(initWait)

	in, err := l.reg.ReadInputs()
	if err != nil {
		return err
	}
	if in&InitB == 0 {
		return ErrInitTimeout
	}

	for i, b := range payload {
		if err := l.shiftByte(b); err != nil {
			return err
		}
		in, err := l.reg.ReadInputs()
		if err != nil {
			return err
		}
		if in&InitB == 0 {
			return fmt.Errorf("%w after %d bytes", ErrAborted, i+1)
		}
	}

	// The FPGA needs CCLK to keep running through its startup sequence,
	// so clock filler bytes while waiting for DONE.
	deadline := l.cfg.Clock.Now().Add(doneTimeout)
	for {
		in, err := l.reg.ReadInputs()
		if err != nil {
			return err
		}
		if in&DONE != 0 {
			break
		}
		if l.cfg.Clock.Now().After(deadline) {
			l.cfg.Logger.Error("slave FPGA not DONE after loading")
			l.cfg.Logger.Error("corrupt gateware? slave FPGA in slave serial mode?")
			return ErrDoneTimeout
		}
		if err := l.shiftByte(0xFF); err != nil {
			return err
		}
	}

	// [Xilinx-UG470|Compensate for Special Startup Conditions]: one
	// extra byte of clocks after DONE.
	if err := l.shiftByte(0xFF); err != nil {
		return err
	}
	l.cfg.Logger.Info("slave FPGA configured")
	return l.reg.WriteOutputs(ProgramB)
}

// shiftByte clocks one byte out MSB first. DIN is set up first, then
// CCLK raised, matching the rising-edge sampling of the target's shift
// register. Without explicit delays this runs CCLK at a few MHz, well
// within spec.
func (l *Loader) shiftByte(data byte) error {
	for i := 0; i < 8; i++ {
		bits := ProgramB
		if data&(0x80>>i) != 0 {
			bits |= DIN
		}
		if err := l.reg.WriteOutputs(bits); err != nil {
			return err
		}
		if err := l.reg.WriteOutputs(bits | CCLK); err != nil {
			return err
		}
	}
	return nil
}
