package sfload

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// PinPort implements Registers over five discrete GPIO pins using
// periph.io. Lines outside the current output-enable mask are held in
// high-impedance input mode, so an unconfigured port never fights the
// FPGA's own drivers.
type PinPort struct {
	pins [5]gpio.PinIO // indexed by line bit position
	oe   uint8
}

// NewPinPort wires the five configuration lines to GPIO pins.
func NewPinPort(cclk, din, done, initB, programB gpio.PinIO) *PinPort {
	for _, p := range []gpio.PinIO{cclk, din, done, initB, programB} {
		if p == nil {
			panic("configuration pin cannot be nil")
		}
	}
	return &PinPort{
		pins: [5]gpio.PinIO{cclk, din, done, initB, programB},
	}
}

// SetOutputEnable makes the lines in mask outputs (driven low) and
// returns every other line to input mode.
func (p *PinPort) SetOutputEnable(mask uint8) error {
	for i, pin := range p.pins {
		bit := uint8(1) << i
		if mask&bit != 0 {
			if err := pin.Out(gpio.Low); err != nil {
				return fmt.Errorf("%s: %w", pin.Name(), err)
			}
		} else {
			if err := pin.In(gpio.Float, gpio.NoEdge); err != nil {
				return fmt.Errorf("%s: %w", pin.Name(), err)
			}
		}
	}
	p.oe = mask
	return nil
}

// WriteOutputs drives every output-enabled line to the level given by
// its bit in value. Bits for input lines are ignored.
func (p *PinPort) WriteOutputs(value uint8) error {
	for i, pin := range p.pins {
		bit := uint8(1) << i
		if p.oe&bit == 0 {
			continue
		}
		if err := pin.Out(gpio.Level(value&bit != 0)); err != nil {
			return fmt.Errorf("%s: %w", pin.Name(), err)
		}
	}
	return nil
}

// ReadInputs samples every input line and composes the register value.
func (p *PinPort) ReadInputs() (uint8, error) {
	var value uint8
	for i, pin := range p.pins {
		bit := uint8(1) << i
		if p.oe&bit != 0 {
			continue
		}
		if pin.Read() == gpio.High {
			value |= bit
		}
	}
	return value, nil
}
