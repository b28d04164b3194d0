package sfload

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// RPiPort implements Registers through the Raspberry Pi's memory-mapped
// GPIO registers via go-rpio. The caller owns the mapping: rpio.Open
// before use, rpio.Close after.
type RPiPort struct {
	pins [5]rpio.Pin // indexed by line bit position
	oe   uint8
}

// NewRPiPort wires the five configuration lines to BCM pin numbers.
func NewRPiPort(cclk, din, done, initB, programB uint8) *RPiPort {
	return &RPiPort{
		pins: [5]rpio.Pin{
			rpio.Pin(cclk),
			rpio.Pin(din),
			rpio.Pin(done),
			rpio.Pin(initB),
			rpio.Pin(programB),
		},
	}
}

// SetOutputEnable makes the lines in mask outputs and every other line
// an input.
func (p *RPiPort) SetOutputEnable(mask uint8) error {
	for i, pin := range p.pins {
		if mask&(1<<i) != 0 {
			pin.Output()
		} else {
			pin.Input()
		}
	}
	p.oe = mask
	return nil
}

// WriteOutputs drives every output-enabled line to the level given by
// its bit in value.
func (p *RPiPort) WriteOutputs(value uint8) error {
	for i, pin := range p.pins {
		bit := uint8(1) << i
		if p.oe&bit == 0 {
			continue
		}
		if value&bit != 0 {
			pin.High()
		} else {
			pin.Low()
		}
	}
	return nil
}

// ReadInputs samples every input line and composes the register value.
func (p *RPiPort) ReadInputs() (uint8, error) {
	var value uint8
	for i, pin := range p.pins {
		bit := uint8(1) << i
		if p.oe&bit != 0 {
			continue
		}
		if pin.Read() == rpio.High {
			value |= bit
		}
	}
	return value, nil
}
