package sfload

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func testPins() (*PinPort, [5]*gpiotest.Pin) {
	pins := [5]*gpiotest.Pin{
		{N: "CCLK"},
		{N: "DIN"},
		{N: "DONE"},
		{N: "INIT_B"},
		{N: "PROGRAM_B"},
	}
	port := NewPinPort(pins[0], pins[1], pins[2], pins[3], pins[4])
	return port, pins
}

func TestPinPortWriteOutputs(t *testing.T) {
	port, pins := testPins()

	if err := port.SetOutputEnable(CCLK | DIN | ProgramB); err != nil {
		t.Fatalf("SetOutputEnable() = %v", err)
	}
	if err := port.WriteOutputs(ProgramB | DIN); err != nil {
		t.Fatalf("WriteOutputs() = %v", err)
	}

	if pins[1].L != gpio.High {
		t.Error("DIN pin not driven high")
	}
	if pins[4].L != gpio.High {
		t.Error("PROGRAM_B pin not driven high")
	}
	if pins[0].L != gpio.Low {
		t.Error("CCLK pin not driven low")
	}
}

func TestPinPortReadInputs(t *testing.T) {
	port, pins := testPins()

	if err := port.SetOutputEnable(CCLK | DIN | ProgramB); err != nil {
		t.Fatalf("SetOutputEnable() = %v", err)
	}

	pins[2].L = gpio.High // DONE
	pins[3].L = gpio.High // INIT_B
	v, err := port.ReadInputs()
	if err != nil {
		t.Fatalf("ReadInputs() = %v", err)
	}
	if v != DONE|InitB {
		t.Errorf("ReadInputs() = %#02x, want %#02x", v, DONE|InitB)
	}

	pins[3].L = gpio.Low
	v, err = port.ReadInputs()
	if err != nil {
		t.Fatalf("ReadInputs() = %v", err)
	}
	if v != DONE {
		t.Errorf("ReadInputs() = %#02x, want %#02x", v, uint8(DONE))
	}
}

func TestPinPortIgnoresInputBitsOnWrite(t *testing.T) {
	port, pins := testPins()

	if err := port.SetOutputEnable(CCLK | DIN | ProgramB); err != nil {
		t.Fatalf("SetOutputEnable() = %v", err)
	}
	if err := port.WriteOutputs(DONE | InitB); err != nil {
		t.Fatalf("WriteOutputs() = %v", err)
	}
	if pins[2].L != gpio.Low || pins[3].L != gpio.Low {
		t.Error("input lines driven by WriteOutputs")
	}
}
