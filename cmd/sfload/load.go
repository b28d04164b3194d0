package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/gentam/sfload"
)

var loadCmd = &cobra.Command{
	Use:   "load <image>",
	Short: "Configure the slave FPGA with a gateware image",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	logger := initLogger(viper.GetString("debug"))
	defer logger.Sync()

	image, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	switch transport := viper.GetString("transport"); transport {
	case "rpio":
		if err := rpio.Open(); err != nil {
			return fmt.Errorf("cannot open GPIO memory map: %w", err)
		}
		defer rpio.Close()

		port := sfload.NewRPiPort(
			uint8(viper.GetInt("pins.cclk")),
			uint8(viper.GetInt("pins.din")),
			uint8(viper.GetInt("pins.done")),
			uint8(viper.GetInt("pins.init_b")),
			uint8(viper.GetInt("pins.program_b")),
		)
		return sfload.New(port, sfload.WithLogger(logger)).Load(image)

	case "periph":
		if _, err := host.Init(); err != nil {
			return fmt.Errorf("host initialization failed: %w", err)
		}

		var pins [5]gpio.PinIO
		for i, key := range []string{
			"pins.cclk", "pins.din", "pins.done", "pins.init_b", "pins.program_b",
		} {
			if pins[i], err = lookupPin(key); err != nil {
				return err
			}
		}
		port := sfload.NewPinPort(pins[0], pins[1], pins[2], pins[3], pins[4])
		return sfload.New(port, sfload.WithLogger(logger)).Load(image)

	default:
		return fmt.Errorf("unknown transport %q (want rpio or periph)", transport)
	}
}

func lookupPin(key string) (gpio.PinIO, error) {
	name := strconv.Itoa(viper.GetInt(key))
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no GPIO pin %q for %s", name, key)
	}
	return p, nil
}
