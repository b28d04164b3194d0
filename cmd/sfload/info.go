package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gentam/sfload"
)

var infoCmd = &cobra.Command{
	Use:   "info <image>",
	Short: "Print the gateware image header without touching hardware",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		h, err := sfload.ParseHeader(image)
		if err != nil {
			return err
		}
		fmt.Printf("Magic:   %#08x (%q)\n", h.Magic, image[0:4])
		fmt.Printf("Length:  %#x (%d bytes)\n", h.Length, h.Length)
		fmt.Printf("Trailer: %d bytes past the payload\n",
			len(image)-sfload.HeaderSize-int(h.Length))
		return nil
	},
}
