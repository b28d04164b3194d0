// Package sfload configures a slave FPGA over its slave serial
// configuration interface by bit-banging CCLK/DIN from host GPIO lines.
//
// # References:
//
// Xilinx (https://docs.amd.com/)
//   - [Xilinx-UG470]: 7 Series FPGAs Configuration User Guide (https://docs.amd.com/v/u/en-US/ug470_7Series_Config)
//   - [Xilinx-DS181]: Artix-7 FPGAs Data Sheet: DC and AC Switching Characteristics (https://docs.amd.com/v/u/en-US/ds181_Artix_7_Data_Sheet)
//
// Gateware image
//   - header layout and the "SAR1" tag follow the Sinara/ARTIQ flash
//     storage convention: [magic:4][length:4][payload:length], both
//     fields big-endian.
package sfload
