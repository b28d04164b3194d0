package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var mainCmd = &cobra.Command{
	Use:   "sfload",
	Short: "Slave serial FPGA gateware loader",
	Long: `sfload configures a slave FPGA over its slave serial interface by
bit-banging CCLK/DIN from host GPIO lines.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version)
	},
}

var atom = zap.NewAtomicLevel()

func selectZapLevel(loglevel string) zapcore.Level {
	switch loglevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func initLogger(loglevel string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atom,
	))
	atom.SetLevel(selectZapLevel(loglevel))
	return logger
}

func init() {
	mainCmd.AddCommand(versionCmd, loadCmd, infoCmd)

	viper.SetDefault("transport", "rpio")
	viper.SetDefault("debug", "info")

	// BCM numbering on the rpio transport; periph resolves the same
	// numbers through the pin registry.
	viper.SetDefault("pins.cclk", 17)
	viper.SetDefault("pins.din", 27)
	viper.SetDefault("pins.done", 22)
	viper.SetDefault("pins.init_b", 23)
	viper.SetDefault("pins.program_b", 24)

	viper.SetConfigName("sfload") // sfload.yaml / sfload.toml / ...
	viper.AddConfigPath("/etc/sfload")
	viper.AddConfigPath(".")

	// Missing config file is fine; built-in defaults apply.
	_ = viper.ReadInConfig()
}

func main() {
	if err := mainCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
