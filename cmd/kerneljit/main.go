// Package main provides the kerneljit CLI.
//
// kerneljit turns generated kernel source into a loaded, callable native
// function:
//   - Emits code into canonical regions through a scoped cursor
//   - Materializes and formats the source in a cache directory
//   - Compiles it into a shared library with the host toolchain
//   - Loads the library and binds the kernel entry point
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := NewKernelJITCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewKernelJITCommand builds the root command with all subcommands.
func NewKernelJITCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "kerneljit",
		Short:        "Compile generated kernels into callable native functions",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		NewDemoCommand(),
		NewCacheCommand(),
		NewToolchainCommand(),
	)

	return cmd
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	config.EncodeDuration = func(d time.Duration, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(d.String())
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	))
}
