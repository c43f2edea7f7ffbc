// Command fxexport converts a captured profiling trace into the processed
// JSON profile format consumed by the flame-graph/marker-timeline UI.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fxprof/fxexport/internal/assembler"
	"github.com/fxprof/fxexport/internal/maxprocs"
	"github.com/fxprof/fxexport/internal/trace"
	"github.com/fxprof/fxexport/internal/xlog"
)

var outputPath string

var rootCmd = &cobra.Command{
	Use:           "fxexport <trace-file>",
	Short:         "Export a captured profiling trace to Firefox Profiler JSON",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0], outputPath)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
}

func run(ctx context.Context, traceFile, output string) error {
	logger, err := xlog.New(zapcore.InfoLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	maxprocs.Adjust(logger)

	if trace.Open == nil {
		return fmt.Errorf("no trace decoder registered")
	}

	reader, err := trace.Open(traceFile)
	if err != nil {
		return fmt.Errorf("open trace %s: %w", traceFile, err)
	}

	logger.Info("waiting for trace reader to become ready", zap.String("file", traceFile))
	if err := assembler.WaitReady(ctx, reader); err != nil {
		return fmt.Errorf("wait for trace reader: %w", err)
	}

	profile := assembler.Assemble(reader)

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("open output %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush() //nolint:errcheck

	enc := json.NewEncoder(w)
	if err := enc.Encode(profile); err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
