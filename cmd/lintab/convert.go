package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lintab/internal/results"
	"lintab/internal/trace"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] [results...]",
		Short: "Re-encode lint results as JSON or msgpack",
		RunE:  runConvert,
	}
	cmd.Flags().String("format", "auto", "input format (auto|json|msgpack)")
	cmd.Flags().String("to", "json", "output format (json|msgpack)")
	cmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	toStr, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	to, err := results.ParseFormat(toStr)
	if err != nil {
		return err
	}
	if to == results.FormatAuto {
		return fmt.Errorf("--to must name a concrete format (json|msgpack)")
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeCommand, "convert", 0)
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	loader := &results.Loader{Format: cfg.format, Stdin: cmd.InOrStdin()}
	report, err := loader.Load(ctx, args)
	if err != nil {
		return err
	}

	out, closeOut, err := openReportOutput(cmd, outputPath)
	if err != nil {
		return err
	}
	defer closeOut()
	return results.Encode(out, report, to)
}
