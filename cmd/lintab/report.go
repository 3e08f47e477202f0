package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"lintab/internal/diag"
	"lintab/internal/diagfmt"
	"lintab/internal/observ"
	"lintab/internal/results"
	"lintab/internal/style"
	"lintab/internal/trace"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [flags] [results...]",
		Short: "Print lint results as tables",
		Long: `Print one table of errors per file followed by an error summary.
Results are read from the given files, or from standard input when none (or -) is given.
Nothing is printed when the results contain no errors.`,
		RunE: runReport,
	}
	cmd.Flags().String("format", "auto", "results format (auto|json|msgpack)")
	cmd.Flags().String("border", "honeywell", "table border (honeywell|norc|ramac|void)")
	cmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().Bool("exit-code", true, "exit with status 1 when the report contains errors")
	cmd.Flags().Int("jobs", 0, "max parallel decoders (0=unlimited)")
	return cmd
}

// runReport loads the results, renders them and writes the report. It
// returns errHasErrors after writing when errors were found and --exit-code
// is set.
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	exitCode, err := cmd.Flags().GetBool("exit-code")
	if err != nil {
		return fmt.Errorf("failed to get exit-code flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
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
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeCommand, "report", 0)
	ctx = trace.WithSpan(ctx, span)
	if cfg.source != "" {
		trace.Point(tracer, trace.ScopeStage, "config", cfg.source, span.ID())
	}

	timer := observ.NewTimer()
	idx := timer.Begin("load")
	loader := &results.Loader{Format: cfg.format, Stdin: cmd.InOrStdin(), Jobs: jobs}
	report, err := loader.Load(ctx, args)
	if err != nil {
		timer.End(idx, "failed")
		span.End("load failed")
		return err
	}
	timer.End(idx, strconv.Itoa(len(report))+" files")

	out, closeOut, err := openReportOutput(cmd, outputPath)
	if err != nil {
		span.End("output failed")
		return err
	}
	defer closeOut()

	idx = timer.Begin("render")
	text, ok := renderReport(ctx, report, cfg, shouldColor(cfg.color, out))
	timer.End(idx, "")

	if ok {
		idx = timer.Begin("write")
		_, err = io.WriteString(out, text)
		timer.End(idx, "")
		if err != nil {
			span.End("write failed")
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	errorCount, warningCount := report.Totals()
	span.WithExtra("errors", strconv.Itoa(errorCount)).
		WithExtra("warnings", strconv.Itoa(warningCount)).
		End("")
	if ok && exitCode {
		return errHasErrors
	}
	return nil
}

func renderReport(ctx context.Context, report diag.Report, cfg settings, colored bool) (string, bool) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "render", trace.CurrentSpan(ctx))
	border := cfg.border
	renderer := diagfmt.NewRenderer(diagfmt.TableOpts{
		Styler: style.For(colored),
		Border: &border,
		Widths: cfg.widths,
	})
	text, ok := renderer.Render(report)
	span.WithExtra("color", strconv.FormatBool(colored)).
		WithExtra("bytes", strconv.Itoa(len(text))).
		End("")
	return text, ok
}

func openReportOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "lintab: closing %s: %v\n", path, err)
		}
	}, nil
}
