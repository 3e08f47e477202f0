package results

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"lintab/internal/diag"
	"lintab/internal/trace"
)

// StdinPath names standard input in a path list.
const StdinPath = "-"

// Loader reads results files.
type Loader struct {
	Format Format
	Stdin  io.Reader
	// Jobs bounds concurrent decoding; 0 means no limit.
	Jobs int
}

// Load decodes every path concurrently and concatenates the reports in
// argument order. An empty path list reads standard input.
func (l *Loader) Load(ctx context.Context, paths []string) (diag.Report, error) {
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}
	if err := checkStdinOnce(paths); err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	stage := trace.Begin(tracer, trace.ScopeStage, "load", trace.CurrentSpan(ctx))
	parts := make([]diag.Report, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if l.Jobs > 0 {
		g.SetLimit(l.Jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := l.loadOne(tracer, stage.ID(), path)
			if err != nil {
				return err
			}
			parts[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		stage.End("failed")
		return nil, err
	}

	var out diag.Report
	for _, part := range parts {
		out = append(out, part...)
	}
	stage.WithExtra("inputs", strconv.Itoa(len(paths))).
		WithExtra("files", strconv.Itoa(len(out))).
		End("")
	return out, nil
}

func (l *Loader) loadOne(tracer trace.Tracer, parent uint64, path string) (diag.Report, error) {
	span := trace.Begin(tracer, trace.ScopeFile, displayPath(path), parent)

	data, err := l.read(path)
	if err != nil {
		span.End("read failed")
		return nil, err
	}
	span.WithExtra("size", humanize.Bytes(uint64(len(data))))

	format := l.Format.Resolve(path)
	report, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		span.End("decode failed")
		return nil, fmt.Errorf("%s: %w", displayPath(path), err)
	}
	span.WithExtra("format", format.String()).
		WithExtra("files", strconv.Itoa(len(report))).
		End("")
	return report, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if path == StdinPath {
		if l.Stdin == nil {
			return nil, errors.New("no standard input available")
		}
		data, err := io.ReadAll(l.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return data, nil
}

func checkStdinOnce(paths []string) error {
	seen := false
	for _, p := range paths {
		if p != StdinPath {
			continue
		}
		if seen {
			return errors.New("standard input (-) may only be given once")
		}
		seen = true
	}
	return nil
}

func displayPath(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
