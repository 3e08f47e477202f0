// Package trace records what lintab does while loading and rendering results.
//
// Tracing is off by default. Enable it from the command line:
//
//	lintab report --trace=- --trace-level=detail results.json
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: nothing is streamed; reserved for failures
//   - LevelPhase: the command and its stages (load, render, write)
//   - LevelDetail: per-file events
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "render", 0)
//	defer span.End("")
package trace
