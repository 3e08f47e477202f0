package observ

import (
	"testing"
	"time"
)

func TestTimerSummary(t *testing.T) {
	clock := time.Unix(0, 0)
	tm := NewTimer()
	tm.now = func() time.Time { return clock }

	load := tm.Begin("load")
	clock = clock.Add(1500 * time.Microsecond)
	tm.End(load, "2 files")

	render := tm.Begin("render")
	clock = clock.Add(500 * time.Microsecond)
	tm.End(render, "")
	tm.End(42, "ignored")

	want := "timings:\n" +
		"  load          1.50 ms  // 2 files\n" +
		"  render        0.50 ms\n" +
		"  total         2.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Fatalf("unexpected summary:\nwant:\n%s\ngot:\n%s", want, got)
	}
}
