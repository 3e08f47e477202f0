package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"lintab/internal/diagfmt"
	"lintab/internal/results"
	"lintab/internal/style"
)

const oneErrorJSON = `[
  {"filePath": "a.js", "errorCount": 1, "warningCount": 1, "messages": [
    {"ruleId": "no-undef", "severity": 2, "message": "unexpected", "line": 3, "column": 5},
    {"ruleId": "semi", "severity": 1, "message": "missing semicolon", "line": 4, "column": 1}
  ]},
  {"filePath": "b.js", "errorCount": 0, "warningCount": 1, "messages": [
    {"ruleId": "semi", "severity": 1, "message": "missing semicolon", "line": 1, "column": 9}
  ]}
]`

const warningsOnlyJSON = `[{"filePath": "w.js", "errorCount": 0, "warningCount": 2, "messages": [
  {"severity": 1, "message": "one"}, {"severity": 1, "message": "two"}
]}]`

func execute(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestReportFromStdin(t *testing.T) {
	code, out, stderr := execute(t, oneErrorJSON, "report", "--color", "off")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (stderr: %s)", code, stderr)
	}
	report, err := results.Decode(strings.NewReader(oneErrorJSON), results.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := diagfmt.Render(report, style.Plain{})
	if out != want {
		t.Fatalf("unexpected report:\nwant:\n%s\ngot:\n%s", want, out)
	}
	if strings.Contains(out, "b.js") || strings.Contains(out, "missing semicolon") {
		t.Fatalf("warnings leaked into the report:\n%s", out)
	}
}

func TestReportWarningsOnlyPrintsNothing(t *testing.T) {
	code, out, stderr := execute(t, warningsOnlyJSON, "report")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestReportExitCodeDisabled(t *testing.T) {
	code, out, _ := execute(t, oneErrorJSON, "report", "--exit-code=false")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "1 Error") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestReportColorOn(t *testing.T) {
	_, out, _ := execute(t, oneErrorJSON, "report", "--color", "on")
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected escape sequences with --color on:\n%q", out)
	}
}

func TestReportInvalidInput(t *testing.T) {
	code, _, stderr := execute(t, `[{"messages": []}]`, "report")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "invalid input") {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
}

func TestReportBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"report", "--color", "purple"},
		{"report", "--border", "fancy"},
		{"report", "--format", "xml"},
		{"report", "--trace-level", "loud"},
	} {
		code, _, stderr := execute(t, oneErrorJSON, args...)
		if code != 2 || stderr == "" {
			t.Errorf("%v: exit code = %d, stderr = %q", args, code, stderr)
		}
	}
}

func TestReportWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lintab.toml")
	cfg := "[output]\nborder = \"ramac\"\ncolor = \"off\"\n\n[layout]\nsummary_width = 20\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	_, out, stderr := execute(t, oneErrorJSON, "report", "--config", cfgPath)
	rule := "+" + strings.Repeat("-", 22) + "+\n"
	wantSummary := rule + fmt.Sprintf("| %-20s |\n", "1 Error") + rule
	if !strings.HasSuffix(out, wantSummary) {
		t.Fatalf("config not applied (stderr: %s):\n%s", stderr, out)
	}
}

func TestReportWritesOutputFileAndTimings(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.txt")
	code, out, stderr := execute(t, oneErrorJSON, "report", "-o", outPath, "--timings", "--trace", "-", "--trace-level", "detail")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if out != "" {
		t.Fatalf("stdout should be empty when writing to a file, got %q", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "\na.js\n\n") || strings.Contains(string(data), "\x1b[") {
		t.Fatalf("unexpected file content:\n%s", data)
	}
	for _, want := range []string{"timings:", "→ report", "← render"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %q on stderr:\n%s", want, stderr)
		}
	}
}

func TestConvertToMsgpackAndBack(t *testing.T) {
	dir := t.TempDir()
	mpPath := filepath.Join(dir, "results.msgpack")
	if code, _, stderr := execute(t, oneErrorJSON, "convert", "--to", "msgpack", "-o", mpPath); code != 0 {
		t.Fatalf("convert failed: %s", stderr)
	}
	code, out, stderr := execute(t, "", "report", mpPath)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (stderr: %s)", code, stderr)
	}
	if !strings.Contains(out, "unexpected") || !strings.Contains(out, "no-undef") {
		t.Fatalf("msgpack results not rendered:\n%s", out)
	}
}

func TestVersionJSON(t *testing.T) {
	code, out, _ := execute(t, "", "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if payload.Tool != "lintab" || payload.Version == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestReportWritesCPUProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.out")
	if code, _, stderr := execute(t, warningsOnlyJSON, "report", "--cpu-profile", path); code != 0 {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("cpu profile not written: %v", err)
	}
}

func TestVersionHonoursConfigColor(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	dir := t.TempDir()
	for _, tt := range []struct {
		mode    string
		escaped bool
	}{
		{"on", true},
		{"off", false},
	} {
		path := filepath.Join(dir, tt.mode+".toml")
		if err := os.WriteFile(path, []byte("[output]\ncolor = \""+tt.mode+"\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		code, out, stderr := execute(t, "", "version", "--config", path)
		if code != 0 {
			t.Fatalf("color %s: exit code = %d (stderr: %s)", tt.mode, code, stderr)
		}
		if got := strings.Contains(out, "\x1b["); got != tt.escaped {
			t.Errorf("color %s: escapes = %v, want %v:\n%q", tt.mode, got, tt.escaped, out)
		}
	}
}
