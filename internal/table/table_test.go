package table

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapWord(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 8, []string{"short"}},
		{"empty", "", 5, []string{""}},
		{"spaces", "aaa bbb ccc", 5, []string{"aaa", "bbb", "ccc"}},
		{"greedy", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"separators", "foo/bar/baz", 5, []string{"foo/", "bar/", "baz"}},
		{"hard cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline", "a\nb", 10, []string{"a", "b"}},
		{"trailing space trimmed", "abc   def", 4, []string{"abc", "def"}},
		{"wide runes", strings.Repeat("変", 30), 50, []string{strings.Repeat("変", 25), strings.Repeat("変", 5)}},
		{"wide words", "日本語 テキスト", 6, []string{"日本語", "テキス", "ト"}},
		{"wide rune wider than column", "変変", 1, []string{"変", "変"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapWord(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("wrapWord(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapChar(t *testing.T) {
	got := wrapChar("hello world", 4)
	want := []string{"hell", "o wo", "rld"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapChar = %q, want %q", got, want)
	}
}

func TestWrapCharWideRunes(t *testing.T) {
	got := wrapChar("a変bc", 2)
	want := []string{"a", "変", "bc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapChar = %q, want %q", got, want)
	}
}

func TestRenderKeepsFrameWithWideRunes(t *testing.T) {
	col := NewColumn(50)
	col.Wrap = WrapWord
	got := Render([][]string{{"Message", "x"}, {strings.Repeat("変", 30), "y"}}, Config{
		Columns: map[int]Column{0: col},
		Border:  Honeywell,
	})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	want := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != want {
			t.Errorf("line %d is %d cells wide, want %d: %q", i, w, want, line)
		}
	}
	if !strings.Contains(got, "║ "+strings.Repeat("変", 25)+" │ y ║\n") {
		t.Fatalf("wide message not wrapped at the column width:\n%s", got)
	}
}

func TestRenderAllLines(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	got := Render(rows, Config{
		Columns: map[int]Column{0: NewColumn(3), 1: NewColumn(3)},
		Border:  Honeywell,
	})
	want := "╔═════╤═════╗\n" +
		"║ a   │ b   ║\n" +
		"╟─────┼─────╢\n" +
		"║ c   │ d   ║\n" +
		"╚═════╧═════╝\n"
	if got != want {
		t.Fatalf("unexpected table:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderSelectedLinesAndWrapping(t *testing.T) {
	rows := [][]string{{"h", "x"}, {"hello world", "y"}}
	col := NewColumn(5)
	col.Wrap = WrapWord
	got := Render(rows, Config{
		Columns:            map[int]Column{0: col},
		Border:             Honeywell,
		DrawHorizontalLine: func(index, _ int) bool { return index == 1 },
	})
	want := "║ h     │ x ║\n" +
		"╟───────┼───╢\n" +
		"║ hello │ y ║\n" +
		"║ world │   ║\n"
	if got != want {
		t.Fatalf("unexpected table:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderPaddingAndAlignment(t *testing.T) {
	right := Column{Width: 4, PaddingLeft: 0, PaddingRight: 2, Align: AlignRight}
	center := Column{Width: 5, PaddingLeft: 1, PaddingRight: 1, Align: AlignCenter}
	got := Render([][]string{{"7", "ab"}}, Config{
		Columns: map[int]Column{0: right, 1: center},
		Border:  Ramac,
	})
	want := "+------+-------+\n" +
		"|   7  |  ab   |\n" +
		"+------+-------+\n"
	if got != want {
		t.Fatalf("unexpected table:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderIgnoresEscapesWhenMeasuring(t *testing.T) {
	styled := "\x1b[31merror\x1b[0m"
	got := Render([][]string{{styled}}, Config{
		Columns: map[int]Column{0: NewColumn(8)},
		Border:  Void,
	})
	want := " " + styled + "    \n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderAutoWidthAndMissingCells(t *testing.T) {
	got := Render([][]string{{"abc", "d"}, {"e"}}, Config{Border: Norc})
	want := "┌─────┬───┐\n" +
		"│ abc │ d │\n" +
		"├─────┼───┤\n" +
		"│ e   │   │\n" +
		"└─────┴───┘\n"
	if got != want {
		t.Fatalf("unexpected table:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderTruncate(t *testing.T) {
	col := NewColumn(5)
	col.Truncate = 5
	got := Render([][]string{{"abcdefgh"}}, Config{Columns: map[int]Column{0: col}, Border: Void})
	if got != " abcd… \n" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, Config{}); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestBorderByName(t *testing.T) {
	for name, want := range map[string]Border{"": Honeywell, "honeywell": Honeywell, "NORC": Norc, "ramac": Ramac, "void": Void} {
		got, err := BorderByName(name)
		if err != nil {
			t.Fatalf("BorderByName(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("BorderByName(%q) returned the wrong border", name)
		}
	}
	if _, err := BorderByName("fancy"); err == nil {
		t.Fatal("expected error for unknown border")
	}
}
