package table

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// MaxWordWrapWidth is the widest column WrapWord supports; regexp repeat
// counts are capped at 1000. Wider columns wrap by character.
const MaxWordWrapWidth = 1000

var wordPatterns sync.Map // int -> *regexp.Regexp

// wordPattern matches the longest prefix of at most width characters that ends
// at whitespace or end of text, or failing that the longest prefix of at most
// width-1 characters ending in a path or punctuation separator.
func wordPattern(width int) *regexp.Regexp {
	if re, ok := wordPatterns.Load(width); ok {
		return re.(*regexp.Regexp)
	}
	expr := `^(?:.{1,` + strconv.Itoa(width) + `}(?:\s+|$))`
	if width > 1 {
		expr += `|^(?:.{1,` + strconv.Itoa(width-1) + `}(?:\\|/|_|\.|,|;|-))`
	}
	re := regexp.MustCompile(expr)
	actual, _ := wordPatterns.LoadOrStore(width, re)
	return actual.(*regexp.Regexp)
}

// wrapWord splits text into chunks no wider than width cells, breaking at word
// boundaries where possible. A word match wider than width (wide runes count as
// two cells) is hard cut instead. Newlines always break.
func wrapWord(text string, width int) []string {
	if width <= 0 || width > MaxWordWrapWidth {
		return wrapChar(text, width)
	}
	re := wordPattern(width)
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		subject := line
		for {
			var chunk string
			loc := re.FindStringIndex(subject)
			if loc != nil {
				chunk = strings.TrimSpace(subject[:loc[1]])
			}
			if loc != nil && runewidth.StringWidth(chunk) <= width {
				subject = subject[loc[1]:]
			} else {
				chunk, subject = splitWidth(subject, width)
			}
			chunks = append(chunks, chunk)
			if subject == "" {
				break
			}
		}
	}
	return chunks
}

// wrapChar splits text every width cells. Newlines always break.
func wrapChar(text string, width int) []string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		if width <= 0 {
			chunks = append(chunks, line)
			continue
		}
		for {
			var chunk string
			chunk, line = splitWidth(line, width)
			chunks = append(chunks, chunk)
			if line == "" {
				break
			}
		}
	}
	return chunks
}

// splitWidth cuts s after the longest prefix that fits in n cells. The head
// holds at least one rune so a rune wider than n still makes progress.
func splitWidth(s string, n int) (head, tail string) {
	if runewidth.StringWidth(s) <= n {
		return s, ""
	}
	w := 0
	for pos, r := range s {
		rw := runewidth.RuneWidth(r)
		if pos > 0 && w+rw > n {
			return s[:pos], s[pos:]
		}
		w += rw
	}
	return s, ""
}
