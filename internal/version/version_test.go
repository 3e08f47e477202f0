package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestStyledWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	for _, v := range []string{"0.1.0-dev", "dev"} {
		if got := Styled(v); got != v {
			t.Errorf("Styled(%q) = %q", v, got)
		}
	}
}
