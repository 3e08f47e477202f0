package version

import "github.com/fatih/color"

// Build metadata, overridable at link time via -ldflags "-X lintab/internal/version.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	restColor  = color.New(color.FgGreen)
)

// Styled returns v with its major component highlighted. Color output
// follows fatih/color's global NoColor switch.
func Styled(v string) string {
	for i := 0; i < len(v); i++ {
		if v[i] == '.' {
			return majorColor.Sprint(v[:i]) + restColor.Sprint(v[i:])
		}
	}
	return majorColor.Sprint(v)
}
