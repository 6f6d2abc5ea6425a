package inquire

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used when drawing prompts.
type ColorScheme struct {
	Name     string `json:"name" toml:"name"`
	Title    Color  `json:"title" toml:"title"`       // Question text
	Input    Color  `json:"input" toml:"input"`       // Text being typed
	Answer   Color  `json:"answer" toml:"answer"`     // Resolved answer echoed after the title
	Choice   Color  `json:"choice" toml:"choice"`     // Unselected choice rows
	Selected Color  `json:"selected" toml:"selected"` // Row under the cursor
	Group    Color  `json:"group" toml:"group"`       // Group headers in multi-selection
	Match    Color  `json:"match" toml:"match"`       // Search match highlight
	Hint     Color  `json:"hint" toml:"hint"`         // Instructions, defaults and "more choices" text
	Error    Color  `json:"error" toml:"error"`       // Validation failures
	Rule     Color  `json:"rule" toml:"rule"`         // Section dividers
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r" toml:"r"`
	G    uint8 `json:"g" toml:"g"`
	B    uint8 `json:"b" toml:"b"`
	Bold bool  `json:"bold" toml:"bold"`
}

// ThemeDefault is the default color scheme with a green title and white input
var ThemeDefault = &ColorScheme{
	Name:     "default",
	Title:    Color{R: 0, G: 255, B: 0, Bold: true},
	Input:    Color{R: 255, G: 255, B: 255, Bold: true},
	Answer:   Color{R: 255, G: 255, B: 0},
	Choice:   Color{R: 200, G: 200, B: 200},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
	Group:    Color{R: 255, G: 255, B: 255, Bold: true},
	Match:    Color{R: 255, G: 255, B: 0, Bold: true},
	Hint:     Color{R: 128, G: 128, B: 128},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Rule:     Color{R: 128, G: 128, B: 128},
}

// ThemeDark is a dark theme with a light blue title and off-white text
var ThemeDark = &ColorScheme{
	Name:     "dark",
	Title:    Color{R: 102, G: 217, B: 239, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Answer:   Color{R: 255, G: 184, B: 108},
	Choice:   Color{R: 189, G: 147, B: 249},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Group:    Color{R: 248, G: 248, B: 242, Bold: true},
	Match:    Color{R: 255, G: 184, B: 108, Bold: true},
	Hint:     Color{R: 98, G: 114, B: 164},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Rule:     Color{R: 98, G: 114, B: 164},
}

// ThemeLight is a light theme with a blue title and dark gray text
var ThemeLight = &ColorScheme{
	Name:     "light",
	Title:    Color{R: 0, G: 119, B: 187, Bold: true},
	Input:    Color{R: 36, G: 41, B: 46},
	Answer:   Color{R: 215, G: 58, B: 73},
	Choice:   Color{R: 88, G: 96, B: 105},
	Selected: Color{R: 40, G: 167, B: 69, Bold: true},
	Group:    Color{R: 36, G: 41, B: 46, Bold: true},
	Match:    Color{R: 215, G: 58, B: 73, Bold: true},
	Hint:     Color{R: 149, G: 157, B: 165},
	Error:    Color{R: 203, G: 36, B: 49, Bold: true},
	Rule:     Color{R: 149, G: 157, B: 165},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:     "accessible",
	Title:    Color{R: 0, G: 114, B: 178, Bold: true},
	Input:    Color{R: 255, G: 255, B: 255},
	Answer:   Color{R: 240, G: 228, B: 66},
	Choice:   Color{R: 255, G: 255, B: 255},
	Selected: Color{R: 230, G: 159, B: 0, Bold: true},
	Group:    Color{R: 255, G: 255, B: 255, Bold: true},
	Match:    Color{R: 240, G: 228, B: 66, Bold: true},
	Hint:     Color{R: 204, G: 204, B: 204},
	Error:    Color{R: 213, G: 94, B: 0, Bold: true},
	Rule:     Color{R: 204, G: 204, B: 204},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:     "dracula",
	Title:    Color{R: 255, G: 121, B: 198, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Answer:   Color{R: 241, G: 250, B: 140},
	Choice:   Color{R: 139, G: 233, B: 253},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Group:    Color{R: 248, G: 248, B: 242, Bold: true},
	Match:    Color{R: 241, G: 250, B: 140, Bold: true},
	Hint:     Color{R: 98, G: 114, B: 164},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Rule:     Color{R: 98, G: 114, B: 164},
}

// ThemeMonokai is the Monokai color scheme
var ThemeMonokai = &ColorScheme{
	Name:     "monokai",
	Title:    Color{R: 249, G: 38, B: 114, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Answer:   Color{R: 253, G: 151, B: 31},
	Choice:   Color{R: 166, G: 226, B: 46},
	Selected: Color{R: 102, G: 217, B: 239, Bold: true},
	Group:    Color{R: 248, G: 248, B: 242, Bold: true},
	Match:    Color{R: 253, G: 151, B: 31, Bold: true},
	Hint:     Color{R: 117, G: 113, B: 94},
	Error:    Color{R: 249, G: 38, B: 114, Bold: true},
	Rule:     Color{R: 117, G: 113, B: 94},
}

var themes = []*ColorScheme{ThemeDefault, ThemeDark, ThemeLight, ThemeAccessible, ThemeDracula, ThemeMonokai}

// ThemeByName looks up a built-in color scheme, ignoring case.
func ThemeByName(name string) (*ColorScheme, bool) {
	for _, theme := range themes {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return nil, false
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
