package inquire

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "black", color: Color{}, want: "\x1b[38;2;0;0;0m"},
		{name: "rgb", color: Color{R: 255, G: 128, B: 64}, want: "\x1b[38;2;255;128;64m"},
		{name: "bold", color: Color{R: 1, G: 2, B: 3, Bold: true}, want: "\x1b[1;38;2;1;2;3m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.ToANSI())
		})
	}

	assert.Equal(t, "\x1b[0m", Reset())
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, theme := range themes {
		got, ok := ThemeByName(theme.Name)
		require.True(t, ok, theme.Name)
		assert.Same(t, theme, got)
	}

	got, ok := ThemeByName("DRACULA")
	require.True(t, ok)
	assert.Same(t, ThemeDracula, got)

	_, ok = ThemeByName("solarized")
	assert.False(t, ok)
}

func TestColorSchemeTOML(t *testing.T) {
	t.Parallel()

	const doc = `
name = "custom"

[title]
r = 10
g = 20
b = 30
bold = true

[error]
r = 255
`
	var scheme ColorScheme
	_, err := toml.Decode(doc, &scheme)
	require.NoError(t, err)

	assert.Equal(t, "custom", scheme.Name)
	assert.Equal(t, Color{R: 10, G: 20, B: 30, Bold: true}, scheme.Title)
	assert.Equal(t, Color{R: 255}, scheme.Error)
	assert.Equal(t, Color{}, scheme.Hint)
}
