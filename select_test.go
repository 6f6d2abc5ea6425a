package inquire

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyUp       = "\x1b[A"
	keyDown     = "\x1b[B"
	keyPageDown = "\x1b[6~"
	keyEnd      = "\x1b[F"
	keyHome     = "\x1b[H"
)

func TestSelectPrompt(t *testing.T) {
	t.Parallel()

	fruits := Choices("Apple", "Banana", "Blueberry", "Cherry")

	tests := []struct {
		name   string
		prompt SelectPrompt
		input  string
		want   string
	}{
		{name: "first by default", prompt: SelectPrompt{Title: "Fruit?", Choices: fruits}, input: "\r", want: "Apple"},
		{name: "down twice", prompt: SelectPrompt{Title: "Fruit?", Choices: fruits}, input: keyDown + keyDown + "\r", want: "Blueberry"},
		{name: "up clamps at the top", prompt: SelectPrompt{Title: "Fruit?", Choices: fruits}, input: keyUp + keyUp + "\r", want: "Apple"},
		{name: "down clamps at the bottom", prompt: SelectPrompt{Title: "Fruit?", Choices: fruits}, input: strings.Repeat(keyDown, 9) + "\r", want: "Cherry"},
		{name: "end then home", prompt: SelectPrompt{Title: "Fruit?", Choices: fruits}, input: keyEnd + keyHome + keyDown + "\r", want: "Banana"},
		{name: "typing without search does nothing", prompt: SelectPrompt{Title: "Fruit?", Choices: fruits}, input: "che \r", want: "Apple"},
		{
			name:   "page down",
			prompt: SelectPrompt{Title: "Item?", Choices: numberedChoices(20), PageSize: 5},
			input:  keyPageDown + keyPageDown + "\r",
			want:   "Item 10",
		},
		{
			name:   "search",
			prompt: SelectPrompt{Title: "Fruit?", Choices: fruits, EnableSearch: true},
			input:  "BER\r",
			want:   "Blueberry",
		},
		{
			name:   "search then move",
			prompt: SelectPrompt{Title: "Fruit?", Choices: fruits, EnableSearch: true},
			input:  "an" + keyDown + "\r",
			want:   "Banana",
		},
		{
			name:   "search with no match ignores enter",
			prompt: SelectPrompt{Title: "Fruit?", Choices: fruits, EnableSearch: true},
			input:  "zz\r\x7f\x7fch\r",
			want:   "Cherry",
		},
		{
			name:   "space is part of the search",
			prompt: SelectPrompt{Title: "Fruit?", Choices: Choices("Red apple", "Green apple"), EnableSearch: true},
			input:  "n a\r",
			want:   "Green apple",
		},
		{
			name: "groups do not take the cursor",
			prompt: SelectPrompt{Title: "Fruit?", Choices: append(Choices("Apple"),
				ChoiceGroup("Berries", "Blackcurrant", "Blueberry")...)},
			input: keyDown + "\r",
			want:  "Blackcurrant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _, _ := newTestConsole(t, tt.input)
			got, err := tt.prompt.Run(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectPromptNoChoices(t *testing.T) {
	t.Parallel()

	c, mock, _ := newTestConsole(t, "\r")
	_, err := SelectPrompt{Title: "Fruit?"}.Run(context.Background(), c)
	require.ErrorIs(t, err, ErrNoChoices)
	assert.Zero(t, mock.reads)
}

func TestSelectPromptInterrupted(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t, keyDown+"\x03")
	_, err := SelectPrompt{Title: "Fruit?", Choices: Choices("Apple", "Banana")}.Run(context.Background(), c)
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestSelectPromptRendering(t *testing.T) {
	t.Parallel()

	t.Run("more choices hint", func(t *testing.T) {
		t.Parallel()

		c, _, out := newTestConsole(t, "\r")
		_, err := SelectPrompt{Title: "Item?", Choices: numberedChoices(15)}.Run(context.Background(), c)
		require.NoError(t, err)
		shown := stripANSI(out.String())
		assert.Contains(t, shown, defaultMoreChoicesText)
		assert.Contains(t, shown, "Item 09")
		assert.NotContains(t, shown, "Item 10", "only one page is drawn")
	})

	t.Run("custom more choices text", func(t *testing.T) {
		t.Parallel()

		c, _, out := newTestConsole(t, "\r")
		_, err := SelectPrompt{Title: "Item?", Choices: numberedChoices(5), PageSize: 3, MoreChoicesText: "(more)"}.Run(context.Background(), c)
		require.NoError(t, err)
		assert.Contains(t, stripANSI(out.String()), "(more)")
	})

	t.Run("group headers and cursor", func(t *testing.T) {
		t.Parallel()

		c, _, out := newTestConsole(t, keyDown+"\r")
		choices := append(Choices("Apple"), ChoiceGroup("Berries", "Blueberry")...)
		got, err := SelectPrompt{Title: "Fruit?", Choices: choices}.Run(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, "Blueberry", got)

		shown := stripANSI(out.String())
		assert.Contains(t, shown, "> Apple")
		assert.Contains(t, shown, "Berries\r\n> "+"  Blueberry")
		assert.Contains(t, shown, "Fruit? Blueberry")
	})

	t.Run("search line and empty result", func(t *testing.T) {
		t.Parallel()

		c, _, out := newTestConsole(t, "zz\x7f\x7f\r")
		_, err := SelectPrompt{Title: "Fruit?", Choices: Choices("Apple"), EnableSearch: true}.Run(context.Background(), c)
		require.NoError(t, err)
		shown := stripANSI(out.String())
		assert.Contains(t, shown, "Search: zz")
		assert.Contains(t, shown, `No choices match "zz"`)
	})

	t.Run("match highlight", func(t *testing.T) {
		t.Parallel()

		c, _, out := newTestConsole(t, "an\r")
		_, err := SelectPrompt{Title: "Fruit?", Choices: Choices("Banana"), EnableSearch: true}.Run(context.Background(), c)
		require.NoError(t, err)
		assert.Contains(t, out.String(), ThemeDefault.Match.ToANSI()+"an"+Reset())
	})
}
