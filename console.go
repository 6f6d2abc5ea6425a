package inquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-runewidth"
	"github.com/nao1215/inquire/internal/debug"
)

// Common errors
var (
	// ErrInterrupted is returned when the user presses Ctrl+C or the context is cancelled.
	ErrInterrupted = errors.New("interrupted")
	// ErrEOF is returned when the input stream ends.
	ErrEOF = errors.New("EOF")
	// ErrNotInteractive is returned before any key is read when stdin or stdout is not a terminal.
	ErrNotInteractive = errors.New("environment does not support interaction")
	// ErrNoChoices is returned by selection prompts configured without choices.
	ErrNoChoices = errors.New("no choices to select from")
)

// Config holds the configuration for a Console.
type Config struct {
	ColorScheme *ColorScheme // Color scheme (nil for ThemeDefault)
	KeyMap      *KeyMap      // Key bindings (nil for default)
	Output      io.Writer    // Where prompts are drawn (nil for stdout)
	Interactive func() bool  // Capability probe (nil to check stdin and stdout)
}

// Option represents a configuration option for a Console
type Option func(*Config)

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithOutput sets the writer prompts are drawn to
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithInteractive replaces the terminal capability probe
func WithInteractive(probe func() bool) Option {
	return func(c *Config) {
		c.Interactive = probe
	}
}

// Console is the terminal service every prompt runs against. It owns the
// terminal device, draws frames and answers whether interaction is possible.
// Prompts run one at a time; a Console must not be shared between goroutines.
type Console struct {
	config      Config
	output      io.Writer
	terminal    terminalInterface
	renderer    *renderer
	keys        *keyReader
	interactive bool
}

// NewConsole creates a console on the process terminal.
//
// When the environment is not interactive NewConsole still succeeds, but no
// terminal is opened and every prompt fails with ErrNotInteractive.
//
// Example:
//
//	c, err := inquire.NewConsole(inquire.WithColorScheme(inquire.ThemeDracula))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
func NewConsole(options ...Option) (*Console, error) {
	config := Config{}
	for _, option := range options {
		option(&config)
	}

	probe := detectInteractive
	if config.Interactive != nil {
		probe = config.Interactive
	}
	if !probe() {
		return newConsole(config, nil, false), nil
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}
	return newConsole(config, terminal, true), nil
}

func newConsole(config Config, terminal terminalInterface, interactive bool) *Console {
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
		if runtime.GOOS == "windows" {
			// Use colorable for Windows ANSI color support
			output = colorable.NewColorableStdout()
		}
	}

	c := &Console{
		config:      config,
		output:      output,
		terminal:    terminal,
		interactive: interactive && terminal != nil,
	}
	c.renderer = newRenderer(output, config.ColorScheme, c.width)
	c.keys = &keyReader{terminal: terminal, keyMap: config.KeyMap}
	return c
}

// IsInteractive reports whether prompts can read keys.
func (c *Console) IsInteractive() bool {
	return c.interactive
}

// Println writes a line of plain text between prompts.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.output, a...)
}

// Printf writes formatted text between prompts.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.output, format, a...)
}

// Rule draws a horizontal divider with a left-aligned title.
func (c *Console) Rule(title string) {
	width := c.width()
	head := "── "
	l := line{c.renderer.rule(head)}
	used := runewidth.StringWidth(head)
	if title != "" {
		l = append(l, c.renderer.title(title))
		used += runewidth.StringWidth(title)
		l = append(l, c.renderer.rule(" "))
		used++
	}
	if rest := width - used; rest > 0 {
		l = append(l, c.renderer.rule(strings.Repeat("─", rest)))
	}
	var b strings.Builder
	c.renderer.writeLine(&b, l, width)
	b.WriteString("\n")
	_, _ = io.WriteString(c.output, b.String())
}

// Close releases the terminal. It is safe to call more than once.
func (c *Console) Close() error {
	if c.terminal == nil {
		return nil
	}
	return c.terminal.Close()
}

func (c *Console) width() int {
	if c.terminal == nil {
		return 80
	}
	w, _, err := c.terminal.Size()
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// widget is the state machine behind one prompt. handle applies a key and
// reports whether the prompt resolved; frame describes what to draw.
// Cancellation is handled by Console.run and never reaches handle.
type widget interface {
	handle(ev KeyEvent) (done bool)
	frame(r *renderer) frame
}

// run drives w until it resolves, the user cancels or reading fails. It is the
// single input loop shared by every prompt kind.
func (c *Console) run(ctx context.Context, w widget) error {
	if !c.interactive {
		return ErrNotInteractive
	}

	if err := c.terminal.SetRaw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := c.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	if err := c.renderer.render(w.frame(c.renderer)); err != nil {
		return fmt.Errorf("failed to render prompt: %w", err)
	}

	for {
		ev, err := c.keys.next(ctx)
		if err != nil {
			_ = c.renderer.finish(w.frame(c.renderer))
			return err
		}
		debug.Log("key", "kind", ev.Kind.String(), "rune", string(ev.Rune))

		if ev.Kind == KeyCancel {
			_ = c.renderer.finish(w.frame(c.renderer))
			if ctx.Err() != nil {
				return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
			}
			return ErrInterrupted
		}

		if w.handle(ev) {
			if err := c.renderer.finish(w.frame(c.renderer)); err != nil {
				return fmt.Errorf("failed to render prompt: %w", err)
			}
			return nil
		}
		if err := c.renderer.render(w.frame(c.renderer)); err != nil {
			return fmt.Errorf("failed to render prompt: %w", err)
		}
	}
}
