// Package debug provides opt-in diagnostics for the prompt engine.
//
// Nothing is written unless INQUIRE_DEBUG_LOG names a file. The terminal the
// prompts draw on is never used, so enabling the log does not disturb rendering.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	envEnableLog   = "INQUIRE_DEBUG_LOG"
	envAssertPanic = "INQUIRE_DEBUG_ASSERT"
)

var (
	logger       = zerolog.Nop()
	logfile      *os.File
	enableAssert bool
)

func init() {
	configure()
}

func configure() {
	enableAssert, _ = strconv.ParseBool(os.Getenv(envAssertPanic))

	path := os.Getenv(envEnableLog)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open debug log: %v\n", err)
		return
	}
	logfile = f
	logger = zerolog.New(f).With().Timestamp().Logger()
}

// Log records a debug message with optional key/value pairs.
func Log(msg string, keyvals ...any) {
	ev := logger.Debug()
	if len(keyvals) > 0 {
		ev = ev.Fields(keyvals)
	}
	ev.Msg(msg)
}

// Assert reports a broken invariant. It panics when INQUIRE_DEBUG_ASSERT is
// true and only logs otherwise.
func Assert(cond bool, msg any) {
	if cond {
		return
	}
	text := toString(msg)
	if enableAssert {
		panic(text)
	}
	logger.Error().Str("assert", text).Msg("assertion failed")
}

// Close flushes and closes the log file, if any.
func Close() error {
	if logfile == nil {
		return nil
	}
	err := logfile.Close()
	logfile = nil
	logger = zerolog.Nop()
	return err
}

func toString(v any) string {
	switch s := v.(type) {
	case func() string:
		return s()
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("unexpected type for assertion message: %#v", v)
	}
}
