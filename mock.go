package inquire

import "io"

// mockTerminal implements terminalInterface for tests.
//
// It replays a fixed input sequence and reports io.EOF once the sequence is
// consumed. onRead, when set, runs before each read with the number of reads
// already served, which lets tests raise a cancellation while a prompt is
// waiting for input.
type mockTerminal struct {
	input        []rune
	inputPos     int
	reads        int
	rawMode      bool
	closed       bool
	terminalSize [2]int
	onRead       func(reads int)
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.onRead != nil {
		m.onRead(m.reads)
	}
	m.reads++
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
