package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

const (
	TTY_LF  = 0x0a // Line feed.
	TTY_CR  = 0x0d // Carriage return.
	TTY_ESC = 0x1b // Escape, for terminal control sequences.
)

var _tty_defines = map[string]string{
	"TTY_LF":  fmt.Sprintf("%#x", TTY_LF),
	"TTY_CR":  fmt.Sprintf("%#x", TTY_CR),
	"TTY_ESC": fmt.Sprintf("%#x", TTY_ESC),
}

// Tty is the character console. Each character sent is written, unbuffered,
// to Output. Without an Output, characters are discarded.
type Tty struct {
	Output io.Writer

	sent int
}

var _ Console = (*Tty)(nil)

// Defines returns the console control characters.
func (tc *Tty) Defines() iter.Seq2[string, string] {
	return maps.All(_tty_defines)
}

// Send writes one character to the output stream.
func (tc *Tty) Send(value byte) (err error) {
	tc.sent++

	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}

// Sent returns the count of characters sent since the last Rewind.
func (tc *Tty) Sent() int {
	return tc.sent
}

// Rewind clears the sent character count.
func (tc *Tty) Rewind() {
	tc.sent = 0
}
