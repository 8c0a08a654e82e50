//go:build linux || darwin || freebsd || netbsd || openbsd

package console

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is an input terminal held in cbreak mode, so that keypresses are
// read one at a time without echo.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// OpenTerminal puts the input terminal into cbreak mode. Close restores the
// original mode.
func OpenTerminal(input *os.File) (term *Terminal, err error) {
	term = &Terminal{input: input}

	err = termios.Tcgetattr(input.Fd(), &term.canAttr)
	if err != nil {
		err = &ErrTerminal{Name: input.Name(), Err: err}
		term = nil
		return
	}

	term.cbreakAttr = term.canAttr
	termios.Cfmakecbreak(&term.cbreakAttr)

	err = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &term.cbreakAttr)
	if err != nil {
		err = &ErrTerminal{Name: input.Name(), Err: err}
		term = nil
		return
	}

	return
}

// Read keypresses from the terminal.
func (term *Terminal) Read(buff []byte) (n int, err error) {
	return term.input.Read(buff)
}

// Close restores the terminal to canonical mode.
func (term *Terminal) Close() (err error) {
	err = termios.Tcsetattr(term.input.Fd(), termios.TCIFLUSH, &term.canAttr)
	if err != nil {
		err = &ErrTerminal{Name: term.input.Name(), Err: err}
	}

	return
}
