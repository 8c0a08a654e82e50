//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package console

import (
	"os"
)

// Terminal is unsupported on this platform.
type Terminal struct{}

// OpenTerminal always fails on this platform.
func OpenTerminal(input *os.File) (term *Terminal, err error) {
	err = &ErrTerminal{Name: input.Name(), Err: ErrUnsupported}
	return
}

func (term *Terminal) Read(buff []byte) (n int, err error) {
	err = ErrUnsupported
	return
}

func (term *Terminal) Close() (err error) {
	return
}
