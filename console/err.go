package console

import (
	"errors"

	"github.com/ezrec/tcpu/translate"
)

var f = translate.From

var (
	ErrUnsupported = errors.New(f("terminal control unsupported"))
)

// ErrTerminal is a failure to control a terminal.
type ErrTerminal struct {
	Name string
	Err  error
}

func (err *ErrTerminal) Error() string {
	return f("terminal %v: %v", err.Name, err.Err)
}

func (err *ErrTerminal) Unwrap() error {
	return err.Err
}
