package io

import (
	"errors"

	"github.com/ezrec/tcpu/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize = errors.New(f("image larger than memory"))
	ErrDumpEmpty = errors.New(f("dump has no memory rows"))
)

// ErrDumpSyntax is a malformed memory dump row.
type ErrDumpSyntax struct {
	LineNo int
	Line   string
}

func (err ErrDumpSyntax) Error() string {
	return f("dump line %d '%v' malformed", err.LineNo, err.Line)
}
