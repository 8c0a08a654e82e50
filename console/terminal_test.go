package console

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenTerminalNotTty(t *testing.T) {
	assert := assert.New(t)

	inf, err := os.CreateTemp(t.TempDir(), "input")
	if err != nil {
		t.Fatal(err)
	}
	defer inf.Close()

	term, err := OpenTerminal(inf)
	assert.Nil(term)
	assert.Error(err)

	var te *ErrTerminal
	assert.True(errors.As(err, &te))
	assert.Equal(inf.Name(), te.Name)
	assert.NotNil(te.Unwrap())
}
