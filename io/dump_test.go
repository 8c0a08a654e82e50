package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteDump(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, 16)
	data[0] = 0x1c
	data[9] = 0xff

	buf := &bytes.Buffer{}
	err := WriteDump(buf, data)
	assert.NoError(err)

	expected := strings.Join([]string{
		"# RAM dump:",
		"00: 1C 00 00 00 00 00 00 00",
		"08: 00 FF 00 00 00 00 00 00",
		"",
	}, "\n")
	assert.Equal(expected, buf.String())
}

func TestDumpRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		image []byte
	}){
		{"empty", []byte{}},
		{"hello", []byte{0x00, 0x41, 0x0f, 0x10}},
		{"odd", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{"full", bytes.Repeat([]byte{0xa5}, IMAGE_SIZE)},
	}

	for _, entry := range table {
		mem := make([]byte, IMAGE_SIZE)
		copy(mem, entry.image)

		buf := &bytes.Buffer{}
		assert.NoError(WriteDump(buf, mem), entry.name)

		data, err := ParseDump(buf)
		assert.NoError(err, entry.name)
		assert.Equal(IMAGE_SIZE, len(data), entry.name)
		assert.Equal(entry.image, data[:len(entry.image)], entry.name)
		for _, value := range data[len(entry.image):] {
			assert.Equal(byte(0), value, entry.name)
		}
	}
}

func TestParseDump(t *testing.T) {
	assert := assert.New(t)

	text := strings.Join([]string{
		"# CPU Halted.",
		"# RAM dump:",
		"F8: 01 02 03 04 05 06 07 FE",
		"REG A: 41, REG_IR: 10, REG_PC: 04, CF: 00, ZF: 00, SP: FE",
	}, "\n")

	data, err := ParseDump(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 4, 5, 6, 7, 0xfe}, data[0xf8:])
	assert.Equal(byte(0), data[0])

	_, err = ParseDump(strings.NewReader("# nothing here\n"))
	assert.ErrorIs(err, ErrDumpEmpty)

	_, err = ParseDump(strings.NewReader("00: 01 zz\n"))
	assert.Equal(ErrDumpSyntax{LineNo: 1, Line: "00: 01 zz"}, err)

	_, err = ParseDump(strings.NewReader("FC: 01 02 03 04 05\n"))
	assert.Error(err)
}
