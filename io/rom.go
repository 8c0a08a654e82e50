package io

import (
	"io"
)

// IMAGE_SIZE is the largest image that fits in memory.
const IMAGE_SIZE = 0x100

// Rom is a raw binary memory image, loaded at address 0x00.
type Rom struct {
	Data []byte
}

// ReadFrom replaces the image with the contents of the reader.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(io.LimitReader(r, IMAGE_SIZE+1))
	n = int64(len(data))
	if err != nil {
		return
	}

	if len(data) > IMAGE_SIZE {
		err = ErrImageSize
		return
	}

	rc.Data = data
	return
}

// WriteTo writes the image to the writer.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	written, err := w.Write(rc.Data)
	n = int64(written)
	return
}
