package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DUMP_ROW is the count of bytes rendered per memory dump row.
const DUMP_ROW = 8

// WriteDump writes a memory image as rows of hexadecimal bytes, each row
// prefixed by the address of its first byte.
func WriteDump(w io.Writer, data []byte) (err error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# RAM dump:\n")
	for base := 0; base < len(data); base += DUMP_ROW {
		row := data[base:min(base+DUMP_ROW, len(data))]
		fmt.Fprintf(bw, "%02X:", base)
		for _, value := range row {
			fmt.Fprintf(bw, " %02X", value)
		}
		fmt.Fprintf(bw, "\n")
	}

	err = bw.Flush()
	return
}

// ParseDump reads the memory rows of a dump written by WriteDump back into
// a full memory image. Lines that are not memory rows are ignored, so a
// complete diagnostic dump, register line included, can be parsed as is.
// Bytes not covered by any row are zero.
func ParseDump(r io.Reader) (data []byte, err error) {
	scanner := bufio.NewScanner(r)

	data = make([]byte, IMAGE_SIZE)

	var lineno int
	var rows int
	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		words := strings.Fields(line)
		if len(words) == 0 || !strings.HasSuffix(words[0], ":") {
			continue
		}

		base, perr := strconv.ParseUint(strings.TrimSuffix(words[0], ":"), 16, 8)
		if perr != nil {
			continue
		}

		for n, word := range words[1:] {
			value, perr := strconv.ParseUint(word, 16, 8)
			if perr != nil || int(base)+n >= IMAGE_SIZE {
				err = ErrDumpSyntax{LineNo: lineno, Line: line}
				return
			}
			data[int(base)+n] = byte(value)
		}
		rows++
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if rows == 0 {
		err = ErrDumpEmpty
	}

	return
}
