package cpu

import (
	"iter"
)

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the byte at an address within the listing.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the listing line that generated the byte at addr. The
// Opcode is nil if no line generated it.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Address && int(addr) < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, from address 0x00 up to
// its last generated byte.
func (prog *Program) Binary() (image []byte) {
	var size int
	for _, op := range prog.Opcodes {
		size = max(size, op.Address+len(op.Bytes))
	}

	image = make([]byte, size)
	for addr, value := range prog.Bytes() {
		image[addr] = value
	}

	return
}

// Bytes iterates over every generated byte, and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(addr int, value byte) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Address+n, value) {
					return
				}
			}
		}
	}
}
