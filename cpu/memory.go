package cpu

const (
	RAM_SIZE  = 0x100 // Bytes of addressable memory.
	STACK_PTR = 0xff  // Address of the stack pointer cell.
	STACK_TOP = 0xfe  // Stack pointer value after RSP.
)

// Memory is the flat, wrapping, 256 byte address space.
type Memory [RAM_SIZE]byte

// Load copies an image to the start of memory. Memory past the end of the
// image is left untouched.
func (mem *Memory) Load(image []byte) (err error) {
	if len(image) > len(mem) {
		err = ErrImageSize
		return
	}

	copy(mem[:], image)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
