package cpu

// Stack is the descending stack held in memory. The stack pointer is the
// memory cell at STACK_PTR, and addresses the next free slot.
type Stack struct {
	Memory *Memory
}

// Pointer returns the stack pointer.
func (s Stack) Pointer() uint8 {
	return s.Memory[STACK_PTR]
}

// SetPointer sets the stack pointer.
func (s Stack) SetPointer(sp uint8) {
	s.Memory[STACK_PTR] = sp
}

// Push writes at the stack pointer, then decrements it. The pointer is
// re-read for the decrement, as the write may have landed on it.
func (s Stack) Push(value uint8) {
	s.Memory[s.Pointer()] = value
	s.SetPointer(s.Pointer() - 1)
}

// Pop increments the stack pointer, then reads at it.
func (s Stack) Pop() (value uint8) {
	sp := s.Pointer() + 1
	s.SetPointer(sp)
	return s.Memory[sp]
}

// Peek reads the cell offset bytes above the stack pointer.
func (s Stack) Peek(offset uint8) uint8 {
	return s.Memory[s.Pointer()+offset]
}

// Poke writes the cell offset bytes above the stack pointer.
func (s Stack) Poke(offset uint8, value uint8) {
	s.Memory[s.Pointer()+offset] = value
}

// Reset points the stack at STACK_TOP.
func (s Stack) Reset() {
	s.SetPointer(STACK_TOP)
}
