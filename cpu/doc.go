// Package cpu implements the processor and assembler for the TCPU system.
//
// The CPU is an 8-bit accumulator machine built from discrete logic. It has
// an accumulator (A), an instruction register (IR), a program counter (PC),
// carry and zero flags, and 256 bytes of memory. The stack descends from the
// top of memory, and its pointer is the memory cell at STACK_PTR.
//
// The assembler provides an assembly language for the TCPU instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
