package cpu

import (
	"fmt"
	"strings"
)

// Op is a TCPU opcode byte.
type Op uint8

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LDI   = Op(0x00) // ldi
	OP_LDR   = Op(0x01) // ldr
	OP_LDRI  = Op(0x02) // ldri
	OP_ADDI  = Op(0x03) // addi
	OP_ADDR  = Op(0x04) // addr
	OP_SUBI  = Op(0x05) // subi
	OP_SUBR  = Op(0x06) // subr
	OP_STR   = Op(0x07) // str
	OP_STRI  = Op(0x08) // stri
	OP_JMP   = Op(0x09) // jmp
	OP_JEQ   = Op(0x0a) // jeq
	OP_JCS   = Op(0x0b) // jcs
	OP_JMPI  = Op(0x0c) // jmpi
	OP_JEQI  = Op(0x0d) // jeqi
	OP_TTYI  = Op(0x0e) // ttyi
	OP_TTYO  = Op(0x0f) // ttyo
	OP_HALT  = Op(0x10) // halt
	OP_ROL   = Op(0x11) // rol
	OP_INXR  = Op(0x12) // inxr
	OP_DEXR  = Op(0x13) // dexr
	OP_ASL   = Op(0x14) // asl
	OP_NANDI = Op(0x15) // nandi
	OP_NANDR = Op(0x16) // nandr
	OP_NOP   = Op(0x17) // nop
	OP_AINC  = Op(0x18) // ainc
	OP_ADEC  = Op(0x19) // adec
	OP_RINC  = Op(0x1a) // rinc
	OP_RDEC  = Op(0x1b) // rdec
	OP_RSP   = Op(0x1c) // rsp
	OP_PHA   = Op(0x1d) // pha
	OP_PLA   = Op(0x1e) // pla
	OP_JSR   = Op(0x1f) // jsr
	OP_RTS   = Op(0x20) // rts
	OP_LDSA  = Op(0x21) // ldsa
	OP_STSA  = Op(0x22) // stsa
	OP_SINC  = Op(0x23) // sinc
	OP_PHI   = Op(0x24) // phi
)

// OP_COUNT is the number of decodable opcodes.
const OP_COUNT = 0x25

// opInfo describes the encoding of an opcode.
type opInfo struct {
	length int  // Total bytes, opcode included.
	padded bool // Last operand byte is consumed, but unused.
	jump   bool // May replace the next PC.
}

// opTable is the encoding of each opcode, indexed by Op.
//
// JEQI's length is the not-taken path: the hardware consumes one byte past
// its operand before falling through.
var opTable = [OP_COUNT]opInfo{
	OP_LDI:   {length: 2},
	OP_LDR:   {length: 2},
	OP_LDRI:  {length: 2},
	OP_ADDI:  {length: 2},
	OP_ADDR:  {length: 2},
	OP_SUBI:  {length: 2},
	OP_SUBR:  {length: 2},
	OP_STR:   {length: 2},
	OP_STRI:  {length: 3, padded: true},
	OP_JMP:   {length: 2, jump: true},
	OP_JEQ:   {length: 2, jump: true},
	OP_JCS:   {length: 2, jump: true},
	OP_JMPI:  {length: 2, jump: true},
	OP_JEQI:  {length: 3, padded: true, jump: true},
	OP_TTYI:  {length: 1},
	OP_TTYO:  {length: 1},
	OP_HALT:  {length: 1},
	OP_ROL:   {length: 1},
	OP_INXR:  {length: 3},
	OP_DEXR:  {length: 3},
	OP_ASL:   {length: 2, padded: true},
	OP_NANDI: {length: 2},
	OP_NANDR: {length: 2},
	OP_NOP:   {length: 1},
	OP_AINC:  {length: 1},
	OP_ADEC:  {length: 1},
	OP_RINC:  {length: 2},
	OP_RDEC:  {length: 2},
	OP_RSP:   {length: 1},
	OP_PHA:   {length: 2, padded: true},
	OP_PLA:   {length: 1},
	OP_JSR:   {length: 3, jump: true},
	OP_RTS:   {length: 1, jump: true},
	OP_LDSA:  {length: 1},
	OP_STSA:  {length: 2, padded: true},
	OP_SINC:  {length: 2, padded: true},
	OP_PHI:   {length: 2},
}

// Valid returns true if the opcode has an instruction handler.
func (op Op) Valid() bool {
	return op < OP_COUNT
}

// Length returns the total byte length of the instruction, or 1 for an
// undecodable opcode.
func (op Op) Length() int {
	if !op.Valid() {
		return 1
	}
	return opTable[op].length
}

// Padded returns true if the final operand byte is consumed but ignored.
func (op Op) Padded() bool {
	return op.Valid() && opTable[op].padded
}

// Jump returns true if the instruction can redirect the PC.
func (op Op) Jump() bool {
	return op.Valid() && opTable[op].jump
}

// opMap maps lower case mnemonics to opcodes.
var opMap = func() map[string]Op {
	ops := make(map[string]Op, OP_COUNT)
	for op := range Op(OP_COUNT) {
		ops[op.String()] = op
	}
	return ops
}()

// LookupOp returns the opcode for a mnemonic, ignoring case.
func LookupOp(mnemonic string) (op Op, ok bool) {
	op, ok = opMap[strings.ToLower(mnemonic)]
	return
}

// Disassemble renders the instruction at addr, and returns its length.
// Undecodable bytes are rendered as a .byte directive.
func Disassemble(mem *Memory, addr uint8) (text string, length int) {
	op := Op(mem[addr])
	if !op.Valid() {
		return fmt.Sprintf(".byte 0x%02x", uint8(op)), 1
	}

	length = op.Length()
	words := []string{op.String()}
	for n := 1; n < length; n++ {
		words = append(words, fmt.Sprintf("0x%02x", mem[addr+uint8(n)]))
	}
	text = strings.Join(words, " ")

	return
}

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo  int      // Source line number.
	Address int      // Address of the first byte.
	Words   []string // Source words, after macro and equate expansion.
	Bytes   []byte   // Generated bytes.
	Links   []Link   // Operand bytes waiting on a label.
}

// Link is a reference from an operand byte to a label.
type Link struct {
	Index int    // Offset into Opcode.Bytes.
	Label string // Label name.
}
