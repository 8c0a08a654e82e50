package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"math/bits"
	"os"
	"time"

	tio "github.com/ezrec/tcpu/io"
)

// Console is the character output device.
type Console tio.Console

var _cpu_defines = map[string]string{
	"RAM_SIZE":  fmt.Sprintf("0x%x", RAM_SIZE),
	"STACK_PTR": fmt.Sprintf("0x%x", STACK_PTR),
	"STACK_TOP": fmt.Sprintf("0x%x", STACK_TOP),
}

// Cpu is the simulation context for the TCPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Addressable memory.

	A  uint8 // Accumulator. Only ever written through SetA.
	Ir uint8 // Instruction register.
	Pc uint8 // Program counter.
	Cf bool  // Carry flag.
	Zf bool  // Zero flag.

	Console     Console       // TTYO output device.
	Diagnostics io.Writer     // Destination of state dumps. Standard error by default, nil to disable.
	Delay       time.Duration // Pause after each instruction in Run.

	Halted bool  // Set by HALT, budget exhaustion, or a fault.
	Fault  error // Fault that stopped the CPU.
	Ticks  int   // Instructions executed since reset.

	maxCycles int // Remaining cycle budget, negative for unbounded.
}

// NewCpu creates a new CPU in its reset state, dumping diagnostics to
// standard error.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Diagnostics: os.Stderr,
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Sets A, IR, PC to zero, clears CF, and sets ZF.
// - Clears the halt and fault state, and the tick counter.
// - Removes the cycle budget.
//
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.Ir = 0
	cpu.Pc = 0
	cpu.Cf = false
	cpu.Zf = true

	cpu.Halted = false
	cpu.Fault = nil
	cpu.Ticks = 0
	cpu.maxCycles = -1
}

// Load copies an image to the start of memory.
func (cpu *Cpu) Load(image []byte) (err error) {
	err = cpu.Memory.Load(image)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// SetMaxCycles sets the cycle budget. A negative count is unbounded, and a
// count of zero is rejected.
func (cpu *Cpu) SetMaxCycles(count int) (err error) {
	if count == 0 {
		err = ErrCycleBudget
		return
	}

	if count < 0 {
		count = -1
	}
	cpu.maxCycles = count

	return
}

// MaxCycles returns the remaining cycle budget, negative if unbounded.
func (cpu *Cpu) MaxCycles() int {
	return cpu.maxCycles
}

// Stack returns the memory resident stack.
func (cpu *Cpu) Stack() Stack {
	return Stack{Memory: &cpu.Memory}
}

// String returns the register state as a string.
func (cpu *Cpu) String() string {
	var cf, zf uint8
	if cpu.Cf {
		cf = 1
	}
	if cpu.Zf {
		zf = 1
	}

	return fmt.Sprintf("REG A: %02X, REG_IR: %02X, REG_PC: %02X, CF: %02X, ZF: %02X, SP: %02X",
		cpu.A, cpu.Ir, cpu.Pc, cf, zf, cpu.Stack().Pointer())
}

// Dump writes the full memory image, followed by the registers.
func (cpu *Cpu) Dump(w io.Writer) (err error) {
	err = tio.WriteDump(w, cpu.Memory[:])
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w, cpu.String())
	return
}

// dumpDiagnostics dumps the state to the diagnostics writer, if any.
func (cpu *Cpu) dumpDiagnostics(reason string) (err error) {
	if cpu.Diagnostics == nil {
		return
	}

	_, err = fmt.Fprintf(cpu.Diagnostics, "\n# %v\n", reason)
	if err != nil {
		return
	}

	err = cpu.Dump(cpu.Diagnostics)
	return
}

// halt stops the CPU, and dumps its state. A failed dump is logged, as the
// halt itself has already happened.
func (cpu *Cpu) halt(reason string) {
	cpu.Halted = true

	err := cpu.dumpDiagnostics(reason)
	if err != nil {
		log.Printf("cpu: diagnostics: %v", err)
	}
}

// Run executes instructions until the CPU halts. A fault is returned after
// the state has been dumped.
func (cpu *Cpu) Run() (err error) {
	if cpu.Verbose {
		log.Printf("cpu: start")
	}

	for !cpu.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
		if cpu.Delay > 0 {
			time.Sleep(cpu.Delay)
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = cpu.Fault
		if err == nil {
			err = ErrHalted
		}
		return
	}

	fetch := cpu.Pc
	cpu.Ir = cpu.Memory[fetch]
	cpu.Pc = fetch + 1

	op := Op(cpu.Ir)

	if cpu.Verbose {
		text, _ := Disassemble(&cpu.Memory, fetch)
		log.Printf("%02x: %v", fetch, text)
	}

	next, err := cpu.Execute(op)
	if err != nil {
		err = errors.Join(ErrOpcode{Address: fetch, Op: op}, err)
		cpu.Fault = err
		cpu.halt(f("CPU fault: %v", err))
		return
	}

	cpu.Pc = next
	cpu.Ticks++

	if op == OP_HALT {
		cpu.halt(f("CPU Halted."))
		return
	}

	if cpu.maxCycles >= 0 {
		if cpu.maxCycles == 0 {
			cpu.halt(f("Max cycle count reached."))
		}
		cpu.maxCycles--
	}

	return
}

// SetA writes the accumulator, and sets ZF if the value is zero.
func (cpu *Cpu) SetA(value uint8) {
	cpu.A = value
	cpu.Zf = value == 0
}

// add is the ALU adder: A + value + carry, setting CF on carry out of bit 7.
func (cpu *Cpu) add(value uint8, carry uint8) {
	sum := uint16(cpu.A) + uint16(value) + uint16(carry)
	cpu.Cf = sum > 0xff
	cpu.SetA(uint8(sum))
}

// sub subtracts by adding the inverted value with a carry in, so CF is set
// when no borrow occurs.
func (cpu *Cpu) sub(value uint8) {
	cpu.add(^value, 1)
}

// operand reads the operand byte n bytes past the PC.
func (cpu *Cpu) operand(n uint8) uint8 {
	return cpu.Memory[cpu.Pc+n]
}

// immediate addressing: the operand byte.
func (cpu *Cpu) immediate() uint8 {
	return cpu.operand(0)
}

// direct addressing: the memory cell addressed by the operand byte.
func (cpu *Cpu) direct() uint8 {
	return cpu.Memory[cpu.immediate()]
}

// indirect addressing: the memory cell addressed by the direct cell.
func (cpu *Cpu) indirect() uint8 {
	return cpu.Memory[cpu.direct()]
}

// Execute executes a single decoded instruction. The PC must address the
// byte following the opcode. Returns the address of the next instruction:
// the address after the instruction's bytes, or the jump target.
func (cpu *Cpu) Execute(op Op) (next uint8, err error) {
	if !op.Valid() {
		err = ErrDecode
		return
	}

	next = cpu.Pc - 1 + uint8(op.Length())

	stack := cpu.Stack()

	switch op {
	case OP_LDI:
		cpu.SetA(cpu.immediate())
	case OP_LDR:
		cpu.SetA(cpu.direct())
	case OP_LDRI:
		cpu.SetA(cpu.indirect())
	case OP_ADDI:
		cpu.add(cpu.immediate(), 0)
	case OP_ADDR:
		cpu.add(cpu.direct(), 0)
	case OP_SUBI:
		cpu.sub(cpu.immediate())
	case OP_SUBR:
		cpu.sub(cpu.direct())
	case OP_STR:
		cpu.Memory[cpu.immediate()] = cpu.A
	case OP_STRI:
		cpu.Memory[cpu.direct()] = cpu.A
	case OP_JMP:
		next = cpu.immediate()
	case OP_JEQ:
		if cpu.Zf {
			next = cpu.immediate()
		}
	case OP_JCS:
		if cpu.Cf {
			next = cpu.immediate()
		}
	case OP_JMPI:
		next = cpu.direct()
	case OP_JEQI:
		if cpu.Zf {
			next = cpu.direct()
		}
	case OP_TTYI:
		err = ErrUnimplemented
	case OP_TTYO:
		if cpu.Console != nil {
			err = cpu.Console.Send(cpu.A)
		}
	case OP_HALT:
		// Tick handles the halt.
	case OP_ROL:
		cpu.SetA(cpu.A << 1)
	case OP_INXR:
		addr := cpu.immediate()
		cpu.Memory[addr] += cpu.operand(1)
	case OP_DEXR:
		addr := cpu.immediate()
		cpu.Memory[addr] -= cpu.operand(1)
	case OP_ASL:
		cpu.SetA(bits.RotateLeft8(cpu.A, 1))
	case OP_NANDI:
		cpu.SetA(^(cpu.A & cpu.immediate()))
	case OP_NANDR:
		cpu.SetA(^(cpu.A & cpu.direct()))
	case OP_NOP:
		// pass
	case OP_AINC:
		cpu.SetA(cpu.A + 1)
	case OP_ADEC:
		cpu.SetA(cpu.A - 1)
	case OP_RINC:
		cpu.Memory[cpu.immediate()]++
		cpu.SetA(cpu.direct())
	case OP_RDEC:
		cpu.Memory[cpu.immediate()]--
		cpu.SetA(cpu.direct())
	case OP_RSP:
		stack.Reset()
	case OP_PHA:
		stack.Push(cpu.A)
	case OP_PLA:
		cpu.SetA(stack.Pop())
	case OP_JSR:
		// The push lands before the target byte is read.
		stack.Push(cpu.immediate())
		next = cpu.operand(1)
	case OP_RTS:
		next = stack.Pop()
	case OP_LDSA:
		cpu.SetA(stack.Peek(2))
	case OP_STSA:
		stack.Poke(2, cpu.A)
	case OP_SINC:
		stack.SetPointer(stack.Pointer() + 1)
	case OP_PHI:
		stack.Push(cpu.immediate())
	default:
		err = ErrDecode
	}

	return
}
