// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"iter"
	"log"
	"time"

	"github.com/ezrec/tcpu/cpu"
	"github.com/ezrec/tcpu/internal"
	"github.com/ezrec/tcpu/io"
)

// Emulator state. CPU + program listing + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tty io.Tty // Character console.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Console = &emu.Tty

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Tty.Defines(),
	)
}

// SetImage replaces the program with a raw memory image, which has no
// source lines.
func (emu *Emulator) SetImage(image []byte) (err error) {
	if len(image) > cpu.RAM_SIZE {
		err = cpu.ErrImageSize
		return
	}

	emu.Program = &cpu.Program{
		Opcodes: []cpu.Opcode{{Bytes: image}},
	}

	return
}

// Reset clears memory, loads the program image, and resets the CPU.
// The cycle budget is removed, so must be set after a reset.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Memory.Reset()
	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Cpu.Reset()
	emu.Tty.Rewind()

	return
}

// LineNo returns the current line number for the executing opcode, or 0 if
// the PC is outside of the listing.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator. done is set once the
// CPU has halted, whether by HALT, cycle budget, or fault.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	address := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.Halted {
		done = true
		err = emu.Cpu.Fault
		return
	}

	err = emu.Cpu.Tick()
	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until it halts, a fault occurs, or the context is
// done. The CPU Delay is waited out after every instruction.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	if emu.Verbose {
		log.Printf("emulator: run")
	}

	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}

		if emu.Cpu.Delay > 0 {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case <-time.After(emu.Cpu.Delay):
			}
		} else if err = ctx.Err(); err != nil {
			return
		}
	}
}
