package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/tcpu/cpu"
	"github.com/ezrec/tcpu/emulator"
)

// Stepper keys.
const (
	KEY_QUIT      = 'q' // Stop without running further.
	KEY_CONTINUE  = 'c' // Run freely until halt.
	KEY_DUMP      = 'd' // Dump memory and registers.
	KEY_INTERRUPT = 3   // Ctrl-C, in cbreak mode.
)

// Stepper runs an emulator one instruction per keypress. Before each
// instruction, its address, disassembly and source line are prompted on
// Output. Any key other than the commands steps.
type Stepper struct {
	Verbose  bool
	Emulator *emulator.Emulator
	Input    io.Reader // Keypresses.
	Output   io.Writer // Prompts and dumps.
}

// prompt describes the next instruction.
func (st *Stepper) prompt() {
	emu := st.Emulator
	text, _ := cpu.Disassemble(&emu.Cpu.Memory, emu.Cpu.Pc)
	fmt.Fprintf(st.Output, "%02x: %-16v", emu.Cpu.Pc, text)
	if lineno := emu.LineNo(); lineno != 0 {
		fmt.Fprintf(st.Output, " ; line %d", lineno)
	}
	fmt.Fprintf(st.Output, " [%v] > ", emu.Cpu.String())
}

// Run steps until the emulator halts, the input ends, or a quit key. The
// error is that of the emulator.
func (st *Stepper) Run(ctx context.Context) (err error) {
	emu := st.Emulator
	key := make([]byte, 1)

	for !emu.Cpu.Halted {
		st.prompt()

		_, err = io.ReadFull(st.Input, key)
		fmt.Fprintln(st.Output)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if st.Verbose {
			log.Printf("console: key %q", key[0])
		}

		switch key[0] {
		case KEY_QUIT, KEY_INTERRUPT:
			return
		case KEY_CONTINUE:
			err = emu.Run(ctx)
			return
		case KEY_DUMP:
			err = emu.Cpu.Dump(st.Output)
			if err != nil {
				return
			}
			continue
		case '\n', '\r':
			// Line buffered input steps once per line.
			continue
		}

		_, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
