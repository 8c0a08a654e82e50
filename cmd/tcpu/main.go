// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ezrec/tcpu/console"
	"github.com/ezrec/tcpu/cpu"
	"github.com/ezrec/tcpu/emulator"
	tio "github.com/ezrec/tcpu/io"
)

type options struct {
	compile string
	image   string
	hex     string
	cycles  int
	delay   time.Duration
	save    bool
	output  string
	verbose bool
	step    bool
	listing bool
}

func main() {
	var opt options

	flag.StringVar(&opt.compile, "c", "", ".asm file to assemble")
	flag.StringVar(&opt.image, "i", "", "Binary image to load")
	flag.StringVar(&opt.hex, "x", "", "Hex dump image to load")
	flag.IntVar(&opt.cycles, "n", -1, "Cycle budget, negative for unbounded")
	flag.DurationVar(&opt.delay, "t", 0, "Delay after each instruction")
	flag.BoolVar(&opt.save, "s", false, "Save image to output, do not execute")
	flag.StringVar(&opt.output, "o", "-", "Console output, or image output with -s")
	flag.BoolVar(&opt.verbose, "v", false, "Verbose mode")
	flag.BoolVar(&opt.step, "step", false, "Single step by keypress")
	flag.BoolVar(&opt.listing, "l", false, "Print the assembly listing")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	err := run(&opt)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}

// ErrSources is returned when more than one program source is given.
var ErrSources = errors.New("only one of -c, -i, -x may be used")

// load builds the program listing from the selected source. Without a
// source, the bring-up image is used.
func load(opt *options, emu *emulator.Emulator) (err error) {
	sources := 0
	for _, source := range []string{opt.compile, opt.image, opt.hex} {
		if len(source) != 0 {
			sources++
		}
	}
	if sources > 1 {
		err = ErrSources
		return
	}

	switch {
	case len(opt.compile) != 0:
		var inf *os.File
		inf, err = os.Open(opt.compile)
		if err != nil {
			return
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: opt.verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		var prog *cpu.Program
		prog, err = asm.Parse(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", opt.compile, err)
			return
		}
		emu.Program = prog
	case len(opt.image) != 0:
		var inf *os.File
		inf, err = os.Open(opt.image)
		if err != nil {
			return
		}
		defer inf.Close()

		rom := &tio.Rom{}
		_, err = rom.ReadFrom(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", opt.image, err)
			return
		}
		err = emu.SetImage(rom.Data)
	case len(opt.hex) != 0:
		var inf *os.File
		inf, err = os.Open(opt.hex)
		if err != nil {
			return
		}
		defer inf.Close()

		var data []byte
		data, err = tio.ParseDump(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", opt.hex, err)
			return
		}
		err = emu.SetImage(data)
	default:
		err = emu.SetImage(emulator.BringupImage)
	}

	return
}

// writeListing prints each listing line with its address and bytes.
func writeListing(w io.Writer, prog *cpu.Program) {
	for _, op := range prog.Opcodes {
		var hex []string
		for _, value := range op.Bytes {
			hex = append(hex, fmt.Sprintf("%02x", value))
		}
		fmt.Fprintf(w, "%02x: %-12v ; %4d: %v\n", op.Address, strings.Join(hex, " "), op.LineNo, strings.Join(op.Words, " "))
	}
}

// create opens a named output, with "-" as standard output.
func create(name string) (w io.WriteCloser, err error) {
	if name == "-" {
		w = os.Stdout
		return
	}

	w, err = os.Create(name)
	return
}

func run(opt *options) (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = opt.verbose

	err = load(opt, emu)
	if err != nil {
		return
	}

	if opt.listing {
		writeListing(os.Stderr, emu.Program)
	}

	ouf, err := create(opt.output)
	if err != nil {
		return
	}
	defer ouf.Close()

	if opt.save {
		rom := &tio.Rom{Data: emu.Program.Binary()}
		_, err = rom.WriteTo(ouf)
		return
	}

	emu.Tty.Output = ouf
	emu.Cpu.Diagnostics = os.Stderr
	emu.Cpu.Delay = opt.delay

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.SetMaxCycles(opt.cycles)
	if err != nil {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if !opt.step {
		err = emu.Run(ctx)
		return
	}

	st := &console.Stepper{
		Verbose:  opt.verbose,
		Emulator: emu,
		Input:    os.Stdin,
		Output:   os.Stderr,
	}

	term, err := console.OpenTerminal(os.Stdin)
	if err != nil {
		// Not a terminal, so keys arrive a line at a time.
		if opt.verbose {
			log.Printf("%v", err)
		}
	} else {
		defer term.Close()
		st.Input = term
	}

	err = st.Run(ctx)
	return
}
