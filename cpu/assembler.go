// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"RAM_SIZE":  fmt.Sprintf("%#x", RAM_SIZE),
	"STACK_PTR": fmt.Sprintf("%#x", STACK_PTR),
	"STACK_TOP": fmt.Sprintf("%#x", STACK_TOP),
}

// Assembler is a single pass macro assembler for the TCPU.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expansions int // Count of macro expansions, for local label mangling.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// numberOf returns the integer value of a simple word.
func (asm *Assembler) numberOf(word string) (value int64, err error) {
	invert := false
	if len(word) > 1 && word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) > 0 && word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// valueOf returns the byte value of a simple word. Negative values down to
// -128 are encoded as two's complement.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := asm.numberOf(word)
	if err != nil {
		return
	}

	if v64 < -0x80 || v64 > 0xff {
		err = ErrOperandRange(word)
		return
	}

	value = uint8(v64)
	return
}

// operandOf returns the byte value of an operand word, or the label it
// refers to.
func (asm *Assembler) operandOf(word string) (value uint8, label string, err error) {
	value, err = asm.valueOf(word)
	if _, is_number := err.(ErrParseNumber); is_number && reLabel.MatchString(word) {
		label = word
		err = nil
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var number int64
		number, err = asm.numberOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(number)
	}
	err = nil
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// mapUnquoted applies fn to the parts of a line outside of "..." strings.
func mapUnquoted(line string, fn func(text string) string) string {
	var out strings.Builder
	var start int
	quoted := false
	for n := 0; n < len(line); n++ {
		switch {
		case quoted && line[n] == '\\':
			n++
		case line[n] == '"':
			if quoted {
				out.WriteString(line[start : n+1])
				start = n + 1
			} else {
				out.WriteString(fn(line[start:n]))
				start = n
			}
			quoted = !quoted
		}
	}
	if quoted {
		out.WriteString(line[start:])
	} else {
		out.WriteString(fn(line[start:]))
	}

	return out.String()
}

// stripComment removes a ';' comment, skipping over strings and character
// literals.
func stripComment(text string) string {
	quoted := false
	for n := 0; n < len(text); n++ {
		switch {
		case quoted && text[n] == '\\':
			n++
		case text[n] == '"':
			quoted = !quoted
		case !quoted && text[n] == '\'' && n+2 < len(text) && text[n+2] == '\'':
			n += 2
		case !quoted && text[n] == ';':
			return text[:n]
		}
	}

	return text
}

// splitWords splits a line on spaces, keeping "..." strings as one word.
func splitWords(line string) (words []string) {
	var word strings.Builder
	quoted := false
	for n := 0; n < len(line); n++ {
		c := line[n]
		switch {
		case quoted && c == '\\' && n+1 < len(line):
			word.WriteByte(c)
			n++
			c = line[n]
		case c == '"':
			quoted = !quoted
		case !quoted && (c == ' ' || c == '\t'):
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
			continue
		}
		word.WriteByte(c)
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}

	return
}

var reCharacter = regexp.MustCompile(`'\\?[^']'`)
var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = mapUnquoted(line, func(text string) string {
		return reCharacter.ReplaceAllStringFunc(text, func(word string) string {
			str := word[1 : len(word)-1]
			if str[0] == '\\' {
				str = str[1:]
				switch str {
				case "\\":
					str = "\\"
				case "n":
					str = "\n"
				case "r":
					str = "\r"
				case "e":
					str = "\033"
				case "0":
					str = "\000"
				default:
					return word
				}
			} else if len(str) != 1 {
				return word
			}
			return fmt.Sprintf("%v", str[0])
		})
	})

	// Do $() evaluations
	line = mapUnquoted(line, func(text string) string {
		return reParen.ReplaceAllStringFunc(text, func(str string) string {
			value, _err := asm.parenEval(str[2 : len(str)-1])
			if _err != nil {
				err = _err
			}
			return fmt.Sprintf("%d", value)
		})
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddress()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, macro.LineNo+n)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddress gets the address of the next generated byte.
func (asm *Assembler) currentAddress() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Address + len(last.Bytes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.expansions = 0
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for _, link := range op.Links {
			addr, ok := asm.Label[link.Label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(link.Label)
				return
			}
			op.Bytes[link.Index] = uint8(addr)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// operands evaluates operand words into bytes, noting label links.
func (asm *Assembler) operands(words []string, base int) (values []byte, links []Link, err error) {
	for n, word := range words {
		var value uint8
		var label string
		value, label, err = asm.operandOf(word)
		if err != nil {
			return
		}
		if len(label) != 0 {
			links = append(links, Link{Index: base + n, Label: label})
		}
		values = append(values, value)
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var bytes []byte
	var links []Link

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	switch words[0] {
	case ".byte":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		bytes, links, err = asm.operands(words[1:], 0)
		if err != nil {
			return
		}
	case ".string":
		if len(words) != 2 || !strings.HasPrefix(words[1], "\"") {
			err = ErrStringSyntax
			return
		}
		var text string
		text, err = strconv.Unquote(words[1])
		if err != nil {
			err = ErrStringSyntax
			return
		}
		bytes = []byte(text)
	case ".org":
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		var addr int64
		addr, err = asm.numberOf(words[1])
		if err != nil {
			return
		}
		here := asm.currentAddress()
		if addr < int64(here) {
			err = ErrOrgBackwards
			return
		}
		if addr > RAM_SIZE {
			err = ErrImageFull
			return
		}
		bytes = make([]byte, int(addr)-here)
	default:
		op, ok := LookupOp(words[0])
		if !ok {
			err = ErrInstructionInvalid
			return
		}
		args := words[1:]
		need := op.Length() - 1
		if op.Padded() && len(args) == need-1 {
			args = append(slices.Clone(args), "0")
		}
		if len(args) < need {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > need {
			err = ErrOpcodeExtraArgs
			return
		}
		var values []byte
		values, links, err = asm.operands(args, 1)
		if err != nil {
			return
		}
		bytes = append([]byte{uint8(op)}, values...)
	}

	if len(bytes) == 0 {
		return
	}

	here := asm.currentAddress()
	if here+len(bytes) > RAM_SIZE {
		err = ErrImageFull
		return
	}

	opcode := Opcode{LineNo: lineno, Address: here, Words: initial_words, Bytes: bytes, Links: links}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}
