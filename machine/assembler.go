// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// MAX_WORD_LENGTH is the longest word the assembler accepts.
const MAX_WORD_LENGTH = 64 * 1024

// operandWord matches a word that can be read as an operand.
var operandWord = regexp.MustCompile(`^#?[-+]?[0-9]`)

// Assembler parses SimpleLang assembly text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Parse parses whitespace separated text into a Program.
func Parse(text string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(text))
}

// words splits the input into words, giving a lone HALT its implicit #0.
func (asm *Assembler) words(input io.Reader) (words []string, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_WORD_LENGTH)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		err = &ErrToken{Token: len(words), Err: err}
		return
	}

	for n := 0; n < len(words); n++ {
		if !strings.EqualFold(words[n], OP_HALT.String()) {
			continue
		}
		if n+1 < len(words) && operandWord.MatchString(words[n+1]) {
			continue
		}
		words = append(words[:n+1], append([]string{"#0"}, words[n+1:]...)...)
		n++
	}

	return
}

// Parse parses an input stream into a Program.
//
// The input is a sequence of MNEMONIC OPERAND word pairs. Mnemonics are
// case insensitive. An operand prefixed by '#' is an immediate value,
// otherwise it is a memory location.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	words, err := asm.words(input)
	if err != nil {
		return
	}

	insts := make([]Instruction, 0, len(words)/2)

	for n := 0; n+1 < len(words); n += 2 {
		op, ok := OpcodeOf(words[n])
		if !ok {
			err = &ErrToken{Token: n, Word: words[n], Err: ErrInstructionUnknown}
			return
		}

		word := words[n+1]
		immediate := strings.HasPrefix(word, "#")
		if immediate {
			word = word[1:]
		}

		var operand int64
		operand, err = strconv.ParseInt(word, 10, strconv.IntSize)
		if err != nil {
			err = &ErrToken{Token: n, Word: words[n+1], Err: ErrNumberInvalid}
			return
		}

		inst := Instruction{Opcode: op, Immediate: immediate, Operand: int(operand)}
		if asm.Verbose {
			log.Printf("%03d: %v", len(insts), inst)
		}
		insts = append(insts, inst)
	}

	if len(words)%2 != 0 {
		last := len(words) - 1
		err = &ErrToken{Token: last, Word: words[last], Err: ErrInputEnd}
		return
	}

	prog = &Program{
		Instructions: insts,
	}

	return
}
