package machine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Program is an assembled program.
type Program struct {
	Instructions []Instruction
}

// Source is a program in one of its input forms: Text, Lines or *Program.
type Source interface {
	program() (prog *Program, err error)
}

// Text is program source in assembly form.
type Text string

// Lines is a pre-assembled program. It is used as-is, without validation.
type Lines []Line

func (text Text) program() (prog *Program, err error) {
	return Parse(string(text))
}

func (lines Lines) program() (prog *Program, err error) {
	prog = ParseLines(lines)
	return
}

func (prog *Program) program() (*Program, error) {
	return prog.Clone(), nil
}

// ParseLines converts pre-assembled lines into a program.
func ParseLines(lines []Line) (prog *Program) {
	prog = &Program{
		Instructions: make([]Instruction, 0, len(lines)),
	}
	for _, line := range lines {
		prog.Instructions = append(prog.Instructions, line.Instruction())
	}

	return
}

// Clone returns a copy of the program.
func (prog *Program) Clone() *Program {
	return &Program{
		Instructions: slices.Clone(prog.Instructions),
	}
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// String returns the program in assembly form, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, inst := range prog.Instructions {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Listing returns the binary form of the program, one instruction per line,
// with 'bits' wide operands.
func (prog *Program) Listing(bits int) string {
	var sb strings.Builder
	for _, inst := range prog.Instructions {
		sb.WriteString(inst.Binary(bits))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LaTeX returns the program as a LaTeX tabular of machine code, assembly,
// and description of each instruction.
func (prog *Program) LaTeX(bits int) string {
	var sb strings.Builder

	sb.WriteString("\\begin{tabular}{| l | l | l | l |}\n")
	sb.WriteString("\\hline\n")
	fmt.Fprintf(&sb, "\\# & \\textbf{%v} & \\textbf{%v} & \\textbf{%v} \\\\\\hline\n",
		f("Machine Code"), f("Assembly Code"), f("Description"))

	for n, inst := range prog.Instructions {
		code, flag, operand := inst.binary(bits)

		mnemonic := fmt.Sprintf("%-6s", inst.Opcode.String())
		mnemonic = strings.ReplaceAll(mnemonic, " ", "\\ ")

		var arg string
		if inst.Opcode != OP_HALT {
			arg = strings.ReplaceAll(inst.operandString(), "#", "\\#")
		}

		fmt.Fprintf(&sb, "%d & %v\\ %v\\ %v & %v%v & %v\\\\\n",
			n, code, flag, operand, mnemonic, arg, inst.Explain())
	}

	sb.WriteString("\\hline\\end{tabular}")

	return sb.String()
}

// Table returns the program as a text table of machine code, assembly,
// and description of each instruction.
func (prog *Program) Table(bits int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", f("Machine Code"), f("Assembly Code"), f("Description")})

	for n, inst := range prog.Instructions {
		code, flag, operand := inst.binary(bits)
		tw.AppendRow(table.Row{
			n,
			code + " " + flag + " " + operand,
			inst.String(),
			inst.Explain(),
		})
	}

	return tw.Render()
}
