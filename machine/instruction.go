package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is a single assembled program line.
type Instruction struct {
	Opcode    Opcode
	Immediate bool // If set, Operand is a value, otherwise a memory location.
	Operand   int
}

// Line is a pre-assembled program line, as (mnemonic, immediate, operand).
type Line struct {
	Mnemonic  string
	Immediate bool
	Operand   int
}

// Instruction converts the line without validation. An unknown mnemonic
// becomes OP_INVALID, which the machine rejects when executed.
func (line Line) Instruction() Instruction {
	op, _ := OpcodeOf(line.Mnemonic)
	return Instruction{Opcode: op, Immediate: line.Immediate, Operand: line.Operand}
}

// operandString is the operand as written in assembly.
func (inst Instruction) operandString() string {
	if inst.Immediate {
		return "#" + strconv.Itoa(inst.Operand)
	}
	return strconv.Itoa(inst.Operand)
}

// String returns the assembly form of the instruction.
func (inst Instruction) String() string {
	if inst.Opcode == OP_HALT && inst.Immediate && inst.Operand == 0 {
		return inst.Opcode.String()
	}
	return inst.Opcode.String() + " " + inst.operandString()
}

// binary returns the machine code, addressing flag, and operand bit strings.
func (inst Instruction) binary(bits int) (code, flag, operand string) {
	code = inst.Opcode.Code()

	flag = "0"
	if inst.Immediate {
		flag = "1"
	}

	value := uint64(inst.Operand)
	if inst.Operand < 0 && bits > 0 && bits < 64 {
		value &= (uint64(1) << bits) - 1
	}
	operand = strconv.FormatUint(value, 2)
	if len(operand) < bits {
		operand = strings.Repeat("0", bits-len(operand)) + operand
	}

	return
}

// Binary returns the instruction as a binary string: 3 bits of opcode,
// 1 bit of addressing mode, and the operand padded to at least 'bits' digits.
func (inst Instruction) Binary(bits int) string {
	code, flag, operand := inst.binary(bits)
	return code + flag + operand
}

// Explain describes the effect of the instruction in a sentence.
func (inst Instruction) Explain() (text string) {
	// Plain digits, without locale grouping.
	op := strconv.Itoa(inst.Operand)

	switch inst.Opcode {
	case OP_LOAD:
		if inst.Immediate {
			text = f("Load the value %v into the accumulator", op)
		} else {
			text = f("Load the value of memory location %v into the accumulator", op)
		}
	case OP_STORE:
		text = f("Store the value of the accumulator in memory location %v", op)
	case OP_ADD:
		if inst.Immediate {
			text = f("Add the value %v to the accumulator", op)
		} else {
			text = f("Add the value of memory location %v to the accumulator", op)
		}
	case OP_SUB:
		if inst.Immediate {
			text = f("Subtract the value %v from the accumulator", op)
		} else {
			text = f("Subtract the value of memory location %v from the accumulator", op)
		}
	case OP_EQUAL:
		if inst.Immediate {
			text = f("Skip next instruction if accumulator equal to %v", op)
		} else {
			text = f("Skip next instruction if accumulator equal to memory location %v", op)
		}
	case OP_JUMP:
		text = f("Jump to instruction %v (set program counter to %v)", op, op)
	case OP_HALT:
		text = f("Stop execution")
	}

	return
}

// trace formats an executed step.
func (inst Instruction) trace(pc, acc int) string {
	operand := ""
	if inst.Opcode != OP_HALT {
		operand = inst.operandString()
	}
	return fmt.Sprintf("PC=%03d ACC=%05d %v %v", pc, acc, inst.Opcode, operand)
}
