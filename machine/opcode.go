package machine

import (
	"fmt"
	"strings"
)

// Opcode is an instruction opcode. Its value is the 3-bit machine code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INVALID = Opcode(0) // INVALID
	OP_LOAD    = Opcode(1) // LOAD
	OP_STORE   = Opcode(2) // STORE
	OP_ADD     = Opcode(3) // ADD
	OP_SUB     = Opcode(4) // SUB
	OP_EQUAL   = Opcode(5) // EQUAL
	OP_JUMP    = Opcode(6) // JUMP
	OP_HALT    = Opcode(7) // HALT
)

// Addressing modes accepted by each opcode.
const (
	modeImmediate = 1 << iota
	modeMemory
)

var opcodeMode = [...]int{
	OP_INVALID: 0,
	OP_LOAD:    modeImmediate | modeMemory,
	OP_STORE:   modeMemory,
	OP_ADD:     modeImmediate | modeMemory,
	OP_SUB:     modeImmediate | modeMemory,
	OP_EQUAL:   modeImmediate | modeMemory,
	OP_JUMP:    modeImmediate,
	OP_HALT:    modeImmediate | modeMemory,
}

// opcodeMap maps upper case mnemonics to opcodes.
var opcodeMap = map[string]Opcode{}

func init() {
	for op := OP_LOAD; op <= OP_HALT; op++ {
		opcodeMap[op.String()] = op
	}
}

// OpcodeOf returns the opcode for a mnemonic, ignoring case.
func OpcodeOf(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// Valid returns true if the opcode is in the instruction set.
func (op Opcode) Valid() bool {
	return op >= OP_LOAD && op <= OP_HALT
}

// Code returns the 3-bit binary machine code.
func (op Opcode) Code() string {
	return fmt.Sprintf("%03b", int(op)&0x7)
}

// Accepts returns true if the opcode accepts the operand addressing mode.
func (op Opcode) Accepts(immediate bool) bool {
	if !op.Valid() {
		return false
	}
	if immediate {
		return opcodeMode[op]&modeImmediate != 0
	}
	return opcodeMode[op]&modeMemory != 0
}
