package machine

import (
	"errors"
	"strconv"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrAlreadyHalted    = errors.New(f("machine is halted"))
	ErrProgramCounter   = errors.New(f("invalid program counter"))
	ErrInstruction      = errors.New(f("invalid instruction"))
	ErrOperand          = errors.New(f("invalid operand"))
	ErrInstructionLimit = errors.New(f("instruction limit reached"))
	ErrMemorySize       = errors.New(f("memory size must be positive"))

	// Assembler errors
	ErrInstructionUnknown = errors.New(f("expected valid instruction"))
	ErrNumberInvalid      = errors.New(f("expected valid number"))
	ErrInputEnd           = errors.New(f("unexpected end of input"))
)

// ErrToken locates an assembler error in the token stream.
type ErrToken struct {
	Token int    // Index of the first token of the failing pair.
	Word  string // Offending token text.
	Err   error
}

func (err *ErrToken) Error() string {
	if errors.Is(err.Err, ErrInputEnd) {
		return f("%v, need one more token after position %v", err.Err, strconv.Itoa(err.Token))
	}
	return f("token %v '%v' %v", strconv.Itoa(err.Token), err.Word, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrRange is a value outside of [0, Limit).
type ErrRange struct {
	Err   error
	Value int
	Limit int
}

func (err *ErrRange) Error() string {
	return f("%v: %v outside [0, %v)", err.Err, strconv.Itoa(err.Value), strconv.Itoa(err.Limit))
}

func (err *ErrRange) Unwrap() error {
	return err.Err
}

// ErrAddressing is an operand mode the opcode does not accept.
type ErrAddressing Instruction

func (err ErrAddressing) Error() string {
	if err.Immediate {
		return f("%v: %v target has to be a memory location", ErrOperand, err.Opcode)
	}
	return f("%v: %v target has to be immediate", ErrOperand, err.Opcode)
}

func (err ErrAddressing) Unwrap() error {
	return ErrOperand
}

// ErrStep is a failure while executing the instruction at Pc.
type ErrStep struct {
	Pc          int
	Instruction Instruction
	Err         error
}

func (err *ErrStep) Error() string {
	if err.Instruction.Opcode == OP_INVALID {
		return f("pc %v %v", strconv.Itoa(err.Pc), err.Err)
	}
	return f("pc %v '%v' %v", strconv.Itoa(err.Pc), err.Instruction, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}

// ErrLimit reports an exhausted instruction budget.
type ErrLimit struct {
	Max int
}

func (err *ErrLimit) Error() string {
	return f("%v: maximum of %v instructions exceeded", ErrInstructionLimit, strconv.Itoa(err.Max))
}

func (err *ErrLimit) Unwrap() error {
	return ErrInstructionLimit
}
