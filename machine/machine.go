package machine

import (
	"fmt"
	"log"
	"slices"
)

// State is a copy of the machine registers and memory.
type State struct {
	Memory         []int `json:"memory"`
	Accumulator    int   `json:"acc"`
	ProgramCounter int   `json:"program_counter"`
}

// Clone returns a deep copy of the state.
func (st State) Clone() State {
	st.Memory = slices.Clone(st.Memory)
	return st
}

// Machine is the simulation context for a SimpleLang machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	program *Program
	memory  []int
	acc     int
	pc      int
	halted  bool
}

// New creates a machine running the program from 'src', with 'size' words
// of zeroed memory.
func New(src Source, size int) (m *Machine, err error) {
	if size < 1 {
		err = ErrMemorySize
		return
	}

	prog, err := src.program()
	if err != nil {
		return
	}

	m = &Machine{
		program: prog,
		memory:  make([]int, size),
	}

	return
}

// Program returns a copy of the program.
func (m *Machine) Program() *Program {
	return m.program.Clone()
}

// Halted returns true if the machine is halted.
func (m *Machine) Halted() bool {
	return m.halted
}

// Accumulator returns the accumulator.
func (m *Machine) Accumulator() int {
	return m.acc
}

// ProgramCounter returns the index of the next instruction.
func (m *Machine) ProgramCounter() int {
	return m.pc
}

// Memory returns a copy of the memory.
func (m *Machine) Memory() []int {
	return slices.Clone(m.memory)
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return State{
		Memory:         slices.Clone(m.memory),
		Accumulator:    m.acc,
		ProgramCounter: m.pc,
	}
}

// SetState replaces the memory, accumulator and program counter with a copy
// of 'st'. The halted flag is unchanged.
func (m *Machine) SetState(st State) {
	st = st.Clone()

	m.memory = st.Memory
	m.acc = st.Accumulator
	m.pc = st.ProgramCounter
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("%6s: %03d\n", "pc", m.pc)
	text += fmt.Sprintf("%6s: %05d\n", "acc", m.acc)
	text += fmt.Sprintf("%6s: %v\n", "halted", m.halted)
	text += fmt.Sprintf("%6s: %v\n", "memory", m.memory)
	return
}

// Step executes a single instruction, and returns its trace.
//
// Any error other than ErrAlreadyHalted halts the machine.
func (m *Machine) Step() (trace string, err error) {
	if m.halted {
		err = ErrAlreadyHalted
		return
	}

	pc := m.pc
	var inst Instruction

	defer func() {
		if err != nil {
			m.halted = true
			err = &ErrStep{Pc: pc, Instruction: inst, Err: err}
			if m.Verbose {
				log.Printf("machine: halted: %v", err)
			}
		}
	}()

	if pc < 0 || pc >= len(m.program.Instructions) {
		err = &ErrRange{Err: ErrProgramCounter, Value: pc, Limit: len(m.program.Instructions)}
		return
	}

	inst = m.program.Instructions[pc]
	if !inst.Opcode.Valid() {
		err = ErrInstruction
		return
	}

	if m.Verbose {
		log.Printf("%03d: %v", pc, inst)
	}

	value := inst.Operand
	if !inst.Immediate {
		if inst.Operand < 0 || inst.Operand >= len(m.memory) {
			err = &ErrRange{Err: ErrOperand, Value: inst.Operand, Limit: len(m.memory)}
			return
		}
		value = m.memory[inst.Operand]
	}

	if !inst.Opcode.Accepts(inst.Immediate) {
		err = ErrAddressing(inst)
		return
	}

	trace = inst.trace(pc, m.acc)

	next_pc := pc + 1

	switch inst.Opcode {
	case OP_LOAD:
		m.acc = value
	case OP_STORE:
		m.memory[inst.Operand] = m.acc
	case OP_ADD:
		m.acc += value
	case OP_SUB:
		m.acc -= value
	case OP_EQUAL:
		if m.acc == value {
			// Skip the next instruction.
			next_pc++
		}
	case OP_JUMP:
		next_pc = inst.Operand
	case OP_HALT:
		m.halted = true
	}

	m.pc = next_pc

	return
}

// RunLoop steps the machine until it halts, fails, or 'max' steps have run.
//
// onStep is called with the iteration and trace of each executed step.
// onError is called once with the first step failure, or with an ErrLimit
// if the machine is still running when the budget runs out.
// Returns the number of executed steps.
func (m *Machine) RunLoop(max int, onStep func(iteration int, trace string), onError func(err error)) (n int) {
	for n = 0; n < max && !m.halted; n++ {
		trace, err := m.Step()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			break
		}
		if onStep != nil {
			onStep(n, trace)
		}
	}

	if !m.halted {
		if m.Verbose {
			log.Printf("machine: limit of %d steps reached", max)
		}
		if onError != nil {
			onError(&ErrLimit{Max: max})
		}
	}

	return
}
