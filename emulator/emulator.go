// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs a SimpleLang machine from a run configuration.
package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/simplelang/config"
	"github.com/ezrec/simplelang/machine"
)

// Observer receives the progress of a run.
type Observer interface {
	// Step is called with the iteration and trace of each executed step.
	Step(iteration int, trace string)
	// Fault is called once if the run stops on an error.
	Fault(err error)
}

// Emulator state. Machine + run configuration.
type Emulator struct {
	Verbose          bool           // If set, enables verbose logging.
	*machine.Machine                // Reference to the machine simulation.
	Config           *config.Config // Run configuration.

	ticks int
}

// NewEmulator creates a new emulator, reset to the initial state of 'cfg'.
func NewEmulator(cfg *config.Config) (emu *Emulator, err error) {
	emu = &Emulator{
		Config: cfg,
	}

	err = emu.Reset()
	if err != nil {
		emu = nil
	}

	return
}

// Reset the machine to the initial state of the configuration.
func (emu *Emulator) Reset() (err error) {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	m, err := machine.New(emu.Config.Source, emu.Config.MemorySize)
	if err != nil {
		return
	}

	st, err := emu.Config.State()
	if err != nil {
		return
	}
	m.SetState(st)
	m.Verbose = emu.Verbose

	emu.Machine = m
	emu.ticks = 0

	return
}

// Ticks returns the total steps since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Tick performs a single step of the machine.
// Once the machine is halted, done is set and the machine is not stepped.
func (emu *Emulator) Tick() (done bool, trace string, err error) {
	emu.Machine.Verbose = emu.Verbose

	if emu.Machine.Halted() {
		done = true
		return
	}

	trace, err = emu.Machine.Step()
	if err != nil {
		err = &ErrRuntime{Step: emu.ticks, Err: err}
	} else {
		emu.ticks++
	}

	done = emu.Machine.Halted()

	return
}

// Run steps the machine until it halts, fails, or exhausts the configured
// step budget, reporting progress to 'obs'.
func (emu *Emulator) Run(obs Observer) (steps int) {
	emu.Machine.Verbose = emu.Verbose

	onStep := func(iteration int, trace string) {
		emu.ticks++
		obs.Step(iteration, trace)
	}

	onError := func(err error) {
		if !errors.Is(err, machine.ErrInstructionLimit) {
			err = &ErrRuntime{Step: emu.ticks, Err: err}
		}
		obs.Fault(err)
	}

	steps = emu.Machine.RunLoop(emu.Config.MaxSteps, onStep, onError)

	if emu.Verbose {
		log.Printf("emulator: %d steps, halted %v", steps, emu.Machine.Halted())
	}

	return
}
