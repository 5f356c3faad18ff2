// Package config loads SimpleLang run configurations.
//
// A configuration is a Starlark script. Its globals describe the run:
//
//	program = "LOAD #5 STORE 15 HALT"  # or [("LOAD", True, 5), ...]
//	memory_size = 16
//	max_steps = 100
//	bits = 8
//	memory = {15: 3}
//	accumulator = 0
//
// Only 'program' is required.
package config

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/simplelang/machine"
)

const (
	MEMORY_SIZE_DEFAULT = 16  // Words of memory.
	MAX_STEPS_DEFAULT   = 100 // Run loop instruction budget.
	BITS_DEFAULT        = 8   // Operand width of binary listings.
)

// Predefined script globals.
var predeclared = starlark.StringDict{
	"MEMORY_SIZE_DEFAULT": starlark.MakeInt(MEMORY_SIZE_DEFAULT),
	"MAX_STEPS_DEFAULT":   starlark.MakeInt(MAX_STEPS_DEFAULT),
	"BITS_DEFAULT":        starlark.MakeInt(BITS_DEFAULT),
}

// Config describes a machine run.
type Config struct {
	Source      machine.Source // Program to run.
	MemorySize  int            // Words of memory.
	MaxSteps    int            // Run loop budget.
	Bits        int            // Operand width for listings.
	Memory      map[int]int    // Initial memory contents.
	Accumulator int            // Initial accumulator.
}

// New returns a configuration with the defaults for 'src'.
func New(src machine.Source) *Config {
	return &Config{
		Source:     src,
		MemorySize: MEMORY_SIZE_DEFAULT,
		MaxSteps:   MAX_STEPS_DEFAULT,
		Bits:       BITS_DEFAULT,
	}
}

// State returns the initial machine state of the configuration.
func (cfg *Config) State() (st machine.State, err error) {
	if cfg.MemorySize < 1 {
		err = machine.ErrMemorySize
		return
	}

	st.Memory = make([]int, cfg.MemorySize)
	st.Accumulator = cfg.Accumulator

	for index, value := range cfg.Memory {
		if index < 0 || index >= cfg.MemorySize {
			err = &machine.ErrRange{Err: ErrMemoryIndex, Value: index, Limit: cfg.MemorySize}
			return
		}
		st.Memory[index] = value
	}

	return
}

// Load executes a configuration script. If 'src' is nil, the script is read
// from 'filename'; otherwise src may be a string, []byte or io.Reader.
func Load(filename string, src any) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{Filename: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	cfg = New(nil)

	cfg.Source, err = sourceOf(globals["program"])
	if err != nil {
		return
	}

	for name, ptr := range map[string]*int{
		"memory_size": &cfg.MemorySize,
		"max_steps":   &cfg.MaxSteps,
		"bits":        &cfg.Bits,
		"accumulator": &cfg.Accumulator,
	} {
		value, ok := globals[name]
		if !ok {
			continue
		}
		*ptr, err = intOf(name, value)
		if err != nil {
			return
		}
	}

	cfg.Memory, err = memoryOf(globals["memory"])
	if err != nil {
		return
	}

	_, err = cfg.State()

	return
}

// intOf converts a Starlark int.
func intOf(name string, value starlark.Value) (n int, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = &ErrValue{Name: name, Want: "int", Type: value.Type()}
		return
	}
	n64, ok := st_int.Int64()
	if !ok {
		err = &ErrValue{Name: name, Want: "int", Type: "bigint"}
		return
	}
	n = int(n64)
	return
}

// sourceOf converts the 'program' global.
func sourceOf(value starlark.Value) (src machine.Source, err error) {
	switch value := value.(type) {
	case nil:
		err = ErrProgramMissing
	case starlark.String:
		src = machine.Text(value.GoString())
	case *starlark.List, starlark.Tuple:
		var lines machine.Lines
		iter := starlark.Iterate(value)
		defer iter.Done()
		var item starlark.Value
		for iter.Next(&item) {
			var line machine.Line
			line, err = lineOf(item)
			if err != nil {
				return
			}
			lines = append(lines, line)
		}
		src = lines
	default:
		err = &ErrValue{Name: "program", Want: "string or list", Type: value.Type()}
	}

	return
}

// lineOf converts a (mnemonic, immediate, operand) tuple.
func lineOf(value starlark.Value) (line machine.Line, err error) {
	item, ok := value.(starlark.Indexable)
	if !ok || item.Len() != 3 {
		err = ErrLineSyntax
		return
	}

	mnemonic, ok := starlark.AsString(item.Index(0))
	if !ok {
		err = ErrLineSyntax
		return
	}

	immediate, ok := item.Index(1).(starlark.Bool)
	if !ok {
		err = ErrLineSyntax
		return
	}

	operand, err := intOf("operand", item.Index(2))
	if err != nil {
		return
	}

	line = machine.Line{
		Mnemonic:  mnemonic,
		Immediate: bool(immediate),
		Operand:   operand,
	}

	return
}

// memoryOf converts the 'memory' global.
func memoryOf(value starlark.Value) (memory map[int]int, err error) {
	if value == nil {
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrValue{Name: "memory", Want: "dict", Type: value.Type()}
		return
	}

	memory = make(map[int]int, dict.Len())
	for _, kv := range dict.Items() {
		var index, word int
		index, err = intOf("memory", kv[0])
		if err != nil {
			return
		}
		word, err = intOf("memory", kv[1])
		if err != nil {
			return
		}
		memory[index] = word
	}

	return
}
