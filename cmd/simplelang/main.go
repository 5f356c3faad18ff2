// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/term"
	"github.com/tebeka/atexit"

	"github.com/ezrec/simplelang/config"
	"github.com/ezrec/simplelang/emulator"
	"github.com/ezrec/simplelang/machine"
	"github.com/ezrec/simplelang/translate"
)

// Program run when no other is given.
const example = "LOAD #5 STORE 15 LOAD #0 EQUAL 15 JUMP #6 HALT #0 ADD #1 JUMP #3"

// console prints the run trace.
type console struct {
	failed bool
}

func (con *console) Step(iteration int, trace string) {
	fmt.Printf("%03d %v\n", iteration, trace)
}

func (con *console) Fault(err error) {
	con.failed = true
	fmt.Fprintln(os.Stderr, text.FgRed.Sprint(err))
}

// listing prints the program in the requested format.
func listing(prog *machine.Program, format string, bits int) (err error) {
	switch format {
	case "":
	case "binary":
		fmt.Print(prog.Listing(bits))
	case "latex":
		fmt.Println(prog.LaTeX(bits))
	case "table":
		fmt.Println(prog.Table(bits))
	default:
		err = fmt.Errorf("unknown listing format %q", format)
	}
	return
}

// interactive steps the emulator once per key press, until 'q' or halt.
func interactive(emu *emulator.Emulator, con *console) (err error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return
	}
	defer func() {
		tty.Restore()
		tty.Close()
	}()

	key := make([]byte, 1)
	for {
		_, err = tty.Read(key)
		if err != nil || key[0] == 'q' {
			return
		}

		iteration := emu.Ticks()
		done, trace, step_err := emu.Tick()
		if step_err != nil {
			con.Fault(step_err)
			return
		}
		if len(trace) != 0 {
			con.Step(iteration, trace)
		}
		if done {
			return
		}
	}
}

func main() {
	var script string
	var source string
	var inline string
	var memorySize int
	var maxSteps int
	var bits int
	var format string
	var skip bool
	var step bool
	var dump bool
	var dot string
	var verbose bool

	flag.StringVar(&script, "x", "", ".star run configuration to load")
	flag.StringVar(&source, "f", "", "program source file")
	flag.StringVar(&inline, "e", "", "program source text")
	flag.IntVar(&memorySize, "m", config.MEMORY_SIZE_DEFAULT, "memory size in words")
	flag.IntVar(&maxSteps, "n", config.MAX_STEPS_DEFAULT, "maximum number of steps")
	flag.IntVar(&bits, "b", config.BITS_DEFAULT, "operand bits for listings")
	flag.StringVar(&format, "l", "", "print a listing: binary, latex or table")
	flag.BoolVar(&skip, "s", false, "Do not execute the program")
	flag.BoolVar(&step, "i", false, "Interactive single stepping")
	flag.BoolVar(&dump, "state", false, "Print the final state as JSON")
	flag.StringVar(&dot, "dot", "", "write the final state as a graphviz file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		log.Printf("locale: %v", translate.Language())
	}

	var cfg *config.Config
	switch {
	case len(script) != 0:
		var err error
		cfg, err = config.Load(script, nil)
		if err != nil {
			log.Fatal(err)
		}
	case len(source) != 0:
		data, err := os.ReadFile(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		cfg = config.New(machine.Text(data))
	case len(inline) != 0:
		cfg = config.New(machine.Text(inline))
	default:
		cfg = config.New(machine.Text(example))
	}

	// Explicit flags override the run configuration.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "m":
			cfg.MemorySize = memorySize
		case "n":
			cfg.MaxSteps = maxSteps
		case "b":
			cfg.Bits = bits
		}
	})

	emu, err := emulator.NewEmulator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	emu.Verbose = verbose

	err = listing(emu.Program(), format, cfg.Bits)
	if err != nil {
		log.Fatal(err)
	}

	con := &console{}

	atexit.Register(func() {
		if skip {
			return
		}

		st := emu.State()
		fmt.Println(text.FgYellow.Sprint(st.Memory))

		if dump {
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				log.Printf("state: %v", err)
				return
			}
			fmt.Println(string(data))
		}

		if len(dot) != 0 {
			ouf, err := os.Create(dot)
			if err != nil {
				log.Printf("%v: %v", dot, err)
				return
			}
			defer ouf.Close()
			memviz.Map(ouf, &st)
		}
	})

	if !skip {
		if step {
			err = interactive(emu, con)
			if err != nil {
				atexit.Fatalf("interactive: %v", err)
			}
		} else {
			emu.Run(con)
		}
	}

	code := 0
	if con.failed {
		code = 1
	}
	atexit.Exit(code)
}
