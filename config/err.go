package config

import (
	"errors"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("program missing"))
	ErrLineSyntax     = errors.New(f("program line has to be (mnemonic, immediate, operand)"))
	ErrMemoryIndex    = errors.New(f("memory index out of range"))
)

// ErrValue is a configuration global of the wrong type.
type ErrValue struct {
	Name string // Global name.
	Want string // Expected type.
	Type string // Starlark type found.
}

func (err *ErrValue) Error() string {
	return f("%v: expected %v, got %v", err.Name, err.Want, err.Type)
}

// ErrConfig locates an error in a configuration script.
type ErrConfig struct {
	Filename string
	Err      error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
