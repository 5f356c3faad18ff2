package emulator

import (
	"strconv"

	"github.com/ezrec/simplelang/translate"
)

var f = translate.From

// ErrRuntime indicates the step of a runtime error.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %v %v", strconv.Itoa(err.Step), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
