package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")

	assert.Equal("Load the value 5 into the accumulator",
		From("Load the value %v into the accumulator", 5))
	assert.Equal("machine is halted", From("machine is halted"))
	assert.Equal("'x' is not a number", From("'%v' is not a number", "x"))
}

func TestUse_Default(t *testing.T) {
	assert := assert.New(t)

	Use()
	assert.Equal("token 3", From("token %d", 3))
	assert.Equal("value -7 outside [0, 16)", From("value %d outside [0, %d)", -7, 16))
}
