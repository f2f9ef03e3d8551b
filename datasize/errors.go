package datasize

import (
	"github.com/jt0/quantity/gomerr"
)

// OverflowError reports a result with more bits than a uint64 can count.
type OverflowError struct {
	gomerr.Gomerr
	Operation string
	Operands  []uint64
}

func Overflow(operation string, operands ...uint64) *OverflowError {
	return gomerr.Build(new(OverflowError), operation, operands).(*OverflowError)
}

// UnderflowError reports a subtraction whose subtrahend exceeds its minuend.
type UnderflowError struct {
	gomerr.Gomerr
	Minuend    DataSize
	Subtrahend DataSize
}

func Underflow(minuend, subtrahend DataSize) *UnderflowError {
	return gomerr.Build(new(UnderflowError), minuend, subtrahend).(*UnderflowError)
}
