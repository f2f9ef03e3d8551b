// Package gomerr provides the error framework used across the module. Errors
// carry typed fields, free-form attributes and the stack at which they were
// created, and render themselves as JSON.
//
// Specific error types embed Gomerr and are created with Build, which assigns
// its arguments to the exported fields in declaration order:
//
//	type OverflowError struct {
//		gomerr.Gomerr
//		Operation string
//		Operands  []uint64
//	}
//
//	func Overflow(operation string, operands ...uint64) *OverflowError {
//		return gomerr.Build(new(OverflowError), operation, operands).(*OverflowError)
//	}
//
// errors.Is matches on the concrete error type, so callers can test with
// errors.Is(err, new(OverflowError)) or extract the value with ErrorAs.
package gomerr
