package limit

import (
	"github.com/jt0/quantity/gomerr"
)

// Amount is a quantity tracked against a limit. Amounts of different
// measures cannot be combined.
type Amount interface {
	Increment(Amount) (Amount, gomerr.Gomerr)
	Decrement(Amount) (Amount, gomerr.Gomerr)
	Equals(Amount) bool
	Exceeds(Amount) bool
	Zero() Amount
	Measure() Measure

	convert(amount) Amount
	amount() amount
}

type Measure string

// amount is the measure-less form in which a TrackingLimiter stores values.
type amount uint64

func measureMismatch(expected, actual Amount) *gomerr.BadValueError {
	return gomerr.InvalidValue("Measure", actual.Measure(), expected.Measure())
}
