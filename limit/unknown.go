package limit

import (
	"github.com/jt0/quantity/gomerr"
)

type unknown struct{}

var Unknown = unknown{}

const unknownMeasure Measure = "Unknown"

func (unknown) Increment(Amount) (Amount, gomerr.Gomerr) {
	return Unknown, nil
}

func (unknown) Decrement(Amount) (Amount, gomerr.Gomerr) {
	return Unknown, nil
}

func (unknown) Equals(Amount) bool {
	return false
}

func (unknown) Exceeds(Amount) bool {
	return false
}

func (unknown) Zero() Amount {
	return Unknown
}

func (unknown) Measure() Measure {
	return unknownMeasure
}

func (unknown) String() string {
	return string(unknownMeasure)
}

func (unknown) convert(amount) Amount {
	return Unknown
}

func (unknown) amount() amount {
	return 0
}
