package limit

import (
	"github.com/jt0/quantity/gomerr"
)

type notApplicable struct{}

// NotApplicable is the Amount of something that is not subject to a limit.
var NotApplicable = notApplicable{}

const notApplicableMeasure Measure = "NotApplicable"

func (notApplicable) Increment(Amount) (Amount, gomerr.Gomerr) {
	return NotApplicable, nil
}

func (notApplicable) Decrement(Amount) (Amount, gomerr.Gomerr) {
	return NotApplicable, nil
}

func (notApplicable) Equals(Amount) bool {
	return false
}

func (notApplicable) Exceeds(Amount) bool {
	return false
}

func (notApplicable) Zero() Amount {
	return NotApplicable
}

func (notApplicable) Measure() Measure {
	return notApplicableMeasure
}

func (notApplicable) String() string {
	return string(notApplicableMeasure)
}

func (notApplicable) convert(amount) Amount {
	return NotApplicable
}

func (notApplicable) amount() amount {
	return 0
}
