package limit

import (
	"math"
	"strconv"

	"github.com/jt0/quantity/gomerr"
)

type Count uint64

const countMeasure Measure = "Count"

func (c Count) Increment(a Amount) (Amount, gomerr.Gomerr) {
	other, ok := a.(Count)
	if !ok {
		return nil, measureMismatch(c, a)
	}
	if other > math.MaxUint64-c {
		return nil, gomerr.InvalidValue("Count", other, "at most "+Count(math.MaxUint64-c).String())
	}

	return c + other, nil
}

func (c Count) Decrement(a Amount) (Amount, gomerr.Gomerr) {
	other, ok := a.(Count)
	if !ok {
		return nil, measureMismatch(c, a)
	}
	if other > c {
		return nil, gomerr.InvalidValue("Count", other, "at most "+c.String())
	}

	return c - other, nil
}

func (c Count) Equals(a Amount) bool {
	other, ok := a.(Count)
	return ok && c == other
}

func (c Count) Exceeds(a Amount) bool {
	other, ok := a.(Count)
	return ok && c > other
}

func (Count) Zero() Amount {
	return Count(0)
}

func (Count) Measure() Measure {
	return countMeasure
}

func (c Count) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

func (Count) convert(a amount) Amount {
	return Count(a)
}

func (c Count) amount() amount {
	return amount(c)
}
