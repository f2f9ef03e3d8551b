package limit

import (
	"github.com/jt0/quantity/datasize"
	"github.com/jt0/quantity/gomerr"
)

// Size is a data-size Amount, e.g. storage or bandwidth quota.
type Size datasize.DataSize

const sizeMeasure Measure = "Bits"

func (s Size) Increment(a Amount) (Amount, gomerr.Gomerr) {
	other, ok := a.(Size)
	if !ok {
		return nil, measureMismatch(s, a)
	}

	sum, ge := datasize.DataSize(s).Add(datasize.DataSize(other))
	if ge != nil {
		return nil, ge
	}

	return Size(sum), nil
}

func (s Size) Decrement(a Amount) (Amount, gomerr.Gomerr) {
	other, ok := a.(Size)
	if !ok {
		return nil, measureMismatch(s, a)
	}

	difference, ge := datasize.DataSize(s).Sub(datasize.DataSize(other))
	if ge != nil {
		return nil, ge
	}

	return Size(difference), nil
}

func (s Size) Equals(a Amount) bool {
	other, ok := a.(Size)
	return ok && datasize.DataSize(s).Equals(datasize.DataSize(other))
}

func (s Size) Exceeds(a Amount) bool {
	other, ok := a.(Size)
	return ok && datasize.DataSize(s).Exceeds(datasize.DataSize(other))
}

func (Size) Zero() Amount {
	return Size(datasize.Zero)
}

func (Size) Measure() Measure {
	return sizeMeasure
}

func (s Size) String() string {
	return datasize.DataSize(s).String()
}

func (Size) convert(a amount) Amount {
	return Size(datasize.Bits(uint64(a)))
}

func (s Size) amount() amount {
	return amount(datasize.DataSize(s).Bits())
}
