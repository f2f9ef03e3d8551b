package datasize

import (
	"cmp"
	"math"
	"math/bits"
	"strconv"

	"github.com/jt0/quantity/gomerr"
)

// DataSize is an amount of information, held as a count of bits. Values built
// from different units that describe the same number of bits are equal, so
// == may be used directly.
type DataSize struct {
	bits uint64
}

// Zero is the empty DataSize.
var Zero DataSize

// New returns amount of unit. It fails with an OverflowError if the total
// number of bits cannot be held in a uint64.
func New(amount uint64, unit Unit) (DataSize, gomerr.Gomerr) {
	if !unit.Valid() {
		return Zero, gomerr.InvalidValue("unit", unit, unitNames[:])
	}

	hi, lo := bits.Mul64(amount, unit.Bits())
	if hi != 0 {
		return Zero, Overflow("New", amount, unit.Bits()).AddAttribute("Unit", unit.String())
	}

	return DataSize{lo}, nil
}

func FromBits(n uint64) (DataSize, gomerr.Gomerr) {
	return DataSize{n}, nil
}

func FromBytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Byte)
}

func FromKilobytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Kilobyte)
}

func FromMegabytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Megabyte)
}

func FromGigabytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Gigabyte)
}

func FromTerabytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Terabyte)
}

func FromPetabytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Petabyte)
}

func FromExabytes(n uint64) (DataSize, gomerr.Gomerr) {
	return New(n, Exabyte)
}

// Bits returns the exact number of bits.
func (d DataSize) Bits() uint64 {
	return d.bits
}

func (d DataSize) IsZero() bool {
	return d.bits == 0
}

// In returns d measured in unit. The result is fractional when d is not a
// whole number of units: 4 bits is 0.5 bytes. In returns NaN for an unknown
// unit.
func (d DataSize) In(unit Unit) float64 {
	per := unit.Bits()
	if per == 0 {
		return math.NaN()
	}

	// Splitting keeps whole-unit values exact up to 2^53 units.
	return float64(d.bits/per) + float64(d.bits%per)/float64(per)
}

func (d DataSize) AsBits() float64      { return d.In(Bit) }
func (d DataSize) AsBytes() float64     { return d.In(Byte) }
func (d DataSize) AsKilobytes() float64 { return d.In(Kilobyte) }
func (d DataSize) AsMegabytes() float64 { return d.In(Megabyte) }
func (d DataSize) AsGigabytes() float64 { return d.In(Gigabyte) }
func (d DataSize) AsTerabytes() float64 { return d.In(Terabyte) }
func (d DataSize) AsPetabytes() float64 { return d.In(Petabyte) }
func (d DataSize) AsExabytes() float64  { return d.In(Exabyte) }

func (d DataSize) Equals(other DataSize) bool {
	return d.bits == other.bits
}

// Compare returns -1, 0 or +1 depending on whether d is smaller than, equal
// to, or larger than other.
func (d DataSize) Compare(other DataSize) int {
	return cmp.Compare(d.bits, other.bits)
}

func (d DataSize) Exceeds(other DataSize) bool {
	return d.bits > other.bits
}

func (d DataSize) Less(other DataSize) bool {
	return d.bits < other.bits
}

func (d DataSize) Add(other DataSize) (DataSize, gomerr.Gomerr) {
	sum, carry := bits.Add64(d.bits, other.bits, 0)
	if carry != 0 {
		return Zero, Overflow("Add", d.bits, other.bits)
	}

	return DataSize{sum}, nil
}

// Sub returns d minus other. DataSize is unsigned, so subtracting a larger
// value fails with an UnderflowError rather than wrapping.
func (d DataSize) Sub(other DataSize) (DataSize, gomerr.Gomerr) {
	if other.bits > d.bits {
		return Zero, Underflow(d, other)
	}

	return DataSize{d.bits - other.bits}, nil
}

// MaxValue returns the largest unsigned integer that can be stored in d's
// bits. A size of more than 64 bits yields an OverflowError.
func (d DataSize) MaxValue() (uint64, gomerr.Gomerr) {
	switch {
	case d.bits > 64:
		return 0, Overflow("MaxValue", d.bits)
	case d.bits == 64:
		return math.MaxUint64, nil
	default:
		return 1<<d.bits - 1, nil
	}
}

// Fits reports whether value can be stored in size's bits.
func Fits(value uint64, size DataSize) bool {
	return uint64(bits.Len64(value)) <= size.bits
}

// String renders d in the largest unit that divides it exactly, e.g.
// "1 byte", "3 kilobytes" or "12 bits". The result is accepted by Parse.
func (d DataSize) String() string {
	unit := Bit
	for u := Exabyte; u > Bit; u-- {
		if d.bits >= u.Bits() && d.bits%u.Bits() == 0 {
			unit = u
			break
		}
	}

	amount := d.bits / unit.Bits()
	return strconv.FormatUint(amount, 10) + " " + unit.plural(amount)
}
