package datasize

import (
	"strconv"
	"strings"

	"github.com/jt0/quantity/gomerr"
)

// Must returns d or panics if err is non-nil. It is intended for sizes fixed
// at compile time:
//
//	var maxChunk = datasize.Must(datasize.FromMegabytes(64))
func Must(d DataSize, err error) DataSize {
	if err != nil {
		panic(err)
	}
	return d
}

// Of is the shorthand for New that panics on overflow: Of(2, Megabyte).
func Of(amount uint64, unit Unit) DataSize {
	return Must(New(amount, unit))
}

func Bits(n uint64) DataSize      { return Of(n, Bit) }
func Bytes(n uint64) DataSize     { return Of(n, Byte) }
func Kilobytes(n uint64) DataSize { return Of(n, Kilobyte) }
func Megabytes(n uint64) DataSize { return Of(n, Megabyte) }
func Gigabytes(n uint64) DataSize { return Of(n, Gigabyte) }
func Terabytes(n uint64) DataSize { return Of(n, Terabyte) }
func Petabytes(n uint64) DataSize { return Of(n, Petabyte) }
func Exabytes(n uint64) DataSize  { return Of(n, Exabyte) }

// Parse reads an amount followed by a unit, such as "4 bits", "2 megabytes"
// or "512KiB". See ParseUnit for the accepted unit tokens.
func Parse(s string) (DataSize, gomerr.Gomerr) {
	trimmed := strings.TrimSpace(s)
	split := strings.IndexFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' })
	if split <= 0 {
		return Zero, gomerr.MalformedValue("DataSize", s).WithReason("expected '<amount> <unit>'")
	}

	amount, err := strconv.ParseUint(trimmed[:split], 10, 64)
	if err != nil {
		return Zero, gomerr.MalformedValue("DataSize", s).WithReason("amount out of range").Wrap(err)
	}

	unit, ge := ParseUnit(strings.TrimSpace(trimmed[split:]))
	if ge != nil {
		return Zero, ge
	}

	return New(amount, unit)
}
