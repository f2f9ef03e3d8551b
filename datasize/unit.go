package datasize

import (
	"strings"

	"github.com/jt0/quantity/gomerr"
)

// Unit is one of a closed set of binary-prefix scales. A kilobyte is 1024
// bytes; decimal prefixes are not modelled.
type Unit uint8

const (
	Bit Unit = iota
	Byte
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
	Exabyte
)

// Exabyte is the largest unit whose size in bits fits a uint64.
var bitsPerUnit = [...]uint64{
	Bit:      1,
	Byte:     8,
	Kilobyte: 8 << 10,
	Megabyte: 8 << 20,
	Gigabyte: 8 << 30,
	Terabyte: 8 << 40,
	Petabyte: 8 << 50,
	Exabyte:  8 << 60,
}

var unitNames = [...]string{
	Bit:      "bit",
	Byte:     "byte",
	Kilobyte: "kilobyte",
	Megabyte: "megabyte",
	Gigabyte: "gigabyte",
	Terabyte: "terabyte",
	Petabyte: "petabyte",
	Exabyte:  "exabyte",
}

// Case-sensitive: "b" is a bit and "B" a byte.
var unitAbbreviations = map[string]Unit{
	"b":   Bit,
	"B":   Byte,
	"KB":  Kilobyte,
	"kB":  Kilobyte,
	"KiB": Kilobyte,
	"MB":  Megabyte,
	"MiB": Megabyte,
	"GB":  Gigabyte,
	"GiB": Gigabyte,
	"TB":  Terabyte,
	"TiB": Terabyte,
	"PB":  Petabyte,
	"PiB": Petabyte,
	"EB":  Exabyte,
	"EiB": Exabyte,
}

var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit, 2*len(unitNames))
	for u, name := range unitNames {
		m[name] = Unit(u)
		m[name+"s"] = Unit(u)
	}
	return m
}()

// Units lists every supported unit from smallest to largest.
func Units() []Unit {
	units := make([]Unit, len(bitsPerUnit))
	for i := range units {
		units[i] = Unit(i)
	}
	return units
}

func (u Unit) Valid() bool {
	return int(u) < len(bitsPerUnit)
}

// Bits returns the number of bits in one u, or 0 if u is not a known unit.
func (u Unit) Bits() uint64 {
	if !u.Valid() {
		return 0
	}
	return bitsPerUnit[u]
}

func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return unitNames[u]
}

func (u Unit) plural(amount uint64) string {
	if amount == 1 {
		return u.String()
	}
	return u.String() + "s"
}

// ParseUnit accepts a unit's singular or plural name in any case ("Megabytes")
// or one of its abbreviations ("MB", "MiB").
func ParseUnit(token string) (Unit, gomerr.Gomerr) {
	if u, ok := unitAbbreviations[token]; ok {
		return u, nil
	}
	if u, ok := unitsByName[strings.ToLower(token)]; ok {
		return u, nil
	}

	return 0, gomerr.InvalidValue("unit", token, unitNames[:])
}
