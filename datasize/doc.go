// Package datasize models an amount of digital information as a value with a
// unit. A DataSize is stored as a count of bits, so sizes built from different
// units compare, add and subtract without manual conversion:
//
//	datasize.Bits(4).Add(datasize.Bits(4))       // 1 byte
//	datasize.Bits(10).Exceeds(datasize.Bytes(1)) // true
//	datasize.Bits(4).AsBytes()                   // 0.5
//
// Units use binary prefixes (a kilobyte is 1024 bytes). DataSize is unsigned:
// Sub fails with an UnderflowError instead of going negative, and results
// that cannot be counted in a uint64 fail with an OverflowError.
//
// Values are immutable and safe for concurrent use.
package datasize
