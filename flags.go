package flagserde

import "unsafe"

// Bits is the fixed-width unsigned integer backing a flag set.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Flag is a single named entry in a flag set's name table.
// Value is usually a single bit but may be any mask, including zero.
type Flag[B Bits] struct {
	Name  string
	Value B
}

// Flags is implemented by any named set of bit flags backed by B.
//
// F is the implementing type itself, so the bridge can construct values
// without reflection:
//
//	type Perms uint32
//
//	const (
//	    Read Perms = 1 << iota
//	    Write
//	    Exec
//	)
//
//	func (p Perms) Bits() uint32                  { return uint32(p) }
//	func (Perms) FromBitsRetain(b uint32) Perms   { return Perms(b) }
//	func (Perms) Definitions() []flagserde.Flag[uint32] {
//	    return []flagserde.Flag[uint32]{{"READ", 1}, {"WRITE", 2}, {"EXEC", 4}}
//	}
type Flags[F any, B Bits] interface {
	// Bits returns the raw bit pattern, including bits with no name.
	Bits() B

	// FromBitsRetain builds a value whose pattern is exactly bits.
	// It is called on the zero value of F and must keep unknown bits.
	FromBitsRetain(bits B) F

	// Definitions returns the name table in declaration order.
	// The result is cached per type and must not change between calls.
	Definitions() []Flag[B]
}

// widthOf reports the width of B in bits.
func widthOf[B Bits]() int {
	var zero B
	return int(unsafe.Sizeof(zero)) * 8
}

// maxOf returns the largest value representable by B.
func maxOf[B Bits]() uint64 {
	var zero B
	return uint64(^zero)
}
