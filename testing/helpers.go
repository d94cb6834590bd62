// Package testing provides test utilities for flagserde.
package testing

import (
	"fmt"

	"github.com/zoobzio/flagserde"
)

// Letters is a four-flag test set backed by uint32.
type Letters uint32

// Letters flags.
const (
	A Letters = 1 << iota
	B
	C
	D
)

// Bits implements flagserde.Flags.
func (l Letters) Bits() uint32 { return uint32(l) }

// FromBitsRetain implements flagserde.Flags.
func (Letters) FromBitsRetain(bits uint32) Letters { return Letters(bits) }

// Definitions implements flagserde.Flags.
func (Letters) Definitions() []flagserde.Flag[uint32] {
	return []flagserde.Flag[uint32]{
		{Name: "A", Value: uint32(A)},
		{Name: "B", Value: uint32(B)},
		{Name: "C", Value: uint32(C)},
		{Name: "D", Value: uint32(D)},
	}
}

// Mode is an eight-bit test set with a composite flag declared before its parts.
type Mode uint8

// Mode flags.
const (
	Read  Mode = 0x01
	Write Mode = 0x02
	RW    Mode = Read | Write
	Exec  Mode = 0x04
)

// Bits implements flagserde.Flags.
func (m Mode) Bits() uint8 { return uint8(m) }

// FromBitsRetain implements flagserde.Flags.
func (Mode) FromBitsRetain(bits uint8) Mode { return Mode(bits) }

// Definitions implements flagserde.Flags.
func (Mode) Definitions() []flagserde.Flag[uint8] {
	return []flagserde.Flag[uint8]{
		{Name: "RW", Value: uint8(RW)},
		{Name: "READ", Value: uint8(Read)},
		{Name: "WRITE", Value: uint8(Write)},
		{Name: "EXEC", Value: uint8(Exec)},
	}
}

// Wide is a 64-bit test set with a flag in the top bit.
type Wide uint64

// Wide flags.
const (
	Low  Wide = 1
	High Wide = 1 << 63
)

// Bits implements flagserde.Flags.
func (w Wide) Bits() uint64 { return uint64(w) }

// FromBitsRetain implements flagserde.Flags.
func (Wide) FromBitsRetain(bits uint64) Wide { return Wide(bits) }

// Definitions implements flagserde.Flags.
func (Wide) Definitions() []flagserde.Flag[uint64] {
	return []flagserde.Flag[uint64]{
		{Name: "LOW", Value: uint64(Low)},
		{Name: "HIGH", Value: uint64(High)},
	}
}

// TokenKind identifies a recorded token.
type TokenKind int

// Token kinds.
const (
	Str TokenKind = iota + 1
	Uint
)

// Token is one value passed through a Recorder or Replay.
type Token struct {
	Kind TokenKind
	Str  string
	Uint uint64
}

// StrToken returns a string token.
func StrToken(s string) Token { return Token{Kind: Str, Str: s} }

// UintToken returns an unsigned integer token.
func UintToken(v uint64) Token { return Token{Kind: Uint, Uint: v} }

func (t Token) String() string {
	switch t.Kind {
	case Str:
		return fmt.Sprintf("Str(%q)", t.Str)
	case Uint:
		return fmt.Sprintf("Uint(%d)", t.Uint)
	default:
		return "Invalid"
	}
}

// Recorder is a flagserde.Sink that records tokens.
type Recorder struct {
	Readable bool
	Tokens   []Token
	Err      error // returned by every Encode call when set
}

// HumanReadable implements flagserde.Sink.
func (r *Recorder) HumanReadable() bool { return r.Readable }

// EncodeString implements flagserde.Sink.
func (r *Recorder) EncodeString(s string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Tokens = append(r.Tokens, StrToken(s))
	return nil
}

// EncodeUint implements flagserde.Sink.
func (r *Recorder) EncodeUint(v uint64) error {
	if r.Err != nil {
		return r.Err
	}
	r.Tokens = append(r.Tokens, UintToken(v))
	return nil
}

// Replay is a flagserde.Source that yields recorded tokens in order.
type Replay struct {
	Readable bool
	Tokens   []Token
}

// HumanReadable implements flagserde.Source.
func (r *Replay) HumanReadable() bool { return r.Readable }

// DecodeString implements flagserde.Source.
func (r *Replay) DecodeString() (string, error) {
	t, err := r.next(Str)
	return t.Str, err
}

// DecodeUint implements flagserde.Source.
func (r *Replay) DecodeUint() (uint64, error) {
	t, err := r.next(Uint)
	return t.Uint, err
}

func (r *Replay) next(kind TokenKind) (Token, error) {
	if len(r.Tokens) == 0 {
		return Token{}, fmt.Errorf("%w: no tokens left", flagserde.ErrInvalidToken)
	}
	t := r.Tokens[0]
	if t.Kind != kind {
		return Token{}, fmt.Errorf("%w: unexpected %s", flagserde.ErrInvalidToken, t)
	}
	r.Tokens = r.Tokens[1:]
	return t, nil
}
