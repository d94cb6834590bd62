package flagserde

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEmptyFlag indicates a text form contained an empty token, e.g. "A | | B".
	ErrEmptyFlag = errors.New("encountered empty flag")

	// ErrInvalidNamedFlag indicates a text token did not match any flag name.
	ErrInvalidNamedFlag = errors.New("unrecognized named flag")

	// ErrInvalidHexFlag indicates a 0x-prefixed token was not valid hex for the bit width.
	ErrInvalidHexFlag = errors.New("invalid hex flag")

	// ErrOverflow indicates a numeric value does not fit the bit width.
	ErrOverflow = errors.New("value out of range")

	// ErrInvalidToken indicates a source held a token of the wrong kind,
	// such as null or a sequence where a string or integer was expected.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ParseError represents a failure to parse the text form of a flag set.
// It wraps a sentinel error with the offending token.
type ParseError struct {
	Err   error  // Underlying sentinel error (ErrEmptyFlag, ErrInvalidNamedFlag, ErrInvalidHexFlag)
	Token string // Token that failed, without surrounding whitespace
	Cause error  // Original error from the hex parser, if any
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s `%s`: %v", e.Err.Error(), e.Token, e.Cause)
	}
	return fmt.Sprintf("%s `%s`", e.Err.Error(), e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError represents a numeric bit pattern wider than the flag set.
type RangeError struct {
	Value uint64 // Decoded value
	Width int    // Width of the flag set in bits
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d does not fit in %d bits", ErrOverflow.Error(), e.Value, e.Width)
}

func (e *RangeError) Unwrap() error {
	return ErrOverflow
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the sentinel and the codec's own error, so
// errors.Is matches ErrUnmarshal as well as a ParseError raised by a flag field.
func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newParseError creates a ParseError for a rejected token.
func newParseError(sentinel error, token string, cause error) error {
	return &ParseError{
		Err:   sentinel,
		Token: token,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
