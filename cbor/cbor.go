// Package cbor provides a CBOR codec and flag adapters.
//
// CBOR is compact: flag sets encode as unsigned integers (major type 0).
package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/flagserde"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): smallest integer encoding, sorted map keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// cborCodec implements flagserde.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() flagserde.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Sink collects one CBOR data item.
type Sink struct {
	data []byte
}

// NewSink returns an empty CBOR sink.
func NewSink() *Sink {
	return &Sink{}
}

// HumanReadable reports false.
func (s *Sink) HumanReadable() bool { return false }

// EncodeString stores v as a CBOR text string.
func (s *Sink) EncodeString(v string) error {
	return s.store(encMode.Marshal(v))
}

// EncodeUint stores v as a CBOR unsigned integer.
func (s *Sink) EncodeUint(v uint64) error {
	return s.store(encMode.Marshal(v))
}

func (s *Sink) store(data []byte, err error) error {
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Bytes returns the encoded data item.
func (s *Sink) Bytes() []byte {
	return s.data
}

// Source reads one CBOR data item.
type Source struct {
	data []byte
}

// NewSource returns a source over a single CBOR data item.
func NewSource(data []byte) *Source {
	return &Source{data: data}
}

// HumanReadable reports false.
func (s *Source) HumanReadable() bool { return false }

// DecodeString reads a CBOR text string.
func (s *Source) DecodeString() (string, error) {
	if err := s.rejectNull(); err != nil {
		return "", err
	}
	var v string
	if err := decMode.Unmarshal(s.data, &v); err != nil {
		return "", err
	}
	return v, nil
}

// DecodeUint reads a CBOR unsigned integer.
func (s *Source) DecodeUint() (uint64, error) {
	if err := s.rejectNull(); err != nil {
		return 0, err
	}
	var v uint64
	if err := decMode.Unmarshal(s.data, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// rejectNull fails on null and undefined, which decode as a no-op.
func (s *Source) rejectNull() error {
	if isNull(s.data) {
		return fmt.Errorf("%w: null", flagserde.ErrInvalidToken)
	}
	return nil
}

func isNull(data []byte) bool {
	return len(data) == 1 && (data[0] == 0xf6 || data[0] == 0xf7)
}

// MarshalFlags encodes flags as a CBOR unsigned integer.
func MarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](flags F) ([]byte, error) {
	sink := NewSink()
	if err := flagserde.Serialize[F, B](flags, sink); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// UnmarshalFlags decodes a CBOR unsigned integer into a flags value.
func UnmarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](data []byte) (F, error) {
	return flagserde.Deserialize[F, B](NewSource(data))
}

// Field wraps a flags value so it encodes through the bridge as a struct field.
type Field[F flagserde.Flags[F, B], B flagserde.Bits] struct {
	Flags F
}

// MarshalCBOR implements cbor.Marshaler.
func (f Field[F, B]) MarshalCBOR() ([]byte, error) {
	return MarshalFlags[F, B](f.Flags)
}

// UnmarshalCBOR implements cbor.Unmarshaler. Null and undefined leave the
// field unchanged.
func (f *Field[F, B]) UnmarshalCBOR(data []byte) error {
	if isNull(data) {
		return nil
	}
	flags, err := UnmarshalFlags[F, B](data)
	if err != nil {
		return err
	}
	f.Flags = flags
	return nil
}
