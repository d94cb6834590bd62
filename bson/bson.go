// Package bson provides a BSON codec and flag adapters.
//
// BSON is compact: flag sets encode as int64 values carrying the raw bit
// pattern. BSON has no unsigned types, so a uint64 with the top bit set
// is stored as a negative int64 and read back unchanged.
package bson

import (
	"fmt"

	"github.com/zoobzio/flagserde"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// bsonCodec implements flagserde.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() flagserde.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// Sink captures one BSON value.
type Sink struct {
	typ  bsontype.Type
	data []byte
}

// NewSink returns an empty BSON sink.
func NewSink() *Sink {
	return &Sink{}
}

// HumanReadable reports false.
func (s *Sink) HumanReadable() bool { return false }

// EncodeString stores v as a BSON string.
func (s *Sink) EncodeString(v string) error {
	return s.store(bson.MarshalValue(v))
}

// EncodeUint stores the bit pattern of v as a BSON int64.
func (s *Sink) EncodeUint(v uint64) error {
	return s.store(bson.MarshalValue(int64(v)))
}

func (s *Sink) store(typ bsontype.Type, data []byte, err error) error {
	if err != nil {
		return err
	}
	s.typ, s.data = typ, data
	return nil
}

// Value returns the captured element type and bytes.
func (s *Sink) Value() (bsontype.Type, []byte) {
	return s.typ, s.data
}

// Source reads one BSON value.
type Source struct {
	value bson.RawValue
}

// NewSource returns a source over a single BSON value.
func NewSource(typ bsontype.Type, data []byte) *Source {
	return &Source{value: bson.RawValue{Type: typ, Value: data}}
}

// HumanReadable reports false.
func (s *Source) HumanReadable() bool { return false }

// DecodeString reads a BSON string.
func (s *Source) DecodeString() (string, error) {
	if s.value.Type != bsontype.String {
		return "", s.typeError("string")
	}
	if err := s.value.Validate(); err != nil {
		return "", err
	}
	return s.value.StringValue(), nil
}

// DecodeUint reads a BSON int64 as a bit pattern, or a non-negative int32.
func (s *Source) DecodeUint() (uint64, error) {
	switch s.value.Type {
	case bsontype.Int64:
		if err := s.value.Validate(); err != nil {
			return 0, err
		}
		return uint64(s.value.Int64()), nil
	case bsontype.Int32:
		if err := s.value.Validate(); err != nil {
			return 0, err
		}
		v := s.value.Int32()
		if v < 0 {
			return 0, fmt.Errorf("%w: negative int32 %d", flagserde.ErrInvalidToken, v)
		}
		return uint64(v), nil
	default:
		return 0, s.typeError("integer")
	}
}

func (s *Source) typeError(want string) error {
	return fmt.Errorf("%w: expected %s, got BSON %s", flagserde.ErrInvalidToken, want, s.value.Type)
}

// Field wraps a flags value so it encodes through the bridge as a document field.
type Field[F flagserde.Flags[F, B], B flagserde.Bits] struct {
	Flags F
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (f Field[F, B]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	sink := NewSink()
	if err := flagserde.Serialize[F, B](f.Flags, sink); err != nil {
		return 0, nil, err
	}
	typ, data := sink.Value()
	return typ, data, nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (f *Field[F, B]) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	flags, err := flagserde.Deserialize[F, B](NewSource(typ, data))
	if err != nil {
		return err
	}
	f.Flags = flags
	return nil
}
