// Package json provides a JSON codec and flag adapters.
//
// JSON is human-readable: flag sets encode as strings such as "A | B".
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/zoobzio/flagserde"
)

// jsonCodec implements flagserde.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() flagserde.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Sink collects one JSON value.
type Sink struct {
	data []byte
}

// NewSink returns an empty JSON sink.
func NewSink() *Sink {
	return &Sink{}
}

// HumanReadable reports true.
func (s *Sink) HumanReadable() bool { return true }

// EncodeString stores v as a JSON string.
func (s *Sink) EncodeString(v string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// EncodeUint stores v as a JSON number.
func (s *Sink) EncodeUint(v uint64) error {
	s.data = strconv.AppendUint(nil, v, 10)
	return nil
}

// Bytes returns the encoded value.
func (s *Sink) Bytes() []byte {
	return s.data
}

// Source reads one JSON value.
type Source struct {
	data []byte
}

// NewSource returns a source over a single JSON value.
func NewSource(data []byte) *Source {
	return &Source{data: data}
}

// HumanReadable reports true.
func (s *Source) HumanReadable() bool { return true }

// DecodeString reads a JSON string.
func (s *Source) DecodeString() (string, error) {
	if err := s.rejectNull(); err != nil {
		return "", err
	}
	var v string
	if err := json.Unmarshal(s.data, &v); err != nil {
		return "", err
	}
	return v, nil
}

// DecodeUint reads a non-negative JSON integer.
func (s *Source) DecodeUint() (uint64, error) {
	if err := s.rejectNull(); err != nil {
		return 0, err
	}
	var v uint64
	if err := json.Unmarshal(s.data, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// rejectNull fails on null, which encoding/json would otherwise accept as a no-op.
func (s *Source) rejectNull() error {
	if isNull(s.data) {
		return fmt.Errorf("%w: null", flagserde.ErrInvalidToken)
	}
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// MarshalFlags encodes flags as a JSON string.
func MarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](flags F) ([]byte, error) {
	sink := NewSink()
	if err := flagserde.Serialize[F, B](flags, sink); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// UnmarshalFlags decodes a JSON string into a flags value.
func UnmarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](data []byte) (F, error) {
	return flagserde.Deserialize[F, B](NewSource(data))
}

// Field wraps a flags value so it encodes through the bridge as a struct field.
type Field[F flagserde.Flags[F, B], B flagserde.Bits] struct {
	Flags F
}

// MarshalJSON implements json.Marshaler.
func (f Field[F, B]) MarshalJSON() ([]byte, error) {
	return MarshalFlags[F, B](f.Flags)
}

// UnmarshalJSON implements json.Unmarshaler. A null leaves the field unchanged.
func (f *Field[F, B]) UnmarshalJSON(data []byte) error {
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
