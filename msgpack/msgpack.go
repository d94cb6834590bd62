// Package msgpack provides a MessagePack codec and flag adapters.
//
// MessagePack is compact: flag sets encode as unsigned integers.
package msgpack

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"github.com/zoobzio/flagserde"
)

// msgpackCodec implements flagserde.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() flagserde.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Sink writes to a MessagePack encoder.
type Sink struct {
	enc *msgpack.Encoder
}

// NewSink returns a sink writing to enc.
func NewSink(enc *msgpack.Encoder) *Sink {
	return &Sink{enc: enc}
}

// HumanReadable reports false.
func (s *Sink) HumanReadable() bool { return false }

// EncodeString writes v as a MessagePack str.
func (s *Sink) EncodeString(v string) error {
	return s.enc.EncodeString(v)
}

// EncodeUint writes v in the smallest uint encoding.
func (s *Sink) EncodeUint(v uint64) error {
	return s.enc.EncodeUint(v)
}

// Source reads from a MessagePack decoder.
type Source struct {
	dec *msgpack.Decoder
}

// NewSource returns a source reading from dec.
func NewSource(dec *msgpack.Decoder) *Source {
	return &Source{dec: dec}
}

// HumanReadable reports false.
func (s *Source) HumanReadable() bool { return false }

// DecodeString reads a MessagePack str.
func (s *Source) DecodeString() (string, error) {
	if err := s.rejectNil(); err != nil {
		return "", err
	}
	return s.dec.DecodeString()
}

// DecodeUint reads a non-negative MessagePack integer in any int encoding.
func (s *Source) DecodeUint() (uint64, error) {
	c, err := s.dec.PeekCode()
	if err != nil {
		return 0, err
	}
	switch c {
	case msgpcode.Nil:
		return 0, fmt.Errorf("%w: nil", flagserde.ErrInvalidToken)
	case msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32, msgpcode.Uint64:
		return s.dec.DecodeUint64()
	}
	if c <= msgpcode.PosFixedNumHigh {
		return s.dec.DecodeUint64()
	}

	// Signed encodings wrap silently in DecodeUint64.
	v, err := s.dec.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative integer %d", flagserde.ErrInvalidToken, v)
	}
	return uint64(v), nil
}

// rejectNil fails on nil, which the decoder would otherwise read as a zero value.
func (s *Source) rejectNil() error {
	c, err := s.dec.PeekCode()
	if err != nil {
		return err
	}
	if c == msgpcode.Nil {
		return fmt.Errorf("%w: nil", flagserde.ErrInvalidToken)
	}
	return nil
}

// MarshalFlags encodes flags as a MessagePack integer.
func MarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](flags F) ([]byte, error) {
	var buf bytes.Buffer
	if err := flagserde.Serialize[F, B](flags, NewSink(msgpack.NewEncoder(&buf))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalFlags decodes a MessagePack integer into a flags value.
func UnmarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](data []byte) (F, error) {
	return flagserde.Deserialize[F, B](NewSource(msgpack.NewDecoder(bytes.NewReader(data))))
}

// Field wraps a flags value so it encodes through the bridge as a struct field.
type Field[F flagserde.Flags[F, B], B flagserde.Bits] struct {
	Flags F
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (f Field[F, B]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return flagserde.Serialize[F, B](f.Flags, NewSink(enc))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (f *Field[F, B]) DecodeMsgpack(dec *msgpack.Decoder) error {
	flags, err := flagserde.Deserialize[F, B](NewSource(dec))
	if err != nil {
		return err
	}
	f.Flags = flags
	return nil
}

