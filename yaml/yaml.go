// Package yaml provides a YAML codec and flag adapters.
//
// YAML is human-readable: flag sets encode as string scalars.
package yaml

import (
	"fmt"

	"github.com/zoobzio/flagserde"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements flagserde.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() flagserde.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Sink captures one value for the YAML encoder.
type Sink struct {
	value any
}

// NewSink returns an empty YAML sink.
func NewSink() *Sink {
	return &Sink{}
}

// HumanReadable reports true.
func (s *Sink) HumanReadable() bool { return true }

// EncodeString stores v as a string scalar.
func (s *Sink) EncodeString(v string) error {
	s.value = v
	return nil
}

// EncodeUint stores v as an integer scalar.
func (s *Sink) EncodeUint(v uint64) error {
	s.value = v
	return nil
}

// Value returns the captured value, suitable as a MarshalYAML result.
func (s *Sink) Value() any {
	return s.value
}

// Source reads one scalar node.
type Source struct {
	node *yaml.Node
}

// NewSource returns a source over node. A document node is unwrapped to its content.
func NewSource(node *yaml.Node) *Source {
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	return &Source{node: node}
}

// HumanReadable reports true.
func (s *Source) HumanReadable() bool { return true }

// DecodeString reads a scalar as a string.
func (s *Source) DecodeString() (string, error) {
	if err := s.checkScalar(); err != nil {
		return "", err
	}
	var v string
	if err := s.node.Decode(&v); err != nil {
		return "", err
	}
	return v, nil
}

// DecodeUint reads a non-negative integer scalar.
func (s *Source) DecodeUint() (uint64, error) {
	if err := s.checkScalar(); err != nil {
		return 0, err
	}
	var v uint64
	if err := s.node.Decode(&v); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Source) checkScalar() error {
	if s.node == nil {
		return fmt.Errorf("%w: missing node", flagserde.ErrInvalidToken)
	}
	if s.node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected scalar", flagserde.ErrInvalidToken, s.node.Line)
	}
	if s.node.ShortTag() == "!!null" {
		return fmt.Errorf("%w: line %d: null", flagserde.ErrInvalidToken, s.node.Line)
	}
	return nil
}

// MarshalFlags encodes flags as a YAML document.
func MarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](flags F) ([]byte, error) {
	sink := NewSink()
	if err := flagserde.Serialize[F, B](flags, sink); err != nil {
		return nil, err
	}
	return yaml.Marshal(sink.Value())
}

// UnmarshalFlags decodes a YAML document holding one scalar into a flags value.
func UnmarshalFlags[F flagserde.Flags[F, B], B flagserde.Bits](data []byte) (F, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var zero F
		return zero, err
	}
	return flagserde.Deserialize[F, B](NewSource(&node))
}

// Field wraps a flags value so it encodes through the bridge as a struct field.
type Field[F flagserde.Flags[F, B], B flagserde.Bits] struct {
	Flags F
}

// MarshalYAML implements yaml.Marshaler.
func (f Field[F, B]) MarshalYAML() (interface{}, error) {
	sink := NewSink()
	if err := flagserde.Serialize[F, B](f.Flags, sink); err != nil {
		return nil, err
	}
	return sink.Value(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field[F, B]) UnmarshalYAML(value *yaml.Node) error {
	flags, err := flagserde.Deserialize[F, B](NewSource(value))
	if err != nil {
		return err
	}
	f.Flags = flags
	return nil
}
