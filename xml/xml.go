// Package xml provides an XML codec and flag adapters.
//
// XML is human-readable: flag sets encode as element text or attribute values.
package xml

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/zoobzio/flagserde"
)

// xmlCodec implements flagserde.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() flagserde.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// Sink writes one element to an XML encoder.
type Sink struct {
	enc   *xml.Encoder
	start xml.StartElement
}

// NewSink returns a sink writing the element start to enc.
func NewSink(enc *xml.Encoder, start xml.StartElement) *Sink {
	return &Sink{enc: enc, start: start}
}

// HumanReadable reports true.
func (s *Sink) HumanReadable() bool { return true }

// EncodeString writes v as the element's character data.
func (s *Sink) EncodeString(v string) error {
	return s.enc.EncodeElement(v, s.start)
}

// EncodeUint writes v in decimal as the element's character data.
func (s *Sink) EncodeUint(v uint64) error {
	return s.enc.EncodeElement(v, s.start)
}

// Source reads one element from an XML decoder.
type Source struct {
	dec   *xml.Decoder
	start xml.StartElement
}

// NewSource returns a source reading the element opened by start.
func NewSource(dec *xml.Decoder, start xml.StartElement) *Source {
	return &Source{dec: dec, start: start}
}

// HumanReadable reports true.
func (s *Source) HumanReadable() bool { return true }

// DecodeString reads the element's character data.
func (s *Source) DecodeString() (string, error) {
	var v string
	if err := s.dec.DecodeElement(&v, &s.start); err != nil {
		return "", err
	}
	return v, nil
}

// DecodeUint reads the element's character data as a decimal integer.
func (s *Source) DecodeUint() (uint64, error) {
	v, err := s.DecodeString()
	if err != nil {
		return 0, err
	}
	return parseUint(v)
}

// attrSink captures one attribute value.
type attrSink struct {
	name  xml.Name
	value string
}

func (s *attrSink) HumanReadable() bool { return true }

func (s *attrSink) EncodeString(v string) error {
	s.value = v
	return nil
}

func (s *attrSink) EncodeUint(v uint64) error {
	s.value = strconv.FormatUint(v, 10)
	return nil
}

// attrSource reads one attribute value.
type attrSource struct {
	attr xml.Attr
}

func (s attrSource) HumanReadable() bool { return true }

func (s attrSource) DecodeString() (string, error) {
	return s.attr.Value, nil
}

func (s attrSource) DecodeUint() (uint64, error) {
	return parseUint(s.attr.Value)
}

// parseUint reads a decimal integer from element or attribute text.
// Surrounding whitespace is ignored in both places.
func parseUint(text string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(text), 10, 64)
}

// Field wraps a flags value so it encodes through the bridge as an element
// or, with the ",attr" option, as an attribute.
type Field[F flagserde.Flags[F, B], B flagserde.Bits] struct {
	Flags F
}

// MarshalXML implements xml.Marshaler.
func (f Field[F, B]) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return flagserde.Serialize[F, B](f.Flags, NewSink(enc, start))
}

// UnmarshalXML implements xml.Unmarshaler.
func (f *Field[F, B]) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	flags, err := flagserde.Deserialize[F, B](NewSource(dec, start))
	if err != nil {
		return err
	}
	f.Flags = flags
	return nil
}

// MarshalXMLAttr implements xml.MarshalerAttr.
func (f Field[F, B]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	sink := &attrSink{name: name}
	if err := flagserde.Serialize[F, B](f.Flags, sink); err != nil {
		return xml.Attr{}, err
	}
	return xml.Attr{Name: sink.name, Value: sink.value}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (f *Field[F, B]) UnmarshalXMLAttr(attr xml.Attr) error {
	flags, err := flagserde.Deserialize[F, B](attrSource{attr: attr})
	if err != nil {
		return err
	}
	f.Flags = flags
	return nil
}
