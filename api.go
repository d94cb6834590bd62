// Package flagserde serializes bit-flag sets through any wire format.
//
// A flag set is any type implementing Flags: it exposes its raw bit
// pattern, a constructor that keeps every bit it is given, and a name
// table. The package converts such values to and from a format without
// the type hard-coding a representation.
//
// # Encoding
//
// Serialize forwards the bit pattern to the sink. Formats that prefer
// human-readable output (JSON, YAML, XML) receive a string of flag names;
// compact formats (MessagePack, BSON, CBOR) receive the raw integer.
//
//	A | B          // A=1, B=2 set
//	A | 0x10       // A set plus an unnamed bit
//	""             // empty set
//
// # Decoding
//
// Deserialize reads the same forms back and builds the value with
// FromBitsRetain, so bits without a name survive a round trip instead of
// being masked away. Malformed text and out-of-range integers are errors.
//
// # Basic Usage
//
//	type Perms uint32
//
//	func (p Perms) Bits() uint32                { return uint32(p) }
//	func (Perms) FromBitsRetain(b uint32) Perms { return Perms(b) }
//	func (Perms) Definitions() []flagserde.Flag[uint32] {
//	    return []flagserde.Flag[uint32]{{"READ", 1}, {"WRITE", 2}}
//	}
//
//	func (p Perms) MarshalJSON() ([]byte, error) { return json.MarshalFlags(p) }
//
//	func (p *Perms) UnmarshalJSON(data []byte) (err error) {
//	    *p, err = json.UnmarshalFlags[Perms](data)
//	    return err
//	}
//
// Types that should not carry marshaler methods can use a per-format
// Field wrapper instead:
//
//	type File struct {
//	    Mode json.Field[Perms, uint32] `json:"mode"`
//	}
//
// # Format Providers
//
// The following format adapters are available as subpackages:
//
//   - json - JSON encoding (application/json), human-readable
//   - xml - XML encoding (application/xml), human-readable
//   - yaml - YAML encoding (application/yaml), human-readable
//   - msgpack - MessagePack encoding (application/msgpack), compact
//   - bson - BSON encoding (application/bson), compact
//   - cbor - CBOR encoding (application/cbor), compact
//
// ReadableSink, CompactSink, ReadableSource and CompactSource override a
// format's declared preference.
package flagserde
