package flagserde

// Sink receives one encoded bits value.
//
// HumanReadable reports the format's preference: text formats such as
// JSON and YAML return true, binary formats such as MessagePack return false.
type Sink interface {
	HumanReadable() bool
	EncodeString(s string) error
	EncodeUint(v uint64) error
}

// Source yields one encoded bits value.
type Source interface {
	HumanReadable() bool
	DecodeString() (string, error)
	DecodeUint() (uint64, error)
}

// Encode writes bits to sink as text when the sink prefers human-readable
// output and as the raw integer otherwise.
func (t *Table[B]) Encode(bits B, sink Sink) error {
	if sink.HumanReadable() {
		return sink.EncodeString(t.Format(bits))
	}
	return sink.EncodeUint(uint64(bits))
}

// Decode reads bits from src, as text when the source is human-readable
// and as a raw integer otherwise. Integers wider than B are rejected.
func (t *Table[B]) Decode(src Source) (B, error) {
	if src.HumanReadable() {
		s, err := src.DecodeString()
		if err != nil {
			return 0, err
		}
		return t.Parse(s)
	}

	v, err := src.DecodeUint()
	if err != nil {
		return 0, err
	}
	if v > maxOf[B]() {
		return 0, &RangeError{Value: v, Width: widthOf[B]()}
	}
	return B(v), nil
}

// Serialize writes the bits of flags to sink. Any unknown bits are retained.
func Serialize[F Flags[F, B], B Bits](flags F, sink Sink) error {
	return TableOf[F, B]().Encode(flags.Bits(), sink)
}

// Deserialize reads a flags value from src. Any unknown bits are retained.
func Deserialize[F Flags[F, B], B Bits](src Source) (F, error) {
	var zero F
	bits, err := TableOf[F, B]().Decode(src)
	if err != nil {
		return zero, err
	}
	return zero.FromBitsRetain(bits), nil
}

// ReadableSink forces sink to report a human-readable preference.
func ReadableSink(sink Sink) Sink {
	return modeSink{Sink: sink, readable: true}
}

// CompactSink forces sink to report a compact preference.
func CompactSink(sink Sink) Sink {
	return modeSink{Sink: sink, readable: false}
}

// ReadableSource forces src to report a human-readable preference.
func ReadableSource(src Source) Source {
	return modeSource{Source: src, readable: true}
}

// CompactSource forces src to report a compact preference.
func CompactSource(src Source) Source {
	return modeSource{Source: src, readable: false}
}

type modeSink struct {
	Sink
	readable bool
}

func (s modeSink) HumanReadable() bool { return s.readable }

type modeSource struct {
	Source
	readable bool
}

func (s modeSource) HumanReadable() bool { return s.readable }
