package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	vmsgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/flagserde"
	"github.com/zoobzio/flagserde/cbor"
	"github.com/zoobzio/flagserde/json"
	"github.com/zoobzio/flagserde/msgpack"
	flagyaml "github.com/zoobzio/flagserde/yaml"
	"gopkg.in/yaml.v3"
)

type options struct {
	flags      []string
	width      int
	from       string
	to         string
	compactIn  bool
	compactOut bool
	hex        bool
}

func (o *options) convert(input []byte) ([]byte, error) {
	switch o.width {
	case 8:
		return convert[uint8](o, input)
	case 16:
		return convert[uint16](o, input)
	case 32:
		return convert[uint32](o, input)
	case 64:
		return convert[uint64](o, input)
	default:
		return nil, fmt.Errorf("unsupported width %d", o.width)
	}
}

func convert[B flagserde.Bits](o *options, input []byte) ([]byte, error) {
	table, err := buildTable[B](o.flags)
	if err != nil {
		return nil, err
	}

	if o.hex && binary(o.from) {
		input, err = hex.DecodeString(strings.TrimSpace(string(input)))
		if err != nil {
			return nil, fmt.Errorf("decoding hex input: %w", err)
		}
	}

	bits, err := decode(table, o.from, o.compactIn, input)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", o.from, err)
	}

	output, err := encode(table, o.to, o.compactOut, bits)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", o.to, err)
	}

	if o.hex && binary(o.to) {
		return []byte(hex.EncodeToString(output) + "\n"), nil
	}
	return output, nil
}

// binary reports whether format produces bytes that --hex applies to.
func binary(format string) bool {
	return format == "cbor" || format == "msgpack"
}

// buildTable parses NAME=VALUE definitions. Values accept Go integer
// literal syntax, so 0x and 0b prefixes work.
func buildTable[B flagserde.Bits](defs []string) (*flagserde.Table[B], error) {
	width := flagserde.NewTable[B]().Width()

	flags := make([]flagserde.Flag[B], 0, len(defs))
	for _, def := range defs {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --flag %q: want NAME=VALUE", def)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(value), 0, width)
		if err != nil {
			return nil, fmt.Errorf("invalid --flag %q: %w", def, err)
		}
		flags = append(flags, flagserde.Flag[B]{Name: strings.TrimSpace(name), Value: B(v)})
	}
	return flagserde.NewTable(flags...), nil
}

func decode[B flagserde.Bits](table *flagserde.Table[B], format string, compact bool, data []byte) (B, error) {
	var src flagserde.Source
	switch format {
	case "json":
		src = json.NewSource(jsonc.ToJSON(data))
	case "yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return 0, err
		}
		src = flagyaml.NewSource(&node)
	case "cbor":
		src = cbor.NewSource(data)
	case "msgpack":
		src = msgpack.NewSource(vmsgpack.NewDecoder(bytes.NewReader(data)))
	default:
		return 0, fmt.Errorf("unknown format %q", format)
	}

	if compact {
		src = flagserde.CompactSource(src)
	}
	return table.Decode(src)
}

func encode[B flagserde.Bits](table *flagserde.Table[B], format string, compact bool, bits B) ([]byte, error) {
	wrap := func(s flagserde.Sink) flagserde.Sink {
		if compact {
			return flagserde.CompactSink(s)
		}
		return s
	}

	switch format {
	case "json":
		sink := json.NewSink()
		if err := table.Encode(bits, wrap(sink)); err != nil {
			return nil, err
		}
		return append(sink.Bytes(), '\n'), nil
	case "yaml":
		sink := flagyaml.NewSink()
		if err := table.Encode(bits, wrap(sink)); err != nil {
			return nil, err
		}
		return yaml.Marshal(sink.Value())
	case "cbor":
		sink := cbor.NewSink()
		if err := table.Encode(bits, wrap(sink)); err != nil {
			return nil, err
		}
		return sink.Bytes(), nil
	case "msgpack":
		var buf bytes.Buffer
		if err := table.Encode(bits, wrap(msgpack.NewSink(vmsgpack.NewEncoder(&buf)))); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
