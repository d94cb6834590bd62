package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/flagserde"
	"github.com/zoobzio/flagserde/cbor"
	"github.com/zoobzio/flagserde/json"
	"github.com/zoobzio/flagserde/msgpack"
	flagtest "github.com/zoobzio/flagserde/testing"
)

var sample = flagtest.A | flagtest.C | 0x100

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = flagserde.Format(sample)
	}
}

func BenchmarkParse(b *testing.B) {
	text := flagserde.Format(sample)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flagserde.Parse[flagtest.Letters](text)
	}
}

func BenchmarkSerialize_Readable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = flagserde.Serialize(sample, &flagtest.Recorder{Readable: true})
	}
}

func BenchmarkSerialize_Compact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = flagserde.Serialize(sample, &flagtest.Recorder{})
	}
}

func BenchmarkDeserialize_Readable(b *testing.B) {
	tokens := []flagtest.Token{flagtest.StrToken(flagserde.Format(sample))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flagserde.Deserialize[flagtest.Letters](&flagtest.Replay{Readable: true, Tokens: tokens})
	}
}

func BenchmarkDeserialize_Compact(b *testing.B) {
	tokens := []flagtest.Token{flagtest.UintToken(uint64(sample))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flagserde.Deserialize[flagtest.Letters](&flagtest.Replay{Tokens: tokens})
	}
}

func BenchmarkJSON_MarshalFlags(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = json.MarshalFlags(sample)
	}
}

func BenchmarkMsgpack_MarshalFlags(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = msgpack.MarshalFlags(sample)
	}
}

func BenchmarkCBOR_UnmarshalFlags(b *testing.B) {
	data, _ := cbor.MarshalFlags(sample)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbor.UnmarshalFlags[flagtest.Letters](data)
	}
}

type document struct {
	Name  string                               `json:"name"`
	Flags json.Field[flagtest.Letters, uint32] `json:"flags"`
}

func BenchmarkEncode_Document(b *testing.B) {
	ctx := context.Background()
	c := json.New()
	doc := document{Name: "bench", Flags: json.Field[flagtest.Letters, uint32]{Flags: sample}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flagserde.Encode(ctx, c, doc)
	}
}

func BenchmarkTableOf_Cached(b *testing.B) {
	_ = flagserde.TableOf[flagtest.Letters]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flagserde.TableOf[flagtest.Letters]()
	}
}
