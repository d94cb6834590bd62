package bson

import (
	"errors"
	"testing"

	"github.com/zoobzio/flagserde"
	flagtest "github.com/zoobzio/flagserde/testing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `bson:"name"`
		Value int    `bson:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || restored.Value != original.Value {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("invalid bson"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

type record struct {
	ID      string                          `bson:"id"`
	Mode    Field[flagtest.Mode, uint8]     `bson:"mode"`
	Letters Field[flagtest.Letters, uint32] `bson:"letters"`
	Wide    Field[flagtest.Wide, uint64]    `bson:"wide"`
}

func TestField(t *testing.T) {
	c := New()

	original := record{
		ID:      "r1",
		Mode:    Field[flagtest.Mode, uint8]{Flags: flagtest.RW | 0x10},
		Letters: Field[flagtest.Letters, uint32]{Flags: flagtest.A | flagtest.B},
		Wide:    Field[flagtest.Wide, uint64]{Flags: flagtest.High | flagtest.Low},
	}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	raw := bson.Raw(data)
	if got := raw.Lookup("letters"); got.Type != bsontype.Int64 || got.Int64() != 3 {
		t.Errorf("letters = %v, want int64 3", got)
	}

	var restored record
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip = %+v, want %+v", restored, original)
	}
}

func TestField_Int32(t *testing.T) {
	data, err := bson.Marshal(bson.D{{Key: "letters", Value: int32(9)}})
	if err != nil {
		t.Fatalf("bson.Marshal() error: %v", err)
	}

	var restored record
	if err := New().Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Letters.Flags != flagtest.A|flagtest.D {
		t.Errorf("letters = %#x, want %#x", restored.Letters.Flags, flagtest.A|flagtest.D)
	}
}

func TestField_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  bson.D
		want error
	}{
		{"string in compact mode", bson.D{{Key: "letters", Value: "A"}}, flagserde.ErrInvalidToken},
		{"negative int32", bson.D{{Key: "letters", Value: int32(-1)}}, flagserde.ErrInvalidToken},
		{"too wide", bson.D{{Key: "mode", Value: int64(0x100)}}, flagserde.ErrOverflow},
		{"negative int64 for uint32", bson.D{{Key: "letters", Value: int64(-1)}}, flagserde.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bson.Marshal(tt.doc)
			if err != nil {
				t.Fatalf("bson.Marshal() error: %v", err)
			}
			var v record
			if err := New().Unmarshal(data, &v); !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadableMode(t *testing.T) {
	sink := NewSink()
	if err := flagserde.Serialize(flagtest.B|flagtest.C, flagserde.ReadableSink(sink)); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	typ, data := sink.Value()
	if typ != bsontype.String {
		t.Fatalf("readable type = %v, want string", typ)
	}

	got, err := flagserde.Deserialize[flagtest.Letters](flagserde.ReadableSource(NewSource(typ, data)))
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	if got != flagtest.B|flagtest.C {
		t.Errorf("Deserialize() = %#x, want %#x", got, flagtest.B|flagtest.C)
	}
}
