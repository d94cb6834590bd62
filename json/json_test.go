package json

import (
	stdjson "encoding/json"
	"errors"
	"testing"

	"github.com/zoobzio/flagserde"
	flagtest "github.com/zoobzio/flagserde/testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
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

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("invalid json"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestMarshalFlags(t *testing.T) {
	tests := []struct {
		name  string
		value flagtest.Letters
		want  string
	}{
		{"empty", 0, `""`},
		{"union", flagtest.A | flagtest.B, `"A | B"`},
		{"unknown bits", flagtest.D | 0x100, `"D | 0x100"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalFlags(tt.value)
			if err != nil {
				t.Fatalf("MarshalFlags() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("MarshalFlags() = %s, want %s", data, tt.want)
			}

			restored, err := UnmarshalFlags[flagtest.Letters](data)
			if err != nil {
				t.Fatalf("UnmarshalFlags() error: %v", err)
			}
			if restored != tt.value {
				t.Errorf("round-trip = %#x, want %#x", restored, tt.value)
			}
		})
	}
}

func TestUnmarshalFlags_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown name", `"A | Z"`, flagserde.ErrInvalidNamedFlag},
		{"bad hex", `"0xgg"`, flagserde.ErrInvalidHexFlag},
		{"null", `null`, flagserde.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalFlags[flagtest.Letters]([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("UnmarshalFlags(%s) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}

	// A number is the wrong token for a human-readable format.
	if _, err := UnmarshalFlags[flagtest.Letters]([]byte(`3`)); err == nil {
		t.Error("UnmarshalFlags(3) should return error")
	}
}

func TestCompactMode(t *testing.T) {
	sink := NewSink()
	if err := flagserde.Serialize(flagtest.A|flagtest.B, flagserde.CompactSink(sink)); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if string(sink.Bytes()) != "3" {
		t.Errorf("compact Serialize() = %s, want 3", sink.Bytes())
	}

	got, err := flagserde.Deserialize[flagtest.Letters](flagserde.CompactSource(NewSource([]byte("4294967295"))))
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	if got != 0xffff_ffff {
		t.Errorf("Deserialize() = %#x, want 0xffffffff", got)
	}

	_, err = flagserde.Deserialize[flagtest.Letters](flagserde.CompactSource(NewSource([]byte("4294967296"))))
	if !errors.Is(err, flagserde.ErrOverflow) {
		t.Errorf("Deserialize(overflow) error = %v, want ErrOverflow", err)
	}

	if _, err := flagserde.Deserialize[flagtest.Letters](flagserde.CompactSource(NewSource([]byte("-1")))); err == nil {
		t.Error("Deserialize(-1) should return error")
	}
}

func TestField(t *testing.T) {
	type File struct {
		Path string                           `json:"path"`
		Mode Field[flagtest.Mode, uint8]      `json:"mode"`
		Wide Field[flagtest.Wide, uint64]     `json:"wide"`
		Ptr  *Field[flagtest.Letters, uint32] `json:"ptr,omitempty"`
	}

	original := File{
		Path: "/tmp/x",
		Mode: Field[flagtest.Mode, uint8]{Flags: flagtest.RW | flagtest.Exec},
		Wide: Field[flagtest.Wide, uint64]{Flags: flagtest.High | 0x2},
		Ptr:  &Field[flagtest.Letters, uint32]{Flags: flagtest.C},
	}

	data, err := stdjson.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"path":"/tmp/x","mode":"RW | EXEC","wide":"HIGH | 0x2","ptr":"C"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var restored File
	if err := stdjson.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Mode != original.Mode || restored.Wide != original.Wide || *restored.Ptr != *original.Ptr {
		t.Errorf("round-trip = %+v, want %+v", restored, original)
	}
}

func TestField_Null(t *testing.T) {
	v := struct {
		Mode Field[flagtest.Mode, uint8] `json:"mode"`
	}{Mode: Field[flagtest.Mode, uint8]{Flags: flagtest.Read}}

	if err := stdjson.Unmarshal([]byte(`{"mode":null}`), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if v.Mode.Flags != flagtest.Read {
		t.Errorf("null should leave field unchanged, got %#x", v.Mode.Flags)
	}
}
