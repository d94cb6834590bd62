package flagserde

import "testing"

type width8 uint8
type width64 uint64

func TestWidthOf(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"uint8", widthOf[uint8](), 8},
		{"uint16", widthOf[uint16](), 16},
		{"uint32", widthOf[uint32](), 32},
		{"uint64", widthOf[uint64](), 64},
		{"named uint8", widthOf[width8](), 8},
		{"named uint64", widthOf[width64](), 64},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("widthOf[%s]() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestMaxOf(t *testing.T) {
	if got := maxOf[uint8](); got != 0xff {
		t.Errorf("maxOf[uint8]() = %#x, want 0xff", got)
	}
	if got := maxOf[uint16](); got != 0xffff {
		t.Errorf("maxOf[uint16]() = %#x, want 0xffff", got)
	}
	if got := maxOf[uint64](); got != ^uint64(0) {
		t.Errorf("maxOf[uint64]() = %#x, want all ones", got)
	}
}
