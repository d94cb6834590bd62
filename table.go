package flagserde

// Table is the name table of a flag set backed by B.
//
// A Table is immutable after construction and safe for concurrent use.
type Table[B Bits] struct {
	flags  []Flag[B]
	byName map[string]B
	all    B
}

// NewTable builds a table from flag definitions in declaration order.
// Definitions with an empty name take part in All but are never rendered
// or matched by name. When names repeat, the first definition wins.
func NewTable[B Bits](flags ...Flag[B]) *Table[B] {
	t := &Table[B]{
		flags:  make([]Flag[B], len(flags)),
		byName: make(map[string]B, len(flags)),
	}
	copy(t.flags, flags)
	for _, f := range t.flags {
		t.all |= f.Value
		if f.Name == "" {
			continue
		}
		if _, dup := t.byName[f.Name]; !dup {
			t.byName[f.Name] = f.Value
		}
	}
	return t
}

// Flags returns a copy of the definitions in declaration order.
func (t *Table[B]) Flags() []Flag[B] {
	out := make([]Flag[B], len(t.flags))
	copy(out, t.flags)
	return out
}

// All returns the union of every defined flag value.
func (t *Table[B]) All() B {
	return t.all
}

// Width returns the width of B in bits.
func (*Table[B]) Width() int {
	return widthOf[B]()
}

// FromName returns the value of the named flag.
func (t *Table[B]) FromName(name string) (B, bool) {
	if name == "" {
		return 0, false
	}
	v, ok := t.byName[name]
	return v, ok
}

// Truncate clears every bit not covered by a defined flag.
func (t *Table[B]) Truncate(bits B) B {
	return bits & t.all
}

// Names returns the names of the flags set in bits, in declaration order,
// and the bits left over that no yielded name accounts for.
//
// A flag is yielded when its whole value is contained in bits and it still
// covers at least one bit not claimed by an earlier flag, so composite
// flags declared before their parts absorb them.
func (t *Table[B]) Names(bits B) ([]string, B) {
	var names []string
	remaining := bits
	for _, f := range t.flags {
		if remaining == 0 {
			break
		}
		if f.Name == "" {
			continue
		}
		if bits&f.Value == f.Value && remaining&f.Value != 0 {
			names = append(names, f.Name)
			remaining &^= f.Value
		}
	}
	return names, remaining
}
