package flagserde

// Format renders flags in the text form of Table.Format.
func Format[F Flags[F, B], B Bits](flags F) string {
	return TableOf[F, B]().Format(flags.Bits())
}

// Parse reads the text form of Table.Format into a flags value,
// retaining bits given as hex tokens.
func Parse[F Flags[F, B], B Bits](s string) (F, error) {
	return parseWith[F, B](s, (*Table[B]).Parse)
}

// ParseStrict reads a text form made only of flag names.
func ParseStrict[F Flags[F, B], B Bits](s string) (F, error) {
	return parseWith[F, B](s, (*Table[B]).ParseStrict)
}

// ParseTruncate reads the text form of Table.Format, dropping unnamed bits.
func ParseTruncate[F Flags[F, B], B Bits](s string) (F, error) {
	return parseWith[F, B](s, (*Table[B]).ParseTruncate)
}

func parseWith[F Flags[F, B], B Bits](s string, parse func(*Table[B], string) (B, error)) (F, error) {
	var zero F
	bits, err := parse(TableOf[F, B](), s)
	if err != nil {
		return zero, err
	}
	return zero.FromBitsRetain(bits), nil
}
