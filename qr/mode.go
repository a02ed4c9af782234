package qr

// Mode identifies how a Segment's content is packed into the bitstream.
// Values match the ISO/IEC 18004 mode indicators (spec.md §4.2), not
// Go-idiomatic sequential constants, since they are written verbatim as
// the 4-bit mode indicator.
type Mode int

const (
	// ModeAutomatic asks AppendSegment to classify the text itself:
	// Numeric if every byte is a digit, else Alphanumeric if every byte
	// is in the alphanumeric alphabet, else Byte.
	ModeAutomatic Mode = -1

	ModeTerminator       Mode = 0x0
	ModeNumeric          Mode = 0x1
	ModeAlphanumeric     Mode = 0x2
	ModeStructuredAppend Mode = 0x3
	ModeByte             Mode = 0x4
	ModeFnc1First        Mode = 0x5
	ModeECI              Mode = 0x7
	ModeKanji            Mode = 0x8
	ModeFnc1Second       Mode = 0x9
)

func (m Mode) String() string {
	switch m {
	case ModeAutomatic:
		return "Automatic"
	case ModeTerminator:
		return "Terminator"
	case ModeNumeric:
		return "Numeric"
	case ModeAlphanumeric:
		return "Alphanumeric"
	case ModeStructuredAppend:
		return "StructuredAppend"
	case ModeByte:
		return "Byte"
	case ModeFnc1First:
		return "Fnc1First"
	case ModeECI:
		return "ECI"
	case ModeKanji:
		return "Kanji"
	case ModeFnc1Second:
		return "Fnc1Second"
	default:
		return "Mode(?)"
	}
}

// sizeClass maps a version to the character-count-indicator width band:
// 0 for versions 1-9, 1 for 10-26, 2 for 27-40.
func sizeClass(v int) int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	default:
		return 2
	}
}

// countBitWidth returns the width, in bits, of a segment's character
// count indicator at the given version, per spec.md §4.2's table.
func countBitWidth(mode Mode, v int) int {
	c := sizeClass(v)
	switch mode {
	case ModeNumeric:
		return [3]int{10, 12, 14}[c]
	case ModeAlphanumeric:
		return [3]int{9, 11, 13}[c]
	case ModeByte:
		return [3]int{8, 16, 16}[c]
	case ModeKanji:
		return [3]int{8, 10, 12}[c]
	default:
		return 0
	}
}

// AutoLength, passed as charCount to AppendSegment, means "the length of
// the null-terminated text" — here, simply len(text), since text is a
// byte slice rather than a C string.
const AutoLength = -1

// alphanumericAlphabet is the 45-symbol alphabet for Alphanumeric mode.
const alphanumericAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func alphanumericIndex(c byte) int {
	for i := 0; i < len(alphanumericAlphabet); i++ {
		if alphanumericAlphabet[i] == c {
			return i
		}
	}
	return -1
}
