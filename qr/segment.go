package qr

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// Segment is an encoded fragment of the payload with one mode. Segments
// form an ordered list inside a Generator; each must validate against
// its mode's alphabet before it can be appended.
type Segment struct {
	mode      Mode
	text      []byte // source bytes, already upper-folded if requested
	charCount int     // semantic character count: digits, alphanumeric chars, bytes, or kanji pairs
	eciValue  uint32  // only meaningful when mode == ModeECI
}

// classifyAutomatic implements spec.md §4.2's automatic mode selection:
// classify the entire text, Numeric if every byte is a digit, else
// Alphanumeric if every byte is in the alphanumeric set (honoring
// allowUppercase), else Byte. Sub-string mode switching is not
// attempted (spec.md §9 Open Question: documented limitation).
func classifyAutomatic(text []byte, allowUppercase bool) Mode {
	allDigits := true
	for _, c := range text {
		if c < '0' || c > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ModeNumeric
	}
	allAlnum := true
	for _, c := range text {
		uc := c
		if allowUppercase && c >= 'a' && c <= 'z' {
			uc = c - 'a' + 'A'
		}
		if alphanumericIndex(uc) < 0 {
			allAlnum = false
			break
		}
	}
	if allAlnum {
		return ModeAlphanumeric
	}
	return ModeByte
}

// newSegment validates text against mode's alphabet (folding lowercase
// to uppercase for Alphanumeric only if allowUppercase is set) and
// returns the resulting Segment.
func newSegment(mode Mode, text []byte, charCount int, allowUppercase bool) (Segment, error) {
	if charCount == AutoLength {
		charCount = len(text)
	}
	if charCount < 0 || charCount > len(text) {
		return Segment{}, fmt.Errorf("%w: charCount %d out of range for %d-byte text", ErrInvalidSegment, charCount, len(text))
	}
	text = text[:charCount]

	if mode == ModeAutomatic {
		mode = classifyAutomatic(text, allowUppercase)
	}

	switch mode {
	case ModeNumeric:
		for _, c := range text {
			if c < '0' || c > '9' {
				return Segment{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidSegment, text)
			}
		}
		return Segment{mode: mode, text: text, charCount: len(text)}, nil

	case ModeAlphanumeric:
		folded := make([]byte, len(text))
		for i, c := range text {
			if allowUppercase && c >= 'a' && c <= 'z' {
				c = c - 'a' + 'A'
			}
			if alphanumericIndex(c) < 0 {
				return Segment{}, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidSegment, text)
			}
			folded[i] = c
		}
		return Segment{mode: mode, text: folded, charCount: len(folded)}, nil

	case ModeByte:
		return Segment{mode: mode, text: text, charCount: len(text)}, nil

	case ModeKanji:
		k, err := japanese.ShiftJIS.NewEncoder().Bytes(text)
		if err != nil || len(k)%2 != 0 {
			return Segment{}, fmt.Errorf("%w: %q is not valid kanji text", ErrInvalidSegment, text)
		}
		return Segment{mode: mode, text: text, charCount: len(k) / 2}, nil

	case ModeTerminator:
		return Segment{mode: mode}, nil

	default:
		return Segment{}, fmt.Errorf("%w: unsupported mode %v", ErrInvalidSegment, mode)
	}
}

// newECISegment builds an ECI designator segment for the given
// assignment number, validated against the three ranges spec.md §4.2
// names (0-127, 128-16383, 16384-999999).
func newECISegment(designator uint32) (Segment, error) {
	if designator > 999999 {
		return Segment{}, fmt.Errorf("%w: ECI designator %d out of range", ErrInvalidSegment, designator)
	}
	return Segment{mode: ModeECI, eciValue: designator}, nil
}

// segmentBits returns the number of bits segment occupies at version v:
// mode-indicator (4) + count-width(version, mode) + payload bits.
func segmentBits(v int, s Segment) int {
	switch s.mode {
	case ModeNumeric:
		full := s.charCount / 3
		rem := s.charCount % 3
		bits := full * 10
		switch rem {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return 4 + countBitWidth(s.mode, v) + bits

	case ModeAlphanumeric:
		pairs := s.charCount / 2
		bits := pairs * 11
		if s.charCount%2 == 1 {
			bits += 6
		}
		return 4 + countBitWidth(s.mode, v) + bits

	case ModeByte:
		return 4 + countBitWidth(s.mode, v) + 8*s.charCount

	case ModeKanji:
		return 4 + countBitWidth(s.mode, v) + 13*s.charCount

	case ModeECI:
		return 4 + eciDesignatorBits(s.eciValue)

	case ModeTerminator:
		return 4

	default:
		return 0
	}
}

func eciDesignatorBits(v uint32) int {
	switch {
	case v <= 127:
		return 8
	case v <= 16383:
		return 16
	default:
		return 24
	}
}

// encodeSegment appends segment's bits — mode indicator, count
// indicator, payload — to b at version v.
func encodeSegment(b *BitStream, v int, s Segment) {
	switch s.mode {
	case ModeNumeric:
		b.Append(uint32(ModeNumeric), 4)
		b.Append(uint32(s.charCount), countBitWidth(s.mode, v))
		text := s.text
		var i int
		for i = 0; i+3 <= len(text); i += 3 {
			w := uint32(text[i]-'0')*100 + uint32(text[i+1]-'0')*10 + uint32(text[i+2]-'0')
			b.Append(w, 10)
		}
		switch len(text) - i {
		case 1:
			b.Append(uint32(text[i]-'0'), 4)
		case 2:
			w := uint32(text[i]-'0')*10 + uint32(text[i+1]-'0')
			b.Append(w, 7)
		}

	case ModeAlphanumeric:
		b.Append(uint32(ModeAlphanumeric), 4)
		b.Append(uint32(s.charCount), countBitWidth(s.mode, v))
		text := s.text
		var i int
		for i = 0; i+2 <= len(text); i += 2 {
			w := uint32(alphanumericIndex(text[i]))*45 + uint32(alphanumericIndex(text[i+1]))
			b.Append(w, 11)
		}
		if i < len(text) {
			b.Append(uint32(alphanumericIndex(text[i])), 6)
		}

	case ModeByte:
		b.Append(uint32(ModeByte), 4)
		b.Append(uint32(s.charCount), countBitWidth(s.mode, v))
		for _, c := range s.text {
			b.Append(uint32(c), 8)
		}

	case ModeKanji:
		b.Append(uint32(ModeKanji), 4)
		b.Append(uint32(s.charCount), countBitWidth(s.mode, v))
		k, _ := japanese.ShiftJIS.NewEncoder().Bytes(s.text)
		for i := 0; i+1 < len(k); i += 2 {
			w := uint32(k[i]&^0xc0)*0xc0 + uint32(k[i+1]) - 0x100
			b.Append(w, 13)
		}

	case ModeECI:
		b.Append(uint32(ModeECI), 4)
		ev := s.eciValue
		switch {
		case ev <= 127:
			b.Append(ev, 8)
		case ev <= 16383:
			b.Append(0x8000|ev, 16)
		default:
			b.Append(0xc00000|ev, 24)
		}

	case ModeTerminator:
		b.Append(0, 4)
	}
}
