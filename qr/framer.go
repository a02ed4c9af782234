package qr

// frame appends the terminator and pad codewords to b so it holds
// exactly dataCapacityBits bits, byte-aligned (spec.md §4.4):
//  1. up to 4 zero terminator bits, truncated if less space remains;
//  2. zero-pad to the next byte boundary;
//  3. fill remaining codewords alternating 0xEC, 0x11.
func frame(b *BitStream, dataCapacityBits int) {
	remaining := dataCapacityBits - b.Len()
	if remaining < 0 {
		panic("qr: framer: payload exceeds data capacity")
	}

	term := remaining
	if term > 4 {
		term = 4
	}
	if term > 0 {
		b.Append(0, term)
	}
	for b.Len()%8 != 0 && b.Len() < dataCapacityBits {
		// Append writes a fixed nonzero bit count; pad one bit of
		// the byte-alignment gap at a time.
		b.Append(0, 1)
	}

	pad := [2]byte{0xEC, 0x11}
	i := 0
	for b.Len() < dataCapacityBits {
		b.Append(uint32(pad[i%2]), 8)
		i++
	}
}
