package qr

import "testing"

func TestBitStreamAppendAndBytes(t *testing.T) {
	b := NewBitStream(16)
	b.Append(0xA, 4)
	b.Append(0x5, 4)
	b.Append(0xFF, 8)

	got := b.Bytes()
	want := []byte{0xA5, 0xFF}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Bytes() = %x, want %x", got, want)
	}
}

func TestBitStreamCrossesByteBoundary(t *testing.T) {
	b := NewBitStream(24)
	b.Append(0b101, 3)
	b.Append(0b11111111, 8)
	b.Append(0b10, 2)

	if b.Len() != 13 {
		t.Fatalf("Len() = %d, want 13", b.Len())
	}
	for i, want := range []int{1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0} {
		if got := b.ReadBit(i); got != want {
			t.Errorf("ReadBit(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestBitStreamAppendPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range bitCount")
		}
	}()
	b := NewBitStream(8)
	b.Append(1, 0)
}

func TestBitStreamBytesPanicsWhenUnaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unaligned Bytes()")
		}
	}()
	b := NewBitStream(8)
	b.Append(1, 3)
	b.Bytes()
}

func TestNewBitStreamOverZeroesBuffer(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	s := newBitStreamOver(buf)
	if buf[0] != 0 || buf[1] != 0 {
		t.Fatalf("newBitStreamOver did not zero the buffer: %x", buf)
	}
	s.Append(0xFF, 8)
	if buf[0] != 0xFF {
		t.Fatalf("newBitStreamOver is not backed by the caller's buffer")
	}
}
