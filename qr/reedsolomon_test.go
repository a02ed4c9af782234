package qr

import (
	"testing"

	"github.com/gridqr/qrgen/internal/gf256"
)

func TestInterleaveOutputLength(t *testing.T) {
	v, ecl := 5, ECL_M
	d := dataCapacityBits(v, ecl) / 8
	data := make([]byte, d)
	for i := range data {
		data[i] = byte(i)
	}
	out := interleave(data, v, ecl)
	want := totalCodewords(v)
	if len(out) != want {
		t.Fatalf("len(interleave) = %d, want %d", len(out), want)
	}
}

func TestInterleaveBlockLengthsBalanced(t *testing.T) {
	// Version 5 ECL_Q splits into blocks of uneven data length (two
	// groups per ISO table 9); the short/long lengths derived from the
	// block count must differ by at most one codeword.
	v, ecl := 5, ECL_Q
	b := blockCount(v, ecl)
	if b < 2 {
		t.Skip("version/ECL combination has only one block")
	}
	d := dataCapacityBits(v, ecl) / 8
	longLen := (d + b - 1) / b
	shortLen := d / b
	if longLen-shortLen > 1 {
		t.Fatalf("block length spread too large: long=%d short=%d", longLen, shortLen)
	}
}

func TestInterleaveSingleBlockRoundTripsThroughDivision(t *testing.T) {
	// With one block (e.g. version 1), interleave's output is simply
	// data followed by its Reed-Solomon remainder; re-dividing the
	// whole codeword by the same generator must leave a zero remainder.
	v, ecl := 1, ECL_M
	if blockCount(v, ecl) != 1 {
		t.Fatalf("expected a single block at v=%d %v", v, ecl)
	}
	d := dataCapacityBits(v, ecl) / 8
	data := make([]byte, d)
	for i := range data {
		data[i] = byte(2*i + 1)
	}
	out := interleave(data, v, ecl)
	e := eccPerBlock(v, ecl)
	if len(out) != d+e {
		t.Fatalf("len(out) = %d, want %d", len(out), d+e)
	}
	for i, b := range data {
		if out[i] != b {
			t.Errorf("codeword[%d] = %#x, want data byte %#x", i, out[i], b)
		}
	}
	for i, r := range gf256.Remainder(out, gf256.Divisor(e)) {
		if r != 0 {
			t.Errorf("remainder of codeword is nonzero at %d: %#x", i, r)
		}
	}
}
