// Package testdata generates deterministic payloads for exercising the
// qr package's segment and planner tests across its four content
// classes.
package testdata

import (
	"math/rand"
	"unicode/utf8"
)

// Numeric returns size bytes from the repeating digit pattern
// "0123456789".
func Numeric(size int) []byte {
	if size <= 0 {
		return []byte{}
	}
	const digits = "0123456789"
	out := make([]byte, size)
	for i := range out {
		out[i] = digits[i%len(digits)]
	}
	return out
}

// Alphanumeric returns size bytes from the QR alphanumeric alphabet
// (0-9, A-Z, space $ % * + - . / :).
func Alphanumeric(size int) []byte {
	if size <= 0 {
		return []byte{}
	}
	const chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	out := make([]byte, size)
	for i := range out {
		out[i] = chars[i%len(chars)]
	}
	return out
}

// UTF8 returns a prefix of the repeating mixed-script pattern
// "Hello世界Café你好Москва", truncated to a valid UTF-8 boundary. The
// pattern mixes ASCII with multi-byte runes, forcing Byte mode: most of
// it (lowercase letters and every multi-byte rune) is outside the
// alphanumeric alphabet.
func UTF8(size int) []byte {
	if size <= 0 {
		return []byte{}
	}
	const pattern = "Hello世界Café你好Москва"
	buf := make([]byte, 0, size+len(pattern))
	for len(buf) < size {
		buf = append(buf, pattern...)
	}
	out := buf[:size]
	for !utf8.Valid(out) && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Binary returns size pseudo-random bytes from a fixed seed, so the
// same size always reproduces the same payload.
func Binary(size int) []byte {
	if size <= 0 {
		return []byte{}
	}
	rng := rand.New(rand.NewSource(42))
	out := make([]byte, size)
	rng.Read(out)
	return out
}
