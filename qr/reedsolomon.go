package qr

import "github.com/gridqr/qrgen/internal/gf256"

// interleave splits data into blocks per spec.md §4.5, computes each
// block's ECC codewords, and returns the final interleaved codeword
// stream the matrix placement step consumes.
//
// Let D = len(data), B = blockCount(v,ecl), E = eccPerBlock(v,ecl), and
// s = B*ceil(D/B) - D short blocks (each carrying floor(D/B) data
// codewords; the first s blocks in index order are short, the rest
// carry ceil(D/B)). Each block gets its own E-codeword ECC using the
// same degree-E divisor.
func interleave(data []byte, v int, ecl ECL) []byte {
	b := blockCount(v, ecl)
	e := eccPerBlock(v, ecl)
	d := len(data)

	longLen := (d + b - 1) / b
	shortLen := d / b
	numShort := b*longLen - d

	blocks := make([][]byte, b)
	off := 0
	for i := 0; i < b; i++ {
		n := longLen
		if i < numShort {
			n = shortLen
		}
		blocks[i] = data[off : off+n]
		off += n
	}

	divisor := gf256.Divisor(e)
	ecc := make([][]byte, b)
	for i, blk := range blocks {
		ecc[i] = gf256.Remainder(blk, divisor)
	}

	out := make([]byte, 0, d+b*e)
	for i := 0; i < longLen; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < e; i++ {
		for _, c := range ecc {
			out = append(out, c[i])
		}
	}
	return out
}
