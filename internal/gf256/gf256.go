// Package gf256 implements GF(2^8) arithmetic modulo the primitive
// polynomial x^8+x^4+x^3+x^2+1 (0x11D), as used by QR Code's
// Reed-Solomon error correction (ISO/IEC 18004 Annex A).
//
// Grounded on the exp/log table construction in AshokShau-qrcode's
// reedsolomon.go, generalized here into the divisor/remainder
// operations a version-independent encoder needs.
package gf256

// Poly is the field's primitive polynomial.
const Poly = 0x11D

var expTable [255]byte
var logTable [256]int

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[x] = i
		x <<= 1
		if x >= 256 {
			x ^= Poly
		}
	}
	logTable[0] = -1
}

// Mul multiplies a and b in GF(2^8).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[int(a)]+logTable[int(b)])%255]
}

// Exp returns 2^power in the field (the generator 2 raised to power,
// power taken mod 255).
func Exp(power int) byte {
	power = ((power % 255) + 255) % 255
	return expTable[power]
}

// Divisor returns the degree-length generator polynomial coefficients
// for Reed-Solomon over this field: the product of (x - 2^i) for
// i = 0..degree-1, as monic coefficients ordered highest-degree first
// with the leading 1 omitted (so len(result) == degree).
func Divisor(degree int) []byte {
	coeffs := make([]byte, degree)
	coeffs[degree-1] = 1
	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running polynomial by (x - root); root
		// advances through 2^0, 2^1, ....
		for j := 0; j < degree; j++ {
			coeffs[j] = Mul(coeffs[j], root)
			if j+1 < degree {
				coeffs[j] ^= coeffs[j+1]
			}
		}
		root = Mul(root, 2)
	}
	return coeffs
}

// Remainder computes the Reed-Solomon remainder of data, treated as a
// polynomial with data[0] the highest-degree coefficient, divided by
// the monic polynomial whose non-leading coefficients are divisor
// (highest-degree first, leading 1 implicit). The returned slice has
// len(divisor) coefficients, the ECC codewords.
func Remainder(data []byte, divisor []byte) []byte {
	degree := len(divisor)
	rem := make([]byte, degree)
	for _, d := range data {
		factor := d ^ rem[0]
		copy(rem, rem[1:])
		rem[degree-1] = 0
		if factor != 0 {
			for i := 0; i < degree; i++ {
				rem[i] ^= Mul(divisor[i], factor)
			}
		}
	}
	return rem
}
