package qr

// Matrix construction (C6): function patterns, serpentine codeword
// placement, masking, and format/version stamping, in the write order
// spec.md §4.6 fixes: function patterns -> codewords -> mask selection
// -> mask XOR -> format -> version.
//
// The output buffer is row-major, MSB-first, bits packed contiguously
// (spec.md §6): for (x,y), offset = y*dim+x, bit = buf[offset>>3] at
// position 7-(offset&7). This differs from the teacher's Code, which
// byte-aligns each row (Code.Stride); the packed layout is spec.md's
// explicit contract so callers can compute any module's bit position
// from dimension alone.

func setBit(buf []byte, offset int) {
	buf[offset>>3] |= 1 << uint(7-offset&7)
}

func getBit(buf []byte, offset int) bool {
	return buf[offset>>3]&(1<<uint(7-offset&7)) != 0
}

func moduleOffset(dim, x, y int) int { return y*dim + x }

func setModule(buf []byte, dim, x, y int, dark bool) {
	if dark {
		setBit(buf, moduleOffset(dim, x, y))
	}
}

func getModule(buf []byte, dim, x, y int) bool {
	return getBit(buf, moduleOffset(dim, x, y))
}

// drawFunctionPatterns stamps the finders, separators (implicitly light
// — left unset), timing strip, and alignment patterns into buf. It does
// not touch format/version/content regions.
func drawFunctionPatterns(buf []byte, v int) {
	dim := dimension(v)

	for _, o := range finderOrigins(dim) {
		drawFinder(buf, dim, o[0], o[1])
	}

	for i := 0; i < dim; i++ {
		if i%2 == 0 {
			setModule(buf, dim, i, 6, true)
			setModule(buf, dim, 6, i, true)
		}
	}

	for _, c := range alignmentCenters(v) {
		drawAlignment(buf, dim, c[0], c[1])
	}
}

// drawFinder draws one 7x7 finder (concentric dark/light/dark rings) at
// upper-left (ox,oy). The separator is light and left unset.
func drawFinder(buf []byte, dim, ox, oy int) {
	for dy := 0; dy < 7; dy++ {
		for dx := 0; dx < 7; dx++ {
			dark := dx == 0 || dx == 6 || dy == 0 || dy == 6 ||
				(dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4)
			if dark {
				setModule(buf, dim, ox+dx, oy+dy, true)
			}
		}
	}
}

// drawAlignment draws one 5x5 alignment pattern (dark border, light
// gap, dark center) centered at (cx,cy).
func drawAlignment(buf []byte, dim, cx, cy int) {
	ox, oy := cx-2, cy-2
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			dark := dx == 0 || dx == 4 || dy == 0 || dy == 4 || (dx == 2 && dy == 2)
			if dark {
				setModule(buf, dim, ox+dx, oy+dy, true)
			}
		}
	}
}

// placeCodewords walks the serpentine path spec.md §4.6 item 2
// describes, writing codewords (MSB-first) into every Content module
// and skipping every other module.
func placeCodewords(buf []byte, v int, codewords []byte) {
	dim := dimension(v)
	bitIdx := 0
	totalBits := len(codewords) * 8
	nextBit := func() bool {
		if bitIdx >= totalBits {
			return false
		}
		b := codewords[bitIdx/8]&(1<<uint(7-bitIdx%8)) != 0
		bitIdx++
		return b
	}

	upward := true
	for x := dim; x > 0; {
		if upward {
			for y := dim - 1; y >= 0; y-- {
				writeIfContent(buf, dim, v, x-1, y, nextBit)
				writeIfContent(buf, dim, v, x-2, y, nextBit)
			}
		} else {
			for y := 0; y < dim; y++ {
				writeIfContent(buf, dim, v, x-1, y, nextBit)
				writeIfContent(buf, dim, v, x-2, y, nextBit)
			}
		}
		x -= 2
		if x == 7 { // shift left of the vertical timing column
			x--
		}
		upward = !upward
	}
}

func writeIfContent(buf []byte, dim, v, x, y int, nextBit func() bool) {
	if x < 0 || x >= dim || y < 0 || y >= dim {
		return
	}
	part, _ := partAt(v, x, y)
	if part != PartContent {
		return
	}
	if nextBit() {
		setModule(buf, dim, x, y, true)
	}
}

// maskPredicate implements the eight XOR mask predicates, spec.md §4.6
// item 3.
func maskPredicate(m, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return (x*y)%2+(x*y)%3 == 0
	case 6:
		return ((x*y)%2+(x*y)%3)%2 == 0
	case 7:
		return ((x*y)%3+(x+y)%2)%2 == 0
	default:
		return false
	}
}

// applyMask XORs mask m over every Content module of buf.
func applyMask(buf []byte, v, m int) {
	dim := dimension(v)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			part, _ := partAt(v, x, y)
			if part != PartContent {
				continue
			}
			if maskPredicate(m, x, y) {
				offset := moduleOffset(dim, x, y)
				buf[offset>>3] ^= 1 << uint(7-offset&7)
			}
		}
	}
}

// writeFormatInfo stamps the 15-bit format word (spec.md §4.6 item 4):
// ecl[2] | mask[3], plus a 10-bit BCH(15,5) remainder with generator
// 0x537, XORed with mask 0x5412, written twice plus the single
// permanently-dark module.
func writeFormatInfo(buf []byte, v int, ecl ECL, mask int) {
	dim := dimension(v)
	data := ecl.bits()<<13 | uint32(mask)<<10

	const formatPoly = 0x537
	rem := data
	for i := 14; i >= 10; i-- {
		if rem&(1<<uint(i)) != 0 {
			rem ^= formatPoly << uint(i-10)
		}
	}
	fb := (data | rem) ^ 0x5412

	for i, fc := range formatCoordinates(dim) {
		if (fb>>uint(i))&1 == 1 {
			setModule(buf, dim, fc.a[0], fc.a[1], true)
			setModule(buf, dim, fc.b[0], fc.b[1], true)
		}
	}
	dx, dy := formatDarkModule(dim)
	setModule(buf, dim, dx, dy, true)
}

// writeVersionInfo stamps the 18-bit version word (spec.md §4.6 item
// 5) for v >= 7: 6 data bits plus a 12-bit Golay(18,6) remainder with
// generator 0x1F25, written into the two 3x6 rectangles.
func writeVersionInfo(buf []byte, v int) {
	if v < 7 {
		return
	}
	dim := dimension(v)
	data := uint32(v)

	const golayPoly = 0x1F25
	rem := data << 12
	for i := 17; i >= 12; i-- {
		if rem&(1<<uint(i)) != 0 {
			rem ^= golayPoly << uint(i-12)
		}
	}
	vb := data<<12 | rem

	for i, vc := range versionCoordinates(dim) {
		if (vb>>uint(i))&1 == 1 {
			setModule(buf, dim, vc.a[0], vc.a[1], true)
			setModule(buf, dim, vc.b[0], vc.b[1], true)
		}
	}
}
