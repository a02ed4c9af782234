package qr

import "fmt"

// ECL is the error-correction level. The constants are strength-ordered
// ordinals (L=0, M=1, Q=2, H=3) that index the per-version tables; they
// are not the format-information wire values, which (ECL).bits derives.
type ECL int

const (
	ECL_L ECL = iota // ~7% recoverable
	ECL_M             // ~15%
	ECL_Q             // ~25%
	ECL_H             // ~30%
)

func (e ECL) String() string {
	return [4]string{"L", "M", "Q", "H"}[e]
}

// bits returns the 2-bit wire value used in the format-information word:
// L=0b01, M=0b00, Q=0b11, H=0b10. The apparent reordering relative to
// the L<M<Q<H strength ordering is intentional (spec.md §6); it falls
// out of XORing the strength-ordered index with 1.
func (e ECL) bits() uint32 {
	return uint32(e) ^ 1
}

// levelInfo holds the per-(version,ecl) block layout: the number of
// blocks and the number of ECC codewords each carries.
type levelInfo struct {
	blocks     int
	eccPerBlk  int
}

// versionInfo holds per-version metadata: the second alignment-pattern
// position and its stride (used to generate the full coordinate list
// in part.go's alignmentCoordinates), the total codeword count, the
// 18-bit version-info pattern (0 for v<7), and the block layout for each
// of the four ECLs.
type versionInfo struct {
	alignPos    int // top-left offset (center - 2) of the second alignment coordinate; 100 for version 1, which has none
	alignStride int
	totalBytes  int
	versionPat  int
	level       [4]levelInfo
}

// versionTable is keyed by version 1..40 (index 0 unused). Values match
// ISO/IEC 18004 Table 9, grounded on the teacher's vtab.
var versionTable = [41]versionInfo{
	{},
	{100, 100, 26, 0x0, [4]levelInfo{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},
	{16, 100, 44, 0x0, [4]levelInfo{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	{20, 100, 70, 0x0, [4]levelInfo{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	{24, 100, 100, 0x0, [4]levelInfo{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
	{28, 100, 134, 0x0, [4]levelInfo{{1, 26}, {2, 24}, {4, 18}, {4, 22}}},
	{32, 100, 172, 0x0, [4]levelInfo{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},
	{20, 16, 196, 0x7c94, [4]levelInfo{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},
	{22, 18, 242, 0x85bc, [4]levelInfo{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},
	{24, 20, 292, 0x9a99, [4]levelInfo{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},
	{26, 22, 346, 0xa4d3, [4]levelInfo{{4, 18}, {5, 26}, {8, 24}, {8, 28}}},
	{28, 24, 404, 0xbbf6, [4]levelInfo{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},
	{30, 26, 466, 0xc762, [4]levelInfo{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},
	{32, 28, 532, 0xd847, [4]levelInfo{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},
	{24, 20, 581, 0xe60d, [4]levelInfo{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},
	{24, 22, 655, 0xf928, [4]levelInfo{{6, 22}, {10, 24}, {12, 30}, {18, 24}}},
	{24, 24, 733, 0x10b78, [4]levelInfo{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},
	{28, 24, 815, 0x1145d, [4]levelInfo{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},
	{28, 26, 901, 0x12a17, [4]levelInfo{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},
	{28, 28, 991, 0x13532, [4]levelInfo{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},
	{32, 28, 1085, 0x149a6, [4]levelInfo{{8, 28}, {16, 26}, {20, 30}, {25, 28}}},
	{26, 22, 1156, 0x15683, [4]levelInfo{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},
	{24, 24, 1258, 0x168c9, [4]levelInfo{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},
	{28, 24, 1364, 0x177ec, [4]levelInfo{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},
	{26, 26, 1474, 0x18ec4, [4]levelInfo{{10, 30}, {20, 28}, {27, 30}, {32, 30}}},
	{30, 26, 1588, 0x191e1, [4]levelInfo{{12, 26}, {21, 28}, {29, 30}, {35, 30}}},
	{28, 28, 1706, 0x1afab, [4]levelInfo{{12, 28}, {23, 28}, {34, 28}, {37, 30}}},
	{32, 28, 1828, 0x1b08e, [4]levelInfo{{12, 30}, {25, 28}, {34, 30}, {40, 30}}},
	{24, 24, 1921, 0x1cc1a, [4]levelInfo{{13, 30}, {26, 28}, {35, 30}, {42, 30}}},
	{28, 24, 2051, 0x1d33f, [4]levelInfo{{14, 30}, {28, 28}, {38, 30}, {45, 30}}},
	{24, 26, 2185, 0x1ed75, [4]levelInfo{{15, 30}, {29, 28}, {40, 30}, {48, 30}}},
	{28, 26, 2323, 0x1f250, [4]levelInfo{{16, 30}, {31, 28}, {43, 30}, {51, 30}}},
	{32, 26, 2465, 0x209d5, [4]levelInfo{{17, 30}, {33, 28}, {45, 30}, {54, 30}}},
	{28, 28, 2611, 0x216f0, [4]levelInfo{{18, 30}, {35, 28}, {48, 30}, {57, 30}}},
	{32, 28, 2761, 0x228ba, [4]levelInfo{{19, 30}, {37, 28}, {51, 30}, {60, 30}}},
	{28, 24, 2876, 0x2379f, [4]levelInfo{{19, 30}, {38, 28}, {53, 30}, {63, 30}}},
	{22, 26, 3034, 0x24b0b, [4]levelInfo{{20, 30}, {40, 28}, {56, 30}, {66, 30}}},
	{26, 26, 3196, 0x2542e, [4]levelInfo{{21, 30}, {43, 28}, {59, 30}, {70, 30}}},
	{30, 26, 3362, 0x26a64, [4]levelInfo{{22, 30}, {45, 28}, {62, 30}, {74, 30}}},
	{24, 28, 3532, 0x27541, [4]levelInfo{{24, 30}, {47, 28}, {65, 30}, {77, 30}}},
	{28, 28, 3706, 0x28c69, [4]levelInfo{{25, 30}, {49, 28}, {68, 30}, {81, 30}}},
}

func dimension(v int) int { return 17 + 4*v }

func blockCount(v int, e ECL) int    { return versionTable[v].level[e].blocks }
func eccPerBlock(v int, e ECL) int   { return versionTable[v].level[e].eccPerBlk }
func totalCodewords(v int) int       { return versionTable[v].totalBytes }

// rawCapacityBits implements spec.md §4.3's closed-form total-capacity
// formula: all data modules (data + ecc + remainder), before subtracting
// space reserved for ECC codewords. It is validated against
// versionTable's ISO-table-derived totals in planner_test.go.
func rawCapacityBits(v int) int {
	capacity := (16*v+128)*v + 64
	if v >= 2 {
		k := v/7 + 2
		capacity -= (25*k-10)*k - 55
	}
	if v >= 7 {
		capacity -= 36
	}
	return capacity
}

// dataCapacityBits returns the number of bits available for the framed
// payload at version v and level e, after reserving space for ECC
// codewords: spec.md §4.3.
func dataCapacityBits(v int, e ECL) int {
	return 8 * (totalCodewords(v) - blockCount(v, e)*eccPerBlock(v, e))
}

func bufferSizeBytes(bits int) int { return (bits + 7) / 8 }

// planSizes computes the dimension and the two caller-owned buffer sizes
// for a chosen version, per spec.md §4.3 and §6.
func planSizes(v int) (dim, bufSize, scratchSize int) {
	dim = dimension(v)
	bufSize = bufferSizeBytes(dim * dim)
	scratchSize = bufferSizeBytes(rawCapacityBits(v))
	return
}

// plan is the immutable result of version/ECL selection (C3), spec.md §3.
type plan struct {
	version int
	ecl     ECL
	bits    int // dataCapacityBits(version, ecl)
}

// choosePlan implements spec.md §4.3's algorithm: pick the smallest
// version that fits the segment list at the requested ECL (or use
// fixedVersion if given), then optionally strengthen the ECL as far as
// it fits without growing the version. bitsForVersion reports the
// framed payload size at a candidate version; it varies by version
// because the character-count-indicator width changes at the v=10 and
// v=27 size-class boundaries (spec.md §4.2), so capacity cannot be
// checked against one fixed bit count.
func choosePlan(bitsForVersion func(v int) int, ecl ECL, maxVersion, fixedVersion int, optimizeECL bool) (plan, error) {
	if fixedVersion != 0 {
		if fixedVersion < 1 || fixedVersion > 40 {
			return plan{}, fmt.Errorf("%w: fixed version %d", ErrVersionOutOfRange, fixedVersion)
		}
		payloadBits := bitsForVersion(fixedVersion)
		if dataCapacityBits(fixedVersion, ecl) < payloadBits {
			return plan{}, fmt.Errorf("%w: %d bits do not fit version %d level %v", ErrCapacityExceeded, payloadBits, fixedVersion, ecl)
		}
		p := plan{version: fixedVersion, ecl: ecl, bits: dataCapacityBits(fixedVersion, ecl)}
		if optimizeECL {
			p.ecl = strengthenECL(p.version, p.ecl, payloadBits)
			p.bits = dataCapacityBits(p.version, p.ecl)
		}
		return p, nil
	}

	if maxVersion < 1 || maxVersion > 40 {
		maxVersion = 40
	}
	for v := 1; v <= maxVersion; v++ {
		payloadBits := bitsForVersion(v)
		if dataCapacityBits(v, ecl) >= payloadBits {
			chosenECL := ecl
			if optimizeECL {
				chosenECL = strengthenECL(v, ecl, payloadBits)
			}
			return plan{version: v, ecl: chosenECL, bits: dataCapacityBits(v, chosenECL)}, nil
		}
	}
	return plan{}, fmt.Errorf("%w: payload does not fit any version up to %d at level %v", ErrCapacityExceeded, maxVersion, ecl)
}

// strengthenECL adopts the highest ECL, starting from ecl, whose
// dataCapacityBits at the fixed version still covers payloadBits, per
// spec.md §4.3 step 2. Order of strength is L < M < Q < H.
func strengthenECL(version int, ecl ECL, payloadBits int) ECL {
	order := [4]ECL{ECL_L, ECL_M, ECL_Q, ECL_H}
	best := ecl
	passedStart := false
	for _, e := range order {
		if e == ecl {
			passedStart = true
		}
		if !passedStart {
			continue
		}
		if dataCapacityBits(version, e) >= payloadBits {
			best = e
		}
	}
	return best
}
