package qr

// Part classifies a single module coordinate. Every coordinate belongs
// to exactly one Part; Parts are determined solely by (version, x, y)
// and never change during encoding (spec.md §3).
//
// Function patterns carry negative values and Quiet is zero, mirroring
// original_source/qrcode.h's qrcode_part_t — it lets a caller test
// "is this a function pattern" with a single part <= PartFinder
// comparison.
type Part int

const (
	PartAlignment  Part = -4
	PartTiming     Part = -3
	PartSeparator  Part = -2
	PartFinder     Part = -1
	PartQuiet      Part = 0
	PartContent    Part = 1
	PartFormat     Part = 2
	PartVersion    Part = 3
)

func (p Part) String() string {
	switch p {
	case PartAlignment:
		return "Alignment"
	case PartTiming:
		return "Timing"
	case PartSeparator:
		return "Separator"
	case PartFinder:
		return "Finder"
	case PartQuiet:
		return "Quiet"
	case PartContent:
		return "Content"
	case PartFormat:
		return "Format"
	case PartVersion:
		return "Version"
	default:
		return "Part(?)"
	}
}

// finderOrigins returns the upper-left corner of each of the three
// 7x7 finder footprints for a symbol of the given dimension.
func finderOrigins(dim int) [3][2]int {
	return [3][2]int{
		{0, 0},
		{dim - 7, 0},
		{0, dim - 7},
	}
}

func inSquare(x, y, ox, oy, size int) bool {
	return x >= ox && x < ox+size && y >= oy && y < oy+size
}

// alignmentCoordinates returns the 1-dimensional list of alignment
// pattern center coordinates for version v (empty for v==1); the first
// value is always 6. Both axes use the same list (spec.md §4.6).
func alignmentCoordinates(v int) []int {
	if v <= 1 {
		return nil
	}
	siz := dimension(v)
	info := versionTable[v]
	var coords []int
	for x := 4; x+5 < siz; {
		coords = append(coords, x+2)
		if x == 4 {
			x = info.alignPos
		} else {
			x += info.alignStride
		}
	}
	return coords
}

// alignmentOverlapsFinder reports whether a 5x5 alignment footprint
// centered at (cx,cy) would overlap any of the three finder+separator
// regions, using the same corner tests the teacher's vplan uses.
func alignmentOverlapsFinder(cx, cy, dim int) bool {
	x, y := cx-2, cy-2
	return (x < 7 && y < 7) ||
		(x < 7 && y+5 >= dim-7) ||
		(x+5 >= dim-7 && y < 7)
}

// alignmentCenters returns the set of valid alignment-pattern centers
// for version v, excluding any that would overlap a finder.
func alignmentCenters(v int) [][2]int {
	coords := alignmentCoordinates(v)
	dim := dimension(v)
	var centers [][2]int
	for _, cx := range coords {
		for _, cy := range coords {
			if !alignmentOverlapsFinder(cx, cy, dim) {
				centers = append(centers, [2]int{cx, cy})
			}
		}
	}
	return centers
}

// formatCoordinate describes one of the 15 format-info bit positions,
// written twice (ab, both (x,y) pairs for bit index i).
type formatCoordinate struct {
	a, b [2]int
}

// formatCoordinates returns the 15 (first-copy, second-copy) coordinate
// pairs for format-information bits 0..14, in the write order spec.md
// §4.6 item 4 describes, grounded on the teacher's vplan/fplan loops.
func formatCoordinates(dim int) [15]formatCoordinate {
	var fc [15]formatCoordinate
	for i := 0; i < 15; i++ {
		var a [2]int
		switch {
		case i < 6:
			a = [2]int{8, i}
		case i < 8:
			a = [2]int{8, i + 1}
		case i < 9:
			a = [2]int{7, 8}
		default:
			a = [2]int{14 - i, 8}
		}
		var b [2]int
		switch {
		case i < 8:
			b = [2]int{dim - 1 - i, 8}
		default:
			b = [2]int{8, dim - 1 - (14 - i)}
		}
		fc[i] = formatCoordinate{a: a, b: b}
	}
	return fc
}

// formatDarkModule is the single permanently-dark module adjacent to
// the format-info strips (spec.md §4.6 item 4).
func formatDarkModule(dim int) (x, y int) { return 8, dim - 8 }

// versionCoordinate describes one of the 18 version-info bit positions
// for v >= 7 (bit index = col*3+row within each 3x6 rectangle).
type versionCoordinate struct {
	a, b [2]int
}

// versionCoordinates returns the 18 (bottom-left-rect, top-right-rect)
// coordinate pairs for version-information bits 0..17, grounded on the
// teacher's vplan version-pattern loop.
func versionCoordinates(dim int) [18]versionCoordinate {
	var vc [18]versionCoordinate
	i := 0
	for col := 0; col < 6; col++ {
		for row := 0; row < 3; row++ {
			vc[i] = versionCoordinate{
				a: [2]int{col, dim - 11 + row},
				b: [2]int{dim - 11 + row, col},
			}
			i++
		}
	}
	return vc
}

// partAt returns the Part and, for Format/Version, the associated
// format/version bit index for coordinate (x,y) at version v. index is
// -1 for function patterns, Quiet, Content, and the single dark format
// module.
func partAt(v, x, y int) (Part, int) {
	dim := dimension(v)
	if x < 0 || x >= dim || y < 0 || y >= dim {
		return PartQuiet, -1
	}

	origins := finderOrigins(dim)
	for _, o := range origins {
		if inSquare(x, y, o[0], o[1], 7) {
			return PartFinder, -1
		}
	}
	for _, o := range origins {
		if inSquare(x, y, o[0]-1, o[1]-1, 9) {
			return PartSeparator, -1
		}
	}

	for _, c := range alignmentCenters(v) {
		if inSquare(x, y, c[0]-2, c[1]-2, 5) {
			return PartAlignment, -1
		}
	}

	if x == 6 && y >= 8 && y <= dim-9 {
		return PartTiming, -1
	}
	if y == 6 && x >= 8 && x <= dim-9 {
		return PartTiming, -1
	}

	dx, dy := formatDarkModule(dim)
	if x == dx && y == dy {
		return PartFormat, -1
	}
	for i, fc := range formatCoordinates(dim) {
		if (x == fc.a[0] && y == fc.a[1]) || (x == fc.b[0] && y == fc.b[1]) {
			return PartFormat, i
		}
	}

	if v >= 7 {
		for i, vcd := range versionCoordinates(dim) {
			if (x == vcd.a[0] && y == vcd.a[1]) || (x == vcd.b[0] && y == vcd.b[1]) {
				return PartVersion, i
			}
		}
	}

	return PartContent, -1
}
