package qr

// penalty scores a fully-masked symbol using the four ISO/IEC 18004
// rules (spec.md §4.7). Lower is better. Grounded on the teacher's
// Code.Penalty, extended with the N2 (2x2 block) rule spec.md's Open
// Question requires and the teacher leaves out of its single-pass scan.
func penalty(buf []byte, dim int) int {
	total := 0
	total += runPenalty(buf, dim)
	total += blockPenalty(buf, dim)
	total += finderPenalty(buf, dim)
	total += balancePenalty(buf, dim)
	return total
}

// runPenalty implements N1: for every row and column, every run of
// r >= 5 same-color modules adds 3 + (r - 5).
func runPenalty(buf []byte, dim int) int {
	p := 0
	for y := 0; y < dim; y++ {
		p += runsIn(func(i int) bool { return getModule(buf, dim, i, y) }, dim)
	}
	for x := 0; x < dim; x++ {
		p += runsIn(func(i int) bool { return getModule(buf, dim, x, i) }, dim)
	}
	return p
}

func runsIn(at func(int) bool, n int) int {
	p := 0
	run := 1
	prev := at(0)
	for i := 1; i < n; i++ {
		cur := at(i)
		if cur == prev {
			run++
		} else {
			if run >= 5 {
				p += 3 + (run - 5)
			}
			run = 1
			prev = cur
		}
	}
	if run >= 5 {
		p += 3 + (run - 5)
	}
	return p
}

// blockPenalty implements N2: every (possibly overlapping) 2x2 block of
// same-color modules adds 3.
func blockPenalty(buf []byte, dim int) int {
	p := 0
	for y := 0; y < dim-1; y++ {
		for x := 0; x < dim-1; x++ {
			c := getModule(buf, dim, x, y)
			if getModule(buf, dim, x+1, y) == c &&
				getModule(buf, dim, x, y+1) == c &&
				getModule(buf, dim, x+1, y+1) == c {
				p += 3
			}
		}
	}
	return p
}

// finderPenalty implements N3: every row and column run matching the
// 1:1:3:1:1 dark/light/dark/light/dark ratio (either polarity) adds 40.
func finderPenalty(buf []byte, dim int) int {
	p := 0
	for y := 0; y < dim; y++ {
		p += finderRuns(func(i int) bool { return getModule(buf, dim, i, y) }, dim)
	}
	for x := 0; x < dim; x++ {
		p += finderRuns(func(i int) bool { return getModule(buf, dim, x, i) }, dim)
	}
	return p
}

// finderRuns scans a single row/column for the 1:1:3:1:1 pattern as
// seven consecutive modules with a unit length of one module (the base
// check spec.md §4.7 and §9's Open Question call sufficient, without the
// stricter surrounding-quiet-zone requirement).
func finderRuns(at func(int) bool, n int) int {
	p := 0
	for i := 0; i+6 < n; i++ {
		if matchesFinderPattern(at, i, true) || matchesFinderPattern(at, i, false) {
			p += 40
		}
	}
	return p
}

// matchesFinderPattern tests modules [i, i+6] against dark:light:dark
// run lengths 1:1:3:1:1 (polarity inverted when dark is false).
func matchesFinderPattern(at func(int) bool, i int, dark bool) bool {
	want := [7]bool{dark, !dark, dark, dark, dark, !dark, dark}
	for k := 0; k < 7; k++ {
		if at(i+k) != want[k] {
			return false
		}
	}
	return true
}

// balancePenalty implements N4: the dark module percentage is rounded
// to the nearest whole percent, then 10 points are added for every full
// 5% it deviates from 50%.
func balancePenalty(buf []byte, dim int) int {
	dark := 0
	total := dim * dim
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if getModule(buf, dim, x, y) {
				dark++
			}
		}
	}
	percent := (100*dark + total/2) / total
	diff := percent - 50
	if diff < 0 {
		diff = -diff
	}
	return (diff / 5) * 10
}
