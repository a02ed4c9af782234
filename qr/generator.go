package qr

import "fmt"

// Generator accumulates segments and produces a single QR symbol. It is
// the builder spec.md §9 calls for in place of the original C source's
// mutable generator-plus-linked-list: callers append segments, query
// PlanSizes for buffer sizes, then call Generate once. A Generator is
// single-use; construct a new one for the next symbol.
type Generator struct {
	ecl          ECL
	maxVersion   int
	fixedVersion int
	optimizeECL  bool
	fixedMask    int // -1 means Auto

	segments []Segment

	done bool
	dim  int
	buf  []byte
	plan plan
	mask int
}

// NewGenerator returns a Generator targeting at most maxVersion (0 or
// >40 means "up to 40") at the requested error-correction level.
func NewGenerator(maxVersion int, ecl ECL) *Generator {
	return &Generator{ecl: ecl, maxVersion: maxVersion, fixedMask: -1}
}

// SetFixedVersion pins the symbol to exactly this version instead of
// searching for the smallest one that fits. 0 clears the pin.
func (g *Generator) SetFixedVersion(v int) *Generator {
	g.fixedVersion = v
	return g
}

// SetOptimizeECL enables spec.md §4.3 step 2: after version selection,
// adopt the strongest ECL that still fits without growing the version.
func (g *Generator) SetOptimizeECL(enable bool) *Generator {
	g.optimizeECL = enable
	return g
}

// SetMask pins the XOR mask pattern to m (0-7) instead of selecting by
// penalty score. Pass -1 to restore automatic selection.
func (g *Generator) SetMask(m int) *Generator {
	g.fixedMask = m
	return g
}

// AppendSegment validates text against mode's alphabet and adds it to
// the segment list. charCount may be AutoLength to mean len(text).
func (g *Generator) AppendSegment(mode Mode, text []byte, charCount int, allowUppercaseFolding bool) error {
	if g.done {
		return fmt.Errorf("%w: generator already used", ErrInvalidOption)
	}
	s, err := newSegment(mode, text, charCount, allowUppercaseFolding)
	if err != nil {
		return err
	}
	g.segments = append(g.segments, s)
	return nil
}

// AppendECISegment adds an ECI designator segment (spec.md §4.2).
func (g *Generator) AppendECISegment(designator uint32) error {
	if g.done {
		return fmt.Errorf("%w: generator already used", ErrInvalidOption)
	}
	s, err := newECISegment(designator)
	if err != nil {
		return err
	}
	g.segments = append(g.segments, s)
	return nil
}

// payloadBits sums the framed bit length of every appended segment at
// candidate version v, per segmentBits' version-dependent count width.
func (g *Generator) payloadBits(v int) int {
	total := 0
	for _, s := range g.segments {
		total += segmentBits(v, s)
	}
	return total
}

// selectPlan runs spec.md §4.3's version/ECL search over the current
// segment list.
func (g *Generator) selectPlan() (plan, error) {
	if g.fixedMask != -1 && (g.fixedMask < 0 || g.fixedMask > 7) {
		return plan{}, fmt.Errorf("%w: mask %d out of range", ErrInvalidOption, g.fixedMask)
	}
	return choosePlan(g.payloadBits, g.ecl, g.maxVersion, g.fixedVersion, g.optimizeECL)
}

// PlanSizes resolves the version and ECL for the segments appended so
// far and reports the resulting symbol dimension and the two buffer
// sizes Generate requires. It performs no mutation and may be called
// repeatedly.
func (g *Generator) PlanSizes() (dimension, bufferSize, scratchSize int, err error) {
	p, err := g.selectPlan()
	if err != nil {
		return 0, 0, 0, err
	}
	dim, bufSize, scratchSize := planSizes(p.version)
	return dim, bufSize, scratchSize, nil
}

// Generate runs the full pipeline — bitstream assembly, framing,
// Reed-Solomon interleaving, matrix construction, mask selection, and
// format/version stamping — writing the finished symbol into out.
// scratch backs the pre-interleaving bitstream; both buffers must be at
// least as large as PlanSizes reports and are fully owned by the call.
// On CapacityExceeded neither buffer is touched (spec.md §9's Open
// Question resolution).
func (g *Generator) Generate(out, scratch []byte) error {
	if g.done {
		return fmt.Errorf("%w: generator already used", ErrInvalidOption)
	}

	p, err := g.selectPlan()
	if err != nil {
		return err
	}

	dim, bufSize, scratchSize := planSizes(p.version)
	if len(out) < bufSize {
		return fmt.Errorf("%w: output needs %d bytes, got %d", ErrBufferTooSmall, bufSize, len(out))
	}
	if len(scratch) < scratchSize {
		return fmt.Errorf("%w: scratch needs %d bytes, got %d", ErrBufferTooSmall, scratchSize, len(scratch))
	}

	stream := newBitStreamOver(scratch[:bufferSizeBytes(p.bits)])
	for _, s := range g.segments {
		encodeSegment(stream, p.version, s)
	}
	frame(stream, p.bits)

	codewords := interleave(stream.Bytes(), p.version, p.ecl)

	for i := range out[:bufSize] {
		out[i] = 0
	}
	drawFunctionPatterns(out, p.version)
	placeCodewords(out, p.version, codewords)

	mask := g.fixedMask
	if mask == -1 {
		mask = chooseMask(out, dim, p.version)
	}
	applyMask(out, p.version, mask)
	writeFormatInfo(out, p.version, p.ecl, mask)
	writeVersionInfo(out, p.version)

	g.done = true
	g.dim = dim
	g.buf = out[:bufSize]
	g.plan = p
	g.mask = mask
	return nil
}

// chooseMask applies each of the eight candidate masks to a scratch
// copy of buf, scores it with penalty, and returns the lowest-scoring
// index, ties broken toward the lower index (spec.md §8's determinism
// property).
func chooseMask(buf []byte, dim, v int) int {
	trial := make([]byte, len(buf))
	best := 0
	bestScore := -1
	for m := 0; m < 8; m++ {
		copy(trial, buf)
		applyMask(trial, v, m)
		score := penalty(trial, dim)
		if bestScore == -1 || score < bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

// ModuleAt returns 1 for a dark module, 0 for light, at (x,y). Valid
// only after a successful Generate.
func (g *Generator) ModuleAt(x, y int) int {
	if !g.done || x < 0 || x >= g.dim || y < 0 || y >= g.dim {
		return 0
	}
	if getModule(g.buf, g.dim, x, y) {
		return 1
	}
	return 0
}

// PartAt classifies (x,y) for the symbol just generated.
func (g *Generator) PartAt(x, y int) (Part, int) {
	if !g.done {
		return PartQuiet, -1
	}
	return partAt(g.plan.version, x, y)
}

// Version reports the version chosen by the most recent Generate call.
func (g *Generator) Version() int { return g.plan.version }

// ECL reports the error-correction level chosen by the most recent
// Generate call (possibly strengthened past the requested level by
// SetOptimizeECL).
func (g *Generator) ECL() ECL { return g.plan.ecl }

// Mask reports the mask pattern applied by the most recent Generate
// call.
func (g *Generator) Mask() int { return g.mask }

// Dimension reports the module width/height of the generated symbol.
func (g *Generator) Dimension() int { return g.dim }
