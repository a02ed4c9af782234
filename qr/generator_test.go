package qr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gridqr/qrgen/internal/testdata"
)

func generate(t *testing.T, g *Generator) (dim int, out []byte) {
	t.Helper()
	dim, bufSize, scratchSize, err := g.PlanSizes()
	if err != nil {
		t.Fatalf("PlanSizes: %v", err)
	}
	out = make([]byte, bufSize)
	scratch := make([]byte, scratchSize)
	if err := g.Generate(out, scratch); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return dim, out
}

// Scenario 1: "HELLO WORLD", ECL=Q, mask=Auto, version=Auto -> version 1,
// dimension 21, alphanumeric mode.
func TestGenerateHelloWorld(t *testing.T) {
	g := NewGenerator(0, ECL_Q)
	if err := g.AppendSegment(ModeAutomatic, []byte("HELLO WORLD"), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	dim, _ := generate(t, g)
	if g.Version() != 1 {
		t.Errorf("version = %d, want 1", g.Version())
	}
	if dim != 21 {
		t.Errorf("dimension = %d, want 21", dim)
	}
}

// Scenario 2: "01234567", ECL=M, mask=2, version=1 -> numeric mode,
// deterministic symbol.
func TestGenerateNumericFixedMask(t *testing.T) {
	g := NewGenerator(0, ECL_M)
	g.SetFixedVersion(1)
	g.SetMask(2)
	if err := g.AppendSegment(ModeAutomatic, []byte("01234567"), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	_, out1 := generate(t, g)
	if g.Mask() != 2 {
		t.Errorf("mask = %d, want 2", g.Mask())
	}

	g2 := NewGenerator(0, ECL_M)
	g2.SetFixedVersion(1)
	g2.SetMask(2)
	if err := g2.AppendSegment(ModeAutomatic, []byte("01234567"), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	_, out2 := generate(t, g2)
	if !bytes.Equal(out1, out2) {
		t.Fatalf("idempotence: generating the same input twice produced different matrices")
	}
}

// Scenario 3: "Hello, world!" (lowercase + comma), ECL=M,
// allowUppercase=false -> Byte mode, version >= 1.
func TestGenerateMixedCaseFallsBackToByte(t *testing.T) {
	g := NewGenerator(0, ECL_M)
	if err := g.AppendSegment(ModeAutomatic, []byte("Hello, world!"), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	if got := g.segments[0].mode; got != ModeByte {
		t.Errorf("mode = %v, want Byte", got)
	}
	if _, _ = generate(t, g); g.Version() < 1 {
		t.Errorf("version = %d, want >= 1", g.Version())
	}
}

// Scenario 4/5: spec.md §8's literal byte counts — 2,953 arbitrary bytes
// at ECL L is version 40's exact Byte-mode capacity; one byte more
// exceeds it.
func TestGenerateVersion40BoundaryAndOverflow(t *testing.T) {
	g := NewGenerator(0, ECL_L)
	if err := g.AppendSegment(ModeByte, testdata.Binary(2953), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	generate(t, g)
	if g.Version() != 40 {
		t.Errorf("version for 2953-byte payload = %d, want 40", g.Version())
	}

	over := NewGenerator(0, ECL_L)
	if err := over.AppendSegment(ModeByte, testdata.Binary(2954), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	if _, _, _, err := over.PlanSizes(); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
}

// Scenario 6: empty Byte-mode text produces a minimal valid version-1
// symbol.
func TestGenerateEmptyByteSegment(t *testing.T) {
	g := NewGenerator(0, ECL_M)
	if err := g.AppendSegment(ModeByte, nil, AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	dim, _ := generate(t, g)
	if g.Version() != 1 {
		t.Errorf("version = %d, want 1", g.Version())
	}
	if dim != 21 {
		t.Errorf("dimension = %d, want 21", dim)
	}
}

func TestGenerateBufferTooSmall(t *testing.T) {
	g := NewGenerator(0, ECL_M)
	if err := g.AppendSegment(ModeAutomatic, []byte("HI"), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	_, bufSize, scratchSize, err := g.PlanSizes()
	if err != nil {
		t.Fatalf("PlanSizes: %v", err)
	}
	if err := g.Generate(make([]byte, bufSize-1), make([]byte, scratchSize)); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("err = %v, want ErrBufferTooSmall", err)
	}
}

func TestPartitionDisjointAndCovering(t *testing.T) {
	// spec.md §8: Finder, Separator, Timing, Alignment, Format, Version,
	// Content, Quiet are pairwise disjoint and cover the whole grid. We
	// verify coverage (every coordinate gets exactly one classification)
	// for a small and a large version, including one requiring version
	// info.
	for _, v := range []int{1, 7, 40} {
		dim := dimension(v)
		for y := 0; y < dim; y++ {
			for x := 0; x < dim; x++ {
				part, _ := partAt(v, x, y)
				if part == PartQuiet {
					t.Fatalf("v=%d (%d,%d) classified Quiet inside the grid", v, x, y)
				}
			}
		}
	}
}

func TestModuleAtOutsideGridIsQuiet(t *testing.T) {
	g := NewGenerator(0, ECL_M)
	if err := g.AppendSegment(ModeAutomatic, []byte("HI"), AutoLength, false); err != nil {
		t.Fatalf("AppendSegment: %v", err)
	}
	generate(t, g)
	if got := g.ModuleAt(-1, -1); got != 0 {
		t.Errorf("ModuleAt outside grid = %d, want 0", got)
	}
	if part, idx := g.PartAt(-1, -1); part != PartQuiet || idx != -1 {
		t.Errorf("PartAt outside grid = (%v,%d), want (Quiet,-1)", part, idx)
	}
}
