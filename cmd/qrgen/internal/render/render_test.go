package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridqr/qrgen/qr"
)

// fakeSymbol is a tiny hand-built Symbol for exercising the renderers
// without running the full qr.Generator pipeline: a single dark module
// at (0,0) surrounded by light.
type fakeSymbol struct{ dim int }

func (f fakeSymbol) Dimension() int { return f.dim }
func (f fakeSymbol) ModuleAt(x, y int) int {
	if x == 0 && y == 0 {
		return 1
	}
	return 0
}
func (f fakeSymbol) PartAt(x, y int) (qr.Part, int) {
	if x == 0 && y == 0 {
		return qr.PartFinder, -1
	}
	return qr.PartContent, -1
}

func TestDarkHonorsQuietZone(t *testing.T) {
	s := fakeSymbol{dim: 3}
	assert.True(t, dark(s, 2, 2, 2)) // module (0,0) at quiet offset 2
	assert.False(t, dark(s, 2, 0, 0), "inside the quiet zone must be light")
	assert.False(t, dark(s, 0, 10, 10), "outside the grid must be light")
}

func TestTextRenderHasExpectedDimensions(t *testing.T) {
	s := fakeSymbol{dim: 4}
	var buf bytes.Buffer
	require.NoError(t, Text(s, 0, false, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2, "4 module rows pack into 2 half-block lines")
	for _, l := range lines {
		assert.Equal(t, 8, len([]rune(l)), "4 modules at two runes each")
	}
}

func TestTextRenderInvert(t *testing.T) {
	s := fakeSymbol{dim: 2}
	var normal, inverted bytes.Buffer
	require.NoError(t, Text(s, 0, false, &normal))
	require.NoError(t, Text(s, 0, true, &inverted))
	assert.NotEqual(t, normal.String(), inverted.String())
}

func TestBMPRendersValidPNG(t *testing.T) {
	s := fakeSymbol{dim: 5}
	var buf bytes.Buffer
	require.NoError(t, BMP(s, 1, 2, false, &buf))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestSVGContainsViewBoxAndRect(t *testing.T) {
	s := fakeSymbol{dim: 3}
	var buf bytes.Buffer
	require.NoError(t, SVG(s, 0, 10, 0, 2, 2, "#000000", false, &buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "viewBox=\"0 0 30 30\"")
	assert.Contains(t, out, "rx=\"2\"", "the finder module should use finderRound")
}

func TestSixelRenderHasDECEscapes(t *testing.T) {
	s := fakeSymbol{dim: 2}
	var buf bytes.Buffer
	require.NoError(t, Sixel(s, 0, 1, false, &buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1bPq\n"))
	assert.True(t, strings.HasSuffix(out, "\x1b\\"))
}
