// Package render turns a generated qr.Generator symbol into one of the
// output formats cmd/qrgen's --output flag names: a terminal half-block
// text drawing, a raster image (the "bmp" variant, PNG-encoded), an SVG
// vector drawing, or a DEC Sixel raster.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/gridqr/qrgen/qr"
)

// Symbol is the generated-symbol view the renderers need: module
// lookup plus the structural classification SVG uses to round finder
// and alignment patterns distinctly. *qr.Generator satisfies it after
// a successful Generate call.
type Symbol interface {
	Dimension() int
	ModuleAt(x, y int) int
	PartAt(x, y int) (qr.Part, int)
}

func dark(s Symbol, quiet, x, y int) bool {
	dim := s.Dimension()
	mx, my := x-quiet, y-quiet
	if mx < 0 || mx >= dim || my < 0 || my >= dim {
		return false
	}
	return s.ModuleAt(mx, my) == 1
}

// Text renders s as Unicode half-block characters, two module rows per
// terminal line, grounded on dfbb-im2code's renderQR.
func Text(s Symbol, quiet int, invert bool, w io.Writer) error {
	dim := s.Dimension()
	total := dim + 2*quiet
	bw := bufio.NewWriter(w)

	at := func(x, y int) bool {
		v := dark(s, quiet, x, y)
		if invert {
			v = !v
		}
		return v
	}

	for row := 0; row < total; row += 2 {
		for col := 0; col < total; col++ {
			top := at(col, row)
			bot := false
			if row+1 < total {
				bot = at(col, row+1)
			}
			switch {
			case top && bot:
				bw.WriteString("██")
			case top && !bot:
				bw.WriteString("▀▀")
			case !top && bot:
				bw.WriteString("▄▄")
			default:
				bw.WriteString("  ")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// BMP rasterizes s at scale pixels per module into a PNG (cmd/qrgen's
// "bmp" output variant is a raster image, written as PNG to avoid a
// hand-rolled BMP container), grounded on AshokShau-qrcode's WritePNG.
func BMP(s Symbol, quiet, scale int, invert bool, w io.Writer) error {
	if scale < 1 {
		scale = 1
	}
	dim := s.Dimension() + 2*quiet
	px := dim * scale

	img := image.NewPaletted(image.Rect(0, 0, px, px), color.Palette{color.White, color.Black})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			v := dark(s, quiet, x, y)
			if invert {
				v = !v
			}
			if !v {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(x*scale+dx, y*scale+dy, 1)
				}
			}
		}
	}
	return png.Encode(w, img)
}

// SVG writes s as a scalable vector drawing: one <rect> per dark
// module, sized by point, with optional corner rounding for ordinary
// modules (round), finder patterns (finderRound), and alignment
// patterns (alignmentRound). No pack example imports a third-party SVG
// encoder, so this is hand-built XML over a strings.Builder.
func SVG(s Symbol, quiet int, point, round, finderRound, alignmentRound float64, col string, invert bool, w io.Writer) error {
	if point <= 0 {
		point = 10
	}
	dim := s.Dimension() + 2*quiet
	side := float64(dim) * point

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %g %g\">\n", side, side)
	fmt.Fprintf(&b, "<rect width=\"%g\" height=\"%g\" fill=\"#ffffff\"/>\n", side, side)

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			v := dark(s, quiet, x, y)
			if invert {
				v = !v
			}
			if !v {
				continue
			}
			r := round
			if part := partAt(s, quiet, x, y); part == qr.PartFinder {
				r = finderRound
			} else if part == qr.PartAlignment {
				r = alignmentRound
			}
			fmt.Fprintf(&b, "<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" rx=\"%g\" ry=\"%g\" fill=\"%s\"/>\n",
				float64(x)*point, float64(y)*point, point, point, r, r, col)
		}
	}
	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func partAt(s Symbol, quiet, x, y int) qr.Part {
	dim := s.Dimension()
	mx, my := x-quiet, y-quiet
	if mx < 0 || mx >= dim || my < 0 || my >= dim {
		return qr.PartQuiet
	}
	part, _ := s.PartAt(mx, my)
	return part
}

// sixel palette indices used below: 0 = white, 1 = black.
const sixelWhite, sixelBlack = 0, 1

// Sixel writes s as a DEC Sixel raster at scale pixels per module,
// following the six-rows-per-sixel-band encoding DEC terminals expect.
// No pack example imports a third-party Sixel encoder, so the escape
// sequence is built directly over a strings.Builder.
func Sixel(s Symbol, quiet, scale int, invert bool, w io.Writer) error {
	if scale < 1 {
		scale = 1
	}
	dim := s.Dimension() + 2*quiet
	px := dim * scale

	at := func(x, y int) bool {
		v := dark(s, quiet, x/scale, y/scale)
		if invert {
			v = !v
		}
		return v
	}

	var b strings.Builder
	b.WriteString("\x1bPq\n")
	fmt.Fprintf(&b, "#%d;2;100;100;100#%d;2;0;0;0\n", sixelWhite, sixelBlack)

	for bandTop := 0; bandTop < px; bandTop += 6 {
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(sixelBlack))
		for x := 0; x < px; x++ {
			var bits byte
			for r := 0; r < 6; r++ {
				y := bandTop + r
				if y < px && at(x, y) {
					bits |= 1 << uint(r)
				}
			}
			b.WriteByte(byte('?' + bits))
		}
		b.WriteString("-\n")
	}
	b.WriteString("\x1b\\")
	_, err := io.WriteString(w, b.String())
	return err
}
