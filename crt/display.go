package crt

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

const (
	DISPLAY_WIDTH  = 40 // Pixels per row.
	DISPLAY_HEIGHT = 6  // Rows per frame.

	GLYPH_LIT   = '#' // Rendered lit pixel.
	GLYPH_BLANK = '.' // Rendered dark pixel.
)

// DisplayPalette is the palette used for frame images; index 1 is lit.
var DisplayPalette = color.Palette{
	color.RGBA{0x10, 0x10, 0x10, 0xff},
	color.RGBA{0x33, 0xff, 0x66, 0xff},
}

// Display is a single CRT frame, laid out row major.
type Display struct {
	Width  int
	Height int
	Pixels []bool // Lit state of each pixel.
}

// NewDisplay creates a blank display.
func NewDisplay(width, height int) (disp *Display) {
	disp = &Display{
		Width:  width,
		Height: height,
		Pixels: make([]bool, width*height),
	}

	return
}

// Len returns the number of pixels in a frame.
func (disp *Display) Len() int {
	return len(disp.Pixels)
}

// Clear blanks every pixel.
func (disp *Display) Clear() {
	clear(disp.Pixels)
}

// Set lights the pixel at a frame index.
func (disp *Display) Set(index int) (err error) {
	if index < 0 || index >= len(disp.Pixels) {
		err = ErrFrameOverflow
		return
	}

	disp.Pixels[index] = true

	return
}

// Lit reports if the pixel at column x, row y is lit.
func (disp *Display) Lit(x, y int) bool {
	if x < 0 || x >= disp.Width || y < 0 || y >= disp.Height {
		return false
	}
	return disp.Pixels[y*disp.Width+x]
}

// Render the frame as Height rows of Width glyphs, separated by newlines.
func (disp *Display) Render(lit, blank rune) string {
	var text strings.Builder

	for y := range disp.Height {
		if y > 0 {
			text.WriteByte('\n')
		}
		for x := range disp.Width {
			if disp.Lit(x, y) {
				text.WriteRune(lit)
			} else {
				text.WriteRune(blank)
			}
		}
	}

	return text.String()
}

func (disp *Display) String() string {
	return disp.Render(GLYPH_LIT, GLYPH_BLANK)
}

// Image returns the frame as a paletted image, each pixel scaled to a
// scale x scale block.
func (disp *Display) Image(scale int) *image.Paletted {
	src := image.NewPaletted(image.Rect(0, 0, disp.Width, disp.Height), DisplayPalette)
	for y := range disp.Height {
		for x := range disp.Width {
			if disp.Lit(x, y) {
				src.SetColorIndex(x, y, 1)
			}
		}
	}

	if scale <= 1 {
		return src
	}

	dst := image.NewPaletted(image.Rect(0, 0, disp.Width*scale, disp.Height*scale), DisplayPalette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}
