// canvas.go — Fixed-size raster surface with append-only text draws and
// PNG serialization.
package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawOp records one text draw. X/Y are the top-left of the line in canvas
// coordinates; the baseline offset is applied when rasterising.
type DrawOp struct {
	X, Y  int
	Role  Role
	Color color.Color
	Text  string
}

// Canvas is the raster surface for one label: Width x Height pixels on a
// white background, mutated only through DrawText. Draws accumulate; nothing
// is ever erased or blended away.
type Canvas struct {
	img *image.RGBA
	ops []DrawOp
}

// NewCanvas creates a white label canvas at the fixed stock dimensions.
func NewCanvas() *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// DrawText renders s with face at (x, y), where y is the top of the line.
// The op is recorded alongside the pixels so callers can inspect what was
// composed without decoding the raster.
func (c *Canvas) DrawText(x, y int, s string, role Role, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	c.ops = append(c.ops, DrawOp{X: x, Y: y, Role: role, Color: col, Text: s})
}

// Ops returns the draw operations in the order they were issued.
func (c *Canvas) Ops() []DrawOp { return c.ops }

// Image returns the accumulated raster.
func (c *Canvas) Image() image.Image { return c.img }

// EncodePNG writes the raster as PNG. Pixel content is deterministic for
// identical draws; byte-level output is whatever image/png produces.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// WritePNG encodes the raster to a PNG file at path.
func (c *Canvas) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return c.EncodePNG(f)
}
