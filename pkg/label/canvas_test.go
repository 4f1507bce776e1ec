package label

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestNewCanvasIsWhiteAtStockSize(t *testing.T) {
	c := NewCanvas()
	b := c.Image().Bounds()
	assert.Equal(t, Width, b.Dx())
	assert.Equal(t, Height, b.Dy())

	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, white, c.Image().At(0, 0))
	assert.Equal(t, white, c.Image().At(Width-1, Height-1))
}

func TestDrawTextRecordsOpsAndTouchesPixels(t *testing.T) {
	c := NewCanvas()
	c.DrawText(20, 15, "X", RoleTitle, basicfont.Face7x13, inkBlack)
	c.DrawText(20, 65, "Y", RoleBody, basicfont.Face7x13, inkBlack)

	ops := c.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, DrawOp{X: 20, Y: 15, Role: RoleTitle, Color: inkBlack, Text: "X"}, ops[0])
	assert.Equal(t, DrawOp{X: 20, Y: 65, Role: RoleBody, Color: inkBlack, Text: "Y"}, ops[1])

	var inked bool
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, _, _, _ := c.Image().At(x, y).RGBA(); r < 0x8000 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "drawing text must leave dark pixels on the canvas")
}

func TestEncodePNGRoundTrips(t *testing.T) {
	c := NewCanvas()
	c.DrawText(20, 15, "Tomato", RoleTitle, basicfont.Face7x13, inkBlack)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), decoded.Bounds())
}

func TestWritePNGCreatesFile(t *testing.T) {
	c := NewCanvas()
	path := filepath.Join(t.TempDir(), "label.png")
	require.NoError(t, c.WritePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, Width, decoded.Bounds().Dx())
}
