// Package label composes seed label images for 62mm x 29mm Brother label
// stock. A Request describes the text fields of one label; Generate resolves
// a font set, lays the fields out into fixed zones, and returns a finished
// Canvas ready for printing or saving.
package label

import "image/color"

// Canvas dimensions for 62mm x 29mm label stock.
const (
	Width  = 696
	Height = 326
)

// Zone metrics in pixels.
const (
	paddingLeft     = 20
	paddingTop      = 15
	textAreaWidth   = Width - 40
	wrapWidth       = textAreaWidth - paddingLeft
	lineSpacing     = 50 // line advance for title and variety
	notesLineHeight = 28 // tighter advance used only inside the notes zone
	sowNotesGap     = 5  // extra gap between the sow line and the notes zone
	dateTop         = Height - 45
)

// Ink colors. Red is the accent ink on two-color QL printers.
var (
	inkBlack = color.RGBA{A: 255}
	inkRed   = color.RGBA{R: 255, A: 255}
)

// Request holds the text fields of one seed label. Name and Variety are
// required and assumed non-empty; the caller validates before rendering.
// A zero Year means unset: the date stamp renders only when both Month and
// Year are present.
type Request struct {
	Name          string
	Variety       string
	Notes         string
	SowStartMonth string
	SowEndMonth   string
	Month         string
	Year          int
	UseRed        bool
}

// Generate resolves fonts from the candidate list, renders req, and returns
// the finished canvas. Font fallback is reported via ResolveInfo, never as an
// error; the label still renders with the built-in font.
func Generate(req Request, candidates []Candidate) (*Canvas, ResolveInfo, error) {
	fonts, info := Resolve(candidates)
	c := NewCanvas()
	if err := Render(req, fonts, c); err != nil {
		return nil, info, err
	}
	return c, info, nil
}
