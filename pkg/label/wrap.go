// wrap.go — Pixel-width word wrapping with paragraph preservation.
package label

import (
	"strings"

	"golang.org/x/image/font"
)

// Wrap breaks text into lines whose measured width fits maxWidth pixels.
//
// Explicit newlines split text into paragraphs that wrap independently; a
// blank paragraph contributes exactly one empty output line. Words are never
// split: a single word wider than maxWidth is emitted alone on its own line.
// Output is fully determined by (text, face, maxWidth).
func Wrap(text string, face font.Face, maxWidth int) []string {
	var lines []string

	for _, para := range strings.Split(text, "\n") {
		// Preserve blank lines.
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}

		var current []string
		for _, word := range strings.Fields(para) {
			test := strings.Join(append(current, word), " ")
			if font.MeasureString(face, test).Ceil() <= maxWidth {
				current = append(current, word)
				continue
			}

			// Current line is full, start a new one with this word.
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
			}
			current = []string{word}
		}

		// Flush the last line of the paragraph.
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
	}

	return lines
}
