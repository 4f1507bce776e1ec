package printer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	opts := Options{PrinterIP: "192.168.1.232", Model: "QL-810W", LabelSize: "62"}

	assert.Equal(t,
		[]string{"-p", "tcp://192.168.1.232", "-m", "QL-810W", "print", "-l", "62", "label.png"},
		commandArgs(opts, "label.png"))

	opts.Red = true
	assert.Equal(t,
		[]string{"-p", "tcp://192.168.1.232", "-m", "QL-810W", "print", "-l", "62", "--red", "label.png"},
		commandArgs(opts, "label.png"))
}

func TestPrintReportsMissingBinary(t *testing.T) {
	t.Setenv("PATH", "")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	err := Print(img, Options{PrinterIP: "127.0.0.1", Model: "QL-810W", LabelSize: "62"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brother_ql not found")
}
