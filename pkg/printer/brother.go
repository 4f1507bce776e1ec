// Package printer hands finished label rasters to a Brother QL printer by
// shelling out to the brother_ql command-line tool.
package printer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
)

// Options identify the target printer and label stock.
type Options struct {
	PrinterIP string
	Model     string
	LabelSize string
	Red       bool // use the red accent ink on two-color printers
}

// Print writes img to a temporary PNG and sends it to the printer. The temp
// file is removed afterwards. On failure the returned error carries
// brother_ql's stderr output.
func Print(img image.Image, opts Options) error {
	f, err := os.CreateTemp("", "seedlabel-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode label PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.Command("brother_ql", commandArgs(opts, path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("brother_ql not found in PATH (pip install brother_ql): %w", err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("brother_ql: %w: %s", err, msg)
		}
		return fmt.Errorf("brother_ql: %w", err)
	}
	return nil
}

// commandArgs builds the brother_ql argument list for one print job.
func commandArgs(opts Options, file string) []string {
	args := []string{
		"-p", "tcp://" + opts.PrinterIP,
		"-m", opts.Model,
		"print",
		"-l", opts.LabelSize,
	}
	if opts.Red {
		args = append(args, "--red")
	}
	return append(args, file)
}
