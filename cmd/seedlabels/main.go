// seedlabels — Generate seed labels and print them on a Brother label printer.
//
// Usage:
//
//	seedlabels <name> <variety> [flags]
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/BenDutton/seedlabels/pkg/label"
	"github.com/BenDutton/seedlabels/pkg/printer"
)

// months are the accepted --month tokens, validated here so the renderer
// never has to second-guess its input.
var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		req       label.Request
		dryRun    bool
		fontsPath string
		printOpts printer.Options
	)

	cmd := &cobra.Command{
		Use:   "seedlabels <name> <variety>",
		Short: "Generate and print seed labels for a Brother label printer",
		Long: `seedlabels composes a 62mm x 29mm label from a seed name, variety and
optional notes, sowing window and date stamp, then prints it via brother_ql
or saves it as a PNG with --dry-run.`,
		Example: `  seedlabels "Tomato" "Cherry Red" --notes "Heirloom variety"
  seedlabels "Lettuce" "Buttercrunch" --sow-start Mar --sow-end Jul
  seedlabels "Basil" "Sweet Genovese" --month Mar --year 2024 --red
  seedlabels "Carrot" "Nantes" --printer-ip 192.168.1.100 --model QL-720NW`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			req.Variety = args[1]
			if strings.TrimSpace(req.Name) == "" {
				return fmt.Errorf("name must not be empty")
			}
			if req.Month != "" && !lo.Contains(months, req.Month) {
				return fmt.Errorf("month must be one of: %s", strings.Join(months, ", "))
			}
			req.UseRed = printOpts.Red

			candidates := label.DefaultCandidates()
			if fontsPath != "" {
				var err error
				candidates, err = label.LoadCandidates(fontsPath)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Generating label for: %s - %s\n", req.Name, req.Variety)
			canvas, info, err := label.Generate(req, candidates)
			if err != nil {
				return fmt.Errorf("generate label: %w", err)
			}
			if info.Fallback {
				for _, f := range info.Failures {
					fmt.Fprintf(os.Stderr, "Warning: font candidate failed: %s\n", f)
				}
				fmt.Fprintln(os.Stderr, "Warning: using built-in fallback font — text will be very small")
			}

			if dryRun {
				out := outputName(req.Name, req.Variety)
				if err := canvas.WritePNG(out); err != nil {
					return err
				}
				fmt.Printf("Label saved as: %s\n", out)
				return nil
			}

			if err := printer.Print(canvas.Image(), printOpts); err != nil {
				return fmt.Errorf("print label (use --dry-run to save as image instead): %w", err)
			}
			fmt.Println("Label printed successfully!")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Notes, "notes", "", "Additional notes (e.g. 'Heirloom variety')")
	flags.StringVar(&req.SowStartMonth, "sow-start", "", "Month to start sowing (e.g. 'Mar', 'March')")
	flags.StringVar(&req.SowEndMonth, "sow-end", "", "Month to end sowing (e.g. 'Jul', 'July')")
	flags.StringVar(&req.Month, "month", "", "Three-letter month for the date stamp (e.g. 'Mar')")
	flags.IntVar(&req.Year, "year", 0, "Year for the date stamp")
	flags.StringVar(&fontsPath, "fonts", "", "YAML file listing font candidates (optional)")
	flags.StringVar(&printOpts.PrinterIP, "printer-ip", "192.168.1.232", "IP address of the Brother printer")
	flags.StringVar(&printOpts.Model, "model", "QL-810W", "Brother printer model")
	flags.StringVar(&printOpts.LabelSize, "label-size", "62", "Label size in mm")
	flags.BoolVar(&printOpts.Red, "red", false, "Print the seed name in red ink")
	flags.BoolVar(&dryRun, "dry-run", false, "Save the label as a PNG instead of printing")

	return cmd
}

// outputName derives the dry-run filename from the label fields.
func outputName(name, variety string) string {
	r := strings.NewReplacer(" ", "_", "/", "_")
	return r.Replace(fmt.Sprintf("seed_label_%s_%s.png", name, variety))
}
