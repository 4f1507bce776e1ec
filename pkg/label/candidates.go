// candidates.go — Default font candidate ordering and YAML overrides.
package label

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCandidates returns the built-in resolution order: DejaVu system
// fonts, fonts bundled next to the binary, Windows Arial/Consolas, bare
// filenames resolved by the OS, and finally the embedded Go fonts.
func DefaultCandidates() []Candidate {
	return []Candidate{
		FileCandidate{
			Bold:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			Regular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			Italic:  "/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf",
			Mono:    "/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
		},
		FileCandidate{
			Bold:    "./fonts/DejaVuSans-Bold.ttf",
			Regular: "./fonts/DejaVuSans.ttf",
			Italic:  "./fonts/DejaVuSans-Oblique.ttf",
			Mono:    "./fonts/DejaVuSansMono-Bold.ttf",
		},
		FileCandidate{
			Bold:    "C:/Windows/Fonts/arialbd.ttf",
			Regular: "C:/Windows/Fonts/arial.ttf",
			Italic:  "C:/Windows/Fonts/ariali.ttf",
			Mono:    "C:/Windows/Fonts/consolab.ttf",
		},
		FileCandidate{
			Bold:    "arialbd.ttf",
			Regular: "arial.ttf",
			Italic:  "ariali.ttf",
			Mono:    "consolab.ttf",
		},
		EmbeddedCandidate{},
	}
}

// candidateConfig is the YAML schema for a custom candidate list.
type candidateConfig struct {
	Candidates []struct {
		Bold    string `yaml:"bold"`
		Regular string `yaml:"regular"`
		Italic  string `yaml:"italic"`
		Mono    string `yaml:"mono"`
	} `yaml:"candidates"`
}

// LoadCandidates reads an ordered candidate list from a YAML file. The
// embedded Go fonts are appended as the final candidate so a config file can
// reorder sources but never lose scalable-font fallback.
func LoadCandidates(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font config: %w", err)
	}

	var cfg candidateConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse font config %s: %w", path, err)
	}
	if len(cfg.Candidates) == 0 {
		return nil, fmt.Errorf("font config %s lists no candidates", path)
	}

	candidates := make([]Candidate, 0, len(cfg.Candidates)+1)
	for i, c := range cfg.Candidates {
		if c.Bold == "" || c.Regular == "" || c.Italic == "" || c.Mono == "" {
			return nil, fmt.Errorf("font config %s: candidate %d must name bold, regular, italic and mono sources", path, i)
		}
		candidates = append(candidates, FileCandidate{
			Bold:    c.Bold,
			Regular: c.Regular,
			Italic:  c.Italic,
			Mono:    c.Mono,
		})
	}
	return append(candidates, EmbeddedCandidate{}), nil
}
