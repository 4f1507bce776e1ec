// fonts.go — Role-keyed font resolution with ordered candidates and an
// embedded fallback. Uses golang.org/x/image/font for OpenType rendering;
// falls back to the tiny built-in basicfont face when no candidate loads.
package label

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Role identifies one typographic slot on the label.
type Role int

const (
	RoleTitle    Role = iota // seed name, bold
	RoleBody                 // variety, regular
	RoleNotes                // notes, italic
	RoleSmall                // date stamp, regular
	RoleSowLabel             // sow line, bold
	RoleSowText              // reserved for styled sow months, regular
	RoleMono                 // reserved for fixed-width fields
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleBody:
		return "body"
	case RoleNotes:
		return "notes"
	case RoleSmall:
		return "small"
	case RoleSowLabel:
		return "sow-label"
	case RoleSowText:
		return "sow-text"
	case RoleMono:
		return "mono"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// weight selects which source file of a candidate supplies a role.
type weight int

const (
	weightBold weight = iota
	weightRegular
	weightItalic
	weightMono
)

// roleSpecs fixes the source weight and pixel size for every role.
var roleSpecs = []struct {
	role Role
	src  weight
	size float64
}{
	{RoleTitle, weightBold, 48},
	{RoleBody, weightRegular, 32},
	{RoleNotes, weightItalic, 24},
	{RoleSmall, weightRegular, 20},
	{RoleSowLabel, weightBold, 22},
	{RoleSowText, weightRegular, 22},
	{RoleMono, weightMono, 18},
}

// FontSet maps every role to a ready-to-draw face. A set is populated
// entirely from one candidate or entirely from the built-in fallback;
// sources are never mixed across roles.
type FontSet map[Role]font.Face

// face returns the face for role, failing when the set lacks it.
func (fs FontSet) face(role Role) (font.Face, error) {
	f, ok := fs[role]
	if f == nil || !ok {
		return nil, fmt.Errorf("font set has no %s face", role)
	}
	return f, nil
}

// Candidate is one complete bundle of role-specific font sources tried as a
// unit during resolution. Load succeeds only if every role loads; partial
// success is total failure for the candidate.
type Candidate interface {
	Name() string
	Load() (FontSet, error)
}

// FileCandidate loads the four weights from TTF/OTF files on disk.
type FileCandidate struct {
	Bold    string
	Regular string
	Italic  string
	Mono    string
}

// Name identifies the candidate by its bold path, matching how the bundle
// is referenced in diagnostics.
func (c FileCandidate) Name() string { return c.Bold }

func (c FileCandidate) Load() (FontSet, error) {
	parsed := make(map[weight]*opentype.Font, 4)
	for _, s := range []struct {
		w    weight
		path string
	}{
		{weightBold, c.Bold},
		{weightRegular, c.Regular},
		{weightItalic, c.Italic},
		{weightMono, c.Mono},
	} {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.path, err)
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.path, err)
		}
		parsed[s.w] = f
	}
	return newFaces(parsed)
}

// EmbeddedCandidate serves the Go fonts compiled into the binary. It is the
// last candidate before the basicfont fallback and needs no files on disk.
type EmbeddedCandidate struct{}

func (EmbeddedCandidate) Name() string { return "embedded Go fonts" }

func (EmbeddedCandidate) Load() (FontSet, error) {
	parsed := make(map[weight]*opentype.Font, 4)
	for _, s := range []struct {
		w   weight
		ttf []byte
	}{
		{weightBold, gobold.TTF},
		{weightRegular, goregular.TTF},
		{weightItalic, goitalic.TTF},
		{weightMono, gomono.TTF},
	} {
		f, err := opentype.Parse(s.ttf)
		if err != nil {
			return nil, fmt.Errorf("parse embedded font: %w", err)
		}
		parsed[s.w] = f
	}
	return newFaces(parsed)
}

// newFaces builds the role faces from parsed fonts at their fixed sizes.
func newFaces(parsed map[weight]*opentype.Font) (FontSet, error) {
	fs := make(FontSet, len(roleSpecs))
	for _, spec := range roleSpecs {
		face, err := opentype.NewFace(parsed[spec.src], &opentype.FaceOptions{
			Size:    spec.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s face: %w", spec.role, err)
		}
		fs[spec.role] = face
	}
	return fs, nil
}

// ResolveInfo reports which source supplied the fonts for one label.
type ResolveInfo struct {
	Source   string
	Fallback bool
	Failures []string // one "name: reason" entry per skipped candidate
}

// Resolve tries candidates strictly in order and returns the first fully
// loaded set. When every candidate fails, all roles get the built-in
// basicfont face — glyphs will be very small but rendering still works —
// and Fallback is set so callers can warn the user.
func Resolve(candidates []Candidate) (FontSet, ResolveInfo) {
	var info ResolveInfo
	for _, c := range candidates {
		fs, err := c.Load()
		if err != nil {
			info.Failures = append(info.Failures, fmt.Sprintf("%s: %v", c.Name(), err))
			continue
		}
		info.Source = c.Name()
		return fs, info
	}

	info.Source = "built-in"
	info.Fallback = true
	return fallbackSet(), info
}

// fallbackSet assigns the fixed 7x13 basicfont face to every role.
func fallbackSet() FontSet {
	fs := make(FontSet, len(roleSpecs))
	for _, spec := range roleSpecs {
		fs[spec.role] = basicfont.Face7x13
	}
	return fs
}
