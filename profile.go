package asciimotion

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"

	yaml "gopkg.in/yaml.v2"
)

// DefaultProfile is the profile used when none is named.
const DefaultProfile = "medium"

// ErrUnknownProfile is returned by Lookup for names that were never loaded.
var ErrUnknownProfile = errors.New("asciimotion: unknown quality profile")

//go:embed profiles.yaml
var builtinProfiles []byte

// Profile bundles the constants that differ between quality levels: the glyph
// alphabet, the character aspect correction, the export cell geometry and the
// palette size used when color is on.
type Profile struct {
	Name       string  `yaml:"name"`
	Alphabet   string  `yaml:"alphabet"`
	Aspect     float64 `yaml:"aspect"`
	CellWidth  int     `yaml:"cell_width"`
	CellHeight int     `yaml:"cell_height"`
	FontSize   float64 `yaml:"font_size"`
	Colors     int     `yaml:"colors"`

	alphabet *Alphabet
}

// Glyphs returns the profile's parsed alphabet.
func (p *Profile) Glyphs() *Alphabet {
	return p.alphabet
}

// Depth returns the palette depth the profile renders with when color is on.
func (p *Profile) Depth() ColorDepth {
	return DepthFor(p.Colors)
}

func (p *Profile) validate() error {
	if p.Name == "" {
		return errors.New("asciimotion: profile without a name")
	}
	a, err := NewAlphabet(p.Alphabet)
	if err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	p.alphabet = a
	if p.Aspect <= 0 {
		return fmt.Errorf("profile %s: aspect must be positive, got %g", p.Name, p.Aspect)
	}
	if p.CellWidth <= 0 || p.CellHeight <= 0 {
		return fmt.Errorf("profile %s: cell size must be positive, got %dx%d", p.Name, p.CellWidth, p.CellHeight)
	}
	if p.FontSize <= 0 {
		p.FontSize = float64(p.CellHeight) * 0.7
	}
	if p.Colors != 16 && p.Colors != 256 {
		p.Colors = 256
	}
	return nil
}

// Profiles is a set of named profiles.
type Profiles map[string]*Profile

// BuiltinProfiles returns the profiles shipped with the package.
func BuiltinProfiles() Profiles {
	ps := Profiles{}
	if err := ps.Load(bytes.NewReader(builtinProfiles)); err != nil {
		panic(err)
	}
	return ps
}

// Load reads a YAML list of profiles from r, adding to or replacing the
// profiles already in the set.
func (ps Profiles) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var list []*Profile
	if err := yaml.UnmarshalStrict(data, &list); err != nil {
		return fmt.Errorf("asciimotion: parse profiles: %w", err)
	}
	for _, p := range list {
		if err := p.validate(); err != nil {
			return err
		}
		ps[p.Name] = p
	}
	return nil
}

// Lookup returns the named profile.
func (ps Profiles) Lookup(name string) (*Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := ps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownProfile, name, ps.Names())
	}
	return p, nil
}

// Names returns the profile names in sorted order.
func (ps Profiles) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
