// Package content holds the static data shown on the profile screen: the
// profile header, the social links and the skill cards.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/andareed/profilecard/logging"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSheet []byte

type Kind int

const (
	KindSocial Kind = iota
	KindSkill
)

// Entry is one icon in either list. Title is empty for social entries.
type Entry struct {
	Kind  Kind
	Icon  string
	Title string
	Color string
}

type Profile struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Image string `yaml:"image"`
}

// Sheet is loaded once at startup and never changed afterwards.
type Sheet struct {
	Profile Profile
	Social  []Entry
	Skills  []Entry
}

// --- Wire format ---

type entryDTO struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title,omitempty"`
	Color string `yaml:"color"`
}

type sheetDTO struct {
	Profile Profile    `yaml:"profile"`
	Social  []entryDTO `yaml:"social"`
	Skills  []entryDTO `yaml:"skills"`
}

// Default returns the sheet compiled into the binary.
func Default() (*Sheet, error) {
	return Parse(defaultSheet)
}

// Load reads a sheet from path, or the compiled-in sheet when path is empty.
func Load(path string) (*Sheet, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debugf("content: loaded %d social and %d skill entries from %s", len(s.Social), len(s.Skills), path)
	return s, nil
}

func Parse(data []byte) (*Sheet, error) {
	var dto sheetDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("error parsing content: %w", err)
	}
	return &Sheet{
		Profile: dto.Profile,
		Social:  toEntries(KindSocial, dto.Social),
		Skills:  toEntries(KindSkill, dto.Skills),
	}, nil
}

func toEntries(kind Kind, in []entryDTO) []Entry {
	out := make([]Entry, 0, len(in))
	for _, d := range in {
		e := Entry{Kind: kind, Icon: d.Name, Color: d.Color}
		if kind == KindSkill {
			e.Title = d.Title
		}
		out = append(out, e)
	}
	return out
}
