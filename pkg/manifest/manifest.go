// Package manifest loads declarative template definitions for the CLI:
// the template text plus an ordered target list, each target optionally
// carrying an extraction pattern or a value format.
package manifest

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/twofold/pkg/format"
	"github.com/arthur-debert/twofold/pkg/logging"
	"github.com/arthur-debert/twofold/pkg/pattern"
	"github.com/arthur-debert/twofold/pkg/template"
)

// Target declares one named placeholder: the literal substring that
// marks it in the template, and how its value is read back. Pattern is a
// regular expression and wins over Kind when both are set; Kind derives
// the pattern from a value format instead (int, decimal or text, with
// the base/digits/width/align/fill knobs). A target with neither reads
// as structural only: its position is verified but no value is captured.
type Target struct {
	Name     string `koanf:"name" validate:"required"`
	Pattern  string `koanf:"pattern"`
	Kind     string `koanf:"kind" validate:"omitempty,oneof=text int decimal"`
	Base     int    `koanf:"base" validate:"omitempty,min=2,max=36"`
	Digits   int    `koanf:"digits" validate:"min=0"`
	Exponent bool   `koanf:"exponent"`
	Width    int    `koanf:"width" validate:"min=0"`
	Align    string `koanf:"align" validate:"omitempty,oneof=left right center"`
	Fill     string `koanf:"fill"`
}

// Manifest is one template definition: the template text and its ordered
// target list.
type Manifest struct {
	Template string   `koanf:"template" validate:"required"`
	Targets  []Target `koanf:"targets" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads and validates a manifest from a TOML or YAML file, chosen
// by extension.
func Load(path string) (*Manifest, error) {
	var parser koanf.Parser
	switch filepath.Ext(path) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("manifest %s: unsupported extension (want .toml, .yaml or .yml)", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	logger := logging.GetLogger("manifest")
	logger.Debug().
		Str("path", path).
		Int("targets", len(m.Targets)).
		Msg("loaded manifest")
	return &m, nil
}

// Validate checks the manifest against its declared constraints: struct
// tags, distinct target names, one-rune fills and compilable patterns.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}
	seen := make(map[string]bool, len(m.Targets))
	for _, t := range m.Targets {
		if seen[t.Name] {
			return fmt.Errorf("duplicate target %q", t.Name)
		}
		seen[t.Name] = true
		if t.Fill != "" && utf8.RuneCountInString(t.Fill) != 1 {
			return fmt.Errorf("target %q: fill %q must be a single rune", t.Name, t.Fill)
		}
		if t.Pattern != "" {
			if _, err := pattern.Compile(t.Pattern); err != nil {
				return fmt.Errorf("target %q: %w", t.Name, err)
			}
		}
	}
	return nil
}

// Names returns the ordered target names.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Targets))
	for i, t := range m.Targets {
		names[i] = t.Name
	}
	return names
}

// Index returns the position of the named target.
func (m *Manifest) Index(name string) (int, bool) {
	for i, t := range m.Targets {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Closest returns the target name nearest to name by edit distance, for
// "did you mean" hints; empty when nothing is reasonably close.
func (m *Manifest) Closest(name string) string {
	best, bestDist := "", 4
	for _, t := range m.Targets {
		if d := levenshtein.ComputeDistance(name, t.Name); d < bestDist {
			best, bestDist = t.Name, d
		}
	}
	return best
}

// Compile resolves the manifest's template against its target list.
func (m *Manifest) Compile() *template.Template {
	return template.Compile(m.Template, m.Names())
}

// Patterns builds one extraction pattern per target, index-aligned with
// the target list. Targets with neither a pattern nor a kind yield nil,
// which the reader treats as capture-nothing.
func (m *Manifest) Patterns() ([]pattern.Pattern, error) {
	out := make([]pattern.Pattern, len(m.Targets))
	for i, t := range m.Targets {
		p, err := t.pattern()
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}
		out[i] = p
	}
	return out, nil
}

func (t Target) pattern() (pattern.Pattern, error) {
	if t.Pattern != "" {
		return pattern.Compile(t.Pattern)
	}
	pad := t.padding()
	switch t.Kind {
	case "int":
		return format.Integer{Base: t.Base, Pad: pad}.Pattern(), nil
	case "decimal":
		return format.Decimal{Digits: t.Digits, Exponent: t.Exponent, Pad: pad}.Pattern(), nil
	case "text":
		return format.Text{Pad: pad}.Pattern(), nil
	}
	return nil, nil
}

func (t Target) padding() format.Padding {
	p := format.Padding{Width: t.Width}
	switch t.Align {
	case "right":
		p.Align = format.AlignRight
	case "center":
		p.Align = format.AlignCenter
	}
	if t.Fill != "" {
		r, _ := utf8.DecodeRuneInString(t.Fill)
		p.Fill = r
	}
	return p
}
