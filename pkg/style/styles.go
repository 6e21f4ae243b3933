// Package style renders dotdoctor reports for the terminal.
//
// Styles are declared in the embedded styles.yaml by semantic name
// (Pass, Warn, Fail, Category, ...) and built into lipgloss styles with
// adaptive colors, so they adjust to light and dark terminal themes.
package style

import (
	_ "embed"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Sheet is a parsed styles.yaml
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry = mustDefault()

func mustDefault() Registry {
	reg, err := LoadStylesFromData(embeddedStyles)
	if err != nil {
		return Registry{}
	}
	return reg
}

// Default returns the registry built from the embedded style sheet
func Default() Registry {
	return defaultRegistry
}

// LoadStylesFromData builds a registry from YAML style sheet data
func LoadStylesFromData(data []byte) (Registry, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse styles data")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(sheet.Colors))
	for name, def := range sheet.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(Registry, len(sheet.Styles))
	for name, def := range sheet.Styles {
		reg[name] = buildStyle(def, colors)
	}
	return reg, nil
}

// Get returns the named style, or a plain style when it is not defined
func (r Registry) Get(name string) lipgloss.Style {
	if s, ok := r[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}
