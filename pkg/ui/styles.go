package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color: one value per terminal background
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one named style
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// StylesConfig is the styles file layout
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

// Get returns the named style, or an unstyled one
func (s Styles) Get(name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// DefaultStyles parses the embedded styles. The embedded file is part of
// the binary, so a parse failure falls back to unstyled output.
func DefaultStyles() Styles {
	styles, err := ParseStyles(embeddedStyles)
	if err != nil {
		return Styles{}
	}
	return styles
}

// ParseStyles builds styles from YAML data. A foreground naming a color
// from the colors table uses that adaptive color; anything else is used
// as a literal color.
func ParseStyles(data []byte) (Styles, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	out := make(Styles, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline).
			MarginBottom(def.MarginBottom).
			PaddingLeft(def.PaddingLeft)

		if def.Foreground != "" {
			if c, ok := cfg.Colors[def.Foreground]; ok {
				style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
			} else {
				style = style.Foreground(lipgloss.Color(def.Foreground))
			}
		}
		out[name] = style
	}
	return out, nil
}
