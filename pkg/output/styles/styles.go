// Package styles defines the visual styling for the hook's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are defined in the embedded styles.yaml and
// bound to a lipgloss renderer, so the color profile follows the writer the
// output goes to.
package styles

import (
	_ "embed"
	"fmt"

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
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Registry maps semantic names to lipgloss styles for one renderer
type Registry struct {
	styles map[string]lipgloss.Style
	plain  lipgloss.Style
}

// New builds the embedded styles for r
func New(r *lipgloss.Renderer) *Registry {
	reg, err := FromData(r, embeddedStyles)
	if err != nil {
		// the embedded file is part of the build; fall back to plain text
		return &Registry{styles: map[string]lipgloss.Style{}, plain: r.NewStyle()}
	}
	return reg
}

// FromData builds a registry from YAML style definitions
func FromData(r *lipgloss.Renderer, data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := &Registry{
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
		plain:  r.NewStyle(),
	}
	for name, def := range config.Styles {
		reg.styles[name] = buildStyle(r, def, colors)
	}
	return reg, nil
}

// Get returns the named style, or an unstyled one
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return r.plain
}

// Render applies the named style to text
func (r *Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

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
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}

	return style
}
