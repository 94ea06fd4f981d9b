// Package styles defines the visual styling for fontinstall's
// terminal output.
//
// All styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes. The theme is embedded YAML so the
// renderer never depends on files on disk.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultTheme []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// themeConfig is the complete theme file
type themeConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var registry map[string]lipgloss.Style

func init() {
	reg, err := load(defaultTheme)
	if err != nil {
		// The embedded theme is compiled in; a parse failure is a
		// programming error
		panic(fmt.Sprintf("styles: embedded theme invalid: %v", err))
	}
	registry = reg
}

// Get returns the named style, or a zero style for unknown names.
func Get(name string) lipgloss.Style {
	return registry[name]
}

// Render applies the named style to the given text.
func Render(name, text string) string {
	return Get(name).Render(text)
}

func load(data []byte) (map[string]lipgloss.Style, error) {
	var cfg themeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := colors[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s references unknown color %s", name, def.Foreground)
			}
			style = style.Foreground(color)
		}
		reg[name] = style
	}
	return reg, nil
}
