// Package theme provides named visual presets for figures and TOML files
// that override them.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/plt-rs/plt"
	"github.com/plt-rs/plt/draw"
)

// Theme bundles a subplot format with the figure background it expects.
type Theme struct {
	Face   draw.Color
	Format plt.SubplotFormat
}

// Default is the light theme.
func Default() Theme {
	return Theme{Face: draw.White, Format: plt.DefaultFormat()}
}

// Dark is the dark theme.
func Dark() Theme {
	return Theme{
		Face:   draw.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
		Format: plt.DarkFormat(),
	}
}

// Named looks up a preset by name.
func Named(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "default", "light":
		return Default(), nil
	case "dark":
		return Dark(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// fileTheme mirrors the TOML layout of a theme file. Empty fields keep the
// base theme's value.
type fileTheme struct {
	Face   string     `toml:"face"`
	Format fileFormat `toml:"format"`
}

type fileFormat struct {
	LineWidth       int      `toml:"line_width"`
	FontSize        float64  `toml:"font_size"`
	Font            string   `toml:"font"`
	TickLength      int      `toml:"tick_length"`
	MinorTickLength int      `toml:"minor_tick_length"`
	TickDirection   string   `toml:"tick_direction"`
	LineColor       string   `toml:"line_color"`
	GridColor       string   `toml:"grid_color"`
	TextColor       string   `toml:"text_color"`
	PlotColor       string   `toml:"plot_color"`
	ColorCycle      []string `toml:"color_cycle"`
}

// Load reads a TOML theme file and applies it on top of base.
func Load(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme %s: %w", path, err)
	}
	return Apply(data, base)
}

// Apply overlays TOML theme data on top of base.
func Apply(data []byte, base Theme) (Theme, error) {
	var file fileTheme
	if err := toml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}

	out := base
	if file.Face != "" {
		c, err := parseHex(file.Face)
		if err != nil {
			return Theme{}, err
		}
		out.Face = c
	}

	f := file.Format
	if f.LineWidth != 0 {
		out.Format.LineWidth = f.LineWidth
	}
	if f.FontSize != 0 {
		out.Format.FontSize = f.FontSize
	}
	if f.Font != "" {
		switch strings.ToLower(f.Font) {
		case "roman":
			out.Format.FontName = draw.FontRoman
		case "sans":
			out.Format.FontName = draw.FontSans
		default:
			return Theme{}, fmt.Errorf("unknown font %q", f.Font)
		}
	}
	if f.TickLength != 0 {
		out.Format.TickLength = f.TickLength
	}
	if f.MinorTickLength != 0 {
		out.Format.MinorTickLength = f.MinorTickLength
	}
	if f.TickDirection != "" {
		switch strings.ToLower(f.TickDirection) {
		case "inner":
			out.Format.TickDirection = plt.TickInner
		case "outer":
			out.Format.TickDirection = plt.TickOuter
		case "both":
			out.Format.TickDirection = plt.TickBoth
		default:
			return Theme{}, fmt.Errorf("unknown tick direction %q", f.TickDirection)
		}
	}

	colorFields := []struct {
		hex  string
		dest *draw.Color
	}{
		{f.LineColor, &out.Format.LineColor},
		{f.GridColor, &out.Format.GridColor},
		{f.TextColor, &out.Format.TextColor},
		{f.PlotColor, &out.Format.PlotColor},
	}
	for _, field := range colorFields {
		if field.hex == "" {
			continue
		}
		c, err := parseHex(field.hex)
		if err != nil {
			return Theme{}, err
		}
		*field.dest = c
	}

	if len(f.ColorCycle) > 0 {
		cycle := make([]draw.Color, 0, len(f.ColorCycle))
		for _, hex := range f.ColorCycle {
			c, err := parseHex(hex)
			if err != nil {
				return Theme{}, err
			}
			cycle = append(cycle, c)
		}
		out.Format.ColorCycle = cycle
	}

	return out, nil
}

// parseHex parses #RGB, #RRGGBB, and #RRGGBBAA color notations.
func parseHex(s string) (draw.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var parts []string
	switch len(hex) {
	case 3:
		parts = []string{hex[0:1] + hex[0:1], hex[1:2] + hex[1:2], hex[2:3] + hex[2:3]}
	case 6:
		parts = []string{hex[0:2], hex[2:4], hex[4:6]}
	case 8:
		parts = []string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	default:
		return draw.Color{}, fmt.Errorf("invalid color %q", s)
	}

	channels := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return draw.Color{}, fmt.Errorf("invalid color %q", s)
		}
		channels[i] = float64(v) / 255.0
	}

	c := draw.Color{R: channels[0], G: channels[1], B: channels[2], A: 1}
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return c, nil
}
