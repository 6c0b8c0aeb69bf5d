package blockview

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

//go:embed skins.toml
var defaultSkins string

var (
	ErrUnknownKey    = errors.New("unknown configuration key")
	ErrUnknownBorder = errors.New("unknown border")
	ErrBadMetrics    = errors.New("invalid skin metrics")
)

// Config describes the theme and the skin of each block kind.
type Config struct {
	Theme ThemeConfig           `toml:"theme"`
	Skins map[string]SkinConfig `toml:"skins"`
}

// ThemeConfig holds hex colors ("#rrggbb") for text and holes.
type ThemeConfig struct {
	Text     string `toml:"text"`
	Marker   string `toml:"marker"`
	Hole     string `toml:"hole"`
	HoleFill string `toml:"hole_fill"`
}

// SkinConfig is the frame style of one block kind.
type SkinConfig struct {
	Border       string `toml:"border"`
	Color        string `toml:"color"`
	Fill         string `toml:"fill"`
	MinTextWidth int    `toml:"min_text_width"`
	TextStart    []int  `toml:"text_start"` // x, y
	TextArgDist  int    `toml:"text_arg_dist"`
	MinWidth     int    `toml:"min_width"`
	MinMidHeight int    `toml:"min_mid_height"`
	Frame        []int  `toml:"frame"` // top, right, bottom, left
	EndMargin    int    `toml:"end_margin"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var cfg Config
	if err := decodeConfig(defaultSkins, &cfg); err != nil {
		panic(fmt.Sprintf("built-in skins: %v", err))
	}
	return cfg
}

// LoadConfig reads a TOML file on top of the built-in configuration.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(string(data))
}

// ParseConfig decodes TOML on top of the built-in configuration.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if err := decodeConfig(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeConfig(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}
	return nil
}

// Resolve turns colors, borders and metrics into a Theme.
func (c Config) Resolve() (Theme, error) {
	text, err := parseColor(c.Theme.Text)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.text: %w", err)
	}
	marker, err := parseColor(c.Theme.Marker)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.marker: %w", err)
	}
	hole, err := parseColor(c.Theme.Hole)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.hole: %w", err)
	}
	holeFill, err := parseColor(c.Theme.HoleFill)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.hole_fill: %w", err)
	}

	t := Theme{
		Text:    Style{FG: text},
		Marker:  Style{FG: marker, Attr: AttrBold},
		Hole:    Style{FG: hole, BG: holeFill},
		Chromes: make(map[BlockKind]Chrome, len(c.Skins)),
	}
	for name, skin := range c.Skins {
		kind, err := ParseBlockKind(name)
		if err != nil {
			return Theme{}, fmt.Errorf("skins.%s: %w", name, err)
		}
		chrome, err := skin.Chrome()
		if err != nil {
			return Theme{}, fmt.Errorf("skins.%s: %w", name, err)
		}
		t.Chromes[kind] = chrome
	}
	if _, ok := t.Chromes[KindCommand]; !ok {
		return Theme{}, fmt.Errorf("skins.command: missing: %w", ErrBadMetrics)
	}
	return t, nil
}

// Chrome builds the frame chrome described by the skin.
func (s SkinConfig) Chrome() (*FrameChrome, error) {
	border, ok := Borders[s.Border]
	if !ok {
		return nil, fmt.Errorf("%q: %w", s.Border, ErrUnknownBorder)
	}
	fg, err := parseColor(s.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	fill, err := parseColor(s.Fill)
	if err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	m, err := s.Metrics()
	if err != nil {
		return nil, err
	}
	return NewFrameChrome(border, Style{FG: fg, BG: fill}, Style{BG: fill}, m), nil
}

// Metrics validates and converts the geometric part of the skin.
func (s SkinConfig) Metrics() (ChromeMetrics, error) {
	if len(s.TextStart) != 2 {
		return ChromeMetrics{}, fmt.Errorf("text_start wants 2 values, got %d: %w", len(s.TextStart), ErrBadMetrics)
	}
	if len(s.Frame) != 4 {
		return ChromeMetrics{}, fmt.Errorf("frame wants 4 values, got %d: %w", len(s.Frame), ErrBadMetrics)
	}
	m := ChromeMetrics{
		MinTextWidth: s.MinTextWidth,
		TextStart:    image.Pt(s.TextStart[0], s.TextStart[1]),
		TextArgDist:  s.TextArgDist,
		MinWidth:     s.MinWidth,
		MinMidHeight: s.MinMidHeight,
		Top:          s.Frame[0],
		Right:        s.Frame[1],
		Bottom:       s.Frame[2],
		Left:         s.Frame[3],
		EndMargin:    s.EndMargin,
	}
	for _, v := range []int{m.MinTextWidth, m.TextStart.X, m.TextStart.Y, m.TextArgDist,
		m.MinWidth, m.MinMidHeight, m.Top, m.Right, m.Bottom, m.Left, m.EndMargin} {
		if v < 0 {
			return ChromeMetrics{}, fmt.Errorf("negative value: %w", ErrBadMetrics)
		}
	}
	return m, nil
}

// parseColor parses "#rrggbb". An empty string is the terminal default.
func parseColor(s string) (Color, error) {
	if s == "" {
		return DefaultColor(), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}
