package tokens

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// RetroPalette is the colour scheme of one retro era.
type RetroPalette struct {
	Name       string
	Background string
	Surface    string
	Primary    string
	Accent     string
	Text       string
	Border     string
	Glow       string
}

// Palette maps the era colours onto a semantic palette.
func (p RetroPalette) Palette(dark bool) Palette {
	background, surface, text := p.Background, p.Surface, p.Text
	if dark {
		background, surface, text = Darken(p.Background, 0.7), Darken(p.Surface, 0.6), Lighten(p.Text, 0.8)
	}
	return Palette{
		Primary:     p.Primary,
		OnPrimary:   p.Background,
		Secondary:   p.Accent,
		OnSecondary: p.Background,
		Success:     "#39ff14",
		Warning:     "#ffb000",
		Danger:      "#ff3b30",
		Info:        p.Glow,
		Background:  background,
		Surface:     surface,
		Text:        text,
		TextMuted:   Mix(text, background, 0.4),
		Border:      p.Border,
		Disabled:    Mix(surface, "#808080", 0.5),
		OnDisabled:  Mix(text, "#808080", 0.6),
		Shadow:      "#000000",
		Highlight:   p.Glow,
	}
}

// RetroEras is indexed by era: seventies, eighties, nineties, y2k, vaporwave, synthwave.
var RetroEras = [...]RetroPalette{
	{Name: "seventies", Background: "#f4e3c1", Surface: "#e9c46a", Primary: "#e76f51", Accent: "#2a9d8f", Text: "#3d2b1f", Border: "#6b4226", Glow: "#f4a261"},
	{Name: "eighties", Background: "#1a1a2e", Surface: "#16213e", Primary: "#ff2e97", Accent: "#00f0ff", Text: "#f8f8f2", Border: "#ff2e97", Glow: "#00f0ff"},
	{Name: "nineties", Background: "#c0c0c0", Surface: "#d4d0c8", Primary: "#000080", Accent: "#008080", Text: "#000000", Border: "#808080", Glow: "#ffff00"},
	{Name: "y2k", Background: "#e6f0ff", Surface: "#cfe2ff", Primary: "#7b2ff7", Accent: "#c0c0ff", Text: "#1b1464", Border: "#9aa5ff", Glow: "#b8f2ff"},
	{Name: "vaporwave", Background: "#2d1b4e", Surface: "#3d2466", Primary: "#ff71ce", Accent: "#01cdfe", Text: "#fffb96", Border: "#b967ff", Glow: "#05ffa1"},
	{Name: "synthwave", Background: "#0d0221", Surface: "#261447", Primary: "#f6019d", Accent: "#ff6c11", Text: "#fdfdfd", Border: "#2de2e6", Glow: "#f9c80e"},
}

// RetroBorderWidths is indexed by thickness: thin, medium, thick.
var RetroBorderWidths = [...]float64{1, 2, 4}

// RetroCornerRadii is indexed by corner style: sharp, soft, round.
var RetroCornerRadii = [...]float64{0, 4, 12}

// RetroShadows is indexed by shadow style: none, hard, soft. Colours are
// filled in from the era border colour by the resolver.
var RetroShadows = [...]*style.Shadow{
	nil,
	{DX: 4, DY: 4, Blur: 0},
	{DX: 2, DY: 2, Blur: 6},
}

// RetroGlowRadius is the halo radius used when glow is requested.
const RetroGlowRadius = 8
