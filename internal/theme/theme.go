// Package theme defines the Theme record consumed by the variant resolvers and
// composes it from a design language, a mode and optional user overrides.
package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

// Mode is the light/dark selection.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ParseMode converts a mode name. Unknown names report false.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return ModeLight, true
	case "dark":
		return ModeDark, true
	default:
		return ModeLight, false
	}
}

// Design is the closed set of design languages. Material and Simplistic are
// declared but have no resolver; they render as Flat.
type Design int

const (
	DesignFlat Design = iota
	DesignNeumorphic
	DesignSkeuomorphic
	DesignGlassmorphic
	DesignRetro
	DesignMaterial
	DesignSimplistic
)

var designNames = [...]string{
	DesignFlat:         "flat",
	DesignNeumorphic:   "neumorphic",
	DesignSkeuomorphic: "skeuomorphic",
	DesignGlassmorphic: "glassmorphic",
	DesignRetro:        "retro",
	DesignMaterial:     "material",
	DesignSimplistic:   "simplistic",
}

func (d Design) String() string {
	if d >= 0 && int(d) < len(designNames) {
		return designNames[d]
	}
	return fmt.Sprintf("Design(%d)", int(d))
}

// ParseDesign converts a design name. Unknown names report false.
func ParseDesign(name string) (Design, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range designNames {
		if candidate == name {
			return Design(i), true
		}
	}
	return DesignFlat, false
}

// Designs lists every declared design language.
func Designs() []Design {
	out := make([]Design, len(designNames))
	for i := range designNames {
		out[i] = Design(i)
	}
	return out
}

// ColorTokens is the semantic colour set of a theme.
type ColorTokens = tokens.Palette

// RadiusTokens is the border-radius vocabulary of a theme.
type RadiusTokens = tokens.Radii

// ScaleTokens is the spacing scale.
type ScaleTokens struct {
	XS float64 `yaml:"xs,omitempty" validate:"omitempty,min=0"`
	SM float64 `yaml:"sm,omitempty" validate:"omitempty,min=0"`
	MD float64 `yaml:"md,omitempty" validate:"omitempty,min=0"`
	LG float64 `yaml:"lg,omitempty" validate:"omitempty,min=0"`
	XL float64 `yaml:"xl,omitempty" validate:"omitempty,min=0"`
}

// TypeTokens is the typography scale.
type TypeTokens struct {
	FontFamily string
	SizeXS     float64
	SizeSM     float64
	SizeMD     float64
	SizeLG     float64
	SizeXL     float64
	Regular    int
	Medium     int
	Bold       int
}

// Theme is the immutable input of every resolver call. It is replaced
// wholesale on mode or design change, never mutated in place.
type Theme struct {
	Mode       Mode
	Design     Design
	Colors     ColorTokens
	Spacing    ScaleTokens
	Typography TypeTokens
	Shape      RadiusTokens
}

// IsDark reports whether the theme is in dark mode.
func (t Theme) IsDark() bool {
	return t.Mode == ModeDark
}

// TokenSet returns the token table backing a design. Unimplemented designs
// use the flat table.
func TokenSet(d Design) tokens.Set {
	switch d {
	case DesignNeumorphic:
		return tokens.Neumorphic
	case DesignSkeuomorphic:
		return tokens.Skeuomorphic
	case DesignGlassmorphic:
		return tokens.Glassmorphic
	case DesignRetro:
		return tokens.Retro
	default:
		return tokens.Flat
	}
}
