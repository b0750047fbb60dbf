// Package tokens holds the static design-language constant tables: colour
// palettes, radius scales, shadow and gradient presets. Nothing in here is
// computed at render time except the colour helpers in color.go.
package tokens

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// Shadow preset names shared by every design language.
const (
	PresetButtonDefault = "button.default"
	PresetButtonPressed = "button.pressed"
	PresetCard          = "card"
	PresetModal         = "modal"
	PresetInputFocused  = "input.focused"
)

// Group buckets component kinds that share presets.
type Group int

const (
	GroupControl Group = iota
	GroupSurface
	GroupField
)

// Palette is the semantic colour set of one design language in one mode.
type Palette struct {
	Primary     string `yaml:"primary,omitempty" validate:"omitempty,color"`
	OnPrimary   string `yaml:"on_primary,omitempty" validate:"omitempty,color"`
	Secondary   string `yaml:"secondary,omitempty" validate:"omitempty,color"`
	OnSecondary string `yaml:"on_secondary,omitempty" validate:"omitempty,color"`
	Success     string `yaml:"success,omitempty" validate:"omitempty,color"`
	Warning     string `yaml:"warning,omitempty" validate:"omitempty,color"`
	Danger      string `yaml:"danger,omitempty" validate:"omitempty,color"`
	Info        string `yaml:"info,omitempty" validate:"omitempty,color"`
	Background  string `yaml:"background,omitempty" validate:"omitempty,color"`
	Surface     string `yaml:"surface,omitempty" validate:"omitempty,color"`
	Text        string `yaml:"text,omitempty" validate:"omitempty,color"`
	TextMuted   string `yaml:"text_muted,omitempty" validate:"omitempty,color"`
	Border      string `yaml:"border,omitempty" validate:"omitempty,color"`
	Disabled    string `yaml:"disabled,omitempty" validate:"omitempty,color"`
	OnDisabled  string `yaml:"on_disabled,omitempty" validate:"omitempty,color"`
	Shadow      string `yaml:"shadow,omitempty" validate:"omitempty,color"`
	Highlight   string `yaml:"highlight,omitempty" validate:"omitempty,color"`
}

// Radii is the border-radius vocabulary.
type Radii struct {
	XS   float64 `yaml:"xs,omitempty" validate:"omitempty,min=0"`
	SM   float64 `yaml:"sm,omitempty" validate:"omitempty,min=0"`
	MD   float64 `yaml:"md,omitempty" validate:"omitempty,min=0"`
	LG   float64 `yaml:"lg,omitempty" validate:"omitempty,min=0"`
	XL   float64 `yaml:"xl,omitempty" validate:"omitempty,min=0"`
	Full float64 `yaml:"full,omitempty" validate:"omitempty,min=0"`
}

// Set is the full token table of one design language.
type Set struct {
	Name        string
	Light       Palette
	Dark        Palette
	Radii       Radii
	BorderWidth float64
	Shadows     map[string][]style.Shadow
}

// Palette returns the light or dark palette.
func (s Set) Palette(dark bool) Palette {
	if dark {
		return s.Dark
	}
	return s.Light
}

// Shadow returns a copy of the named shadow preset, or nil.
func (s Set) Shadow(name string) []style.Shadow {
	preset := s.Shadows[name]
	if len(preset) == 0 {
		return nil
	}
	out := make([]style.Shadow, len(preset))
	copy(out, preset)
	return out
}

const fullRadius = 9999

// Flat is the token table for the flat design language.
var Flat = Set{
	Name: "flat",
	Light: Palette{
		Primary:     "#3b82f6",
		OnPrimary:   "#f8fafc",
		Secondary:   "#a855f7",
		OnSecondary: "#f8fafc",
		Success:     "#22c55e",
		Warning:     "#eab308",
		Danger:      "#ef4444",
		Info:        "#06b6d4",
		Background:  "#f9fafb",
		Surface:     "#ffffff",
		Text:        "#111827",
		TextMuted:   "#64748b",
		Border:      "#e2e8f0",
		Disabled:    "#cbd5e1",
		OnDisabled:  "#94a3b8",
		Shadow:      "rgba(15, 23, 42, 0.12)",
		Highlight:   "#ffffff",
	},
	Dark: Palette{
		Primary:     "#60a5fa",
		OnPrimary:   "#0b1120",
		Secondary:   "#c084fc",
		OnSecondary: "#1f2937",
		Success:     "#4ade80",
		Warning:     "#facc15",
		Danger:      "#f87171",
		Info:        "#22d3ee",
		Background:  "#0b1120",
		Surface:     "#111827",
		Text:        "#f9fafb",
		TextMuted:   "#94a3b8",
		Border:      "#1f2937",
		Disabled:    "#334155",
		OnDisabled:  "#64748b",
		Shadow:      "rgba(0, 0, 0, 0.4)",
		Highlight:   "#1f2937",
	},
	Radii:       Radii{XS: 2, SM: 4, MD: 8, LG: 12, XL: 16, Full: fullRadius},
	BorderWidth: 1,
}

// Neumorphic is the token table for the soft-UI design language.
var Neumorphic = Set{
	Name: "neumorphic",
	Light: Palette{
		Primary:     "#6c63ff",
		OnPrimary:   "#ffffff",
		Secondary:   "#38bdf8",
		OnSecondary: "#0f172a",
		Success:     "#34d399",
		Warning:     "#fbbf24",
		Danger:      "#f87171",
		Info:        "#60a5fa",
		Background:  "#e0e5ec",
		Surface:     "#e0e5ec",
		Text:        "#44476a",
		TextMuted:   "#7b7e9c",
		Border:      "#d1d9e6",
		Disabled:    "#d5dae1",
		OnDisabled:  "#a0a6b5",
		Shadow:      "#a3b1c6",
		Highlight:   "#ffffff",
	},
	Dark: Palette{
		Primary:     "#8b85ff",
		OnPrimary:   "#14151a",
		Secondary:   "#7dd3fc",
		OnSecondary: "#0f172a",
		Success:     "#6ee7b7",
		Warning:     "#fcd34d",
		Danger:      "#fca5a5",
		Info:        "#93c5fd",
		Background:  "#2b2e33",
		Surface:     "#2b2e33",
		Text:        "#d8dce6",
		TextMuted:   "#8e93a1",
		Border:      "#34383e",
		Disabled:    "#33363c",
		OnDisabled:  "#5c616b",
		Shadow:      "#1d1f23",
		Highlight:   "#393d44",
	},
	Radii:       Radii{XS: 4, SM: 8, MD: 12, LG: 20, XL: 28, Full: fullRadius},
	BorderWidth: 0,
	Shadows: map[string][]style.Shadow{
		PresetButtonDefault: {{DX: 4, DY: 4, Blur: 8, Color: "#a3b1c6"}, {DX: -4, DY: -4, Blur: 8, Color: "#ffffff"}},
		PresetCard:          {{DX: 8, DY: 8, Blur: 16, Color: "#a3b1c6"}, {DX: -8, DY: -8, Blur: 16, Color: "#ffffff"}},
		PresetModal:         {{DX: 12, DY: 12, Blur: 24, Color: "#a3b1c6"}, {DX: -12, DY: -12, Blur: 24, Color: "#ffffff"}},
		PresetInputFocused:  {{DX: 3, DY: 3, Blur: 6, Color: "#a3b1c6", Inset: true}, {DX: -3, DY: -3, Blur: 6, Color: "#ffffff", Inset: true}},
	},
}

// Skeuomorphic is the token table for the tactile design language.
var Skeuomorphic = Set{
	Name: "skeuomorphic",
	Light: Palette{
		Primary:     "#2f6fb3",
		OnPrimary:   "#ffffff",
		Secondary:   "#8a5a2b",
		OnSecondary: "#fff8ef",
		Success:     "#3c8d3f",
		Warning:     "#d99a1e",
		Danger:      "#b83232",
		Info:        "#2b8ca3",
		Background:  "#ece9e2",
		Surface:     "#f5f3ee",
		Text:        "#2d2a26",
		TextMuted:   "#6b655c",
		Border:      "#b8b2a7",
		Disabled:    "#d9d5cc",
		OnDisabled:  "#9b958a",
		Shadow:      "rgba(0, 0, 0, 0.35)",
		Highlight:   "rgba(255, 255, 255, 0.8)",
	},
	Dark: Palette{
		Primary:     "#4a8fd6",
		OnPrimary:   "#0d1b2a",
		Secondary:   "#b07a45",
		OnSecondary: "#1e140a",
		Success:     "#5bb35f",
		Warning:     "#e8b146",
		Danger:      "#d65454",
		Info:        "#46a9c2",
		Background:  "#24221f",
		Surface:     "#302d29",
		Text:        "#ede8df",
		TextMuted:   "#a39d92",
		Border:      "#4a463f",
		Disabled:    "#3a3732",
		OnDisabled:  "#6f6a61",
		Shadow:      "rgba(0, 0, 0, 0.6)",
		Highlight:   "rgba(255, 255, 255, 0.12)",
	},
	Radii:       Radii{XS: 2, SM: 4, MD: 6, LG: 10, XL: 14, Full: fullRadius},
	BorderWidth: 1,
	Shadows: map[string][]style.Shadow{
		PresetButtonDefault: {{DY: 2, Blur: 3, Color: "rgba(0, 0, 0, 0.35)"}, {DY: 1, Color: "rgba(255, 255, 255, 0.6)", Inset: true}},
		PresetButtonPressed: {{DY: 2, Blur: 4, Color: "rgba(0, 0, 0, 0.45)", Inset: true}},
		PresetCard:          {{DY: 4, Blur: 10, Color: "rgba(0, 0, 0, 0.25)"}, {DY: 1, Blur: 2, Color: "rgba(0, 0, 0, 0.2)"}, {DY: 1, Color: "rgba(255, 255, 255, 0.7)", Inset: true}},
		PresetModal:         {{DY: 12, Blur: 30, Color: "rgba(0, 0, 0, 0.35)"}, {DY: 2, Blur: 4, Color: "rgba(0, 0, 0, 0.25)"}},
		PresetInputFocused:  {{DY: 1, Blur: 3, Color: "rgba(0, 0, 0, 0.3)", Inset: true}, {Blur: 4, Color: "rgba(47, 111, 179, 0.6)"}},
	},
}

// Glassmorphic is the token table for the frosted-glass design language.
var Glassmorphic = Set{
	Name: "glassmorphic",
	Light: Palette{
		Primary:     "#4f46e5",
		OnPrimary:   "#ffffff",
		Secondary:   "#ec4899",
		OnSecondary: "#ffffff",
		Success:     "#10b981",
		Warning:     "#f59e0b",
		Danger:      "#ef4444",
		Info:        "#0ea5e9",
		Background:  "#dbeafe",
		Surface:     "#ffffff",
		Text:        "#0f172a",
		TextMuted:   "#475569",
		Border:      "rgba(255, 255, 255, 0.45)",
		Disabled:    "#e2e8f0",
		OnDisabled:  "#94a3b8",
		Shadow:      "rgba(31, 38, 135, 0.15)",
		Highlight:   "rgba(255, 255, 255, 0.6)",
	},
	Dark: Palette{
		Primary:     "#818cf8",
		OnPrimary:   "#0f172a",
		Secondary:   "#f472b6",
		OnSecondary: "#0f172a",
		Success:     "#34d399",
		Warning:     "#fbbf24",
		Danger:      "#f87171",
		Info:        "#38bdf8",
		Background:  "#0f172a",
		Surface:     "#1e293b",
		Text:        "#f1f5f9",
		TextMuted:   "#94a3b8",
		Border:      "rgba(255, 255, 255, 0.12)",
		Disabled:    "#334155",
		OnDisabled:  "#64748b",
		Shadow:      "rgba(0, 0, 0, 0.35)",
		Highlight:   "rgba(255, 255, 255, 0.08)",
	},
	Radii:       Radii{XS: 4, SM: 8, MD: 12, LG: 16, XL: 24, Full: fullRadius},
	BorderWidth: 1,
	Shadows: map[string][]style.Shadow{
		PresetButtonDefault: {{DY: 4, Blur: 16, Color: "rgba(31, 38, 135, 0.15)"}},
		PresetButtonPressed: {{DY: 2, Blur: 8, Color: "rgba(31, 38, 135, 0.2)"}},
		PresetCard:          {{DY: 8, Blur: 32, Color: "rgba(31, 38, 135, 0.15)"}},
		PresetModal:         {{DY: 16, Blur: 48, Color: "rgba(31, 38, 135, 0.25)"}},
		PresetInputFocused:  {{Blur: 12, Color: "rgba(79, 70, 229, 0.35)"}},
	},
}

// Retro is the token table for the retro design language. Component colours
// come from the era palettes in retro.go; this palette backs theme-level use.
// Shadows come from the per-style RetroShadows table, not named presets.
var Retro = Set{
	Name:        "retro",
	Light:       RetroEras[1].Palette(false),
	Dark:        RetroEras[1].Palette(true),
	Radii:       Radii{XS: 0, SM: 2, MD: 4, LG: 6, XL: 8, Full: fullRadius},
	BorderWidth: 2,
}
