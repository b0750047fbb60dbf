package tokens

import "github.com/alexisbeaulieu97/stylekit/internal/style"

// ToneStop is a gradient stop expressed relative to a base colour: positive
// Shift lightens, negative darkens.
type ToneStop struct {
	Offset float64
	Shift  float64
}

// SkeuoPreset is the gradient ramp and shadow stack of one skeuomorphic state.
type SkeuoPreset struct {
	Tones   []ToneStop
	Shadows []style.Shadow
}

// SkeuoKey selects a skeuomorphic preset.
type SkeuoKey struct {
	Group    Group
	Pressed  bool
	Disabled bool
}

// SkeuoPresets covers every (group, pressed, disabled) combination. The
// resting and pressed control stacks and the resting surface stack are the
// named Skeuomorphic shadow presets.
var SkeuoPresets = map[SkeuoKey]SkeuoPreset{
	{Group: GroupControl}: {
		Tones:   []ToneStop{{0, 0.25}, {0.5, 0}, {1, -0.15}},
		Shadows: Skeuomorphic.Shadows[PresetButtonDefault],
	},
	{Group: GroupControl, Pressed: true}: {
		Tones:   []ToneStop{{0, -0.15}, {0.5, -0.05}, {1, 0.1}},
		Shadows: Skeuomorphic.Shadows[PresetButtonPressed],
	},
	{Group: GroupControl, Disabled: true}: {
		Tones:   []ToneStop{{0, 0.1}, {1, -0.05}},
		Shadows: []style.Shadow{{DY: 1, Blur: 1, Color: "rgba(0, 0, 0, 0.15)"}},
	},
	{Group: GroupControl, Pressed: true, Disabled: true}: {
		Tones:   []ToneStop{{0, 0.1}, {1, -0.05}},
		Shadows: []style.Shadow{{DY: 1, Blur: 1, Color: "rgba(0, 0, 0, 0.15)"}},
	},
	{Group: GroupSurface}: {
		Tones:   []ToneStop{{0, 0.15}, {1, -0.04}},
		Shadows: Skeuomorphic.Shadows[PresetCard],
	},
	{Group: GroupSurface, Pressed: true}: {
		Tones: []ToneStop{{0, -0.04}, {1, 0.08}},
		Shadows: []style.Shadow{
			{DY: 2, Blur: 6, Color: "rgba(0, 0, 0, 0.3)", Inset: true},
			{DY: 1, Blur: 1, Color: "rgba(0, 0, 0, 0.15)"},
		},
	},
	{Group: GroupSurface, Disabled: true}: {
		Tones:   []ToneStop{{0, 0.05}, {1, 0}},
		Shadows: []style.Shadow{{DY: 1, Blur: 2, Color: "rgba(0, 0, 0, 0.1)"}},
	},
	{Group: GroupSurface, Pressed: true, Disabled: true}: {
		Tones:   []ToneStop{{0, 0.05}, {1, 0}},
		Shadows: []style.Shadow{{DY: 1, Blur: 2, Color: "rgba(0, 0, 0, 0.1)"}},
	},
	{Group: GroupField}: {
		Tones: []ToneStop{{0, -0.06}, {0.3, 0}, {1, 0.04}},
		Shadows: []style.Shadow{
			{DY: 1, Blur: 3, Color: "rgba(0, 0, 0, 0.3)", Inset: true},
			{DY: 1, Color: "rgba(255, 255, 255, 0.8)"},
		},
	},
	{Group: GroupField, Pressed: true}: {
		Tones: []ToneStop{{0, -0.1}, {0.3, -0.03}, {1, 0.02}},
		Shadows: []style.Shadow{
			{DY: 2, Blur: 4, Color: "rgba(0, 0, 0, 0.4)", Inset: true},
		},
	},
	{Group: GroupField, Disabled: true}: {
		Tones:   []ToneStop{{0, 0}, {1, 0.03}},
		Shadows: []style.Shadow{{DY: 1, Blur: 1, Color: "rgba(0, 0, 0, 0.12)", Inset: true}},
	},
	{Group: GroupField, Pressed: true, Disabled: true}: {
		Tones:   []ToneStop{{0, 0}, {1, 0.03}},
		Shadows: []style.Shadow{{DY: 1, Blur: 1, Color: "rgba(0, 0, 0, 0.12)", Inset: true}},
	},
}

// Glass tables, indexed by intensity (subtle, medium, strong) or blur
// level (light, medium, heavy).
var (
	GlassOpacity = [...]float64{0.10, 0.18, 0.28}
	GlassBlur    = [...]float64{8, 16, 24}

	// GlassFallbackOpacity replaces GlassOpacity when the backend cannot blur.
	GlassFallbackOpacity = [...]float64{0.72, 0.82, 0.92}
	// GlassFallbackShadowScale multiplies shadow alpha when the backend cannot blur.
	GlassFallbackShadowScale = [...]float64{1.5, 1.75, 2.0}
)

// NeumorphicIntensityScale multiplies the base offset distance taken from the
// Neumorphic shadow presets (subtle, medium, strong).
var NeumorphicIntensityScale = [...]float64{0.5, 1, 1.5}

// NeumorphicBlurRatio ties blur to offset distance.
const NeumorphicBlurRatio = 2
