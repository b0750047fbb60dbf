package variant

import (
	"math"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

// resolveNeumorphic extrudes the surface with a dark/light shadow pair and
// engraves it when pressed.
func resolveNeumorphic(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	return NewBuilder(th).
		Add(LayerBase, baseLayer(kind, opts)).
		Add(LayerDesign, neumorphicDesign(kind, opts)).
		Add(LayerState, neumorphicState(kind, state)).
		Add(LayerCaller, callerLayer(opts)).
		Build()
}

func neumorphicPreset(kind Kind) string {
	switch kind {
	case KindModal:
		return tokens.PresetModal
	case KindCard, KindTable, KindAlert:
		return tokens.PresetCard
	case KindInput:
		return tokens.PresetInputFocused
	default:
		return tokens.PresetButtonDefault
	}
}

// neumorphicDistance is the shadow offset for a kind at an intensity, taken
// from the outer layer of the kind's preset. Blur is always
// NeumorphicBlurRatio times this value.
func neumorphicDistance(kind Kind, intensity Intensity) float64 {
	preset := tokens.Neumorphic.Shadow(neumorphicPreset(kind))
	return math.Abs(preset[0].DX) * tokens.NeumorphicIntensityScale[intensity-1]
}

// neumorphicPair derives the shadow colours from the surface colour. Without
// an override the palette's own shadow and highlight are used.
func neumorphicPair(th theme.Theme, override string) (dark, light string) {
	if override == "" {
		return th.Colors.Shadow, th.Colors.Highlight
	}
	if th.IsDark() {
		return tokens.Darken(override, 0.35), tokens.Lighten(override, 0.06)
	}
	return tokens.Darken(override, 0.2), tokens.Lighten(override, 0.6)
}

func neumorphicDesign(kind Kind, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		c := th.Colors
		base := c.Surface
		if opts.BackgroundOverride != "" {
			base = opts.BackgroundOverride
		}
		d.BackgroundColor = base
		d.BorderWidth = style.Num(0)
		d.BorderColor = base

		if groupOf(kind) == tokens.GroupControl {
			switch opts.Variant {
			case VariantNeutral, VariantGhost:
				d.TextColor = c.Text
			case VariantOutline:
				d.TextColor = c.Primary
			default:
				d.TextColor, _ = accent(c, opts.Variant)
			}
		}

		dist := neumorphicDistance(kind, opts.Intensity)
		blur := dist * tokens.NeumorphicBlurRatio
		dark, light := neumorphicPair(th, opts.BackgroundOverride)
		d.Shadows = []style.Shadow{
			{DX: dist, DY: dist, Blur: blur, Color: dark},
			{DX: -dist, DY: -dist, Blur: blur, Color: light},
		}
		return d
	}
}

func neumorphicState(kind Kind, state State) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		// A selected toggle reads as pressed; pressing it pops it back out.
		inset := state.Pressed != selectedToggle(kind, state)

		shadows := make([]style.Shadow, len(d.Shadows))
		for i, s := range d.Shadows {
			if inset {
				s.DX, s.DY, s.Inset = -s.DX, -s.DY, true
			}
			if state.Disabled {
				s.DX, s.DY, s.Blur = s.DX/2, s.DY/2, s.Blur/2
			}
			shadows[i] = s
		}
		d.Shadows = shadows

		if state.Disabled {
			d.TextColor = th.Colors.OnDisabled
		}
		if state.Focused && !state.Disabled {
			d = focusRing(tokens.WithAlpha(th.Colors.Primary, 0.6), focusRingWidth)(d, th)
		}
		return d
	}
}
