package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

const skeuoGradientAngle = 180

// resolveSkeuomorphic renders tactile surfaces from the preset ramp for the
// component's group and state.
func resolveSkeuomorphic(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	return NewBuilder(th).
		Add(LayerBase, baseLayer(kind, opts)).
		Add(LayerDesign, skeuoDesign(kind, opts)).
		Add(LayerState, skeuoState(kind, state, opts)).
		Add(LayerCaller, callerLayer(opts)).
		Build()
}

func skeuoBase(th theme.Theme, kind Kind, opts Options, disabled bool) string {
	switch {
	case opts.BackgroundOverride != "":
		return opts.BackgroundOverride
	case disabled:
		return th.Colors.Disabled
	case groupOf(kind) != tokens.GroupControl:
		return th.Colors.Surface
	}
	switch opts.Variant {
	case VariantOutline, VariantGhost, VariantNeutral:
		return th.Colors.Surface
	}
	c, _ := accent(th.Colors, opts.Variant)
	return c
}

// applySkeuoPreset writes the gradient, its flat middle colour and the shadow
// stack of a preset onto d.
func applySkeuoPreset(d style.Descriptor, preset tokens.SkeuoPreset, base string) style.Descriptor {
	stops := make([]style.GradientStop, len(preset.Tones))
	for i, tone := range preset.Tones {
		color := base
		switch {
		case tone.Shift > 0:
			color = tokens.Lighten(base, tone.Shift)
		case tone.Shift < 0:
			color = tokens.Darken(base, -tone.Shift)
		}
		stops[i] = style.GradientStop{Offset: tone.Offset, Color: color}
	}
	d.Gradient = stops
	d.GradientAngle = skeuoGradientAngle
	if len(stops) > 0 {
		d.BackgroundColor = stops[len(stops)/2].Color
	}

	shadows := make([]style.Shadow, len(preset.Shadows))
	copy(shadows, preset.Shadows)
	d.Shadows = shadows
	d.BorderColor = tokens.Darken(base, 0.3)
	return d
}

func skeuoDesign(kind Kind, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		base := skeuoBase(th, kind, opts, false)
		preset := tokens.SkeuoPresets[tokens.SkeuoKey{Group: groupOf(kind)}]
		d = applySkeuoPreset(d, preset, base)
		d.BorderWidth = style.Num(tokens.Skeuomorphic.BorderWidth)
		if kind == KindModal {
			d.Shadows = tokens.Skeuomorphic.Shadow(tokens.PresetModal)
		}

		if groupOf(kind) == tokens.GroupControl && base != th.Colors.Surface {
			d.TextShadow = &style.Shadow{DY: -1, Color: "rgba(0, 0, 0, 0.3)"}
		}
		return d
	}
}

func skeuoState(kind Kind, state State, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		pressed := state.Pressed || selectedToggle(kind, state)
		if pressed || state.Disabled {
			key := tokens.SkeuoKey{Group: groupOf(kind), Pressed: pressed, Disabled: state.Disabled}
			d = applySkeuoPreset(d, tokens.SkeuoPresets[key], skeuoBase(th, kind, opts, state.Disabled))
		}
		if state.Disabled {
			d.TextColor = th.Colors.OnDisabled
			d.TextShadow = nil
		}
		if state.Focused && !state.Disabled {
			if kind == KindInput && !pressed {
				d.Shadows = tokens.Skeuomorphic.Shadow(tokens.PresetInputFocused)
			}
			d = focusRing(th.Colors.Primary, focusRingWidth)(d, th)
		}
		return d
	}
}
