package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

const retroPressOffset = 2

// resolveRetro composes an era palette with the border, corner and shadow
// tables. The glow flag is passed through as a Glow record.
func resolveRetro(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	return NewBuilder(th).
		Add(LayerBase, baseLayer(kind, opts)).
		Add(LayerDesign, retroDesign(kind, opts)).
		Add(LayerState, retroState(kind, state, opts)).
		Add(LayerCaller, callerLayer(opts)).
		Build()
}

func retroEra(e Era) tokens.RetroPalette {
	return tokens.RetroEras[e-1]
}

func retroDesign(kind Kind, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		era := retroEra(opts.Era)
		cs := colorsFor(era.Palette(th.IsDark()), kind, opts.Variant)
		d.BackgroundColor = cs.background
		d.TextColor = cs.text
		d.BorderColor = era.Border

		d.BorderWidth = style.Num(tokens.RetroBorderWidths[opts.BorderThickness-1])
		d.BorderRadius = style.Num(tokens.RetroCornerRadii[opts.CornerRadius-1])

		d.Shadows = nil
		if preset := tokens.RetroShadows[opts.ShadowStyle-1]; preset != nil {
			s := *preset
			s.Color = era.Border
			d.Shadows = []style.Shadow{s}
		}
		if opts.Glow {
			d.Glow = &style.Glow{Color: era.Glow, Radius: tokens.RetroGlowRadius}
		}
		d.Extra = map[string]style.Primitive{"fontFamily": th.Typography.FontFamily}
		return d
	}
}

func retroState(kind Kind, state State, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		era := retroEra(opts.Era)
		p := era.Palette(th.IsDark())

		if state.Selected {
			d.BackgroundColor, d.TextColor = p.Secondary, p.OnSecondary
		}
		if state.Pressed && !state.Disabled {
			// The surface moves into its own shadow.
			d.Transforms = []style.Transform{
				{Op: style.TransformTranslateX, Value: retroPressOffset},
				{Op: style.TransformTranslateY, Value: retroPressOffset},
			}
			shadows := make([]style.Shadow, len(d.Shadows))
			for i, s := range d.Shadows {
				s.DX, s.DY = s.DX/2, s.DY/2
				shadows[i] = s
			}
			d.Shadows = shadows
		}
		if state.Disabled {
			d.BackgroundColor, d.TextColor = p.Disabled, p.OnDisabled
			d.BorderColor = p.OnDisabled
			d.Glow = nil
		}
		if state.Focused && !state.Disabled {
			d.BorderColor = era.Glow
		}
		return d
	}
}
