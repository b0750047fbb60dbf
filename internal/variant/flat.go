package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

const (
	focusRingWidth = 2
	pressedShade   = 0.1
)

// resolveFlat is a direct token lookup with no depth effects.
func resolveFlat(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	return NewBuilder(th).
		Add(LayerBase, baseLayer(kind, opts)).
		Add(LayerDesign, flatDesign(kind, opts)).
		Add(LayerState, flatState(kind, state)).
		Add(LayerCaller, callerLayer(opts)).
		Build()
}

func flatDesign(kind Kind, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		d.Shadows = nil
		d.BorderWidth = style.Num(0)
		if opts.Variant == VariantOutline || groupOf(kind) != tokens.GroupControl {
			d.BorderWidth = style.Num(tokens.Flat.BorderWidth)
		}
		return d
	}
}

func flatState(kind Kind, state State) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		c := th.Colors
		if state.Selected {
			if kind == KindToggle {
				d.BackgroundColor, d.TextColor = c.Primary, c.OnPrimary
			} else {
				d.BackgroundColor, d.TextColor = c.Secondary, c.OnSecondary
			}
			d.BorderColor = d.BackgroundColor
		}
		if state.Pressed && d.BackgroundColor != tokens.Transparent {
			d.BackgroundColor = tokens.Darken(d.BackgroundColor, pressedShade)
		}
		if state.Disabled {
			d.BackgroundColor, d.TextColor, d.BorderColor = c.Disabled, c.OnDisabled, c.Disabled
		}
		if state.Focused && !state.Disabled {
			d = focusRing(c.Primary, focusRingWidth)(d, th)
		}
		return d
	}
}
