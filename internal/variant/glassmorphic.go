package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

const glassDisabledOpacity = 0.5

// resolveGlassmorphic renders frosted translucent surfaces. The descriptor
// carries both the blur request and its opaque degradation so the adapter
// can pick one without calling back into the resolver.
func resolveGlassmorphic(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	return NewBuilder(th).
		Add(LayerBase, baseLayer(kind, opts)).
		Add(LayerDesign, glassDesign(kind, opts)).
		Add(LayerState, glassState(kind, state, opts)).
		Add(LayerCaller, callerLayer(opts)).
		Build()
}

func glassTint(th theme.Theme, kind Kind, opts Options) string {
	if opts.BackgroundOverride != "" {
		return opts.BackgroundOverride
	}
	if groupOf(kind) != tokens.GroupControl {
		return th.Colors.Surface
	}
	switch opts.Variant {
	case VariantOutline, VariantGhost, VariantNeutral:
		return th.Colors.Surface
	}
	c, _ := accent(th.Colors, opts.Variant)
	return c
}

func glassShadowPreset(kind Kind) string {
	switch kind {
	case KindModal:
		return tokens.PresetModal
	case KindCard, KindTable, KindAlert:
		return tokens.PresetCard
	case KindInput:
		return ""
	default:
		return tokens.PresetButtonDefault
	}
}

// glassBackdrop pairs the blur radius with the degradation used when the
// backend cannot blur: a more opaque tint and stronger shadows.
func glassBackdrop(tint string, shadows []style.Shadow, opts Options) *style.Backdrop {
	idx := opts.Intensity - 1
	scale := tokens.GlassFallbackShadowScale[idx]
	fallback := make([]style.Shadow, len(shadows))
	for i, s := range shadows {
		s.Color = tokens.ScaleAlpha(s.Color, scale)
		fallback[i] = s
	}
	return &style.Backdrop{
		Blur:               tokens.GlassBlur[opts.Blur-1],
		FallbackBackground: tokens.WithAlpha(tint, tokens.GlassFallbackOpacity[idx]),
		FallbackShadows:    fallback,
	}
}

func glassDesign(kind Kind, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		tint := glassTint(th, kind, opts)
		d.BackgroundColor = tokens.WithAlpha(tint, tokens.GlassOpacity[opts.Intensity-1])
		d.BorderWidth = style.Num(tokens.Glassmorphic.BorderWidth)
		d.BorderColor = th.Colors.Border
		d.TextColor = th.Colors.Text
		if opts.TextOverride == "" && groupOf(kind) == tokens.GroupControl && opts.Variant == VariantOutline {
			d.TextColor = th.Colors.Primary
		}
		d.Shadows = tokens.Glassmorphic.Shadow(glassShadowPreset(kind))
		d.Backdrop = glassBackdrop(tint, d.Shadows, opts)
		return d
	}
}

func glassState(kind Kind, state State, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		tint := glassTint(th, kind, opts)
		switch {
		case state.Focused && kind == KindInput:
			d.Shadows = tokens.Glassmorphic.Shadow(tokens.PresetInputFocused)
		case (state.Pressed || selectedToggle(kind, state)) && groupOf(kind) == tokens.GroupControl:
			d.Shadows = tokens.Glassmorphic.Shadow(tokens.PresetButtonPressed)
		}
		d.Backdrop = glassBackdrop(tint, d.Shadows, opts)

		if state.Disabled {
			d.Opacity = style.Float(glassDisabledOpacity)
			d.TextColor = th.Colors.OnDisabled
		}
		if state.Focused && !state.Disabled {
			d = focusRing(tokens.WithAlpha(th.Colors.Primary, 0.6), focusRingWidth)(d, th)
		}
		return d
	}
}
