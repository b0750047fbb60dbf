package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

func groupOf(kind Kind) tokens.Group {
	switch kind {
	case KindCard, KindModal, KindTable, KindAlert:
		return tokens.GroupSurface
	case KindInput:
		return tokens.GroupField
	default:
		return tokens.GroupControl
	}
}

type colorSet struct {
	background string
	text       string
	border     string
}

// accent returns the colour and its on-colour for a semantic variant.
func accent(p tokens.Palette, v Variant) (string, string) {
	switch v {
	case VariantSecondary:
		return p.Secondary, p.OnSecondary
	case VariantSuccess:
		return p.Success, p.OnPrimary
	case VariantWarning:
		return p.Warning, p.Text
	case VariantDanger:
		return p.Danger, p.OnPrimary
	case VariantInfo:
		return p.Info, p.OnPrimary
	case VariantNeutral:
		return p.Surface, p.Text
	default:
		return p.Primary, p.OnPrimary
	}
}

func colorsFor(p tokens.Palette, kind Kind, v Variant) colorSet {
	switch groupOf(kind) {
	case tokens.GroupSurface:
		cs := colorSet{background: p.Surface, text: p.Text, border: p.Border}
		if kind == KindAlert && v != VariantNeutral && v != VariantGhost && v != VariantOutline {
			c, _ := accent(p, v)
			cs.background = tokens.Mix(p.Surface, c, 0.15)
			cs.border = c
		}
		return cs
	case tokens.GroupField:
		return colorSet{background: p.Surface, text: p.Text, border: p.Border}
	}

	switch v {
	case VariantOutline:
		return colorSet{background: tokens.Transparent, text: p.Primary, border: p.Primary}
	case VariantGhost:
		return colorSet{background: tokens.Transparent, text: p.Text, border: tokens.Transparent}
	case VariantNeutral:
		return colorSet{background: p.Surface, text: p.Text, border: p.Border}
	}
	bg, fg := accent(p, v)
	return colorSet{background: bg, text: fg, border: bg}
}

func radiusFor(shape tokens.Radii, kind Kind) float64 {
	switch kind {
	case KindCard:
		return shape.LG
	case KindModal:
		return shape.XL
	case KindBadge, KindChip, KindToggle:
		return shape.Full
	case KindTable:
		return shape.SM
	default:
		return shape.MD
	}
}

func paddingFor(sp theme.ScaleTokens, kind Kind, size Size) style.Edges {
	if groupOf(kind) == tokens.GroupSurface {
		switch size {
		case SizeSmall:
			return style.Uniform(style.Num(sp.MD))
		case SizeLarge:
			return style.Uniform(style.Num(sp.XL))
		default:
			return style.Uniform(style.Num(sp.LG))
		}
	}
	switch size {
	case SizeSmall:
		return style.Symmetric(style.Num(sp.XS), style.Num(sp.SM))
	case SizeLarge:
		return style.Symmetric(style.Num(sp.MD), style.Num(sp.LG))
	default:
		return style.Symmetric(style.Num(sp.SM), style.Num(sp.MD))
	}
}

// baseLayer fills the box model shared by every design language.
func baseLayer(kind Kind, opts Options) StyleFunc {
	return func(d style.Descriptor, th theme.Theme) style.Descriptor {
		cs := colorsFor(th.Colors, kind, opts.Variant)
		d.BackgroundColor = cs.background
		d.TextColor = cs.text
		d.BorderColor = cs.border
		d.BorderRadius = style.Num(radiusFor(th.Shape, kind))
		d.Padding = paddingFor(th.Spacing, kind, opts.Size)
		return d
	}
}

// callerLayer applies literal caller overrides. Overrides are not validated.
func callerLayer(opts Options) StyleFunc {
	return func(d style.Descriptor, _ theme.Theme) style.Descriptor {
		if opts.BackgroundOverride != "" {
			d.BackgroundColor = opts.BackgroundOverride
			// Backends that cannot blur read the fallback instead.
			if d.Backdrop != nil {
				backdrop := *d.Backdrop
				backdrop.FallbackBackground = opts.BackgroundOverride
				d.Backdrop = &backdrop
			}
		}
		if opts.TextOverride != "" {
			d.TextColor = opts.TextOverride
		}
		if opts.Opacity != nil {
			d.Opacity = style.Float(*opts.Opacity)
		}
		return d
	}
}

// focusRing sets a solid border used by the focused state.
func focusRing(color string, width float64) StyleFunc {
	return func(d style.Descriptor, _ theme.Theme) style.Descriptor {
		d.BorderColor = color
		d.BorderWidth = style.Num(width)
		return d
	}
}

func selectedToggle(kind Kind, state State) bool {
	return kind == KindToggle && state.Selected
}
