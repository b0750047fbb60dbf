package theme

import "github.com/alexisbeaulieu97/stylekit/internal/tokens"

// Overrides holds user-supplied replacements. Empty fields keep the design
// language's value.
type Overrides struct {
	Colors     ColorTokens  `yaml:"colors,omitempty"`
	Spacing    ScaleTokens  `yaml:"spacing,omitempty"`
	Shape      RadiusTokens `yaml:"shape,omitempty"`
	FontFamily string       `yaml:"font_family,omitempty"`
}

// Compose builds the theme for a design and mode, then applies overrides.
func Compose(design Design, mode Mode, overrides *Overrides) Theme {
	set := TokenSet(design)
	th := Theme{
		Mode:       mode,
		Design:     design,
		Colors:     set.Palette(mode == ModeDark),
		Spacing:    defaultSpacing(),
		Typography: defaultTypography(design),
		Shape:      set.Radii,
	}
	if overrides == nil {
		return th
	}

	th.Colors = mergePalette(th.Colors, overrides.Colors)
	th.Spacing = mergeSpacing(th.Spacing, overrides.Spacing)
	th.Shape = mergeRadii(th.Shape, overrides.Shape)
	if overrides.FontFamily != "" {
		th.Typography.FontFamily = overrides.FontFamily
	}
	return th
}

// Default returns the flat light theme.
func Default() Theme {
	return Compose(DesignFlat, ModeLight, nil)
}

func defaultSpacing() ScaleTokens {
	return ScaleTokens{XS: 4, SM: 8, MD: 12, LG: 16, XL: 24}
}

func defaultTypography(design Design) TypeTokens {
	family := "Inter, system-ui, sans-serif"
	if design == DesignRetro {
		family = "\"Press Start 2P\", monospace"
	}
	return TypeTokens{
		FontFamily: family,
		SizeXS:     12,
		SizeSM:     14,
		SizeMD:     16,
		SizeLG:     20,
		SizeXL:     24,
		Regular:    400,
		Medium:     500,
		Bold:       700,
	}
}

func mergePalette(base, over tokens.Palette) tokens.Palette {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&base.Primary, over.Primary)
	pick(&base.OnPrimary, over.OnPrimary)
	pick(&base.Secondary, over.Secondary)
	pick(&base.OnSecondary, over.OnSecondary)
	pick(&base.Success, over.Success)
	pick(&base.Warning, over.Warning)
	pick(&base.Danger, over.Danger)
	pick(&base.Info, over.Info)
	pick(&base.Background, over.Background)
	pick(&base.Surface, over.Surface)
	pick(&base.Text, over.Text)
	pick(&base.TextMuted, over.TextMuted)
	pick(&base.Border, over.Border)
	pick(&base.Disabled, over.Disabled)
	pick(&base.OnDisabled, over.OnDisabled)
	pick(&base.Shadow, over.Shadow)
	pick(&base.Highlight, over.Highlight)
	return base
}

func mergeSpacing(base, over ScaleTokens) ScaleTokens {
	pick := func(dst *float64, src float64) {
		if src > 0 {
			*dst = src
		}
	}
	pick(&base.XS, over.XS)
	pick(&base.SM, over.SM)
	pick(&base.MD, over.MD)
	pick(&base.LG, over.LG)
	pick(&base.XL, over.XL)
	return base
}

func mergeRadii(base, over tokens.Radii) tokens.Radii {
	pick := func(dst *float64, src float64) {
		if src > 0 {
			*dst = src
		}
	}
	pick(&base.XS, over.XS)
	pick(&base.SM, over.SM)
	pick(&base.MD, over.MD)
	pick(&base.LG, over.LG)
	pick(&base.XL, over.XL)
	pick(&base.Full, over.Full)
	return base
}
