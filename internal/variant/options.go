package variant

import (
	"math"
	"strings"
)

// Kind is the widget type a style is resolved for.
type Kind int

const (
	KindButton Kind = iota
	KindCard
	KindToggle
	KindTable
	KindBadge
	KindInput
	KindModal
	KindAlert
	KindChip
)

var kindNames = []string{"button", "card", "toggle", "table", "badge", "input", "modal", "alert", "chip"}

func (k Kind) String() string { return enumName(kindNames, int(k)) }

// Variant is the semantic colour role of a widget.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantSuccess
	VariantWarning
	VariantDanger
	VariantInfo
	VariantNeutral
	VariantOutline
	VariantGhost
)

var variantNames = []string{"primary", "secondary", "success", "warning", "danger", "info", "neutral", "outline", "ghost"}

func (v Variant) String() string { return enumName(variantNames, int(v)) }

// Size scales padding. The zero value selects SizeMedium.
type Size int

const (
	SizeDefault Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

var sizeNames = []string{"default", "sm", "md", "lg"}

func (s Size) String() string { return enumName(sizeNames, int(s)) }

// Era selects a retro palette. The zero value selects EraEighties.
type Era int

const (
	EraDefault Era = iota
	EraSeventies
	EraEighties
	EraNineties
	EraY2K
	EraVaporwave
	EraSynthwave
)

var eraNames = []string{"default", "seventies", "eighties", "nineties", "y2k", "vaporwave", "synthwave"}

func (e Era) String() string { return enumName(eraNames, int(e)) }

// Intensity controls glass opacity and neumorphic depth. The zero value
// selects IntensityMedium.
type Intensity int

const (
	IntensityDefault Intensity = iota
	IntensitySubtle
	IntensityMedium
	IntensityStrong
)

var intensityNames = []string{"default", "subtle", "medium", "strong"}

func (i Intensity) String() string { return enumName(intensityNames, int(i)) }

// BlurLevel controls the glass backdrop blur radius. The zero value selects
// BlurMedium.
type BlurLevel int

const (
	BlurDefault BlurLevel = iota
	BlurLight
	BlurMedium
	BlurHeavy
)

var blurNames = []string{"default", "light", "medium", "heavy"}

func (b BlurLevel) String() string { return enumName(blurNames, int(b)) }

// CornerRadius is the retro corner style. The zero value selects CornerSoft.
type CornerRadius int

const (
	CornerDefault CornerRadius = iota
	CornerSharp
	CornerSoft
	CornerRound
)

var cornerNames = []string{"default", "sharp", "soft", "round"}

func (c CornerRadius) String() string { return enumName(cornerNames, int(c)) }

// BorderThickness is the retro border weight. The zero value selects
// BorderMedium.
type BorderThickness int

const (
	BorderDefault BorderThickness = iota
	BorderThin
	BorderMedium
	BorderThick
)

var thicknessNames = []string{"default", "thin", "medium", "thick"}

func (b BorderThickness) String() string { return enumName(thicknessNames, int(b)) }

// ShadowStyle is the retro shadow style. The zero value selects ShadowHard.
type ShadowStyle int

const (
	ShadowDefault ShadowStyle = iota
	ShadowNone
	ShadowHard
	ShadowSoft
)

var shadowStyleNames = []string{"default", "none", "hard", "soft"}

func (s ShadowStyle) String() string { return enumName(shadowStyleNames, int(s)) }

// State is the interaction state supplied by the widget on every call.
type State struct {
	Pressed  bool
	Disabled bool
	Focused  bool
	Selected bool
}

// Options are the widget-supplied resolver inputs. Every field has a usable
// zero value.
type Options struct {
	Variant            Variant
	Size               Size
	BackgroundOverride string
	TextOverride       string
	Era                Era
	Intensity          Intensity
	Blur               BlurLevel
	CornerRadius       CornerRadius
	BorderThickness    BorderThickness
	ShadowStyle        ShadowStyle
	Glow               bool
	Opacity            *float64
}

// Normalize resolves defaults and clamps out-of-range values to the nearest
// valid bound. A NaN opacity is treated as unset.
func (o Options) Normalize() Options {
	o.Variant = clampEnum(o.Variant, VariantPrimary, VariantGhost)
	o.Size = normalizeEnum(o.Size, SizeMedium, SizeSmall, SizeLarge)
	o.Era = normalizeEnum(o.Era, EraEighties, EraSeventies, EraSynthwave)
	o.Intensity = normalizeEnum(o.Intensity, IntensityMedium, IntensitySubtle, IntensityStrong)
	o.Blur = normalizeEnum(o.Blur, BlurMedium, BlurLight, BlurHeavy)
	o.CornerRadius = normalizeEnum(o.CornerRadius, CornerSoft, CornerSharp, CornerRound)
	o.BorderThickness = normalizeEnum(o.BorderThickness, BorderMedium, BorderThin, BorderThick)
	o.ShadowStyle = normalizeEnum(o.ShadowStyle, ShadowHard, ShadowNone, ShadowSoft)
	o.BackgroundOverride = strings.TrimSpace(o.BackgroundOverride)
	o.TextOverride = strings.TrimSpace(o.TextOverride)

	if o.Opacity != nil {
		v := *o.Opacity
		if math.IsNaN(v) {
			o.Opacity = nil
		} else {
			v = math.Max(0, math.Min(1, v))
			o.Opacity = &v
		}
	}
	return o
}

func clampEnum[T ~int](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeEnum maps the zero value to def and clamps everything else into
// [first, last].
func normalizeEnum[T ~int](v, def, first, last T) T {
	if v == 0 {
		return def
	}
	return clampEnum(v, first, last)
}

// Normalize clamps an out-of-range kind to the nearest declared one.
func (k Kind) Normalize() Kind {
	return clampEnum(k, KindButton, KindChip)
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "unknown"
	}
	return names[v]
}

func parseEnum[T ~int](names []string, s string) (T, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return T(i), true
		}
	}
	return 0, false
}

// ParseKind converts a kind name such as "button".
func ParseKind(s string) (Kind, bool) { return parseEnum[Kind](kindNames, s) }

// ParseVariant converts a variant name such as "primary".
func ParseVariant(s string) (Variant, bool) { return parseEnum[Variant](variantNames, s) }

// ParseSize converts "sm", "md" or "lg".
func ParseSize(s string) (Size, bool) { return parseEnum[Size](sizeNames, s) }

// ParseEra converts an era name such as "vaporwave".
func ParseEra(s string) (Era, bool) { return parseEnum[Era](eraNames, s) }

// ParseIntensity converts "subtle", "medium" or "strong".
func ParseIntensity(s string) (Intensity, bool) { return parseEnum[Intensity](intensityNames, s) }

// ParseBlur converts "light", "medium" or "heavy".
func ParseBlur(s string) (BlurLevel, bool) { return parseEnum[BlurLevel](blurNames, s) }

// ParseCorner converts "sharp", "soft" or "round".
func ParseCorner(s string) (CornerRadius, bool) { return parseEnum[CornerRadius](cornerNames, s) }

// ParseThickness converts "thin", "medium" or "thick".
func ParseThickness(s string) (BorderThickness, bool) {
	return parseEnum[BorderThickness](thicknessNames, s)
}

// ParseShadowStyle converts "none", "hard" or "soft".
func ParseShadowStyle(s string) (ShadowStyle, bool) {
	return parseEnum[ShadowStyle](shadowStyleNames, s)
}

// Kinds lists every component kind.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}
