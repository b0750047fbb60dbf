// Package adapter converts portable style descriptors into the primitives of
// a concrete render backend. Conversion is pure, lossy where the backend
// lacks a feature, and never cached here.
package adapter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// NativeStyle is a backend style keyed by camelCase property names.
type NativeStyle map[string]any

// Property names emitted by Adapt.
const (
	PropBackgroundColor = "backgroundColor"
	PropBackgroundImage = "backgroundImage"
	PropBorderColor     = "borderColor"
	PropBorderWidth     = "borderWidth"
	PropBorderRadius    = "borderRadius"
	PropColor           = "color"
	PropTextShadow      = "textShadow"
	PropOpacity         = "opacity"
	PropPadding         = "padding"
	PropPaddingTop      = "paddingTop"
	PropPaddingRight    = "paddingRight"
	PropPaddingBottom   = "paddingBottom"
	PropPaddingLeft     = "paddingLeft"
	PropMargin          = "margin"
	PropMarginTop       = "marginTop"
	PropMarginRight     = "marginRight"
	PropMarginBottom    = "marginBottom"
	PropMarginLeft      = "marginLeft"
	PropBoxShadow       = "boxShadow"
	PropShadowColor     = "shadowColor"
	PropShadowOffset    = "shadowOffset"
	PropShadowRadius    = "shadowRadius"
	PropElevation       = "elevation"
	PropTransform       = "transform"
	PropBackdropFilter  = "backdropFilter"
	PropFilter          = "filter"
)

var shadowProps = []string{PropBoxShadow, PropShadowColor, PropShadowOffset, PropShadowRadius, PropTextShadow}

// Adapt converts d for a backend. The descriptor is not modified.
func Adapt(d style.Descriptor, caps Capabilities) NativeStyle {
	caps = caps.WithDefaults()

	d = ApplyBackdrop(d, caps)
	d = ApplyGlow(d, caps)
	d = FlattenGradient(d, caps)

	ns := NativeStyle{}
	setString(ns, PropBackgroundColor, d.BackgroundColor)
	setString(ns, PropBorderColor, d.BorderColor)
	setString(ns, PropColor, d.TextColor)
	if !d.BorderWidth.IsZero() || d.BorderColor != "" {
		ns[PropBorderWidth] = d.BorderWidth
	}
	if !d.BorderRadius.IsZero() {
		ns[PropBorderRadius] = d.BorderRadius
	}
	if !d.Padding.IsZero() {
		ns[PropPadding] = d.Padding
	}
	if !d.Margin.IsZero() {
		ns[PropMargin] = d.Margin
	}
	if d.Opacity != nil {
		ns[PropOpacity] = *d.Opacity
	}
	if len(d.Gradient) > 0 {
		ns[PropBackgroundImage] = linearGradient(d.GradientAngle, d.Gradient)
	}
	if d.TextShadow != nil && caps.ShadowFormat == ShadowCSS {
		ns[PropTextShadow] = cssShadow(*d.TextShadow)
	}
	for k, v := range FlattenShadows(d.Shadows, caps) {
		ns[k] = v
	}
	if caps.SupportsElevation {
		elevation := d.Elevation
		if elevation == 0 {
			elevation = ElevationFor(d.Shadows)
		}
		if elevation > 0 {
			ns[PropElevation] = elevation
		}
	}
	if t := ComposeTransforms(d.Transforms, caps.TransformFormat); t != nil {
		ns[PropTransform] = t
	}
	if d.Backdrop != nil && d.Backdrop.Blur > 0 {
		ns[PropBackdropFilter] = fmt.Sprintf("blur(%spx)", style.FormatNumber(d.Backdrop.Blur))
	}
	if d.Glow != nil {
		ns[PropFilter] = fmt.Sprintf("drop-shadow(0px 0px %spx %s)", style.FormatNumber(d.Glow.Radius), d.Glow.Color)
	}
	for k, v := range d.Extra {
		if _, taken := ns[k]; !taken {
			ns[k] = v
		}
	}

	ns = ExpandShorthand(ns, caps)
	ns = CoerceUnits(ns, caps)
	return Prune(ns, caps)
}

func setString(ns NativeStyle, key, value string) {
	if value != "" {
		ns[key] = value
	}
}

// ApplyBackdrop keeps the blur request on backends that can blur and swaps
// in the opaque fallback background and shadows everywhere else.
func ApplyBackdrop(d style.Descriptor, caps Capabilities) style.Descriptor {
	if d.Backdrop == nil || caps.SupportsBackgroundBlur {
		return d
	}
	d = d.Clone()
	if d.Backdrop.FallbackBackground != "" {
		d.BackgroundColor = d.Backdrop.FallbackBackground
	}
	if d.Backdrop.FallbackShadows != nil {
		d.Shadows = d.Backdrop.FallbackShadows
	}
	d.Backdrop = nil
	return d
}

// ApplyGlow keeps the glow primitive on backends that support it and
// otherwise prepends an equivalent halo shadow as the outermost layer.
func ApplyGlow(d style.Descriptor, caps Capabilities) style.Descriptor {
	if d.Glow == nil || caps.SupportsGlow {
		return d
	}
	d = d.Clone()
	halo := style.Shadow{Blur: d.Glow.Radius, Color: d.Glow.Color}
	d.Shadows = append([]style.Shadow{halo}, d.Shadows...)
	d.Glow = nil
	return d
}

// FlattenGradient replaces the gradient with its floor(n/2) stop on backends
// without gradient support. It is idempotent.
func FlattenGradient(d style.Descriptor, caps Capabilities) style.Descriptor {
	if len(d.Gradient) == 0 || caps.SupportsGradient {
		return d
	}
	d = d.Clone()
	d.BackgroundColor = d.Gradient[len(d.Gradient)/2].Color
	d.Gradient = nil
	d.GradientAngle = 0
	return d
}

// FlattenShadows emits the shadow stack in the backend's format. Single-layer
// backends keep only the outermost entry.
func FlattenShadows(shadows []style.Shadow, caps Capabilities) NativeStyle {
	if len(shadows) == 0 || caps.ShadowFormat == ShadowNone || caps.ShadowFormat == "" {
		return nil
	}
	if !caps.SupportsMultiShadow {
		shadows = shadows[:1]
	}

	switch caps.ShadowFormat {
	case ShadowCSS:
		parts := make([]string, len(shadows))
		for i, s := range shadows {
			parts[i] = cssShadow(s)
		}
		return NativeStyle{PropBoxShadow: strings.Join(parts, ", ")}
	case ShadowStructured:
		if len(shadows) == 1 {
			s := shadows[0]
			return NativeStyle{
				PropShadowColor:  s.Color,
				PropShadowOffset: map[string]any{"width": s.DX, "height": s.DY},
				PropShadowRadius: s.Blur,
			}
		}
		layers := make([]map[string]any, len(shadows))
		for i, s := range shadows {
			layers[i] = map[string]any{
				"offsetX":        s.DX,
				"offsetY":        s.DY,
				"blurRadius":     s.Blur,
				"spreadDistance": s.Spread,
				"color":          s.Color,
				"inset":          s.Inset,
			}
		}
		return NativeStyle{PropBoxShadow: layers}
	}
	return nil
}

func cssShadow(s style.Shadow) string {
	var b strings.Builder
	if s.Inset {
		b.WriteString("inset ")
	}
	fmt.Fprintf(&b, "%spx %spx %spx", style.FormatNumber(s.DX), style.FormatNumber(s.DY), style.FormatNumber(s.Blur))
	if s.Spread != 0 {
		fmt.Fprintf(&b, " %spx", style.FormatNumber(s.Spread))
	}
	if s.Color != "" {
		b.WriteByte(' ')
		b.WriteString(s.Color)
	}
	return b.String()
}

func linearGradient(angle float64, stops []style.GradientStop) string {
	parts := make([]string, len(stops))
	for i, stop := range stops {
		parts[i] = fmt.Sprintf("%s %s%%", stop.Color, style.FormatNumber(math.Round(stop.Offset*1000)/10))
	}
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", style.FormatNumber(angle), strings.Join(parts, ", "))
}

// elevationOffsets maps elevation levels 1..5 to the vertical offset of an
// equivalent drop shadow.
var elevationOffsets = [...]float64{1, 2, 4, 6, 8}

// ElevationFor estimates a platform elevation level from the outermost
// non-inset shadow. It returns 0 when there is none.
func ElevationFor(shadows []style.Shadow) float64 {
	for _, s := range shadows {
		if s.Inset {
			continue
		}
		depth := math.Max(math.Abs(s.DY), s.Blur/2)
		if depth == 0 {
			return 0
		}
		for i, offset := range elevationOffsets {
			if depth <= offset {
				return float64(i + 1)
			}
		}
		return float64(len(elevationOffsets))
	}
	return 0
}

var knownTransforms = map[style.TransformOp]string{
	style.TransformTranslateX: "px",
	style.TransformTranslateY: "px",
	style.TransformScale:      "",
	style.TransformScaleX:     "",
	style.TransformScaleY:     "",
	style.TransformRotate:     "deg",
}

// ComposeTransforms renders an ordered transform list as a CSS string or a
// list of single-key maps. Unknown operations are dropped. It returns nil
// when nothing remains or the format is TransformNone.
func ComposeTransforms(transforms []style.Transform, format TransformFormat) any {
	if format != TransformCSS && format != TransformList {
		return nil
	}

	var (
		css  []string
		list []map[string]any
	)
	for _, t := range transforms {
		unit, ok := knownTransforms[t.Op]
		if !ok {
			continue
		}
		if format == TransformCSS {
			css = append(css, fmt.Sprintf("%s(%s%s)", t.Op, style.FormatNumber(t.Value), unit))
			continue
		}
		var value any = t.Value
		if unit == "deg" {
			value = style.FormatNumber(t.Value) + unit
		}
		list = append(list, map[string]any{string(t.Op): value})
	}

	if format == TransformCSS {
		if len(css) == 0 {
			return nil
		}
		return strings.Join(css, " ")
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

type edgeKeys struct {
	shorthand                string
	top, right, bottom, left string
}

var boxEdges = []edgeKeys{
	{PropPadding, PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft},
	{PropMargin, PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft},
}

// ExpandShorthand writes padding and margin as four discrete sides unless the
// backend supports shorthand and all sides are equal. It is idempotent.
func ExpandShorthand(ns NativeStyle, caps Capabilities) NativeStyle {
	for _, keys := range boxEdges {
		switch v := ns[keys.shorthand].(type) {
		case style.Edges:
			if caps.SupportsShorthand && v.IsUniform() {
				ns[keys.shorthand] = v.Top
				continue
			}
			delete(ns, keys.shorthand)
			ns[keys.top], ns[keys.right], ns[keys.bottom], ns[keys.left] = v.Top, v.Right, v.Bottom, v.Left
		case style.Dimension:
			if !caps.SupportsShorthand {
				delete(ns, keys.shorthand)
				ns[keys.top], ns[keys.right], ns[keys.bottom], ns[keys.left] = v, v, v, v
			}
		}
	}
	return ns
}

// CoerceUnits converts dimensions into backend values. Unitless numbers gain
// "px" on px backends and stay numeric elsewhere. Values that already carry
// a unit pass through unchanged.
func CoerceUnits(ns NativeStyle, caps Capabilities) NativeStyle {
	for k, v := range ns {
		d, ok := v.(style.Dimension)
		if !ok {
			continue
		}
		switch {
		case d.HasUnit():
			ns[k] = d.String()
		case caps.Units == UnitsPx:
			ns[k] = style.Px(d.Value).String()
		default:
			ns[k] = d.Value
		}
	}
	return ns
}

// Prune drops every property the backend cannot draw. The result is lossy
// and cannot be reversed.
func Prune(ns NativeStyle, caps Capabilities) NativeStyle {
	if !caps.SupportsElevation {
		delete(ns, PropElevation)
	}
	if caps.ShadowFormat == ShadowNone || caps.ShadowFormat == "" {
		for _, k := range shadowProps {
			delete(ns, k)
		}
	}
	if caps.TransformFormat == TransformNone || caps.TransformFormat == "" {
		delete(ns, PropTransform)
	}
	if !caps.SupportsBackgroundBlur {
		delete(ns, PropBackdropFilter)
	}
	if !caps.SupportsGlow {
		delete(ns, PropFilter)
	}
	if !caps.SupportsGradient {
		delete(ns, PropBackgroundImage)
	}
	for k := range ns {
		if !caps.allows(k) {
			delete(ns, k)
		}
	}
	return ns
}
