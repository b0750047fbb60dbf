package style

// Primitive is a scalar value stored in Descriptor.Extra. Only strings,
// float64, int and bool are expected.
type Primitive = any

// Shadow is a single shadow layer.
type Shadow struct {
	DX     float64
	DY     float64
	Blur   float64
	Spread float64
	Color  string
	Inset  bool
}

// GradientStop is a colour stop. Offset is within [0, 1].
type GradientStop struct {
	Offset float64
	Color  string
}

// TransformOp names a transform operation.
type TransformOp string

const (
	TransformTranslateX TransformOp = "translateX"
	TransformTranslateY TransformOp = "translateY"
	TransformScale      TransformOp = "scale"
	TransformScaleX     TransformOp = "scaleX"
	TransformScaleY     TransformOp = "scaleY"
	TransformRotate     TransformOp = "rotate"
)

// Transform is one entry of an ordered transform list. Rotate values are degrees.
type Transform struct {
	Op    TransformOp
	Value float64
}

// Backdrop requests a background blur. The fallback fields hold the opaque
// translucency approximation used when the backend cannot blur.
type Backdrop struct {
	Blur               float64
	FallbackBackground string
	FallbackShadows    []Shadow
}

// Glow requests a halo around the surface.
type Glow struct {
	Color  string
	Radius float64
}

// Descriptor is the portable box-model style produced by the variant
// resolvers and consumed by render adapters.
//
// Shadows are ordered outermost-first. Backends that only support a single
// shadow layer keep the first entry and drop the rest.
type Descriptor struct {
	BackgroundColor string
	BorderColor     string
	BorderWidth     Dimension
	BorderRadius    Dimension
	Padding         Edges
	Margin          Edges

	Shadows       []Shadow
	Gradient      []GradientStop
	GradientAngle float64

	TextColor  string
	TextShadow *Shadow
	Opacity    *float64

	Transforms []Transform
	Elevation  float64
	Backdrop   *Backdrop
	Glow       *Glow

	Extra map[string]Primitive
}

// Float returns a pointer to v, for optional descriptor fields.
func Float(v float64) *float64 {
	return &v
}

// Clone returns a deep copy so callers can derive a descriptor without
// touching one that may already be cached.
func (d Descriptor) Clone() Descriptor {
	out := d
	out.Shadows = cloneShadows(d.Shadows)
	out.Gradient = cloneStops(d.Gradient)
	out.Transforms = cloneTransforms(d.Transforms)
	if d.TextShadow != nil {
		ts := *d.TextShadow
		out.TextShadow = &ts
	}
	if d.Opacity != nil {
		out.Opacity = Float(*d.Opacity)
	}
	if d.Backdrop != nil {
		bd := *d.Backdrop
		bd.FallbackShadows = cloneShadows(d.Backdrop.FallbackShadows)
		out.Backdrop = &bd
	}
	if d.Glow != nil {
		g := *d.Glow
		out.Glow = &g
	}
	if d.Extra != nil {
		out.Extra = make(map[string]Primitive, len(d.Extra))
		for k, v := range d.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func cloneShadows(in []Shadow) []Shadow {
	if len(in) == 0 {
		return nil
	}
	out := make([]Shadow, len(in))
	copy(out, in)
	return out
}

func cloneStops(in []GradientStop) []GradientStop {
	if len(in) == 0 {
		return nil
	}
	out := make([]GradientStop, len(in))
	copy(out, in)
	return out
}

func cloneTransforms(in []Transform) []Transform {
	if len(in) == 0 {
		return nil
	}
	out := make([]Transform, len(in))
	copy(out, in)
	return out
}
