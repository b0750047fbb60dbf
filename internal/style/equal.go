package style

// Equal reports whether two descriptors are descriptor-equal: every field
// matches, and nil and empty collections are treated alike.
func Equal(a, b Descriptor) bool {
	if a.BackgroundColor != b.BackgroundColor ||
		a.BorderColor != b.BorderColor ||
		a.BorderWidth != b.BorderWidth ||
		a.BorderRadius != b.BorderRadius ||
		a.Padding != b.Padding ||
		a.Margin != b.Margin ||
		a.GradientAngle != b.GradientAngle ||
		a.TextColor != b.TextColor ||
		a.Elevation != b.Elevation {
		return false
	}
	if !shadowsEqual(a.Shadows, b.Shadows) {
		return false
	}
	if len(a.Gradient) != len(b.Gradient) {
		return false
	}
	for i := range a.Gradient {
		if a.Gradient[i] != b.Gradient[i] {
			return false
		}
	}
	if len(a.Transforms) != len(b.Transforms) {
		return false
	}
	for i := range a.Transforms {
		if a.Transforms[i] != b.Transforms[i] {
			return false
		}
	}
	if !ptrEqual(a.TextShadow, b.TextShadow) || !ptrEqual(a.Opacity, b.Opacity) || !ptrEqual(a.Glow, b.Glow) {
		return false
	}
	if (a.Backdrop == nil) != (b.Backdrop == nil) {
		return false
	}
	if a.Backdrop != nil {
		if a.Backdrop.Blur != b.Backdrop.Blur ||
			a.Backdrop.FallbackBackground != b.Backdrop.FallbackBackground ||
			!shadowsEqual(a.Backdrop.FallbackShadows, b.Backdrop.FallbackShadows) {
			return false
		}
	}
	if len(a.Extra) != len(b.Extra) {
		return false
	}
	for k, v := range a.Extra {
		other, ok := b.Extra[k]
		if !ok || other != v {
			return false
		}
	}
	return true
}

func shadowsEqual(a, b []Shadow) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
