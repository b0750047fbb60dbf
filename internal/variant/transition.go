package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// fadeOffset is how far a fading-in surface travels upwards.
const fadeOffset = 8

// Endpoints is the start and end of an interpolated change. The host render
// backend drives the interpolation.
type Endpoints struct {
	From style.Descriptor
	To   style.Descriptor
}

// Transition resolves both sides of a state change with the default registry.
func Transition(th theme.Theme, kind Kind, from, to State, opts Options) Endpoints {
	return Default().Transition(th, kind, from, to, opts)
}

// Transition resolves both sides of a state change.
func (r *Registry) Transition(th theme.Theme, kind Kind, from, to State, opts Options) Endpoints {
	return Endpoints{
		From: r.Resolve(th, kind, from, opts),
		To:   r.Resolve(th, kind, to, opts),
	}
}

// FadeIn starts d fully transparent and slightly lowered.
func FadeIn(d style.Descriptor) Endpoints {
	start := d.Clone()
	start.Opacity = style.Float(0)
	start.Transforms = append([]style.Transform{{Op: style.TransformTranslateY, Value: fadeOffset}}, start.Transforms...)

	end := d.Clone()
	if end.Opacity == nil {
		end.Opacity = style.Float(1)
	}
	return Endpoints{From: start, To: end}
}
