package variant

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// Layer fixes where a StyleFunc sits in the precedence order.
type Layer int

const (
	LayerBase Layer = iota
	LayerDesign
	LayerState
	LayerCaller
	layerCount
)

// StyleFunc derives a descriptor from the one produced by earlier layers.
// Implementations must not mutate slices or maps of their input.
type StyleFunc func(style.Descriptor, theme.Theme) style.Descriptor

// Builder composes a descriptor from layered StyleFuncs. Layers always run
// base tokens, then design-language overrides, then state overrides, then
// caller overrides, whatever order they were added in. Within a layer,
// functions run in insertion order.
type Builder struct {
	theme  theme.Theme
	layers [layerCount][]StyleFunc
}

// NewBuilder starts a descriptor for the given theme.
func NewBuilder(th theme.Theme) *Builder {
	return &Builder{theme: th}
}

// Add appends fns to a layer. Unknown layers are treated as LayerCaller.
func (b *Builder) Add(layer Layer, fns ...StyleFunc) *Builder {
	if layer < LayerBase || layer >= layerCount {
		layer = LayerCaller
	}
	for _, fn := range fns {
		if fn != nil {
			b.layers[layer] = append(b.layers[layer], fn)
		}
	}
	return b
}

// Build applies every layer in precedence order.
func (b *Builder) Build() style.Descriptor {
	var d style.Descriptor
	for _, layer := range b.layers {
		for _, fn := range layer {
			d = fn(d, b.theme)
		}
	}
	return d
}
