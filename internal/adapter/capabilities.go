package adapter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Units selects how numeric box values are emitted.
type Units string

const (
	UnitsPx       Units = "px"
	UnitsUnitless Units = "unitless"
)

// ShadowFormat selects how shadows are emitted.
type ShadowFormat string

const (
	ShadowCSS        ShadowFormat = "css"
	ShadowStructured ShadowFormat = "structured"
	ShadowNone       ShadowFormat = "none"
)

// TransformFormat selects how transforms are emitted.
type TransformFormat string

const (
	TransformCSS  TransformFormat = "css"
	TransformList TransformFormat = "list"
	TransformNone TransformFormat = "none"
)

// Capabilities describes what a render backend can draw. Flags are
// configuration supplied by the caller and never probed at runtime.
type Capabilities struct {
	ID                     string          `yaml:"id" json:"id" validate:"required"`
	SupportsBackgroundBlur bool            `yaml:"background_blur" json:"backgroundBlur"`
	SupportsMultiShadow    bool            `yaml:"multi_shadow" json:"multiShadow"`
	SupportsGradient       bool            `yaml:"gradient" json:"gradient"`
	SupportsGlow           bool            `yaml:"glow" json:"glow"`
	SupportsElevation      bool            `yaml:"elevation" json:"elevation"`
	SupportsShorthand      bool            `yaml:"shorthand" json:"shorthand"`
	Units                  Units           `yaml:"units" json:"units" validate:"omitempty,oneof=px unitless"`
	ShadowFormat           ShadowFormat    `yaml:"shadow_format" json:"shadowFormat" validate:"omitempty,oneof=css structured none"`
	TransformFormat        TransformFormat `yaml:"transform_format" json:"transformFormat" validate:"omitempty,oneof=css list none"`
	// Properties, when non-empty, is the complete set of keys the backend
	// accepts. Everything else is pruned.
	Properties []string `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// WithDefaults fills unset formats with the most conservative choice.
func (c Capabilities) WithDefaults() Capabilities {
	if c.Units == "" {
		c.Units = UnitsUnitless
	}
	if c.ShadowFormat == "" {
		c.ShadowFormat = ShadowNone
	}
	if c.TransformFormat == "" {
		c.TransformFormat = TransformNone
	}
	return c
}

// Fingerprint identifies everything Adapt reads from c. Two capability sets
// with equal fingerprints produce equal output for the same descriptor,
// whatever their IDs claim.
func (c Capabilities) Fingerprint() string {
	c = c.WithDefaults()

	flags := []byte("------")
	for i, on := range []bool{
		c.SupportsBackgroundBlur,
		c.SupportsMultiShadow,
		c.SupportsGradient,
		c.SupportsGlow,
		c.SupportsElevation,
		c.SupportsShorthand,
	} {
		if on {
			flags[i] = "bmgles"[i]
		}
	}

	props := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		props[i] = strconv.Quote(p)
	}
	sort.Strings(props)

	return fmt.Sprintf("%s;%s;%s;%s;%s;[%s]",
		strconv.Quote(c.ID), flags, c.Units, c.ShadowFormat, c.TransformFormat, strings.Join(props, ","))
}

func (c Capabilities) allows(property string) bool {
	if len(c.Properties) == 0 {
		return true
	}
	for _, p := range c.Properties {
		if p == property {
			return true
		}
	}
	return false
}

// Web is a markup backend that renders everything as CSS.
var Web = Capabilities{
	ID:                     "web",
	SupportsBackgroundBlur: true,
	SupportsMultiShadow:    true,
	SupportsGradient:       true,
	SupportsGlow:           true,
	SupportsShorthand:      true,
	Units:                  UnitsPx,
	ShadowFormat:           ShadowCSS,
	TransformFormat:        TransformCSS,
}

// Native is a mobile-style backend with a single structured shadow and
// platform elevation.
var Native = Capabilities{
	ID:                "native",
	SupportsElevation: true,
	Units:             UnitsUnitless,
	ShadowFormat:      ShadowStructured,
	TransformFormat:   TransformList,
}

// Terminal is a character-cell backend bridged to lipgloss.
var Terminal = Capabilities{
	ID:              "terminal",
	Units:           UnitsUnitless,
	ShadowFormat:    ShadowNone,
	TransformFormat: TransformNone,
	Properties: []string{
		PropBackgroundColor, PropColor, PropBorderColor, PropBorderWidth,
		PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft,
		PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft,
	},
}

// Backends is a registry of named capability sets.
type Backends struct {
	mu   sync.RWMutex
	byID map[string]Capabilities
}

// NewBackends returns a registry holding the built-in backends.
func NewBackends() *Backends {
	b := &Backends{byID: make(map[string]Capabilities)}
	for _, caps := range []Capabilities{Web, Native, Terminal} {
		b.byID[caps.ID] = caps
	}
	return b
}

// Register adds or replaces a backend.
func (b *Backends) Register(caps Capabilities) error {
	if caps.ID == "" {
		return stylekiterrors.NewBackendError("", fmt.Errorf("backend id is required"))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byID[caps.ID] = caps.WithDefaults()
	return nil
}

// Lookup returns the capabilities registered under id.
func (b *Backends) Lookup(id string) (Capabilities, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	caps, ok := b.byID[id]
	if !ok {
		return Capabilities{}, stylekiterrors.NewBackendError(id, stylekiterrors.ErrUnknownBackend)
	}
	return caps, nil
}

// List returns every backend sorted by id.
func (b *Backends) List() []Capabilities {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Capabilities, 0, len(b.byID))
	for _, caps := range b.byID {
		out = append(out, caps)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
