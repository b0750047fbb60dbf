package cache

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// KeyParts is every input that affects a resolved and adapted style. The
// theme itself is not part of the key; callers clear the cache when it
// changes.
type KeyParts struct {
	Kind    variant.Kind
	Design  theme.Design
	State   variant.State
	Options variant.Options
	// Backend identifies the capability set the style is adapted for. The
	// engine passes adapter.Capabilities.Fingerprint so capability sets that
	// share an ID never share entries.
	Backend string
}

// Key builds a deterministic cache key. Options are normalized first, so an
// unset option and its explicit default share a key. Free-text fields are
// quoted and cannot collide with the separators.
func Key(p KeyParts) string {
	opts := p.Options.Normalize()

	var b strings.Builder
	b.Grow(192)
	field := func(name, value string) {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	}

	field("kind", p.Kind.Normalize().String())
	field("design", p.Design.String())
	field("variant", opts.Variant.String())
	field("size", opts.Size.String())
	field("state", stateFlags(p.State))
	field("bg", strconv.Quote(opts.BackgroundOverride))
	field("text", strconv.Quote(opts.TextOverride))
	field("backend", strconv.Quote(p.Backend))
	field("era", opts.Era.String())
	field("intensity", opts.Intensity.String())
	field("blur", opts.Blur.String())
	field("corner", opts.CornerRadius.String())
	field("border", opts.BorderThickness.String())
	field("shadow", opts.ShadowStyle.String())
	field("glow", strconv.FormatBool(opts.Glow))
	opacity := "-"
	if opts.Opacity != nil {
		opacity = style.FormatNumber(*opts.Opacity)
	}
	field("opacity", opacity)
	return b.String()
}

func stateFlags(s variant.State) string {
	flags := []byte("----")
	if s.Pressed {
		flags[0] = 'p'
	}
	if s.Disabled {
		flags[1] = 'd'
	}
	if s.Focused {
		flags[2] = 'f'
	}
	if s.Selected {
		flags[3] = 's'
	}
	return string(flags)
}
