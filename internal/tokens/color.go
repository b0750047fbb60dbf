package tokens

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is the fully transparent colour keyword.
const Transparent = "transparent"

// ParseColor reads "#rgb", "#rrggbb", "rgb(...)", "rgba(...)" or "transparent".
func ParseColor(s string) (colorful.Color, float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == Transparent:
		return colorful.Color{}, 0, true
	case strings.HasPrefix(s, "#"):
		hex := s
		if len(hex) == 4 {
			hex = "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		return c, 1, true
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		open := strings.IndexByte(s, '(')
		if !strings.HasSuffix(s, ")") {
			return colorful.Color{}, 0, false
		}
		parts := strings.Split(s[open+1:len(s)-1], ",")
		if len(parts) != 3 && len(parts) != 4 {
			return colorful.Color{}, 0, false
		}
		var channels [4]float64
		channels[3] = 1
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return colorful.Color{}, 0, false
			}
			channels[i] = v
		}
		c := colorful.Color{R: channels[0] / 255, G: channels[1] / 255, B: channels[2] / 255}.Clamped()
		return c, clamp01(channels[3]), true
	default:
		return colorful.Color{}, 0, false
	}
}

// FormatColor prints opaque colours as hex and translucent ones as rgba().
func FormatColor(c colorful.Color, alpha float64) string {
	alpha = clamp01(alpha)
	if alpha >= 1 {
		return c.Clamped().Hex()
	}
	r, g, b := c.Clamped().RGB255()
	a := strconv.FormatFloat(math.Round(alpha*100)/100, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, a)
}

// Alpha returns the alpha channel of a colour, or 1 when it cannot be parsed.
func Alpha(s string) float64 {
	_, a, ok := ParseColor(s)
	if !ok {
		return 1
	}
	return a
}

// WithAlpha replaces the alpha channel. Unparseable input is returned as is.
func WithAlpha(s string, alpha float64) string {
	c, _, ok := ParseColor(s)
	if !ok {
		return s
	}
	return FormatColor(c, alpha)
}

// ScaleAlpha multiplies the alpha channel by factor, clamped to [0, 1].
func ScaleAlpha(s string, factor float64) string {
	c, a, ok := ParseColor(s)
	if !ok {
		return s
	}
	return FormatColor(c, a*factor)
}

// Lighten blends the colour towards white by amount in [0, 1].
func Lighten(s string, amount float64) string {
	return blend(s, colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken blends the colour towards black by amount in [0, 1].
func Darken(s string, amount float64) string {
	return blend(s, colorful.Color{}, amount)
}

// Mix blends a towards b. The alpha of a is kept.
func Mix(a, b string, t float64) string {
	target, _, ok := ParseColor(b)
	if !ok {
		return a
	}
	return blend(a, target, t)
}

func blend(s string, target colorful.Color, t float64) string {
	c, a, ok := ParseColor(s)
	if !ok {
		return s
	}
	return FormatColor(c.BlendRgb(target, clamp01(t)), a)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
