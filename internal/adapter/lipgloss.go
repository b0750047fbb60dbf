package adapter

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/tokens"
)

// Terminal cell size used to turn lengths into columns and rows.
const (
	cellWidth  = 8
	cellHeight = 16
)

// cellApplier folds one group of terminal properties into a lipgloss style.
type cellApplier func(lipgloss.Style, NativeStyle) lipgloss.Style

// Lipgloss turns a style adapted for the Terminal backend into a lipgloss
// style. Unknown keys and colours that cannot be parsed are ignored.
func Lipgloss(ns NativeStyle) lipgloss.Style {
	base := lipgloss.NewStyle()
	for _, apply := range []cellApplier{applyColors, applyBorder, applyPadding, applyMargin} {
		base = apply(base, ns)
	}
	return base
}

func applyColors(s lipgloss.Style, ns NativeStyle) lipgloss.Style {
	if c, ok := terminalColor(ns[PropBackgroundColor]); ok {
		s = s.Background(c)
	}
	if c, ok := terminalColor(ns[PropColor]); ok {
		s = s.Foreground(c)
	}
	return s
}

func applyBorder(s lipgloss.Style, ns NativeStyle) lipgloss.Style {
	width, _ := number(ns[PropBorderWidth])
	if width <= 0 {
		return s
	}
	border := lipgloss.NormalBorder()
	if width >= 2 {
		border = lipgloss.ThickBorder()
	}
	s = s.Border(border)
	if c, ok := terminalColor(ns[PropBorderColor]); ok {
		s = s.BorderForeground(c)
	}
	return s
}

func applyPadding(s lipgloss.Style, ns NativeStyle) lipgloss.Style {
	top, right, bottom, left := cells(ns, PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft)
	return s.Padding(top, right, bottom, left)
}

func applyMargin(s lipgloss.Style, ns NativeStyle) lipgloss.Style {
	top, right, bottom, left := cells(ns, PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft)
	return s.Margin(top, right, bottom, left)
}

func cells(ns NativeStyle, top, right, bottom, left string) (int, int, int, int) {
	rows := func(key string) int {
		v, _ := number(ns[key])
		return int(math.Round(v / cellHeight))
	}
	cols := func(key string) int {
		v, _ := number(ns[key])
		return int(math.Round(v / cellWidth))
	}
	return rows(top), cols(right), rows(bottom), cols(left)
}

// terminalColor drops the alpha channel; terminals cannot blend.
func terminalColor(v any) (lipgloss.Color, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	c, alpha, ok := tokens.ParseColor(s)
	if !ok || alpha == 0 {
		return "", false
	}
	return lipgloss.Color(tokens.FormatColor(c, 1)), true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimRight(n, "abcdefghijklmnopqrstuvwxyz%"), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
