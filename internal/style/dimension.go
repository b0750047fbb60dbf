package style

import (
	"strconv"
)

// Dimension is a box-model length. An empty Unit means the value is a plain
// number whose unit is decided by the render backend.
type Dimension struct {
	Value float64
	Unit  string
}

// Num returns a unitless dimension.
func Num(v float64) Dimension {
	return Dimension{Value: v}
}

// Px returns a dimension that already carries a pixel unit.
func Px(v float64) Dimension {
	return Dimension{Value: v, Unit: "px"}
}

// Pct returns a percentage dimension.
func Pct(v float64) Dimension {
	return Dimension{Value: v, Unit: "%"}
}

// HasUnit reports whether the dimension carries its own unit.
func (d Dimension) HasUnit() bool {
	return d.Unit != ""
}

// IsZero reports whether the dimension is a unitless zero.
func (d Dimension) IsZero() bool {
	return d.Value == 0 && d.Unit == ""
}

// String renders the dimension with its own unit, if any.
func (d Dimension) String() string {
	return FormatNumber(d.Value) + d.Unit
}

// FormatNumber prints a float without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Edges describes four-sided spacing using CSS box ordering.
type Edges struct {
	Top    Dimension
	Right  Dimension
	Bottom Dimension
	Left   Dimension
}

// Uniform returns edges with the same value on every side.
func Uniform(d Dimension) Edges {
	return Edges{Top: d, Right: d, Bottom: d, Left: d}
}

// Symmetric returns edges with vertical and horizontal values.
func Symmetric(vertical, horizontal Dimension) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsUniform reports whether all four sides are equal.
func (e Edges) IsUniform() bool {
	return e.Top == e.Right && e.Right == e.Bottom && e.Bottom == e.Left
}

// IsZero reports whether every side is a unitless zero.
func (e Edges) IsZero() bool {
	return e.Top.IsZero() && e.Right.IsZero() && e.Bottom.IsZero() && e.Left.IsZero()
}
