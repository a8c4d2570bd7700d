package pdfdoc

// All lengths in this package are expressed in typographic points.
const (
	PointsPerInch       = 72.0
	PointsPerMillimeter = 72.0 / 25.4
)

// Inches converts a length in inches to points.
func Inches(v float64) float64 { return v * PointsPerInch }

// Millimeters converts a length in millimeters to points.
func Millimeters(v float64) float64 { return v * PointsPerMillimeter }

// Size is a page size in points.
type Size struct {
	Width, Height float64
}

// Common page sizes.
var (
	PageSizeLetter  = Size{Width: 612, Height: 792}
	PageSizeLegal   = Size{Width: 612, Height: 1008}
	PageSizeTabloid = Size{Width: 792, Height: 1224}
	PageSizeA4      = Size{Width: 595.28, Height: 841.89}
	PageSizeA5      = Size{Width: 419.53, Height: 595.28}
)

// Margin gives the four page margin widths in points.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// UniformMargin creates a Margin with the same width on all sides.
func UniformMargin(v float64) Margin {
	return Margin{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right margin width.
func (m Margin) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns the combined top and bottom margin width.
func (m Margin) Vertical() float64 { return m.Top + m.Bottom }
