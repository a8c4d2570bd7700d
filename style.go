package pdfdoc

import "fmt"

// Color represents an RGB color with components in the range 0-255.
type Color struct {
	R, G, B int
}

// Weight selects the stroke weight of a font.
type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

// String returns the lowercase token used for the weight in persisted
// documents: "normal" or "bold".
func (w Weight) String() string {
	if w == WeightBold {
		return "bold"
	}
	return "normal"
}

// ParseWeight converts a persisted weight token back to a Weight.
// Unknown tokens are rejected, never coerced to a default.
func ParseWeight(s string) (Weight, error) {
	switch s {
	case "normal":
		return WeightNormal, nil
	case "bold":
		return WeightBold, nil
	}
	return 0, fmt.Errorf("pdfdoc: unknown weight %q", s)
}

// Align selects the horizontal alignment of a paragraph's lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the lowercase token used for the alignment in persisted
// documents: "left", "center", "right" or "justify".
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlign converts a persisted alignment token back to an Align.
// Unknown tokens are rejected, never coerced to a default.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return 0, fmt.Errorf("pdfdoc: unknown alignment %q", s)
}

// Style describes text and paragraph formatting. Every field is optional:
// a nil field means "inherit from the enclosing level", which is distinct
// from a field explicitly set to its default value. Styles compose by
// field-wise override, document defaults first, then the paragraph style,
// then the run style (see Merge).
//
// A Style is a value; treat it as immutable once attached to a document.
type Style struct {
	// Character formatting.
	Family *string  // font family name, e.g. "Times"
	Size   *float64 // font size in points
	Weight *Weight
	Italic *bool
	Color  *Color

	// Paragraph formatting.
	Align         *Align
	LineHeight    *float64 // multiple of the font size
	SpacingBefore *float64 // points
	SpacingAfter  *float64 // points
	Indent        *float64 // first-line indent, points
}

// Merge combines two styles field by field: each field of the result is
// override's value when set, else base's. Merge is total over any two
// styles and associative when applied document -> paragraph -> run.
func Merge(base, override Style) Style {
	out := base
	if override.Family != nil {
		out.Family = override.Family
	}
	if override.Size != nil {
		out.Size = override.Size
	}
	if override.Weight != nil {
		out.Weight = override.Weight
	}
	if override.Italic != nil {
		out.Italic = override.Italic
	}
	if override.Color != nil {
		out.Color = override.Color
	}
	if override.Align != nil {
		out.Align = override.Align
	}
	if override.LineHeight != nil {
		out.LineHeight = override.LineHeight
	}
	if override.SpacingBefore != nil {
		out.SpacingBefore = override.SpacingBefore
	}
	if override.SpacingAfter != nil {
		out.SpacingAfter = override.SpacingAfter
	}
	if override.Indent != nil {
		out.Indent = override.Indent
	}
	return out
}

// Equal reports whether two styles set the same fields to the same
// values. An unset field and a field set to the zero value are not equal.
func (s Style) Equal(o Style) bool {
	return eqPtr(s.Family, o.Family) &&
		eqPtr(s.Size, o.Size) &&
		eqPtr(s.Weight, o.Weight) &&
		eqPtr(s.Italic, o.Italic) &&
		eqPtr(s.Color, o.Color) &&
		eqPtr(s.Align, o.Align) &&
		eqPtr(s.LineHeight, o.LineHeight) &&
		eqPtr(s.SpacingBefore, o.SpacingBefore) &&
		eqPtr(s.SpacingAfter, o.SpacingAfter) &&
		eqPtr(s.Indent, o.Indent)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a copy of the style that shares no pointers with s.
func (s Style) Clone() Style {
	var out Style
	if s.Family != nil {
		v := *s.Family
		out.Family = &v
	}
	if s.Size != nil {
		v := *s.Size
		out.Size = &v
	}
	if s.Weight != nil {
		v := *s.Weight
		out.Weight = &v
	}
	if s.Italic != nil {
		v := *s.Italic
		out.Italic = &v
	}
	if s.Color != nil {
		v := *s.Color
		out.Color = &v
	}
	if s.Align != nil {
		v := *s.Align
		out.Align = &v
	}
	if s.LineHeight != nil {
		v := *s.LineHeight
		out.LineHeight = &v
	}
	if s.SpacingBefore != nil {
		v := *s.SpacingBefore
		out.SpacingBefore = &v
	}
	if s.SpacingAfter != nil {
		v := *s.SpacingAfter
		out.SpacingAfter = &v
	}
	if s.Indent != nil {
		v := *s.Indent
		out.Indent = &v
	}
	return out
}

// Fluent setters. Each returns a copy of the style with one field set,
// so partial styles can be built up from the zero value:
//
//	bold := pdfdoc.Style{}.WithWeight(pdfdoc.WeightBold).WithSize(14)

// WithFamily returns a copy of s with the font family set.
func (s Style) WithFamily(family string) Style {
	s.Family = &family
	return s
}

// WithSize returns a copy of s with the font size set, in points.
func (s Style) WithSize(size float64) Style {
	s.Size = &size
	return s
}

// WithWeight returns a copy of s with the font weight set.
func (s Style) WithWeight(w Weight) Style {
	s.Weight = &w
	return s
}

// WithItalic returns a copy of s with the italic flag set.
func (s Style) WithItalic(italic bool) Style {
	s.Italic = &italic
	return s
}

// WithColor returns a copy of s with the text color set.
func (s Style) WithColor(c Color) Style {
	s.Color = &c
	return s
}

// WithAlign returns a copy of s with the paragraph alignment set.
func (s Style) WithAlign(a Align) Style {
	s.Align = &a
	return s
}

// WithLineHeight returns a copy of s with the line height set, as a
// multiple of the font size.
func (s Style) WithLineHeight(h float64) Style {
	s.LineHeight = &h
	return s
}

// WithSpacingBefore returns a copy of s with the spacing before the
// paragraph set, in points.
func (s Style) WithSpacingBefore(v float64) Style {
	s.SpacingBefore = &v
	return s
}

// WithSpacingAfter returns a copy of s with the spacing after the
// paragraph set, in points.
func (s Style) WithSpacingAfter(v float64) Style {
	s.SpacingAfter = &v
	return s
}

// WithIndent returns a copy of s with the first-line indent set, in points.
func (s Style) WithIndent(v float64) Style {
	s.Indent = &v
	return s
}
