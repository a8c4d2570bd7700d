package pdfdoc

// Option is a functional option for configuring a new document via New.
type Option func(*documentConfig)

type documentConfig struct {
	pageSize Size
	margin   Margin
	style    Style
	title    string
	author   string
	subject  string
}

// WithPageSize sets the default page size. Use one of the PageSize
// constants or a custom Size in points.
func WithPageSize(sz Size) Option {
	return func(c *documentConfig) {
		c.pageSize = sz
	}
}

// WithMargin sets the default page margins in points.
func WithMargin(m Margin) Option {
	return func(c *documentConfig) {
		c.margin = m
	}
}

// WithDefaultStyle overrides the document's default style. The given
// style is merged over the built-in defaults so the document style is
// always fully populated.
func WithDefaultStyle(s Style) Option {
	return func(c *documentConfig) {
		c.style = Merge(c.style, s)
	}
}

// WithMetadata sets the document title, author and subject.
func WithMetadata(title, author, subject string) Option {
	return func(c *documentConfig) {
		c.title = title
		c.author = author
		c.subject = subject
	}
}

// DefaultStyle returns the built-in document defaults: Times 12pt,
// normal weight, black, justified, 1.35 line height, no extra paragraph
// spacing and no first-line indent. Every field is set.
func DefaultStyle() Style {
	return Style{}.
		WithFamily("Times").
		WithSize(12).
		WithWeight(WeightNormal).
		WithItalic(false).
		WithColor(Color{R: 0, G: 0, B: 0}).
		WithAlign(AlignJustify).
		WithLineHeight(1.35).
		WithSpacingBefore(0).
		WithSpacingAfter(0).
		WithIndent(0)
}

// New creates an empty document using functional options. With no options
// it is a Letter-sized document with one-inch margins and DefaultStyle
// defaults.
//
// Example:
//
//	doc := pdfdoc.New(
//	    pdfdoc.WithPageSize(pdfdoc.PageSizeA4),
//	    pdfdoc.WithMargin(pdfdoc.UniformMargin(pdfdoc.Inches(1))),
//	)
func New(opts ...Option) *Document {
	cfg := &documentConfig{
		pageSize: PageSizeLetter,
		margin:   UniformMargin(Inches(1)),
		style:    DefaultStyle(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Document{
		PageSize: cfg.pageSize,
		Margin:   cfg.margin,
		Style:    cfg.style,
		Title:    cfg.title,
		Author:   cfg.author,
		Subject:  cfg.subject,
	}
}
