package pdfdoc

// Builder is the supported entry point for programmatic document
// construction. It keeps cursors on the current section and paragraph so
// callers can build sequentially without re-specifying parents, creates a
// section or paragraph implicitly on first use, and drops runs with empty
// text. Construction is strictly append-only: there is no way to insert
// out of order or edit earlier entries.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	doc *Document
	sec *Section
	par *Paragraph
}

// NewBuilder creates a builder appending to doc. A nil doc starts a new
// document with the built-in defaults.
func NewBuilder(doc *Document) *Builder {
	if doc == nil {
		doc = New()
	}
	return &Builder{doc: doc}
}

// AddSection starts a new section and makes it current. Subsequent
// paragraphs and runs are appended to it.
func (b *Builder) AddSection() *Builder {
	b.sec = b.doc.AddSection()
	b.par = nil
	return b
}

// SectionPageSize overrides the page size of the current section,
// creating one if needed.
func (b *Builder) SectionPageSize(sz Size) *Builder {
	b.section().PageSize = &sz
	return b
}

// SectionMargin overrides the margins of the current section, creating
// one if needed.
func (b *Builder) SectionMargin(m Margin) *Builder {
	b.section().Margin = &m
	return b
}

// AddParagraph starts a new paragraph with the given partial style and
// makes it current, creating a section first if none exists.
func (b *Builder) AddParagraph(style Style) *Builder {
	b.section()
	p, _ := b.doc.AddParagraph(style)
	b.par = p
	return b
}

// SetStyle replaces the partial style of the current paragraph, creating
// one if needed.
func (b *Builder) SetStyle(style Style) *Builder {
	b.paragraph().Style = style
	return b
}

// AddRun appends a run with the given text and partial style to the
// current paragraph, creating a section and paragraph first if none
// exist. Runs with empty text are pruned: the call is a no-op.
func (b *Builder) AddRun(text string, style Style) *Builder {
	if text == "" {
		return b
	}
	b.paragraph()
	b.doc.AddRun(text, style)
	return b
}

// AddText appends a run with no style override; it inherits entirely
// from the paragraph and document.
func (b *Builder) AddText(text string) *Builder {
	return b.AddRun(text, Style{})
}

// AddPageBreak forces a page break by starting a new section with no
// geometry override. Rendering gives every section a fresh page, so the
// following content begins at the top of a new page.
func (b *Builder) AddPageBreak() *Builder {
	return b.AddSection()
}

// Document returns the built document. The tree must be treated as
// immutable once it is handed to the codec or the renderer.
func (b *Builder) Document() *Document {
	return b.doc
}

func (b *Builder) section() *Section {
	if b.sec == nil {
		b.AddSection()
	}
	return b.sec
}

func (b *Builder) paragraph() *Paragraph {
	if b.par == nil {
		b.AddParagraph(Style{})
	}
	return b.par
}
