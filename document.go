package pdfdoc

// Document is the root of the document tree. It owns an ordered sequence
// of sections and carries the document-level defaults: page geometry,
// metadata, and a default style with every field set, which serves as the
// base case for style inheritance.
//
// A Document is not safe for concurrent use. Build it on one goroutine,
// then treat it as immutable while encoding or rendering.
type Document struct {
	PageSize Size
	Margin   Margin

	// Style holds the document defaults. Every field is set; it is the
	// final fallback when resolving a run's effective style.
	Style Style

	// Optional metadata, persisted in the JSON form and forwarded to
	// backends that accept it.
	Title   string
	Author  string
	Subject string

	sections []*Section
}

// Section is an ordered sequence of paragraphs. It may override the
// document's page geometry; a nil override inherits from the document.
// Every section starts on a fresh page when rendered.
type Section struct {
	PageSize *Size
	Margin   *Margin

	paragraphs []*Paragraph
}

// Paragraph is an ordered sequence of runs. Its style is partial and
// serves as the fallback for the styles of its runs.
type Paragraph struct {
	Style Style

	runs []*Run
}

// Run is the smallest unit of styled text: a non-empty piece of text with
// a partial style override. A run never spans a style change; do not
// mutate it once attached to a document.
type Run struct {
	Text  string
	Style Style
}

// Sections returns the document's sections in insertion order. The
// returned slice is owned by the document; callers must not modify it.
func (d *Document) Sections() []*Section { return d.sections }

// Paragraphs returns the section's paragraphs in insertion order. The
// returned slice is owned by the section; callers must not modify it.
func (s *Section) Paragraphs() []*Paragraph { return s.paragraphs }

// Runs returns the paragraph's runs in insertion order. The returned
// slice is owned by the paragraph; callers must not modify it.
func (p *Paragraph) Runs() []*Run { return p.runs }

// AddSection appends a new empty section and returns it.
func (d *Document) AddSection() *Section {
	s := &Section{}
	d.sections = append(d.sections, s)
	return s
}

// AddParagraph appends a new paragraph with the given partial style to
// the last section. It fails with a *StructureError wrapping ErrNoSection
// when the document has no section; this layer never creates one
// implicitly (the Builder does).
func (d *Document) AddParagraph(style Style) (*Paragraph, error) {
	if len(d.sections) == 0 {
		return nil, newStructureError("AddParagraph", ErrNoSection)
	}
	s := d.sections[len(d.sections)-1]
	p := &Paragraph{Style: style}
	s.paragraphs = append(s.paragraphs, p)
	return p, nil
}

// AddRun appends a new run to the last paragraph of the last section. It
// fails with a *StructureError wrapping ErrNoSection or ErrNoParagraph
// when no parent exists, and with one wrapping ErrEmptyRun when text is
// empty: empty runs are never part of a valid tree.
func (d *Document) AddRun(text string, style Style) (*Run, error) {
	if len(d.sections) == 0 {
		return nil, newStructureError("AddRun", ErrNoSection)
	}
	s := d.sections[len(d.sections)-1]
	if len(s.paragraphs) == 0 {
		return nil, newStructureError("AddRun", ErrNoParagraph)
	}
	if text == "" {
		return nil, newStructureError("AddRun", ErrEmptyRun)
	}
	p := s.paragraphs[len(s.paragraphs)-1]
	r := &Run{Text: text, Style: style}
	p.runs = append(p.runs, r)
	return r, nil
}

// Equal reports whether two documents are structurally and stylistically
// equal: same geometry, metadata, defaults, and the same tree of
// sections, paragraphs and runs in the same order. This is the equality
// the JSON round-trip guarantee is stated in terms of.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.PageSize != o.PageSize || d.Margin != o.Margin {
		return false
	}
	if d.Title != o.Title || d.Author != o.Author || d.Subject != o.Subject {
		return false
	}
	if !d.Style.Equal(o.Style) {
		return false
	}
	if len(d.sections) != len(o.sections) {
		return false
	}
	for i, s := range d.sections {
		if !s.Equal(o.sections[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two sections have equal geometry overrides and
// equal paragraphs in the same order.
func (s *Section) Equal(o *Section) bool {
	if s == nil || o == nil {
		return s == o
	}
	if !eqPtr(s.PageSize, o.PageSize) || !eqPtr(s.Margin, o.Margin) {
		return false
	}
	if len(s.paragraphs) != len(o.paragraphs) {
		return false
	}
	for i, p := range s.paragraphs {
		if !p.Equal(o.paragraphs[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two paragraphs have equal styles and equal runs
// in the same order.
func (p *Paragraph) Equal(o *Paragraph) bool {
	if p == nil || o == nil {
		return p == o
	}
	if !p.Style.Equal(o.Style) {
		return false
	}
	if len(p.runs) != len(o.runs) {
		return false
	}
	for i, r := range p.runs {
		if !r.Equal(o.runs[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two runs carry the same text and style.
func (r *Run) Equal(o *Run) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Text == o.Text && r.Style.Equal(o.Style)
}
