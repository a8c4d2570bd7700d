// Package render converts a document tree into fixed-size pages of
// drawing commands, emitted through an external graphics Backend.
//
// The renderer walks the tree read-only: per section it establishes page
// geometry (every section starts on a fresh page), breaks each
// paragraph's runs into lines at space-delimited word boundaries using
// the backend's text measurement, distributes each line horizontally per
// the paragraph alignment, and flows lines down the page, breaking to a
// new page when the content height is exhausted. A render either
// completes or fails atomically with a *RenderError; partial output must
// be discarded.
package render

import (
	"unicode"

	pdfdoc "github.com/rana/pdf-doc"
)

// widthEpsilon absorbs float jitter in measured widths when deciding
// whether a word still fits on the current line.
const widthEpsilon = 1e-6

// Renderer lays documents out onto a Backend. A Renderer is stateless
// between Render calls, but the backend it wraps is not: use a fresh
// backend for each document.
type Renderer struct {
	backend Backend
}

// New creates a renderer drawing to the given backend.
func New(b Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render walks the document and returns the finished byte stream from
// the backend. Any backend failure aborts the render with a
// *RenderError carrying the position of the offending run.
func (r *Renderer) Render(doc *pdfdoc.Document) ([]byte, error) {
	if mw, ok := r.backend.(MetadataWriter); ok {
		if doc.Title != "" || doc.Author != "" || doc.Subject != "" {
			mw.SetMetadata(doc.Title, doc.Author, doc.Subject)
		}
	}

	if len(doc.Sections()) == 0 {
		// A document with no sections still renders one empty page.
		pos := Position{Section: -1, Paragraph: -1, Run: -1}
		if err := r.backend.BeginPage(doc.PageSize.Width, doc.PageSize.Height); err != nil {
			return nil, renderError(pos, err)
		}
		if err := r.backend.EndPage(); err != nil {
			return nil, renderError(pos, err)
		}
	}

	for si, sec := range doc.Sections() {
		if err := r.renderSection(doc, sec, si); err != nil {
			return nil, err
		}
	}

	out, err := r.backend.Finish()
	if err != nil {
		return nil, renderError(Position{Section: -1, Paragraph: -1, Run: -1}, err)
	}
	return out, nil
}

func (r *Renderer) renderSection(doc *pdfdoc.Document, sec *pdfdoc.Section, si int) error {
	size := doc.PageSize
	if sec.PageSize != nil {
		size = *sec.PageSize
	}
	margin := doc.Margin
	if sec.Margin != nil {
		margin = *sec.Margin
	}

	sl := &sectionLayout{
		backend: r.backend,
		size:    size,
		margin:  margin,
		section: si,
	}
	if err := sl.beginPage(); err != nil {
		return err
	}
	for pi, par := range sec.Paragraphs() {
		if err := sl.renderParagraph(doc, par, pi); err != nil {
			return err
		}
	}
	return sl.endPage()
}

// sectionLayout tracks the vertical cursor and page geometry while one
// section is rendered. The cursor holds the baseline of the last flushed
// line; lines advance it by their own height before drawing.
type sectionLayout struct {
	backend Backend
	size    pdfdoc.Size
	margin  pdfdoc.Margin
	section int
	cursor  float64
}

func (sl *sectionLayout) contentWidth() float64 {
	return sl.size.Width - sl.margin.Horizontal()
}

// contentBottom is the lowest baseline still inside the content area.
func (sl *sectionLayout) contentBottom() float64 {
	return sl.size.Height - sl.margin.Bottom
}

func (sl *sectionLayout) pagePos() Position {
	return Position{Section: sl.section, Paragraph: -1, Run: -1}
}

func (sl *sectionLayout) beginPage() error {
	if err := sl.backend.BeginPage(sl.size.Width, sl.size.Height); err != nil {
		return renderError(sl.pagePos(), err)
	}
	sl.cursor = sl.margin.Top
	return nil
}

func (sl *sectionLayout) endPage() error {
	if err := sl.backend.EndPage(); err != nil {
		return renderError(sl.pagePos(), err)
	}
	return nil
}

// breakPage closes the current page and opens the next one. Lines
// flushed to earlier pages are never reprocessed.
func (sl *sectionLayout) breakPage() error {
	if err := sl.endPage(); err != nil {
		return err
	}
	return sl.beginPage()
}

func (sl *sectionLayout) renderParagraph(doc *pdfdoc.Document, par *pdfdoc.Paragraph, pi int) error {
	parStyle := pdfdoc.Merge(doc.Style, par.Style)
	align := *parStyle.Align
	lineHeight := *parStyle.LineHeight
	indent := *parStyle.Indent

	sl.cursor += *parStyle.SpacingBefore

	words, err := sl.paragraphWords(parStyle, par, pi)
	if err != nil {
		return err
	}
	lines := breakLines(words, sl.contentWidth(), indent)

	for li, ln := range lines {
		lh := lineHeight * ln.maxFontSize()
		if sl.cursor+lh > sl.contentBottom()+widthEpsilon && sl.cursor > sl.margin.Top {
			if err := sl.breakPage(); err != nil {
				return err
			}
		}
		baseline := sl.cursor + lh

		avail := sl.contentWidth()
		x := sl.margin.Left
		if li == 0 {
			avail -= indent
			x += indent
		}
		slack := avail - ln.width()
		if slack < 0 {
			slack = 0
		}
		var extraGap float64
		switch align {
		case pdfdoc.AlignRight:
			x += slack
		case pdfdoc.AlignCenter:
			x += slack / 2
		case pdfdoc.AlignJustify:
			// Inter-word gaps stretch to fill the line, except on the
			// paragraph's final line.
			if li < len(lines)-1 && ln.gapCount() > 0 {
				extraGap = slack / float64(ln.gapCount())
			}
		}

		for i, f := range ln.frags {
			if i > 0 && f.gapBefore {
				x += f.gapWidth + extraGap
			}
			if err := sl.backend.DrawTextRun(f.text, f.style, x, baseline); err != nil {
				return renderError(f.pos, err)
			}
			x += f.width
		}
		sl.cursor = baseline
	}

	sl.cursor += *parStyle.SpacingAfter
	return nil
}

// fragment is a measured piece of a single run's text that shares one
// effective style, placed on a line. A word may span several fragments
// when a style change falls mid-word; such fragments abut with no gap
// and never break apart.
type fragment struct {
	text      string
	style     pdfdoc.Style
	width     float64
	pos       Position
	gapBefore bool    // preceded by an inter-word gap on its line
	gapWidth  float64 // measured width of that gap
}

// word is a minimal unbreakable unit of line filling.
type word struct {
	frags []fragment
	gapW  float64 // width of the gap separating it from the previous word
}

func (w word) width() float64 {
	var total float64
	for _, f := range w.frags {
		total += f.width
	}
	return total
}

type line struct {
	frags []fragment
}

func (l line) width() float64 {
	var total float64
	for i, f := range l.frags {
		if i > 0 && f.gapBefore {
			total += f.gapWidth
		}
		total += f.width
	}
	return total
}

func (l line) gapCount() int {
	var n int
	for i, f := range l.frags {
		if i > 0 && f.gapBefore {
			n++
		}
	}
	return n
}

func (l line) maxFontSize() float64 {
	var max float64
	for _, f := range l.frags {
		if *f.style.Size > max {
			max = *f.style.Size
		}
	}
	return max
}

// paragraphWords measures the paragraph's runs and groups them into
// words. Whitespace in run text only delimits words; consecutive spaces
// collapse into a single inter-word gap, measured in the style of the
// text preceding it.
func (sl *sectionLayout) paragraphWords(parStyle pdfdoc.Style, par *pdfdoc.Paragraph, pi int) ([]word, error) {
	var words []word
	var open bool // a word is growing and the next chunk may extend it

	pendingGap := false
	gapStyle := parStyle
	gapPos := Position{Section: sl.section, Paragraph: pi, Run: -1}

	for ri, run := range par.Runs() {
		eff := pdfdoc.Merge(parStyle, run.Style)
		pos := Position{Section: sl.section, Paragraph: pi, Run: ri}

		for _, seg := range splitSpace(run.Text) {
			if seg.space {
				if open || len(words) > 0 {
					pendingGap = true
					gapStyle = eff
					gapPos = pos
				}
				open = false
				continue
			}
			w, err := sl.backend.MeasureText(seg.text, eff)
			if err != nil {
				return nil, renderError(pos, err)
			}
			frag := fragment{text: seg.text, style: eff, width: w, pos: pos}
			if open {
				last := &words[len(words)-1]
				last.frags = append(last.frags, frag)
				continue
			}
			var gapW float64
			if pendingGap {
				gapW, err = sl.backend.MeasureText(" ", gapStyle)
				if err != nil {
					return nil, renderError(gapPos, err)
				}
				pendingGap = false
			}
			words = append(words, word{frags: []fragment{frag}, gapW: gapW})
			open = true
		}
	}
	return words, nil
}

// breakLines fills words into lines of at most the given content width,
// breaking only between words. The first line is narrowed by the
// paragraph indent. A word wider than a whole line is placed alone and
// overflows; it is never split.
func breakLines(words []word, contentWidth, indent float64) []line {
	var lines []line
	var cur line
	var curWidth float64

	avail := contentWidth - indent
	for _, wd := range words {
		ww := wd.width()
		if len(cur.frags) == 0 {
			cur.frags = appendWord(cur.frags, wd, false)
			curWidth = ww
			continue
		}
		if curWidth+wd.gapW+ww <= avail+widthEpsilon {
			cur.frags = appendWord(cur.frags, wd, true)
			curWidth += wd.gapW + ww
			continue
		}
		lines = append(lines, cur)
		avail = contentWidth // only the first line is indented
		cur = line{frags: appendWord(nil, wd, false)}
		curWidth = ww
	}
	if len(cur.frags) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// appendWord copies a word's fragments onto a line, marking the gap
// preceding the word unless it starts the line.
func appendWord(frags []fragment, wd word, gapBefore bool) []fragment {
	for i, f := range wd.frags {
		if i == 0 && gapBefore {
			f.gapBefore = true
			f.gapWidth = wd.gapW
		}
		frags = append(frags, f)
	}
	return frags
}

type segment struct {
	text  string
	space bool
}

// splitSpace splits text into maximal runs of spaces and non-spaces.
func splitSpace(s string) []segment {
	var segs []segment
	start := 0
	var inSpace bool
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if i == 0 {
			inSpace = sp
			continue
		}
		if sp != inSpace {
			segs = append(segs, segment{text: s[start:i], space: inSpace})
			start = i
			inSpace = sp
		}
	}
	if start < len(s) {
		segs = append(segs, segment{text: s[start:], space: inSpace})
	}
	return segs
}
