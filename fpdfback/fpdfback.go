// Package fpdfback implements the render.Backend capability on top of
// github.com/go-pdf/fpdf, producing real PDF bytes using the built-in
// core fonts (Helvetica, Times, Courier).
//
// The backend works in point units and leaves all layout to the
// renderer: margins and page breaks are never delegated to fpdf.
package fpdfback

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	pdfdoc "github.com/rana/pdf-doc"
)

// ErrUnknownFamily is returned when a style names a font family that is
// not one of the PDF core fonts. The family is not silently substituted;
// the render fails.
var ErrUnknownFamily = errors.New("fpdfback: font family is not a core font")

// Option is a functional option for configuring a new backend via New.
type Option func(*config)

type config struct {
	fontDir string
}

// WithFontDir sets the directory fpdf loads font definition files from.
// Not needed for the core fonts.
func WithFontDir(dir string) Option {
	return func(c *config) {
		c.fontDir = dir
	}
}

// Backend draws one document into an in-memory PDF. It is spent after
// Finish; create a new one per document. Not safe for concurrent use.
type Backend struct {
	pdf *fpdf.Fpdf
}

// New creates an empty backend ready for a render.
func New(opts ...Option) *Backend {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	pdf := fpdf.New("P", "pt", "A4", cfg.fontDir)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	return &Backend{pdf: pdf}
}

// MeasureText returns the advance width of text in points.
func (b *Backend) MeasureText(text string, style pdfdoc.Style) (float64, error) {
	if err := b.setFont(style); err != nil {
		return 0, err
	}
	w := b.pdf.GetStringWidth(text)
	if err := b.err(); err != nil {
		return 0, err
	}
	return w, nil
}

// DrawTextRun draws text with its baseline starting at (x, y) from the
// top-left corner of the current page.
func (b *Backend) DrawTextRun(text string, style pdfdoc.Style, x, y float64) error {
	if err := b.setFont(style); err != nil {
		return err
	}
	if style.Color != nil {
		b.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
	} else {
		b.pdf.SetTextColor(0, 0, 0)
	}
	b.pdf.Text(x, y, text)
	return b.err()
}

// BeginPage starts a new page of the given size in points.
func (b *Backend) BeginPage(width, height float64) error {
	orient := "P"
	size := fpdf.SizeType{Wd: width, Ht: height}
	if width > height {
		orient = "L"
		size = fpdf.SizeType{Wd: height, Ht: width}
	}
	b.pdf.AddPageFormat(orient, size)
	return b.err()
}

// EndPage finalizes the current page. fpdf closes pages when the next
// one begins or output is produced, so this only surfaces pending errors.
func (b *Backend) EndPage() error {
	return b.err()
}

// Finish closes the document and returns the PDF bytes.
func (b *Backend) Finish() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("fpdfback: closing document: %w", err)
	}
	return buf.Bytes(), nil
}

// SetMetadata records the document information dictionary. It implements
// render.MetadataWriter.
func (b *Backend) SetMetadata(title, author, subject string) {
	if title != "" {
		b.pdf.SetTitle(title, true)
	}
	if author != "" {
		b.pdf.SetAuthor(author, true)
	}
	if subject != "" {
		b.pdf.SetSubject(subject, true)
	}
}

func (b *Backend) setFont(style pdfdoc.Style) error {
	family := "Helvetica"
	if style.Family != nil {
		f, err := coreFamily(*style.Family)
		if err != nil {
			return err
		}
		family = f
	}
	var styleStr string
	if style.Weight != nil && *style.Weight == pdfdoc.WeightBold {
		styleStr += "B"
	}
	if style.Italic != nil && *style.Italic {
		styleStr += "I"
	}
	size := 12.0
	if style.Size != nil {
		size = *style.Size
	}
	b.pdf.SetFont(family, styleStr, size)
	return b.err()
}

// coreFamily maps a font family name onto one of the PDF core font
// families. Unknown families fail rather than substituting.
func coreFamily(name string) (string, error) {
	switch strings.ToLower(name) {
	case "helvetica", "arial":
		return "Helvetica", nil
	case "times", "times-roman", "times new roman":
		return "Times", nil
	case "courier":
		return "Courier", nil
	}
	return "", fmt.Errorf("fpdfback: %q: %w", name, ErrUnknownFamily)
}

func (b *Backend) err() error {
	if b.pdf.Err() {
		return b.pdf.Error()
	}
	return nil
}
