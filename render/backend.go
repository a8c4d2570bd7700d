package render

import pdfdoc "github.com/rana/pdf-doc"

// Backend is the graphics capability the renderer draws through. The
// renderer owns layout; the backend owns fonts, color spaces and the PDF
// object structure. All lengths are in points. Styles passed to a backend
// are fully resolved: every field is set.
//
// A backend accumulates one document per instance; after Finish it is
// spent. Implementations report failures (missing font, measurement
// failure, exhausted output) through the returned errors, which abort the
// render.
type Backend interface {
	// MeasureText returns the advance width of text drawn in style.
	MeasureText(text string, style pdfdoc.Style) (float64, error)

	// DrawTextRun draws text in style with its baseline starting at (x, y),
	// measured from the top-left corner of the current page.
	DrawTextRun(text string, style pdfdoc.Style, x, y float64) error

	// BeginPage starts a new page of the given size.
	BeginPage(width, height float64) error

	// EndPage finalizes the current page.
	EndPage() error

	// Finish finalizes the document and returns the rendered byte stream.
	Finish() ([]byte, error)
}

// MetadataWriter is implemented by backends that can record document
// metadata. The renderer forwards the document's title, author and
// subject before the first page when the backend supports it.
type MetadataWriter interface {
	SetMetadata(title, author, subject string)
}
