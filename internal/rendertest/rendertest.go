// Package rendertest provides a recording graphics backend for renderer
// tests. It measures text with a fixed per-character width instead of
// real font metrics, so layout positions are exact and easy to assert,
// and it captures every drawing call instead of producing page bytes.
package rendertest

import (
	"errors"
	"fmt"
	"unicode/utf8"

	pdfdoc "github.com/rana/pdf-doc"
)

// ErrInjected is the error returned when a call touches FailText.
var ErrInjected = errors.New("rendertest: injected failure")

// Call is one recorded backend invocation.
type Call struct {
	Op    string // "text", "beginPage", "endPage", "finish"
	Text  string
	Style pdfdoc.Style
	X, Y  float64

	// Page dimensions, for "beginPage".
	Width, Height float64
}

// Backend records the calls a renderer makes. Text width is
// CharWidth * rune count regardless of style, so tests can lay out
// words with exact arithmetic. Measurement calls are not recorded;
// drawing and page calls are, in order.
type Backend struct {
	// CharWidth is the width of every rune in points. Defaults to 10.
	CharWidth float64

	// FailText, when non-empty, makes any measure or draw call on that
	// exact text fail with ErrInjected.
	FailText string

	Calls []Call

	// Metadata recorded via SetMetadata, if the renderer forwarded any.
	Title, Author, Subject string

	finished bool
}

// New creates a recording backend with a 10pt character width.
func New() *Backend {
	return &Backend{CharWidth: 10}
}

func (b *Backend) MeasureText(text string, style pdfdoc.Style) (float64, error) {
	if b.FailText != "" && text == b.FailText {
		return 0, ErrInjected
	}
	return b.CharWidth * float64(utf8.RuneCountInString(text)), nil
}

func (b *Backend) DrawTextRun(text string, style pdfdoc.Style, x, y float64) error {
	if b.FailText != "" && text == b.FailText {
		return ErrInjected
	}
	b.Calls = append(b.Calls, Call{Op: "text", Text: text, Style: style, X: x, Y: y})
	return nil
}

func (b *Backend) BeginPage(width, height float64) error {
	b.Calls = append(b.Calls, Call{Op: "beginPage", Width: width, Height: height})
	return nil
}

func (b *Backend) EndPage() error {
	b.Calls = append(b.Calls, Call{Op: "endPage"})
	return nil
}

func (b *Backend) Finish() ([]byte, error) {
	if b.finished {
		return nil, errors.New("rendertest: Finish called twice")
	}
	b.finished = true
	b.Calls = append(b.Calls, Call{Op: "finish"})
	return []byte(fmt.Sprintf("%d calls", len(b.Calls))), nil
}

func (b *Backend) SetMetadata(title, author, subject string) {
	b.Title, b.Author, b.Subject = title, author, subject
}

// TextCalls returns only the recorded text drawing calls, in order.
func (b *Backend) TextCalls() []Call {
	var out []Call
	for _, c := range b.Calls {
		if c.Op == "text" {
			out = append(out, c)
		}
	}
	return out
}

// PageCount returns the number of pages begun.
func (b *Backend) PageCount() int {
	var n int
	for _, c := range b.Calls {
		if c.Op == "beginPage" {
			n++
		}
	}
	return n
}

// PageTexts groups the text of each drawing call by the page it was
// drawn on.
func (b *Backend) PageTexts() [][]string {
	var pages [][]string
	for _, c := range b.Calls {
		switch c.Op {
		case "beginPage":
			pages = append(pages, nil)
		case "text":
			if len(pages) > 0 {
				pages[len(pages)-1] = append(pages[len(pages)-1], c.Text)
			}
		}
	}
	return pages
}
