package render

import "fmt"

// Position locates a run within the document tree by section, paragraph
// and run index. Paragraph and Run are -1 when a failure is not tied to a
// specific run, such as a page or finish operation.
type Position struct {
	Section   int
	Paragraph int
	Run       int
}

func (p Position) String() string {
	if p.Paragraph < 0 {
		if p.Section < 0 {
			return "document"
		}
		return fmt.Sprintf("section %d", p.Section)
	}
	return fmt.Sprintf("section %d paragraph %d run %d", p.Section, p.Paragraph, p.Run)
}

// RenderError reports a backend failure during rendering. The render
// aborts at the first failure; callers must discard any partially written
// target.
type RenderError struct {
	Pos Position
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Pos, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func renderError(pos Position, err error) *RenderError {
	return &RenderError{Pos: pos, Err: err}
}
