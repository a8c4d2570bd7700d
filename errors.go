package pdfdoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid tree construction order.
var (
	ErrNoSection   = errors.New("pdfdoc: document has no section")
	ErrNoParagraph = errors.New("pdfdoc: section has no paragraph")
	ErrEmptyRun    = errors.New("pdfdoc: run text is empty")
)

// StructureError reports an attempt to grow the document tree out of
// order, such as adding a run before any paragraph exists. It wraps an
// underlying sentinel error and includes the operation name for context.
type StructureError struct {
	Op  string // operation name, e.g. "AddParagraph", "AddRun"
	Err error  // underlying error
}

func (e *StructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfdoc.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pdfdoc.%s: unknown error", e.Op)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

// newStructureError creates a new StructureError wrapping the given error
// with operation context.
func newStructureError(op string, err error) *StructureError {
	return &StructureError{Op: op, Err: err}
}
