package docjson

import "fmt"

// ParseError reports JSON input whose shape does not match the document
// format: malformed JSON, a missing required structural key, or a value
// of the wrong JSON type.
type ParseError struct {
	Path string // location in the document, e.g. "sections[0].runs[2].text"
	Msg  string
	Err  error // underlying decoding error, if any
}

func (e *ParseError) Error() string {
	s := "docjson: "
	if e.Path != "" {
		s += e.Path + ": "
	}
	s += e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports well-shaped JSON carrying a semantically
// invalid value, such as an unknown enum token or an out-of-range color
// component. Invalid values are rejected, never coerced to a default.
type ValidationError struct {
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	s := "docjson: "
	if e.Path != "" {
		s += e.Path + ": "
	}
	return s + e.Msg
}

func parseErrorf(path string, format string, args ...any) *ParseError {
	return &ParseError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

func validationErrorf(path string, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
