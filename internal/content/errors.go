package content

import "fmt"

// MissingInputError means the content file does not exist.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("content file %s not found", e.Path)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// MalformedInputError means the content file is not valid YAML or a value
// has the wrong shape (a list where a mapping is expected, and so on).
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed content: %v", e.Err)
	}
	return fmt.Sprintf("malformed content in %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// MissingFieldError names a required key that is absent from the content
// tree. Field is a dotted path such as "publications[1].links".
type MissingFieldError struct {
	Field string
	Line  int
}

func (e *MissingFieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("missing required field %q (line %d)", e.Field, e.Line)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}
