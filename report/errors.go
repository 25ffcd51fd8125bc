package report

import "fmt"

// FileAccessError is returned when the report file can not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot open %s", e.Path)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MalformedInputError is returned when the report file is not a valid JSON document.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return "Invalid json file"
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// UnexpectedStructureError is returned when the report is valid JSON,
// but the failure count can not be looked up in it.
type UnexpectedStructureError struct {
	Reason string
	Err    error
}

func newUnexpectedStructureError(reason string, err error) *UnexpectedStructureError {
	return &UnexpectedStructureError{Reason: reason, Err: err}
}

func (e *UnexpectedStructureError) Error() string {
	return fmt.Sprintf("Unexpected json structure: %s", e.Reason)
}

func (e *UnexpectedStructureError) Unwrap() error {
	return e.Err
}
