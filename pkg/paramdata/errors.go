package paramdata

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSourceFile reports that the configured data file does not
	// resolve to a readable regular file.
	ErrMissingSourceFile = errors.New("paramdata: missing source file")
	// ErrUnknownClass reports that the requested class is absent from the
	// parsed data.
	ErrUnknownClass = errors.New("paramdata: unknown class")
	// ErrNilSource is returned by loaders when no Source was supplied.
	ErrNilSource = errors.New("paramdata: source is nil")
)

// SourceError carries the location that could not be resolved. It matches
// ErrMissingSourceFile through errors.Is.
type SourceError struct {
	Location string
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Location)
}

func (e *SourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingSourceFile}
	}
	return []error{ErrMissingSourceFile, e.Err}
}

// ClassError carries the class name and data location of a failed lookup. It
// matches ErrUnknownClass through errors.Is.
type ClassError struct {
	Class    string
	Location string
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("Class %s not found in %s", e.Class, e.Location)
}

func (e *ClassError) Unwrap() error {
	return ErrUnknownClass
}

// IsReportable reports whether err is one of the recoverable kinds that a
// directive surfaces inline instead of aborting the build.
func IsReportable(err error) bool {
	return errors.Is(err, ErrMissingSourceFile) || errors.Is(err, ErrUnknownClass)
}
