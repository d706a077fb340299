package statement

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned by ParseReader when the file exceeds the byte limit.
var ErrTooLarge = errors.New("statement: file exceeds the maximum import size")

// FormatError reports a file whose extension is not a supported statement
// format. Nothing is parsed.
type FormatError struct {
	Extension string
}

func (e *FormatError) Error() string {
	if e.Extension == "" {
		return "statement: file has no extension"
	}
	return fmt.Sprintf("statement: unsupported file type: %s", e.Extension)
}

// HeaderError reports a statement whose header row is missing or lacks a
// required column.
type HeaderError struct {
	Reason string
}

func (e *HeaderError) Error() string {
	return "statement: " + e.Reason
}
