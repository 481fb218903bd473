// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
)

// ErrLevelFormat matches every FormatError.
var ErrLevelFormat = errors.New("level format error")

// Error codes reported by the parsers.
const (
	CodeBadDimensions   = "BAD_DIMENSIONS"
	CodeBadRow          = "BAD_ROW"
	CodeBadToken        = "BAD_TOKEN"
	CodeBadRotation     = "BAD_ROTATION"
	CodeUnknownKind     = "UNKNOWN_KIND"
	CodeMisplacedBorder = "MISPLACED_BORDER"
)

// FormatError describes a malformed level definition.
// Line is 1-based; zero means the error is not tied to a line.
type FormatError struct {
	Line    int
	Code    string
	Message string
}

func (e FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes FormatError match ErrLevelFormat.
func (e FormatError) Is(target error) bool {
	return target == ErrLevelFormat
}

func formatErr(line int, code, format string, args ...any) FormatError {
	return FormatError{Line: line, Code: code, Message: fmt.Sprintf(format, args...)}
}
