package compiler

import "fmt"

// Compile error codes (E001-E099).
const (
	ErrBadDocument    = "E001" // source document does not decode
	ErrBadTableID     = "E002" // table id is not an unsigned 16-bit integer
	ErrUnknownVersion = "E003" // enabled version missing from the catalog
)

// CompileError is a fatal build-time error naming the offending key. The
// generator never produces partial output: the first error aborts the run.
type CompileError struct {
	Code    string
	Key     string
	Message string
}

func (e *CompileError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Key, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
