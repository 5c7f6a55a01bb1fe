package jsondoc

import (
	"fmt"

	"jsondoc/internal/description"
)

// Error matches every error this package returns according to errors.Is,
// mirroring the teacher's own jsonError sentinel pattern (errors.go).
const Error = jsonError("jsondoc error")

type jsonError string

func (e jsonError) Error() string { return string(e) }
func (e jsonError) Is(target error) bool {
	return e == target || target == Error
}

// Reason refines a SyntaxError to a precise grammar position. The
// constants mirror spec.md §4.1's error-reason enumeration.
type Reason = description.Reason

const (
	ReasonNone             = description.ReasonNone
	ExpectedObjectKey      = description.ExpectedObjectKey
	ExpectedObjectClose    = description.ExpectedObjectClose
	ExpectedValue          = description.ExpectedValue
	ExpectedColon          = description.ExpectedColon
	ExpectedComma          = description.ExpectedComma
	ExpectedArrayClose     = description.ExpectedArrayClose
	ExpectedTopLevelObject = description.ExpectedTopLevelObject
)

// ErrorKind categorizes a SyntaxError (spec.md §4.1).
type ErrorKind = description.Kind

const (
	KindEndOfObject           = description.EndOfObject
	KindInvalidTopLevelObject = description.InvalidTopLevelObject
	KindMissingData           = description.MissingData
	KindInvalidLiteral        = description.InvalidLiteral
	KindMissingToken          = description.MissingToken
	KindUnexpectedToken       = description.UnexpectedToken
)

// SyntaxError reports a JSON parsing failure with its source location
// (spec.md §4.1, §6). It is never returned for conditions the library
// itself caused; only for structurally invalid input.
type SyntaxError struct {
	Kind   ErrorKind
	Reason Reason
	Offset int
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Reason != ReasonNone {
		return fmt.Sprintf("jsondoc: %s (%s) at line %d, column %d", e.Kind, e.Reason, e.Line, e.Column)
	}
	return fmt.Sprintf("jsondoc: %s at line %d, column %d", e.Kind, e.Line, e.Column)
}
func (e *SyntaxError) Is(target error) bool { return target == Error }

func wrapSyntaxError(err error) error {
	if err == nil {
		return nil
	}
	se, ok := err.(*description.SyntaxError)
	if !ok {
		return err
	}
	return &SyntaxError{Kind: se.Kind, Reason: se.Reason, Offset: se.Offset, Line: se.Line, Column: se.Column}
}

// Boundary errors surfaced at the API edge (spec.md §6–§7).
var (
	// ErrExpectedObject is returned by ParseObject when the root value is
	// not a JSON object.
	ErrExpectedObject = jsonError("jsondoc: expected object at document root")
	// ErrExpectedArray is returned by ParseArray when the root value is
	// not a JSON array.
	ErrExpectedArray = jsonError("jsondoc: expected array at document root")
	// ErrIndexOutOfRange is returned by Array.Set and Array.Remove for an
	// out-of-bounds index, except Set at index == Len(), which appends.
	// Array.Get does not return it: an out-of-bounds read reports
	// ok == false.
	ErrIndexOutOfRange = jsonError("jsondoc: array index out of range")
	// ErrNotArray is returned when an indexed write is attempted on a
	// Value that does not hold an Array (spec.md §9 open question:
	// treated as an error, not a silent no-op).
	ErrNotArray = jsonError("jsondoc: indexed write requires an array value")
)

// internalError reports a broken invariant: a corrupt index or a removal
// path that could not find its expected surrounding comma. Per spec.md
// §7, these indicate library bugs, never user error, and are never
// expected to occur for valid input; they abort rather than return.
func internalError(msg string) {
	panic(jsondocInternalError("jsondoc: internal invariant violated: " + msg))
}

type jsondocInternalError string

func (e jsondocInternalError) Error() string { return string(e) }
