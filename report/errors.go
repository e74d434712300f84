package report

import "fmt"

// ErrorKind enumerates the categories of error the semantic analyzer can
// produce.  The kinds up to and including ErrReturnOutsideFunction describe
// violations in user source code; the remaining kinds signal defects inside
// the analyzer itself and are never expected for any input, valid or not.
type ErrorKind int

// Enumeration of the different analysis error kinds.
const (
	ErrDuplicateSymbol ErrorKind = iota
	ErrDuplicateParameter
	ErrMissingInitializer
	ErrMissingType
	ErrTypeMismatch
	ErrUnknownType
	ErrUndeclaredIdentifier
	ErrOperandTypeMismatch
	ErrNotCallable
	ErrArityMismatch
	ErrReturnOutsideFunction

	// Internal error kinds: analyzer defects, not user errors.
	ErrUnhandledNodeKind
	ErrScopeUnderflow
)

// String returns the stable, human-readable label for an error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrDuplicateSymbol:
		return "duplicate symbol"
	case ErrDuplicateParameter:
		return "duplicate parameter"
	case ErrMissingInitializer:
		return "missing initializer"
	case ErrMissingType:
		return "missing type"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrUnknownType:
		return "unknown type"
	case ErrUndeclaredIdentifier:
		return "undeclared identifier"
	case ErrOperandTypeMismatch:
		return "operand type mismatch"
	case ErrNotCallable:
		return "not callable"
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrReturnOutsideFunction:
		return "return outside function"
	case ErrUnhandledNodeKind:
		return "unhandled node kind"
	case ErrScopeUnderflow:
		return "scope underflow"
	default:
		return "unknown error"
	}
}

// -----------------------------------------------------------------------------

// AnalysisError is the single error channel for semantic analysis: every
// violation the analyzer detects, user-facing or internal, is carried as one
// of these.  Analysis is fail-fast, so at most one analysis error is ever
// produced per call.
type AnalysisError struct {
	// The kind of the error.
	Kind ErrorKind

	// The human-readable error message.
	Message string

	// The span of the offending construct.  This may be nil only for internal
	// errors raised outside the context of any node.
	Span *TextSpan
}

func (ae *AnalysisError) Error() string {
	if ae.Span == nil {
		return fmt.Sprintf("%s: %s", ae.Kind, ae.Message)
	}

	return fmt.Sprintf("line %d: %s: %s", ae.Span.StartLine, ae.Kind, ae.Message)
}

// Line returns the 1-based source line of the offending construct, or 0 if
// the error carries no position.
func (ae *AnalysisError) Line() int {
	if ae.Span == nil {
		return 0
	}

	return ae.Span.StartLine
}

// IsInternal returns whether the error signals an analyzer defect rather than
// a violation in the analyzed source.  Callers may retry with corrected input
// after a user-facing error; an internal error means the toolchain run itself
// is compromised.
func (ae *AnalysisError) IsInternal() bool {
	return ae.Kind == ErrUnhandledNodeKind || ae.Kind == ErrScopeUnderflow
}

// Raise creates a new analysis error of the given kind over the given span.
func Raise(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *AnalysisError {
	return &AnalysisError{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}
