package formula

import "fmt"

// ErrorKind distinguishes the two recoverable evaluation failure modes.
type ErrorKind int

const (
	// MissingOrInvalidInput means a required field is absent or its raw
	// text does not parse as an acceptable value.
	MissingOrInvalidInput ErrorKind = iota
	// DomainViolation means the parsed values fail a formula-specific
	// precondition, so no result is computable yet.
	DomainViolation
)

// EvalError is the typed, recoverable error returned by Evaluate. It is
// never a crash condition: both kinds mean "no result yet" and are meant
// to be surfaced to the caller as-is.
type EvalError struct {
	Kind   ErrorKind
	Field  string
	Reason string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case MissingOrInvalidInput:
		return fmt.Sprintf("missing or invalid input: %s", e.Field)
	default:
		return fmt.Sprintf("domain violation: %s", e.Reason)
	}
}

func missingOrInvalidInput(field string) *EvalError {
	return &EvalError{Kind: MissingOrInvalidInput, Field: field, Reason: fmt.Sprintf("field %q is missing or not a valid value", field)}
}

func domainViolation(format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: DomainViolation, Reason: fmt.Sprintf(format, args...)}
}
