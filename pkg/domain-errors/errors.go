// Package domainerrors provides coded errors that travel from services to
// transport without leaking infrastructure detail. Stores return sentinel
// errors (pkg/platform/sentinel); services translate them into these.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable classification of a domain error.
type Code string

const (
	// CodeValidation: bad input, zero side effects, safe to retry after fixing input.
	CodeValidation Code = "validation"
	// CodeInvalidInput: a single field failed parsing (IDs, enums).
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest: malformed request at the transport boundary.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound: referenced entity missing.
	CodeNotFound Code = "not_found"
	// CodeConflict: concurrent modification lost the race.
	CodeConflict Code = "conflict"
	// CodeInvalidTransition: state machine rule violation.
	CodeInvalidTransition Code = "invalid_transition"
	// CodeAlreadyConverted: benign idempotent no-op on a converted applicant.
	CodeAlreadyConverted Code = "already_converted"
	// CodeIdentityProvider: external identity system failed during a forward step.
	CodeIdentityProvider Code = "identity_provider"
	// CodePersistence: relational transaction failed during a forward step.
	CodePersistence Code = "persistence"
	// CodeCompensationFailed: a rollback step itself failed. The system is in a
	// known-inconsistent state and requires operator attention.
	CodeCompensationFailed Code = "compensation_failed"
	// CodeInvariantViolation: an aggregate constructor or mutator rejected a value.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeUnauthorized / CodeForbidden: acting identity missing or not allowed.
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	// CodeTimeout: operation aborted by deadline.
	CodeTimeout Code = "timeout"
	// CodeInternal: anything else; detail stays server-side.
	CodeInternal Code = "internal"
)

// Error carries a code, a safe human-readable message, and an optional cause.
type Error struct {
	code  Code
	msg   string
	cause error
}

// New builds a domain error with no underlying cause.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Newf builds a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and safe message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{code: code, msg: msg, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

// Message returns the safe, user-presentable message without the cause.
func (e *Error) Message() string { return e.msg }

// Code returns the machine-readable code.
func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.cause }

// Is makes two domain errors equal when their codes match, so
// errors.Is(err, dErrors.New(code, "")) works where needed.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.code == t.code
}

// CodeOf extracts the code from an error chain, or CodeInternal if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeInternal
}

// MessageOf extracts the safe message from an error chain, or "" if none.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return ""
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.code == code
	}
	return false
}
