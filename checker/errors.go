package checker

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCategory is one of the checker's three terminal error categories.
type ErrorCategory int

const (
	// InvalidUsage covers caller-contract violations: a nil handle, a
	// zero literal, or the INT_MIN boundary literal.
	InvalidUsage ErrorCategory = iota
	// VerificationFailure covers the two soundness checks the checker
	// exists to perform: a delete with no matching clause, and a
	// learned clause that is not AT-implied.
	VerificationFailure
	// ResourceExhaustion covers allocation failures during table
	// growth. Clause creation does not report through this category.
	ResourceExhaustion
)

func (c ErrorCategory) String() string {
	switch c {
	case InvalidUsage:
		return "invalid usage"
	case VerificationFailure:
		return "verification failure"
	case ResourceExhaustion:
		return "resource exhaustion"
	default:
		return "unknown"
	}
}

// CheckerError is the payload every fatal panic raised by this package
// carries. It is never recovered inside the core — a fatal is fatal —
// but it remains a real error value for callers that assert on
// recover()'s result in tests.
type CheckerError struct {
	Category ErrorCategory
	Op       string
	Detail   string
	cause    error
}

func (e *CheckerError) Error() string {
	return fmt.Sprintf("satch: %s: %s: %s", e.Category, e.Op, e.Detail)
}

func (e *CheckerError) Unwrap() error {
	return e.cause
}

func newInvalidUsage(op, detail string) *CheckerError {
	return &CheckerError{Category: InvalidUsage, Op: op, Detail: detail, cause: errors.New(detail)}
}

func newVerificationFailure(op, detail string) *CheckerError {
	return &CheckerError{Category: VerificationFailure, Op: op, Detail: detail, cause: errors.New(detail)}
}

func newResourceExhaustion(op string, size int) *CheckerError {
	detail := fmt.Sprintf("allocation of size %d failed", size)
	return &CheckerError{Category: ResourceExhaustion, Op: op, Detail: detail, cause: errors.Wrapf(errors.New("allocation failed"), "size %d", size)}
}
