package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the expected failure classes. Callers classify with
// errors.Is and attach context with fmt.Errorf("...: %w", ...).
var (
	ErrConfig                 = errors.New("configuration error")
	ErrRoleNotFound           = errors.New("role not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrCredentialsUnavailable = errors.New("no usable AWS credentials")
	ErrIO                     = errors.New("filesystem error")
)

// FailureReason classifies why STS rejected an assumption attempt.
type FailureReason string

const (
	ReasonPermissionDenied FailureReason = "permission denied"
	ReasonNotFound         FailureReason = "role not found"
	ReasonTransport        FailureReason = "transport failure"
)

// AssumeRoleError reports a failed assumption of a named role.
type AssumeRoleError struct {
	Role   string
	Reason FailureReason
	Err    error
}

func (e *AssumeRoleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not assume role %q: %s: %v", e.Role, e.Reason, e.Err)
	}
	return fmt.Sprintf("could not assume role %q: %s", e.Role, e.Reason)
}

func (e *AssumeRoleError) Unwrap() error { return e.Err }

// NewAssumeRoleError wraps a provider or transport failure with the role it
// concerned.
func NewAssumeRoleError(role string, reason FailureReason, err error) *AssumeRoleError {
	return &AssumeRoleError{Role: role, Reason: reason, Err: err}
}
