package ai

import (
	"errors"
	"fmt"
)

// AuthExpiredError means the provider rejected our credentials. It is never
// retried; an in-flight analysis run aborts as a whole when it surfaces.
type AuthExpiredError struct {
	Status int
	Body   string
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("ai: credentials rejected (status %d)", e.Status)
}

// TransientError covers rate limits, 5xx responses and network failures.
// Calls failing with it are retried.
type TransientError struct {
	Status int
	Cause  error
}

func (e *TransientError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("ai: transient failure (status %d): %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("ai: transient failure: %v", e.Cause)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// MalformedResponseError means the model answered but the payload could not
// be parsed or did not match the expected schema.
type MalformedResponseError struct {
	Detail string
	Raw    []byte
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("ai: malformed response: %s", e.Detail)
}

func (e *MalformedResponseError) Unwrap() error { return e.Cause }

func IsAuthExpired(err error) bool {
	var ae *AuthExpiredError
	return errors.As(err, &ae)
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
