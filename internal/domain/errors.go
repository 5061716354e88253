package domain

import (
	"errors"
	"fmt"
)

// AuthError blocks an action that needs a valid session. The caller is
// expected to surface it and leave the user on the current screen.
type AuthError struct {
	Msg string
	Err error
}

func (e AuthError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "not authenticated"
}

func (e AuthError) Unwrap() error { return e.Err }

// ValidationError blocks a submission before any network call is made.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ProviderError wraps failures from the backend or a geo provider. The
// operation is abandoned at the call site; no retry is attempted.
type ProviderError struct {
	Provider string
	Msg      string
	Err      error
}

func (e ProviderError) Error() string {
	switch {
	case e.Msg != "" && e.Provider != "":
		return fmt.Sprintf("%s: %s", e.Provider, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Provider != "":
		return fmt.Sprintf("%s request failed", e.Provider)
	default:
		return "provider request failed"
	}
}

func (e ProviderError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsProvider(err error) bool {
	var target ProviderError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
