package contact

import "errors"

var (
	ErrMissingFields = errors.New("contact: all fields are required")
	ErrInvalidEmail  = errors.New("contact: invalid email format")
	ErrDispatch      = errors.New("contact: notification dispatch failed")
)

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError wraps ErrMissingFields or ErrInvalidEmail with per-field detail.
type ValidationError struct {
	Err    error
	Issues []Issue
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the person submitting the form.
func (e *ValidationError) Message() string {
	if errors.Is(e.Err, ErrInvalidEmail) {
		return "Invalid email format"
	}
	return "All fields are required"
}
