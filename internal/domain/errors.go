package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrDispatch matches any *DispatchError via errors.Is.
	ErrDispatch = errors.New("dispatch failed")

	// ErrNotDraft is returned for report intents outside the Draft state.
	ErrNotDraft        = errors.New("report is not in draft")
	ErrUnknownSymptom  = errors.New("unknown symptom")
	ErrUnknownSeverity = errors.New("unknown severity")
)

// ErrNoSymptoms is the validation failure for a report without symptoms.
var ErrNoSymptoms = &ValidationError{Field: "symptoms", Reason: "at least one symptom required"}

// ValidationError is a recoverable, user-facing input problem. The report
// state is unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DispatchError wraps a failure from the Emergency Dispatch Service.
// The report returns to Draft so the user can retry.
type DispatchError struct {
	Cause error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch report: %v", e.Cause)
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatch
}
