// Package pathway implements the questionnaire recommendation engine: a
// deterministic matcher over configured answer bundles and an AI-augmented
// advisor grounded on the catalog.
package pathway

import "fmt"

// NotConfiguredError indicates the AI provider credential is absent. Callers
// recover from this by falling back to the deterministic matcher.
type NotConfiguredError struct {
	Message string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("ai recommendations not configured: %s", e.Message)
}

// ServiceError indicates the AI provider is configured but the call failed
// (network, quota, malformed or empty response). It is surfaced to the
// caller, never silently recovered.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ai service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ai service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
