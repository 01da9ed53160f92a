package booking

import "fmt"

// ValidationError reports malformed input to a constructor. It is always
// surfaced synchronously to the immediate caller, never silently corrected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigurationError reports that the recognized status sets are malformed
// at startup. Fatal: answering conflict queries with a broken taxonomy would
// return misleadingly permissive results.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "status configuration: " + e.Reason
}

// ConflictError is returned by the service layer when a proposed appointment
// collides with an existing blocking one. Handlers map it to 409.
type ConflictError struct {
	Result ConflictResult
}

func (e *ConflictError) Error() string {
	if e.Result.With != nil {
		return fmt.Sprintf("appointment conflict (%s) with %s", e.Result.Type, e.Result.With.ID)
	}
	return fmt.Sprintf("appointment conflict (%s)", e.Result.Type)
}
