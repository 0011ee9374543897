package pipeline

import "fmt"

// ValidationError reports input that fails the minimum bar for entering the
// pipeline, such as a resume with no detectable email address. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
