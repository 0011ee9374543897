package extraction

import "fmt"

// ExtractionError represents a structural failure to process the source text.
// Malformed content degrades gracefully instead; this error is reserved for
// input the extractor cannot read at all.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
