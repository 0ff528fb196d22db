package weightstream

import (
	"fmt"
)

// FormatError indicates that the blob does not match its own framing: bad
// magic, an inconsistent record header, or a record running past the
// declared payload. The blob is static, so retrying cannot help.
type FormatError struct {
	// Offset is the blob offset the error was detected at
	Offset int64

	// Reason describes the inconsistency
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("blob format error at offset %d: %s", e.Offset, e.Reason)
}

// IsFormatError checks if an error is a FormatError.
func IsFormatError(err error) bool {
	_, ok := err.(*FormatError)
	return ok
}

// OverrunError indicates that a tensor's blocks would not fit the fixed
// decode scratch buffer. This is a hard resource ceiling; the read aborts
// rather than truncating.
type OverrunError struct {
	// Blocks is the record's block count
	Blocks int

	// Capacity is the scratch capacity in elements
	Capacity int
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("decode overrun: %d blocks need %d elements, scratch holds %d",
		e.Blocks, e.Blocks*32, e.Capacity)
}

// IsOverrunError checks if an error is an OverrunError.
func IsOverrunError(err error) bool {
	_, ok := err.(*OverrunError)
	return ok
}
