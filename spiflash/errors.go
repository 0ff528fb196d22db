package spiflash

import (
	"fmt"
)

// HangError indicates that a transaction did not complete within the
// configured tick budget. The link has no error path of its own, so a dead
// device stalls the engine forever; setting a timeout turns that stall into
// this error.
type HangError struct {
	// Ticks is the number of main-clock ticks waited
	Ticks uint64
}

func (e *HangError) Error() string {
	return fmt.Sprintf("flash transaction incomplete after %d ticks", e.Ticks)
}

// IsHangError checks if an error is a HangError.
func IsHangError(err error) bool {
	_, ok := err.(*HangError)
	return ok
}
