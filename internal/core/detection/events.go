// Package detection scores editor telemetry for the likelihood that code
// was AI-generated rather than hand-typed.
//
// The pipeline is pure and synchronous: Extract turns an ordered event log
// into Features, each signal scorer maps Features to a SignalResult, and the
// engine aggregates those into a Result. Persistence and transport stay with
// the caller; nothing in here performs I/O or holds state across calls.
package detection

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed telemetry: negative counts or sizes,
// negative duration, or non-monotonic timestamps. Out-of-order telemetry is
// a collector bug upstream, so the engine fails fast instead of re-sorting.
// Wrap sites add detail; test with errors.Is
var ErrInvalidInput = errors.New("invalid telemetry input")

// EventKind enumerates the editor actions the collector reports
type EventKind string

const (
	// EventKeystroke is a single typed character
	EventKeystroke EventKind = "keystroke"
	// EventPaste is a clipboard insertion; SizeChars carries the paste size
	EventPaste EventKind = "paste"
	// EventDelete is a backspace or delete press
	EventDelete EventKind = "delete"
	// EventIdle marks a collector-detected inactivity gap
	EventIdle EventKind = "idle"
)

func (k EventKind) valid() bool {
	switch k {
	case EventKeystroke, EventPaste, EventDelete, EventIdle:
		return true
	}
	return false
}

// Event is one observed editor action. AtMs is milliseconds since session
// start. SizeChars is the character count the action inserted; collectors
// that do not size keystrokes may leave it zero, which counts as one char
type Event struct {
	AtMs      int64     `json:"timestampMs"`
	Kind      EventKind `json:"kind"`
	SizeChars int       `json:"sizeChars,omitempty"`
}

// ValidateEvents checks a batch before it is accepted for storage, applying
// the same rules Extract does: known kinds, non-negative sizes, ascending
// timestamps. Failures wrap ErrInvalidInput
func ValidateEvents(events []Event) error {
	return validateEvents(events)
}

// validateEvents enforces kind, non-negative sizes, and ascending timestamps
func validateEvents(events []Event) error {
	havePrev := false
	var prev int64
	for i, ev := range events {
		if !ev.Kind.valid() {
			return fmt.Errorf("%w: event %d has unknown kind %q", ErrInvalidInput, i, ev.Kind)
		}
		if ev.SizeChars < 0 {
			return fmt.Errorf("%w: event %d has negative size %d", ErrInvalidInput, i, ev.SizeChars)
		}
		if havePrev && ev.AtMs < prev {
			return fmt.Errorf(
				"%w: event %d timestamp %dms precedes previous %dms",
				ErrInvalidInput, i, ev.AtMs, prev,
			)
		}
		prev, havePrev = ev.AtMs, true
	}
	return nil
}
