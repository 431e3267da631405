package models

import "time"

// MessageKind classifies a notification for styling and filtering.
type MessageKind int

const (
	// KindInfo is a neutral informational notification.
	KindInfo MessageKind = 1

	// KindSuccess reports a completed operation.
	KindSuccess MessageKind = 2

	// KindError reports a failed operation.
	KindError MessageKind = 3

	// KindWarning reports a non-fatal problem.
	KindWarning MessageKind = 4
)

// String returns the lowercase name of the kind, used in log fields and
// test output.
func (k MessageKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MessageState is the lifecycle position of a notification.
// Transitions are strictly forward:
// Created → FadingIn → Visible → FadingOut → Removed.
type MessageState int

const (
	// StateCreated means the message was just inserted at zero opacity.
	StateCreated MessageState = iota

	// StateFadingIn means the fade-in transition has been triggered.
	StateFadingIn

	// StateVisible means the message is fully shown.
	StateVisible

	// StateFadingOut means the expiry fired and opacity is dropping.
	StateFadingOut

	// StateRemoved means the message has been detached and its id is no
	// longer tracked.
	StateRemoved
)

// Message is a single timed notification. It is exclusively owned by the
// notification center after creation; no other component retains a
// reference to it.
type Message struct {
	// ID is a session-unique composite of a monotonic counter and a
	// wall-clock timestamp, e.g. "42-1719403563123". Uniqueness holds
	// even when the same text is shown repeatedly.
	ID string

	// Text is the human-readable notification body.
	Text string

	// Kind classifies the notification.
	Kind MessageKind

	// CreatedAt is the insertion time.
	CreatedAt time.Time

	// Duration is how long the message stays before fading out. Computed
	// from the text length at creation; always at least the configured
	// base duration.
	Duration time.Duration

	// State is the current lifecycle position.
	State MessageState
}
