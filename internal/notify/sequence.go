package notify

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Sequence issues session-unique message IDs. It combines a monotonic
// counter with a wall-clock timestamp so IDs stay unique even when the
// same text is shown repeatedly, and stay distinguishable across process
// restarts in log output.
//
// The sequence is injected into [Center] at construction instead of
// living as process-wide mutable state.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next composite ID, e.g. "42-1719403563123".
func (s *Sequence) Next() string {
	n := s.next.Add(1)
	return fmt.Sprintf("%d-%d", n, time.Now().UnixMilli())
}
