package utils

import "github.com/google/uuid"

// RunIDGenerator issues the per-session run identifier attached to every
// log entry, so lines from different launches of the same binary can be
// told apart in an appended log file.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUID
// if the monotonic source fails.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
