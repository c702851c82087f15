package constants

import "time"

// Test Constants
//
// IMPORTANT: These constants are for testing only. DO NOT use in production code.

const (
	// TestLoadTimeout is the per-source timeout used by loader tests
	TestLoadTimeout = 200 * time.Millisecond

	// TestSlowSourceDelay is how long a deliberately slow test source blocks
	TestSlowSourceDelay = 2 * time.Second
)
