package clock

import "time"

// Now returns the current time formatted for response envelopes.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
