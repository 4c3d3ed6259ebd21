package impl

import "time"

// timeNow is swapped out by tests that pin the clock.
var timeNow = func() time.Time { return time.Now().UTC() }
