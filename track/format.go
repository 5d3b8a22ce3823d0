package track

import (
	"fmt"
	"time"
)

// FormatMillis renders milliseconds as seconds.milliseconds with the
// milliseconds zero-padded to three digits, e.g. 10.083. Negative input
// renders as 0.000.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}

// FormatElapsed renders a clock reading the way FormatMillis does.
func FormatElapsed(d time.Duration) string {
	return FormatMillis(d.Milliseconds())
}

// FormatTime renders a recorded lane time, or -- when none was recorded.
func FormatTime(ms *int64) string {
	if ms == nil {
		return "--"
	}
	return FormatMillis(*ms)
}
