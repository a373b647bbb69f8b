package util

import (
	"fmt"
	"time"
)

// FormatClock renders d as HH:MM:SS.cc, where cc is hundredths of a second.
// Negative durations render as zero.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int64(d / time.Second)
	centis := int64(d%time.Second) / int64(10*time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d.%02d",
		seconds/3600,
		(seconds%3600)/60,
		seconds%60,
		centis,
	)
}

// FormatLimit renders a threshold for messages: whole minutes as "30 minutes",
// anything shorter or uneven as a Go duration.
func FormatLimit(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		minutes := int(d / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return d.String()
}
