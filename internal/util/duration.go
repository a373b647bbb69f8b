package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDuration accepts either a bare integer number of minutes ("30") or a
// Go duration string ("1h30m", "90s").
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)

	if minutes, err := strconv.ParseInt(input, 10, 64); err == nil {
		if minutes < 0 || minutes > math.MaxInt64/int64(time.Minute) {
			return 0, invalidDuration(input)
		}
		return time.Duration(minutes) * time.Minute, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, invalidDuration(input)
	}
	return duration, nil
}

func invalidDuration(input string) error {
	return fmt.Errorf("invalid duration format: %s\n\nValid formats:\n"+
		"• minutes: 30, 90\n"+
		"• duration: 45m, 1h30m, 90s", input)
}
