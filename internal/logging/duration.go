package logging

import (
	"fmt"
	"strings"
	"time"
)

type durationUnit struct {
	suffix string
	size   time.Duration
}

// Largest first so the breakdown is greedy.
var durationUnits = []durationUnit{
	{"y", 365 * 24 * time.Hour},
	{"mo", 30 * 24 * time.Hour},
	{"w", 7 * 24 * time.Hour},
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
	{"ms", time.Millisecond},
}

// FormatDuration renders d as a human-readable breakdown such as
// "1m 5s 250ms". Units with a zero count are omitted; durations under
// one millisecond render as "0ms".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	if d < time.Millisecond {
		return "0ms"
	}
	var parts []string
	for _, u := range durationUnits {
		if n := d / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			d -= n * u.size
		}
	}
	return strings.Join(parts, " ")
}
