package engine

import (
	"math"
	"time"
)

// daysSince returns the elapsed whole days between now and t, rounded up.
// The absolute difference is used so future timestamps (clock skew) never
// yield a negative age.
func daysSince(now, t time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}
