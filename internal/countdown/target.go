package countdown

import (
	"time"

	"dsaposter/internal/config"
)

// MillisecondsUntil returns the milliseconds from now until target on now's
// calendar day, in now's location. A target at or before now yields 0; the
// result never counts into tomorrow.
func MillisecondsUntil(target config.TimeOfDay, now time.Time) int64 {
	at := time.Date(now.Year(), now.Month(), now.Day(), target.Hour, target.Minute, 0, 0, now.Location())
	diff := at.Sub(now).Milliseconds()
	if diff <= 0 {
		return 0
	}
	return diff
}
