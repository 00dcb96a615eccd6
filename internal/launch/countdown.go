package launch

import (
	"fmt"
	"time"
)

// LaunchingSoon is shown once the launch time has been reached.
const LaunchingSoon = "Launching soon!"

const (
	msPerMinute = int64(60 * 1000)
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// TimeUntil renders the time from now to launchAt with at most two units.
func TimeUntil(launchAt, now time.Time) string {
	diff := launchAt.Sub(now).Milliseconds()
	if diff <= 0 {
		return LaunchingSoon
	}

	days := diff / msPerDay
	hours := diff % msPerDay / msPerHour
	minutes := diff % msPerHour / msPerMinute

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
