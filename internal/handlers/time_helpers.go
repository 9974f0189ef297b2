package handlers

import (
	"time"

	"github.com/salonworks/salon-scheduler/internal/timezone"
)

// All request dates are interpreted in the salon's single business timezone.

func parseBusinessDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}

func businessNow(tz string) time.Time {
	return timezone.NowIn(tz)
}
