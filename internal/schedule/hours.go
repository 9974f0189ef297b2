package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Settings keys for the configurable business day.
const (
	SettingBusinessOpen  = "BUSINESS_OPEN"
	SettingBusinessClose = "BUSINESS_CLOSE"
)

// Defaults used whenever the settings store has no usable hours.
var (
	DefaultOpen  = ClockTime{Hour: 9}
	DefaultClose = ClockTime{Hour: 17}
)

// SettingsProvider supplies optional business-hours overrides. A nil or
// failing provider is not an error; the resolver falls back to defaults.
type SettingsProvider interface {
	Get(ctx context.Context, key string) (string, error)
}

// ClockTime is a wall-clock time of day ("HH:MM") with no date attached.
type ClockTime struct {
	Hour   int
	Minute int
}

// At anchors the clock time to a concrete day in that day's location.
func (ct ClockTime) At(day time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		ct.Hour, ct.Minute, 0, 0,
		day.Location(),
	)
}

func (ct ClockTime) Before(other ClockTime) bool {
	return ct.Hour < other.Hour || (ct.Hour == other.Hour && ct.Minute < other.Minute)
}

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// Hours is the daily open/close pair slots are generated within.
type Hours struct {
	Open  ClockTime
	Close ClockTime
}

func DefaultHours() Hours {
	return Hours{Open: DefaultOpen, Close: DefaultClose}
}

// ResolveBusinessHours reads BUSINESS_OPEN / BUSINESS_CLOSE from the settings
// provider. Missing, malformed, or inverted values fall back to 09:00-17:00.
// It never fails; callers always get a usable pair.
func ResolveBusinessHours(ctx context.Context, settings SettingsProvider) Hours {
	if settings == nil {
		return DefaultHours()
	}

	openRaw, err := settings.Get(ctx, SettingBusinessOpen)
	if err != nil {
		return DefaultHours()
	}
	closeRaw, err := settings.Get(ctx, SettingBusinessClose)
	if err != nil {
		return DefaultHours()
	}

	open, err := ParseClockTime(openRaw)
	if err != nil {
		return DefaultHours()
	}
	closeAt, err := ParseClockTime(closeRaw)
	if err != nil {
		return DefaultHours()
	}

	if !open.Before(closeAt) {
		return DefaultHours()
	}

	return Hours{Open: open, Close: closeAt}
}

// ParseClockTime parses "HH:MM" (24h) strings like "09:00".
func ParseClockTime(raw string) (ClockTime, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}
