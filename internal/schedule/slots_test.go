package schedule

import (
	"testing"
	"time"
)

func TestSlots_FullDay(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	slots := CollectSlots(day, 60*time.Minute, DefaultHours())

	// 09:00-17:00 with 60-minute services: 09:00 through 16:00.
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if !slots[0].Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("expected first slot 09:00, got %s", slots[0].Format(time.RFC3339))
	}
	if !slots[7].Equal(day.Add(16 * time.Hour)) {
		t.Fatalf("expected last slot 16:00, got %s", slots[7].Format(time.RFC3339))
	}
}

func TestSlots_EvenSpacingAndBounds(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	duration := 45 * time.Minute
	hours := DefaultHours()

	slots := CollectSlots(day, duration, hours)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}

	open := hours.Open.At(day)
	closeAt := hours.Close.At(day)

	for i, s := range slots {
		if s.Before(open) {
			t.Fatalf("slot %d starts before opening: %s", i, s)
		}
		if s.Add(duration).After(closeAt) {
			t.Fatalf("slot %d ends after closing: %s", i, s)
		}
		if i > 0 && s.Sub(slots[i-1]) != duration {
			t.Fatalf("slot %d not spaced by %s from previous", i, duration)
		}
	}
}

func TestSlots_DurationLongerThanDay(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	slots := CollectSlots(day, 9*time.Hour, DefaultHours())
	if len(slots) != 0 {
		t.Fatalf("expected no slots for a 9h service in an 8h day, got %d", len(slots))
	}
}

func TestSlots_NonPositiveDuration(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	if got := CollectSlots(day, 0, DefaultHours()); len(got) != 0 {
		t.Fatalf("zero duration must yield nothing, got %d slots", len(got))
	}
	if got := CollectSlots(day, -30*time.Minute, DefaultHours()); len(got) != 0 {
		t.Fatalf("negative duration must yield nothing, got %d slots", len(got))
	}
}

func TestSlots_Restartable(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	seq := Slots(day, 60*time.Minute, DefaultHours())

	var first, second []time.Time
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}

	if len(first) != len(second) {
		t.Fatalf("second pass yielded %d slots, first %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("slot %d differs between passes", i)
		}
	}
}

func TestSlots_EarlyBreak(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	count := 0
	for range Slots(day, 60*time.Minute, DefaultHours()) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("expected to stop after 3 slots, got %d", count)
	}
}

func TestSlots_AnchoredToDayLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)

	slots := CollectSlots(day, 120*time.Minute, DefaultHours())
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	for i, s := range slots {
		if s.Location() != loc {
			t.Fatalf("slot %d not in business location: %s", i, s.Location())
		}
	}
}
