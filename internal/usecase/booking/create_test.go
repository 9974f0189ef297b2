package booking

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/notify"
	"github.com/salonworks/salon-scheduler/internal/schedule"
)

type capturePublisher struct {
	events chan notify.Event
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{events: make(chan notify.Event, 10)}
}

func (p *capturePublisher) Publish(_ context.Context, ev notify.Event) error {
	p.events <- ev
	return nil
}

func (p *capturePublisher) next(t *testing.T) notify.Event {
	t.Helper()
	select {
	case ev := <-p.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
		return notify.Event{}
	}
}

var fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newCreateFixture(t *testing.T) (*CreateBooking, *fakeRepo, *capturePublisher) {
	t.Helper()

	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Haircut", DurationMin: 60, Price: 40, Active: true}
	repo.services[2] = &models.Service{ID: 2, Name: "Retired perm", DurationMin: 90, Price: 80, Active: false}
	repo.staff[1] = &models.Staff{ID: 1, Name: "Dana", Email: "dana@example.com"}

	pub := newCapturePublisher()
	dispatcher := notify.NewDispatcher(pub, zerolog.Nop())
	t.Cleanup(dispatcher.Close)

	engine := schedule.NewEngine(repo, nil, schedule.WindowPolicyPermissive)

	uc := NewCreateBooking(repo, engine, dispatcher, "UTC")
	uc.now = func() time.Time { return fixedNow }

	return uc, repo, pub
}

func staffID(id uint) *uint { return &id }

func TestCreateBooking_Success(t *testing.T) {
	uc, repo, pub := newCreateFixture(t)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientName:  "Taylor",
		ClientPhone: "555-0101",
		ClientEmail: "taylor@example.com",
		ServiceID:   1,
		StaffID:     staffID(1),
		Date:        "2026-03-03",
		Time:        "10:00",
		Notes:       "first visit",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.NotEmpty(t, b.Reference)
	assert.True(t, b.EndTime.Equal(b.StartTime.Add(60*time.Minute)))
	assert.Len(t, repo.bookings, 1)

	ev := pub.next(t)
	assert.Equal(t, notify.EventBookingConfirmed, ev.Type)
	assert.Equal(t, b.Reference, ev.BookingRef)
	assert.Equal(t, "taylor@example.com", ev.ClientEmail)
}

func TestCreateBooking_PastTime(t *testing.T) {
	uc, _, _ := newCreateFixture(t)

	cases := []struct {
		date, hhmm string
	}{
		{"2026-03-02", "11:00"}, // earlier today
		{"2026-03-02", "12:00"}, // exactly now
		{"2026-03-01", "10:00"}, // yesterday
	}

	for _, tc := range cases {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			ClientName:  "Taylor",
			ClientPhone: "555-0101",
			ServiceID:   1,
			StaffID:     staffID(1),
			Date:        tc.date,
			Time:        tc.hhmm,
		})
		assert.True(t, httperr.IsBusiness(err, "past_time"), "%s %s: got %v", tc.date, tc.hhmm, err)
	}
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	uc, _, _ := newCreateFixture(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, Date: "03/03/2026", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"), "got %v", err)

	_, err = uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 99, Date: "2026-03-03", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"), "got %v", err)

	_, err = uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 2, Date: "2026-03-03", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_inactive"), "got %v", err)

	_, err = uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(42), Date: "2026-03-03", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"), "got %v", err)
}

func TestCreateBooking_ZeroDurationService(t *testing.T) {
	uc, repo, _ := newCreateFixture(t)
	repo.services[3] = &models.Service{ID: 3, Name: "Broken", DurationMin: 0, Active: true}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 3, StaffID: staffID(1), Date: "2026-03-03", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"), "got %v", err)
}

func TestCreateBooking_ConflictRejected(t *testing.T) {
	uc, _, _ := newCreateFixture(t)
	ctx := context.Background()

	first, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "10:00",
	})
	require.NoError(t, err)

	// Overlapping request for the same staff member loses.
	_, err = uc.Execute(ctx, CreateBookingInput{
		ClientName: "Jordan", ClientPhone: "555-0202",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "10:30",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	// The zero-gap follow-up slot is fine.
	second, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Jordan", ClientPhone: "555-0202",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "11:00",
	})
	require.NoError(t, err)
	assert.True(t, second.StartTime.Equal(first.EndTime))
}

func TestCreateBooking_OutsideWindowRejected(t *testing.T) {
	uc, repo, _ := newCreateFixture(t)
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	repo.windows[1] = []models.AvailabilityWindow{
		{StaffID: 1, StartTime: day.Add(13 * time.Hour), EndTime: day.Add(17 * time.Hour)},
	}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	_, err = uc.Execute(context.Background(), CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "14:00",
	})
	assert.NoError(t, err)
}

func TestCreateBooking_StaffLessSkipsConflictCheck(t *testing.T) {
	uc, repo, _ := newCreateFixture(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "10:00",
	})
	require.NoError(t, err)

	// Same time, no staff chosen: accepted as "to be assigned".
	b, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Jordan", ClientPhone: "555-0202",
		ServiceID: 1, Date: "2026-03-03", Time: "10:00",
	})
	require.NoError(t, err)
	assert.Nil(t, b.StaffID)
	assert.Len(t, repo.bookings, 2)
}

func TestCreateBooking_ReusesClientByPhone(t *testing.T) {
	uc, repo, _ := newCreateFixture(t)
	ctx := context.Background()

	first, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-03", Time: "10:00",
	})
	require.NoError(t, err)

	second, err := uc.Execute(ctx, CreateBookingInput{
		ClientName: "Taylor", ClientPhone: "555-0101",
		ServiceID: 1, StaffID: staffID(1), Date: "2026-03-04", Time: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ClientID, second.ClientID)
	assert.Len(t, repo.clients, 1)
}
