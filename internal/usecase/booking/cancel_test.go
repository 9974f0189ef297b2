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
)

func newCancelFixture(t *testing.T) (*CancelBooking, *fakeRepo, *capturePublisher) {
	t.Helper()

	repo := newFakeRepo()

	pub := newCapturePublisher()
	dispatcher := notify.NewDispatcher(pub, zerolog.Nop())
	t.Cleanup(dispatcher.Close)

	uc := NewCancelBooking(repo, dispatcher, domain.DefaultCancelCutoff, "UTC")
	uc.now = func() time.Time { return fixedNow }

	return uc, repo, pub
}

func seedBooking(repo *fakeRepo, start time.Time, status domain.Status) *models.Booking {
	b := &models.Booking{
		Reference: "ref-1",
		Client:    models.Client{Name: "Taylor", Email: "taylor@example.com"},
		Service:   models.Service{Name: "Haircut", DurationMin: 60},
		StartTime: start,
		EndTime:   start.Add(60 * time.Minute),
		Status:    string(status),
	}
	_ = repo.CreateBooking(context.Background(), b)
	return b
}

func TestCancelBooking_Success(t *testing.T) {
	uc, repo, pub := newCancelFixture(t)
	seeded := seedBooking(repo, fixedNow.Add(24*time.Hour), domain.StatusConfirmed)

	b, err := uc.Execute(context.Background(), seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.True(t, b.CancelledAt.Equal(fixedNow))

	// Record survives cancellation for reporting.
	kept, err := repo.GetBooking(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), kept.Status)

	ev := pub.next(t)
	assert.Equal(t, notify.EventBookingCancelled, ev.Type)
	assert.Equal(t, "ref-1", ev.BookingRef)
}

func TestCancelBooking_CutoffBoundary(t *testing.T) {
	uc, repo, _ := newCancelFixture(t)
	ctx := context.Background()

	allowed := seedBooking(repo, fixedNow.Add(120*time.Minute+time.Second), domain.StatusConfirmed)
	refused := seedBooking(repo, fixedNow.Add(120*time.Minute-time.Second), domain.StatusConfirmed)

	_, err := uc.Execute(ctx, allowed.ID)
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, refused.ID)
	assert.True(t, httperr.IsBusiness(err, "cancel_cutoff"), "got %v", err)

	kept, _ := repo.GetBooking(ctx, refused.ID)
	assert.Equal(t, string(domain.StatusConfirmed), kept.Status, "refused booking must stay confirmed")
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	uc, repo, _ := newCancelFixture(t)
	seeded := seedBooking(repo, fixedNow.Add(24*time.Hour), domain.StatusCancelled)

	_, err := uc.Execute(context.Background(), seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"), "got %v", err)
}

func TestCancelBooking_NotFound(t *testing.T) {
	uc, _, _ := newCancelFixture(t)

	_, err := uc.Execute(context.Background(), 404)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"), "got %v", err)
}
