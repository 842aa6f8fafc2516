package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeReservations struct {
	pendingFrom            time.Time
	revenueFrom, revenueTo time.Time
	err                    error
}

func (f *fakeReservations) CountPendingFrom(_ context.Context, from time.Time) (int64, error) {
	f.pendingFrom = from
	return 4, f.err
}

func (f *fakeReservations) CountUniqueCustomers(context.Context) (int64, error) {
	return 17, nil
}

func (f *fakeReservations) SumCompletedRevenue(_ context.Context, from, to time.Time) (int64, error) {
	f.revenueFrom, f.revenueTo = from, to
	return 9600000, nil
}

type fakeServices struct{}

func (fakeServices) CountActive(context.Context) (int64, error) { return 6, nil }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestGetStats(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)
	reservations := &fakeReservations{}
	svc := NewService(reservations, fakeServices{}, fixedTime{now: now}, logger.NewNop())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.PendingReservations)
	assert.Equal(t, int64(6), stats.ActiveServices)
	assert.Equal(t, int64(17), stats.UniqueCustomers)
	assert.Equal(t, int64(9600000), stats.MonthlyRevenue)

	assert.Equal(t, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), reservations.pendingFrom)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), reservations.revenueFrom)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), reservations.revenueTo)
}

func TestGetStats_Error(t *testing.T) {
	svc := NewService(&fakeReservations{err: errors.New("boom")}, fakeServices{}, fixedTime{now: time.Now()}, logger.NewNop())

	_, err := svc.GetStats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
