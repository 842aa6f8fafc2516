package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	reservationRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-NailStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
	"github.com/m04kA/SMC-NailStudio/pkg/ptr"
)

var today = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return today }

type fakeRepo struct {
	items     map[uuid.UUID]*domain.Reservation
	filter    domain.ReservationFilter
	updateErr error
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.filter = filter
	var out []*domain.Reservation
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.items[id].Status = status
	return nil
}

type fakeCache struct {
	dates []time.Time
}

func (f *fakeCache) Invalidate(_ context.Context, date time.Time) error {
	f.dates = append(f.dates, date)
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(items ...*domain.Reservation) (*Service, *fakeRepo, *fakeCache) {
	repo := &fakeRepo{items: map[uuid.UUID]*domain.Reservation{}}
	for _, r := range items {
		repo.items[r.ID] = r
	}
	cache := &fakeCache{}
	return NewService(repo, cache, fakeTx{}, fixedTime{}, logger.NewNop()), repo, cache
}

func reservationOn(date time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              uuid.New(),
		CustomerName:    "Lucía",
		CustomerEmail:   "lucia@example.com",
		AppointmentDate: date,
		AppointmentTime: "10:00",
		Status:          status,
		ServiceDuration: ptr.Ptr(60),
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    domain.ReservationStatus
		to      string
		wantErr error
	}{
		{from: domain.StatusPending, to: "confirmed"},
		{from: domain.StatusPending, to: "cancelled"},
		{from: domain.StatusConfirmed, to: "completed"},
		{from: domain.StatusConfirmed, to: "cancelled"},
		{from: domain.StatusConfirmed, to: "pending", wantErr: ErrInvalidTransition},
		{from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{from: domain.StatusCompleted, to: "cancelled", wantErr: ErrInvalidTransition},
		{from: domain.StatusPending, to: "archived", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.to, func(t *testing.T) {
			r := reservationOn(today.AddDate(0, 0, 3), tt.from)
			svc, repo, cache := newService(r)

			resp, err := svc.UpdateStatus(context.Background(), r.ID, &models.UpdateStatusRequest{Status: tt.to})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.items[r.ID].Status)
				assert.Empty(t, cache.dates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.ReservationStatus(tt.to), repo.items[r.ID].Status)
			assert.Equal(t, []time.Time{r.AppointmentDate}, cache.dates)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_RepositoryError(t *testing.T) {
	r := reservationOn(today, domain.StatusPending)
	svc, repo, _ := newService(r)
	repo.updateErr = errors.New("connection refused")

	_, err := svc.UpdateStatus(context.Background(), r.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID_EffectiveStatus(t *testing.T) {
	past := reservationOn(today.AddDate(0, 0, -1), domain.StatusConfirmed)
	future := reservationOn(today.AddDate(0, 0, 1), domain.StatusPending)
	svc, _, _ := newService(past, future)

	resp, err := svc.GetByID(context.Background(), past.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "completed", resp.EffectiveStatus)

	resp, err = svc.GetByID(context.Background(), future.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.EffectiveStatus)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_Filter(t *testing.T) {
	svc, repo, _ := newService(reservationOn(today, domain.StatusPending))

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Status: ptr.Ptr("pending"),
		Limit:  1000,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
	require.NotNil(t, repo.filter.Status)
	assert.Equal(t, domain.StatusPending, *repo.filter.Status)
	assert.Equal(t, models.MaxListLimit, repo.filter.Limit)

	_, err = svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("unknown")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	from, to := today, today.AddDate(0, 0, -1)
	_, err = svc.List(context.Background(), &models.ListReservationsRequest{DateFrom: &from, DateTo: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
