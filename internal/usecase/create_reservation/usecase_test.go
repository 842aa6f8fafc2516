package create_reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	reservationRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/reservation"
	serviceRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/service"
	"github.com/m04kA/SMC-NailStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
	"github.com/m04kA/SMC-NailStudio/pkg/ptr"
	"github.com/m04kA/SMC-NailStudio/pkg/txmanager"
	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

// 2025-06-14 суббота
var saturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeReservations struct {
	booked  []domain.BookedSlot
	created []*domain.Reservation
	err       error
	createErr error
	sawTx     bool
}

func (f *fakeReservations) GetActiveForDate(ctx context.Context, _ time.Time) ([]domain.BookedSlot, error) {
	f.sawTx = ctx.Value(txKey{}) != nil
	return f.booked, f.err
}

func (f *fakeReservations) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.created = append(f.created, r)
	return r, nil
}

type fakeWorkingHours struct {
	days []*domain.WorkingDay
}

func (f *fakeWorkingHours) GetAll(context.Context) ([]*domain.WorkingDay, error) {
	return f.days, nil
}

type fakeServices struct {
	services map[uuid.UUID]*domain.Service
}

func (f *fakeServices) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeCache struct {
	invalidated []time.Time
}

func (f *fakeCache) Invalidate(_ context.Context, date time.Time) error {
	f.invalidated = append(f.invalidated, date)
	return nil
}

type txKey struct{}

type fakeTxManager struct {
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		return err
	}
	return f.commitErr
}

type fixture struct {
	reservations *fakeReservations
	hours        *fakeWorkingHours
	cache        *fakeCache
	tx           *fakeTxManager
	service      *domain.Service
	uc           *UseCase
}

func newFixture(now time.Time) *fixture {
	service := &domain.Service{
		ID:              uuid.New(),
		Name:            "Esculpidas",
		DurationMinutes: 120,
		Price:           2500000,
		IsActive:        true,
	}
	f := &fixture{
		reservations: &fakeReservations{},
		hours:        &fakeWorkingHours{},
		cache:        &fakeCache{},
		tx:           &fakeTxManager{},
		service:      service,
	}
	services := &fakeServices{services: map[uuid.UUID]*domain.Service{service.ID: service}}
	f.uc = NewUseCase(f.reservations, f.hours, services, f.cache, f.tx, fixedTime{now: now}, logger.NewNop())
	return f
}

func (f *fixture) request(start string) *Request {
	return &Request{
		CustomerName:  "Lucía Pérez",
		CustomerEmail: "lucia@example.com",
		CustomerPhone: "+54 11 5555 5555",
		ServiceID:     f.service.ID,
		Date:          saturday,
		StartTime:     types.TimeString(start),
		Notes:         ptr.Ptr("francesitas"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -3))

	resp, err := f.uc.Execute(context.Background(), f.request("10:00"))
	require.NoError(t, err)

	require.Len(t, f.reservations.created, 1)
	created := f.reservations.created[0]
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, int64(2500000), created.TotalPrice)
	assert.Equal(t, "Esculpidas", resp.ServiceName)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, f.reservations.sawTx, "reservations must be read inside the transaction")
	assert.Equal(t, []time.Time{saturday}, f.cache.invalidated)
}

func TestExecute_SlotTaken(t *testing.T) {
	tests := []struct {
		name   string
		booked []domain.BookedSlot
		start  string
	}{
		{
			name:   "start occupied",
			booked: []domain.BookedSlot{{AppointmentTime: "10:00", Status: domain.StatusConfirmed, ServiceDuration: ptr.Ptr(60)}},
			start:  "10:00",
		},
		{
			name:   "second hour occupied",
			booked: []domain.BookedSlot{{AppointmentTime: "11:00", Status: domain.StatusPending, ServiceDuration: ptr.Ptr(60)}},
			start:  "10:00",
		},
		{
			name:  "runs past closing",
			start: "17:00",
		},
		{
			name:  "off grid",
			start: "10:30",
		},
		{
			name:  "outside working window",
			start: "19:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(saturday.AddDate(0, 0, -1))
			f.reservations.booked = tt.booked

			_, err := f.uc.Execute(context.Background(), f.request(tt.start))

			assert.ErrorIs(t, err, ErrSlotNotAvailable)
			assert.Empty(t, f.reservations.created)
			assert.Empty(t, f.cache.invalidated)
		})
	}
}

func TestExecute_SerializationConflict(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -1))
	f.tx.commitErr = fmt.Errorf("%w: commit: could not serialize access", txmanager.ErrSerialization)

	_, err := f.uc.Execute(context.Background(), f.request("10:00"))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

type sqlTx struct {
	dbmetrics.DBExecutor
	rolledBack bool
}

func (t *sqlTx) Commit() error   { return nil }
func (t *sqlTx) Rollback() error { t.rolledBack = true; return nil }

type sqlBeginner struct{ tx *sqlTx }

func (b *sqlBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.tx, nil
}

func TestExecute_SerializationConflictOnInsert(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -1))
	f.reservations.createErr = fmt.Errorf("%w: Create - execute insert: %w",
		reservationRepo.ErrExecQuery, &pq.Error{Code: "40001"})

	beginner := &sqlBeginner{tx: &sqlTx{}}
	services := &fakeServices{services: map[uuid.UUID]*domain.Service{f.service.ID: f.service}}
	uc := NewUseCase(f.reservations, f.hours, services, f.cache,
		txmanager.NewTransactionManager(beginner), fixedTime{now: saturday.AddDate(0, 0, -1)}, logger.NewNop())

	_, err := uc.Execute(context.Background(), f.request("10:00"))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.True(t, beginner.tx.rolledBack)
	assert.Empty(t, f.cache.invalidated)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -1))
	f.hours.days = []*domain.WorkingDay{{DayOfWeek: domain.Saturday, IsWorking: false}}

	_, err := f.uc.Execute(context.Background(), f.request("10:00"))
	assert.ErrorIs(t, err, ErrSalonClosed)

	sunday := f.request("10:00")
	sunday.Date = saturday.AddDate(0, 0, 1)
	_, err = f.uc.Execute(context.Background(), sunday)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, 2))
	_, err := f.uc.Execute(context.Background(), f.request("10:00"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	sameDay := newFixture(saturday.Add(11 * time.Hour))
	_, err = sameDay.uc.Execute(context.Background(), sameDay.request("10:00"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = sameDay.uc.Execute(context.Background(), sameDay.request("14:00"))
	assert.NoError(t, err)
}

func TestExecute_ServiceChecks(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -1))

	unknown := f.request("10:00")
	unknown.ServiceID = uuid.New()
	_, err := f.uc.Execute(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	f.service.IsActive = false
	_, err = f.uc.Execute(context.Background(), f.request("10:00"))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StorageFailure(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -1))
	f.reservations.err = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), f.request("10:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(saturday.AddDate(0, 0, -1))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.CustomerName = "  " }},
		{name: "bad email", mutate: func(r *Request) { r.CustomerEmail = "lucia" }},
		{name: "short phone", mutate: func(r *Request) { r.CustomerPhone = "123" }},
		{name: "no service", mutate: func(r *Request) { r.ServiceID = uuid.Nil }},
		{name: "no date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "bad time", mutate: func(r *Request) { r.StartTime = "25:00" }},
		{name: "long notes", mutate: func(r *Request) { r.Notes = ptr.Ptr(string(make([]byte, 501))) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("10:00")
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
