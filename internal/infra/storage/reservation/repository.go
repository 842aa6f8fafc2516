package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-NailStudio/pkg/psqlbuilder"
)

// Колонки записи вместе с данными услуги (LEFT JOIN: услуга могла быть удалена)
var reservationColumns = []string{
	"r.id",
	"r.customer_name",
	"r.customer_email",
	"r.customer_phone",
	"r.service_id",
	"r.appointment_date",
	"r.appointment_time",
	"r.status",
	"r.notes",
	"r.total_price",
	"COALESCE(s.name, '')",
	"s.duration_minutes",
	"r.created_at",
	"r.updated_at",
}

const reservationsFrom = "reservations r LEFT JOIN services s ON s.id = r.service_id"

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Вызывается из транзакции create_reservation, после проверки свободного слота.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"service_id",
			"appointment_date",
			"appointment_time",
			"status",
			"notes",
			"total_price",
		).
		Values(
			reservation.CustomerName,
			reservation.CustomerEmail,
			reservation.CustomerPhone,
			reservation.ServiceID,
			reservation.AppointmentDate,
			reservation.AppointmentTime,
			reservation.Status,
			reservation.Notes,
			reservation.TotalPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(reservationsFrom).
		Where(squirrel.Eq{"r.id": id})

	// Внутри транзакции блокируем строку записи для смены статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает записи по фильтру админки
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetActiveForDate получает активные (pending, confirmed) записи на дату с длительностью услуги.
// Внутри транзакции строки блокируются (FOR UPDATE OF r), чтобы параллельные
// записи на тот же день выполнялись последовательно.
func (r *Repository) GetActiveForDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveForDateQuery(date, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make([]domain.BookedSlot, 0)
	for rows.Next() {
		var (
			slot     domain.BookedSlot
			duration sql.NullInt64
		)
		if err := rows.Scan(&slot.AppointmentTime, &slot.Status, &duration); err != nil {
			return nil, fmt.Errorf("%w: GetActiveForDate - scan row: %w", ErrScanRow, err)
		}
		if duration.Valid {
			d := int(duration.Int64)
			slot.ServiceDuration = &d
		}
		booked = append(booked, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - rows error: %w", ErrScanRow, err)
	}

	return booked, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CountByService количество записей, ссылающихся на услугу (любой статус)
func (r *Repository) CountByService(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	return r.count(ctx, "CountByService",
		psqlbuilder.Select("COUNT(*)").
			From("reservations").
			Where(squirrel.Eq{"service_id": serviceID}))
}

// CountPendingFrom количество pending записей начиная с даты
func (r *Repository) CountPendingFrom(ctx context.Context, from time.Time) (int64, error) {
	return r.count(ctx, "CountPendingFrom",
		psqlbuilder.Select("COUNT(*)").
			From("reservations").
			Where(squirrel.Eq{"status": domain.StatusPending}).
			Where(squirrel.GtOrEq{"appointment_date": from}))
}

// CountUniqueCustomers количество клиентов по email без учёта регистра
func (r *Repository) CountUniqueCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, "CountUniqueCustomers",
		psqlbuilder.Select("COUNT(DISTINCT LOWER(TRIM(customer_email)))").
			From("reservations").
			Where("customer_email <> ''"))
}

// SumCompletedRevenue сумма total_price выполненных записей в [from, to)
func (r *Repository) SumCompletedRevenue(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, "SumCompletedRevenue",
		psqlbuilder.Select("COALESCE(SUM(total_price), 0)").
			From("reservations").
			Where(squirrel.Eq{"status": domain.StatusCompleted}).
			Where(squirrel.GtOrEq{"appointment_date": from}).
			Where(squirrel.Lt{"appointment_date": to}))
}

func (r *Repository) count(ctx context.Context, op string, builder squirrel.SelectBuilder) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var n int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
	}

	return n, nil
}

func buildListQuery(filter domain.ReservationFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(reservationsFrom)

	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.appointment_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.appointment_date": *filter.DateTo})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": *filter.Status})
	}
	if filter.CustomerEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"LOWER(r.customer_email)": domain.NormalizeEmail(*filter.CustomerEmail)})
	}
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.service_id": *filter.ServiceID})
	}

	selectBuilder = selectBuilder.OrderBy("r.appointment_date DESC", "r.appointment_time ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	return selectBuilder
}

func buildActiveForDateQuery(date time.Time, lock bool) squirrel.SelectBuilder {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("r.appointment_time", "r.status", "s.duration_minutes").
		From(reservationsFrom).
		Where(squirrel.Eq{"r.appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"r.status": statuses}).
		OrderBy("r.appointment_time ASC")

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	return selectBuilder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation          domain.Reservation
		duration             sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.CustomerName,
		&reservation.CustomerEmail,
		&reservation.CustomerPhone,
		&reservation.ServiceID,
		&reservation.AppointmentDate,
		&reservation.AppointmentTime,
		&reservation.Status,
		&reservation.Notes,
		&reservation.TotalPrice,
		&reservation.ServiceName,
		&duration,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		d := int(duration.Int64)
		reservation.ServiceDuration = &d
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс записей
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}
