package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-NailStudio/pkg/psqlbuilder"
	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

var workingDayColumns = []string{
	"day_of_week",
	"is_working",
	"start_time",
	"end_time",
	"updated_at",
}

// Repository репозиторий недельного расписания салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все настроенные дни, по порядку недели
func (r *Repository) GetAll(ctx context.Context) ([]*domain.WorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingDayColumns...).
		From("working_hours").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.WorkingDay, 0, len(domain.AllWeekdays))
	for rows.Next() {
		day, err := scanWorkingDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return days, nil
}

// GetByDay получает настройку одного дня
func (r *Repository) GetByDay(ctx context.Context, day domain.Weekday) (*domain.WorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingDayColumns...).
		From("working_hours").
		Where(squirrel.Eq{"day_of_week": int(day)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	wd, err := scanWorkingDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan row: %w", ErrScanRow, err)
	}

	return wd, nil
}

// Upsert создает или обновляет настройку дня.
// Выходной хранится явной строкой is_working=false, а не удалением строки.
func (r *Repository) Upsert(ctx context.Context, day *domain.WorkingDay) (*domain.WorkingDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertQuery(day).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	day.UpdatedAt = updatedAt.Time
	return day, nil
}

func buildUpsertQuery(day *domain.WorkingDay) squirrel.InsertBuilder {
	return psqlbuilder.Insert("working_hours").
		Columns("day_of_week", "day_name", "is_working", "start_time", "end_time").
		Values(int(day.DayOfWeek), day.DayOfWeek.Name(), day.IsWorking, nullableTime(day.StartTime), nullableTime(day.EndTime)).
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET " +
			"is_working = EXCLUDED.is_working, " +
			"start_time = EXCLUDED.start_time, " +
			"end_time = EXCLUDED.end_time, " +
			"updated_at = NOW() " +
			"RETURNING updated_at")
}

func nullableTime(t *types.TimeString) interface{} {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingDay(row rowScanner) (*domain.WorkingDay, error) {
	var (
		day        domain.WorkingDay
		dayOfWeek  int
		start, end types.TimeString
		updatedAt  sql.NullTime
	)

	if err := row.Scan(&dayOfWeek, &day.IsWorking, &start, &end, &updatedAt); err != nil {
		return nil, err
	}

	day.DayOfWeek = domain.Weekday(dayOfWeek)
	if !start.IsZero() {
		day.StartTime = &start
	}
	if !end.IsZero() {
		day.EndTime = &end
	}
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}
