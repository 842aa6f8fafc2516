package dashboard

import (
	"context"
	"time"
)

// ReservationStats агрегаты по записям
type ReservationStats interface {
	CountPendingFrom(ctx context.Context, from time.Time) (int64, error)
	CountUniqueCustomers(ctx context.Context) (int64, error)
	SumCompletedRevenue(ctx context.Context, from, to time.Time) (int64, error)
}

// ServiceStats агрегаты по каталогу
type ServiceStats interface {
	CountActive(ctx context.Context) (int64, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
