package domain

import "time"

// DashboardStats сводка для админки
type DashboardStats struct {
	PendingReservations int64 // pending с сегодняшнего дня
	ActiveServices      int64
	UniqueCustomers     int64 // по нормализованному email
	MonthlyRevenue      int64 // completed за текущий месяц, в центах
	CalculatedAt        time.Time
}

// MonthBounds первый день месяца и первый день следующего
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
