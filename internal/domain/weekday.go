package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWeekday возвращается для дней вне рабочей недели салона
var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday единственная нумерация дней недели в системе: понедельник = 0 ... суббота = 5.
// Воскресенье значения не имеет. Колонка working_hours.day_of_week и HTTP API
// используют эту же нумерацию.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday

	InvalidWeekday Weekday = -1
)

// AllWeekdays рабочая неделя салона по порядку
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayNames = map[Weekday]string{
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
}

// WeekdayFromDate переводит дату в нумерацию салона.
// Единственное место, где используется time.Weekday (воскресенье = 0).
func WeekdayFromDate(date time.Time) Weekday {
	if date.Weekday() == time.Sunday {
		return InvalidWeekday
	}
	return Weekday(date.Weekday() - 1)
}

// ParseWeekday проверяет число, пришедшее извне (БД, HTTP)
func ParseWeekday(v int) (Weekday, error) {
	d := Weekday(v)
	if !d.IsValid() {
		return InvalidWeekday, fmt.Errorf("%w: %d", ErrInvalidWeekday, v)
	}
	return d, nil
}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Saturday
}

// Name название дня для интерфейса
func (d Weekday) Name() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return ""
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return d.Name()
}
