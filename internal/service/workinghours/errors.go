package workinghours

import "errors"

var (
	// ErrInvalidDay возвращается для дня вне понедельника-субботы
	ErrInvalidDay = errors.New("invalid day of week")

	// ErrInvalidInput возвращается при некорректных часах работы
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
