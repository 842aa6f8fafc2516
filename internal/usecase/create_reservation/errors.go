package create_reservation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или скрыта
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrInvalidDate возвращается для даты или времени в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid appointment date")

	// ErrSalonClosed возвращается, когда салон не работает в этот день
	ErrSalonClosed = errors.New("create_reservation: salon is closed on this date")

	// ErrSlotNotAvailable возвращается, когда время занято или не попадает в сетку
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
