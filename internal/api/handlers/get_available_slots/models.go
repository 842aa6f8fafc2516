package get_available_slots

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-NailStudio/internal/usecase/get_available_slots"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidService  = errors.New("invalid serviceId")
	errInvalidDuration = errors.New("invalid durationMinutes")
)

// AvailableSlotsResponse ответ со слотами дня
type AvailableSlotsResponse struct {
	Date            string `json:"date"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	Slots           []Slot `json:"slots"`
}

// Slot часовой слот
type Slot struct {
	Time       string `json:"time"`
	IsOccupied bool   `json:"isOccupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:       slot.Time.String(),
			IsOccupied: slot.IsOccupied,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, serviceIDStr, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &getAvailableSlots.Request{Date: date}

	if serviceIDStr != "" {
		serviceID, err := uuid.Parse(serviceIDStr)
		if err != nil {
			return nil, errInvalidService
		}
		req.ServiceID = &serviceID
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			return nil, errInvalidDuration
		}
		req.DurationMinutes = &duration
	}

	return req, nil
}
