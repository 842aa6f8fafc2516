package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задает один день, dateFrom/dateTo - период.
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.DateFrom, req.DateTo = &date, &date
	}

	if fromStr := query.Get("dateFrom"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid dateFrom: %w", err)
		}
		req.DateFrom = &from
	}

	if toStr := query.Get("dateTo"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid dateTo: %w", err)
		}
		req.DateTo = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if email := query.Get("email"); email != "" {
		req.CustomerEmail = &email
	}

	if serviceIDStr := query.Get("serviceId"); serviceIDStr != "" {
		serviceID, err := uuid.Parse(serviceIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid serviceId: %w", err)
		}
		req.ServiceID = &serviceID
	}

	var err error
	if req.Limit, err = parseOptionalInt(query.Get("limit")); err != nil {
		return nil, fmt.Errorf("invalid limit: %w", err)
	}
	if req.Offset, err = parseOptionalInt(query.Get("offset")); err != nil {
		return nil, fmt.Errorf("invalid offset: %w", err)
	}

	return req, nil
}

func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
