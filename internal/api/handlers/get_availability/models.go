package get_availability

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

var (
	// errBadDateParam возвращается при некорректном параметре date
	errBadDateParam = errors.New("bad date param")

	// errBadTimeParam возвращается при некорректном параметре start или end
	errBadTimeParam = errors.New("bad time param")

	// errBadDurationParam возвращается при некорректном параметре slotDuration
	errBadDurationParam = errors.New("bad slot duration param")
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID int64  `json:"propertyId"`
	Date       string `json:"date"`
	Slots      []Slot `json:"slots"`
}

// Slot модель слота доступности
// start/end - абсолютные моменты времени в ISO 8601
type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
	Source    string `json:"source,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Start:     s.Start.Format(time.RFC3339),
			End:       s.End.Format(time.RFC3339),
			Available: s.Available,
			Reason:    string(s.Reason),
			Source:    string(s.Source),
		}
	}

	return &AvailabilityResponse{
		PropertyID: resp.PropertyID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
// startStr/endStr/durationStr - опциональные query параметры, пустая строка = не задан
func ToUseCaseRequest(propertyID int64, dateStr, startStr, endStr, durationStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadDateParam, err)
	}

	req := &getAvailability.Request{
		PropertyID: propertyID,
		Date:       date,
	}

	if startStr != "" {
		from, err := types.NewTimeStringFromString(startStr)
		if err != nil {
			return nil, fmt.Errorf("%w: start: %v", errBadTimeParam, err)
		}
		req.VisibleFrom = &from
	}
	if endStr != "" {
		to, err := types.NewTimeStringFromString(endStr)
		if err != nil {
			return nil, fmt.Errorf("%w: end: %v", errBadTimeParam, err)
		}
		req.VisibleTo = &to
	}
	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadDurationParam, err)
		}
		req.SlotDurationMinutes = &duration
	}

	return req, nil
}
