package get_availability

import (
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	// Переопределение окна допустимо только целиком: обе границы или ни одной
	if (req.VisibleFrom == nil) != (req.VisibleTo == nil) {
		return fmt.Errorf("%w: visible hours override requires both start and end", ErrInvalidWindow)
	}

	return nil
}

// validateWindow проверяет, что окно видимых часов корректно (начало раньше конца)
func validateWindow(from, to types.TimeString) error {
	if _, err := from.Minutes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if _, err := to.Minutes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if !from.IsBefore(to) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow, from, to)
	}
	return nil
}

// validateSlotDuration проверяет допустимость длительности слота
func validateSlotDuration(minutes int) error {
	if minutes < domain.MinSlotDurationMinutes || minutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidSlotDuration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	return nil
}
