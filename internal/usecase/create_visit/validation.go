package create_visit

import (
	"fmt"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if _, err := req.StartTime.Minutes(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateNotInPast проверяет, что дата визита не в прошлом
func validateDateNotInPast(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	return nil
}

// validateSlotInSchedule проверяет, что запрошенное время попадает в сетку
// слотов видимых часов: начало не раньше открытия, конец не позже закрытия,
// смещение от начала окна кратно длительности слота
func validateSlotInSchedule(startTime types.TimeString, sched *domain.PropertySchedule) error {
	start, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	from, err := sched.VisibleFrom.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	to, err := sched.VisibleTo.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if start < from || start+sched.SlotDurationMinutes > to {
		return fmt.Errorf("%w: %s is outside window %s-%s",
			ErrSlotOutsideVisibleHours, startTime, sched.VisibleFrom, sched.VisibleTo)
	}

	if (start-from)%sched.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the %d-minute slot grid",
			ErrSlotOutsideVisibleHours, startTime, sched.SlotDurationMinutes)
	}

	return nil
}
