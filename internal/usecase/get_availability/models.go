package get_availability

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Request модель запроса на расчёт доступности
type Request struct {
	PropertyID int64     // ID объекта недвижимости
	Date       time.Time // Дата расчёта (без времени)

	// Опциональные переопределения расписания объекта
	VisibleFrom         *types.TimeString // Начало видимых часов (HH:MM)
	VisibleTo           *types.TimeString // Конец видимых часов (HH:MM)
	SlotDurationMinutes *int              // Длительность слота в минутах
}

// Response модель ответа с календарем доступности на день
type Response struct {
	PropertyID int64
	Date       time.Time
	Slots      []domain.AvailabilitySlot
}
