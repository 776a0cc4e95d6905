package create_visit

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Request модель запроса на запись на просмотр
type Request struct {
	UserID     int64            // ID пользователя
	PropertyID int64            // ID объекта недвижимости
	Date       time.Time        // Дата визита (без времени)
	StartTime  types.TimeString // Время начала слота (HH:MM)
	Notes      *string          // Комментарий пользователя (опционально)
}

// Response модель ответа с созданным визитом
type Response struct {
	Visit *domain.VisitBlock
}
