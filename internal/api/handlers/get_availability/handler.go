package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgInvalidPropertyID   = "некорректный ID объекта"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidWindow       = "некорректное окно видимых часов"
	msgInvalidSlotDuration = "некорректная длительность слота"
	msgSourceNotConfigured = "внешний календарный источник не настроен"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability
// Query params: date (required, YYYY-MM-DD), start/end (optional, HH:MM),
// slotDuration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем propertyId из URL
	propertyIDStr := vars["propertyId"]
	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /properties/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(
		propertyID,
		dateStr,
		r.URL.Query().Get("start"),
		r.URL.Query().Get("end"),
		r.URL.Query().Get("slotDuration"),
	)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid query params: %v", err)
		switch {
		case errors.Is(err, errBadTimeParam):
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, errBadDurationParam):
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput),
			errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /properties/{id}/availability - Invalid input: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrInvalidWindow):
			h.logger.Warn("GET /properties/{id}/availability - Invalid window: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getAvailability.ErrInvalidSlotDuration):
			h.logger.Warn("GET /properties/{id}/availability - Invalid slot duration: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)

		case errors.Is(err, getAvailability.ErrSourceNotConfigured):
			h.logger.Error("GET /properties/{id}/availability - Source not configured: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSourceNotConfigured)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed to get availability: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /properties/{id}/availability - Availability retrieved: property_id=%d, date=%s, slots_count=%d",
		propertyID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
