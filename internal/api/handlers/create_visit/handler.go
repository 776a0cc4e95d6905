package create_visit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	createVisit "github.com/m04kA/REM-AvailabilityService/internal/usecase/create_visit"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidDate       = "некорректная дата визита"
	msgSlotOutsideWindow = "слот вне видимых часов объекта"
	msgSlotAlreadyBooked = "слот уже занят"
)

type Handler struct {
	useCase CreateVisitUseCase
	logger  Logger
}

func NewHandler(useCase CreateVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /visits - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим тело запроса
	var req CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /visits - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createVisit.ErrInvalidInput),
			errors.Is(err, createVisit.ErrInvalidDate):
			h.logger.Warn("POST /visits - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createVisit.ErrSlotOutsideVisibleHours):
			h.logger.Warn("POST /visits - Slot outside visible hours: user_id=%d, property_id=%d",
				userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgSlotOutsideWindow)

		case errors.Is(err, createVisit.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /visits - Slot already booked: user_id=%d, property_id=%d, time=%s",
				userID, req.PropertyID, req.StartTime)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("POST /visits - Failed to create visit: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visits - Visit created: visit_id=%d, user_id=%d, property_id=%d",
		result.Visit.ID, userID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
