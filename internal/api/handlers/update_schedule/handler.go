package update_schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	scheduleService "github.com/m04kA/REM-AvailabilityService/internal/service/schedule"
	"github.com/m04kA/REM-AvailabilityService/internal/service/schedule/models"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidSchedule   = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/properties/{propertyId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /properties/{id}/schedule - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /properties/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PUT /properties/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req := &models.UpdateScheduleRequest{
		UserID:              userID,
		VisibleFrom:         body.VisibleFrom,
		VisibleTo:           body.VisibleTo,
		SlotDurationMinutes: body.SlotDurationMinutes,
		GoogleCalendarID:    body.GoogleCalendarID,
		ICSFeedURL:          body.ICSFeedURL,
	}

	result, err := h.service.Update(r.Context(), propertyID, req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /properties/{id}/schedule - Invalid schedule: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /properties/{id}/schedule - Failed to update schedule: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /properties/{id}/schedule - Schedule updated: property_id=%d, user_id=%d",
		propertyID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
