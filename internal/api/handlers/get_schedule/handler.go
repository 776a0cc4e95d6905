package get_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
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

// Handle GET /api/v1/properties/{propertyId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/schedule - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Расписание есть всегда: либо настроенное, либо дефолтное
	result, err := h.service.GetByProperty(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("GET /properties/{id}/schedule - Failed to get schedule: property_id=%d, error=%v",
			propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties/{id}/schedule - Schedule retrieved: property_id=%d", propertyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
