package cancel_visit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/REM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/REM-AvailabilityService/internal/service/visits"
	"github.com/m04kA/REM-AvailabilityService/internal/service/visits/models"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgInvalidBody    = "некорректное тело запроса"
	msgNotFound       = "визит не найден"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgCannotCancel   = "визит не может быть отменен"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/visits/{visitId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем visitId из URL
	vars := mux.Vars(r)
	visitIDStr := vars["visitId"]

	visitID, err := strconv.ParseInt(visitIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /visits/{id}/cancel - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /visits/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим тело запроса (причина отмены опциональна)
	var body CancelVisitRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Warn("PATCH /visits/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)
			return
		}
	}

	req := &models.CancelVisitRequest{
		UserID:             userID,
		CancellationReason: body.CancellationReason,
	}

	if err := h.service.Cancel(r.Context(), visitID, req); err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("PATCH /visits/{id}/cancel - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, visits.ErrAccessDenied):
			h.logger.Warn("PATCH /visits/{id}/cancel - Access denied: visit_id=%d, user_id=%d",
				visitID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, visits.ErrCannotCancel):
			h.logger.Warn("PATCH /visits/{id}/cancel - Cannot cancel: visit_id=%d", visitID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("PATCH /visits/{id}/cancel - Invalid input: visit_id=%d", visitID)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PATCH /visits/{id}/cancel - Failed to cancel visit: visit_id=%d, error=%v",
				visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /visits/{id}/cancel - Visit cancelled: visit_id=%d, user_id=%d",
		visitID, userID)
	w.WriteHeader(http.StatusNoContent)
}
