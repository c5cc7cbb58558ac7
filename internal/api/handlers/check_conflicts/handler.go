package check_conflicts

import (
	"errors"
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	checkConflicts "github.com/jaysonsaraujo/phm-app/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidRequest     = "dados obrigatórios ausentes ou inválidos"
)

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidRequest):
			h.logger.Warn("POST /bookings/check-conflicts - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings/check-conflicts - Failed to check conflicts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
