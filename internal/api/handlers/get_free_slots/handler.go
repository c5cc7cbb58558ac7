package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	getFreeSlots "github.com/jaysonsaraujo/phm-app/internal/usecase/get_free_slots"
)

const (
	msgInvalidResourceID = "identificador de recurso inválido"
	msgInvalidRequest    = "parâmetros de consulta inválidos"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceType}/{resourceId}/free-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/.../free-slots - Invalid resource id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		Date:       r.URL.Query().Get("date"),
		Resource:   vars["resourceType"],
		ResourceID: resourceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidRequest):
			h.logger.Warn("GET /resources/.../free-slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /resources/.../free-slots - Failed to enumerate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
