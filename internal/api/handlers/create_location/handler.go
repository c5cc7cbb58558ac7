package create_location

import (
	"errors"
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	resourceRepo "github.com/jaysonsaraujo/phm-app/internal/infra/storage/resource"
	"github.com/jaysonsaraujo/phm-app/internal/service/resources"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNameRequired       = "nome do local é obrigatório"
	msgDuplicateName      = "já existe um local com este nome"
)

// CreateLocationRequest HTTP request model
type CreateLocationRequest struct {
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// LocationResponse HTTP response model
type LocationResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	location, err := h.service.CreateLocation(r.Context(), &domain.Location{
		Name:     req.Name,
		Address:  req.Address,
		Capacity: req.Capacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrEmptyName):
			h.logger.Warn("POST /locations - Empty name")
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, resourceRepo.ErrDuplicateName):
			h.logger.Warn("POST /locations - Duplicate name: %q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		default:
			h.logger.Error("POST /locations - Failed to create location: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations - Location created: location_id=%d", location.ID)
	handlers.RespondJSON(w, http.StatusCreated, LocationResponse{
		ID:       location.ID,
		Name:     location.Name,
		Address:  location.Address,
		Capacity: location.Capacity,
	})
}
