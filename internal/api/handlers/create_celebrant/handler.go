package create_celebrant

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
	msgNameRequired       = "nome do celebrante é obrigatório"
	msgInvalidType        = "tipo inválido, esperado PADRE ou DIACONO"
	msgDuplicateName      = "já existe um celebrante com este nome"
)

// CreateCelebrantRequest HTTP request model
type CreateCelebrantRequest struct {
	FullName string  `json:"fullName"`
	Type     string  `json:"type"` // PADRE | DIACONO
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// CelebrantResponse HTTP response model
type CelebrantResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Type     string  `json:"type"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
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

// Handle POST /api/v1/celebrants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCelebrantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /celebrants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	celebrant, err := h.service.CreateCelebrant(r.Context(), &domain.Celebrant{
		FullName: req.FullName,
		Type:     domain.CelebrantType(req.Type),
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrEmptyName):
			h.logger.Warn("POST /celebrants - Empty name")
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, resources.ErrInvalidType):
			h.logger.Warn("POST /celebrants - Invalid type: %q", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, resourceRepo.ErrDuplicateName):
			h.logger.Warn("POST /celebrants - Duplicate name: %q", req.FullName)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		default:
			h.logger.Error("POST /celebrants - Failed to create celebrant: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /celebrants - Celebrant created: celebrant_id=%d", celebrant.ID)
	handlers.RespondJSON(w, http.StatusCreated, CelebrantResponse{
		ID:       celebrant.ID,
		FullName: celebrant.FullName,
		Type:     string(celebrant.Type),
		Phone:    celebrant.Phone,
		Email:    celebrant.Email,
	})
}
