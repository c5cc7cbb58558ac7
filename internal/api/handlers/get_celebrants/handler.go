package get_celebrants

import (
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
)

// CelebrantResponse HTTP response model
type CelebrantResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Type     string  `json:"type"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// CelebrantsResponse HTTP response model
type CelebrantsResponse struct {
	Celebrants []CelebrantResponse `json:"celebrants"`
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

// Handle GET /api/v1/celebrants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	celebrants, err := h.service.ListCelebrants(r.Context())
	if err != nil {
		h.logger.Error("GET /celebrants - Failed to list celebrants: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := CelebrantsResponse{Celebrants: make([]CelebrantResponse, 0, len(celebrants))}
	for _, c := range celebrants {
		response.Celebrants = append(response.Celebrants, CelebrantResponse{
			ID:       c.ID,
			FullName: c.FullName,
			Type:     string(c.Type),
			Phone:    c.Phone,
			Email:    c.Email,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
