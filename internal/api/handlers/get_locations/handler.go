package get_locations

import (
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
)

// LocationResponse HTTP response model
type LocationResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// LocationsResponse HTTP response model
type LocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
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

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.ListLocations(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := LocationsResponse{Locations: make([]LocationResponse, 0, len(locations))}
	for _, l := range locations {
		response.Locations = append(response.Locations, LocationResponse{
			ID:       l.ID,
			Name:     l.Name,
			Address:  l.Address,
			Capacity: l.Capacity,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
