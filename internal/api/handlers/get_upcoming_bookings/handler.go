package get_upcoming_bookings

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	LocationName  string `json:"locationName"`
	CelebrantName string `json:"celebrantName"`
	Couple        string `json:"couple"`
}

// UpcomingBookingsResponse HTTP response model
type UpcomingBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Handle GET /api/v1/bookings/upcoming?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultLimit)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err == nil && parsed > 0 && parsed <= maxLimit {
			limit = parsed
		}
	}

	bookings, err := h.service.Upcoming(r.Context(), time.Now(), limit)
	if err != nil {
		h.logger.Error("GET /bookings/upcoming - Failed to get upcoming bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := UpcomingBookingsResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		response.Bookings = append(response.Bookings, BookingResponse{
			ID:            b.ID,
			Date:          b.WeddingDate.Format(domain.DateFormat),
			Time:          b.StartTime.String(),
			LocationName:  b.LocationName,
			CelebrantName: b.CelebrantName,
			Couple:        b.CoupleLabel(),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
