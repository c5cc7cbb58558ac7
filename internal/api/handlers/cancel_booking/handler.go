package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	bookingRepo "github.com/jaysonsaraujo/phm-app/internal/infra/storage/booking"
	"github.com/jaysonsaraujo/phm-app/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "identificador de agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgReasonRequired     = "motivo do cancelamento é obrigatório"
	msgBookingNotFound    = "agendamento não encontrado"
	msgCannotCancel       = "somente agendamentos ativos podem ser cancelados"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason"`
	Couple             string  `json:"couple"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
}

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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}

	booking, err := h.service.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		ID:                 booking.ID,
		Status:             string(booking.Status),
		CancellationReason: booking.CancellationReason,
		Couple:             booking.CoupleLabel(),
		Date:               booking.WeddingDate.Format(domain.DateFormat),
		Time:               booking.StartTime.String(),
	})
}
