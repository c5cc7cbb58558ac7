package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	createBooking "github.com/jaysonsaraujo/phm-app/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidRequest     = "dados obrigatórios ausentes ou inválidos"
	msgBookingConflict    = "o horário solicitado conflita com agendamentos existentes"
	msgLocationNotFound   = "local de cerimônia não encontrado ou inativo"
	msgCelebrantNotFound  = "celebrante não encontrado ou inativo"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBookingConflict):
			h.logger.Warn("POST /bookings - Conflict: date=%s, time=%s, location=%d, celebrant=%d",
				req.Date, req.Time, req.LocationID, req.CelebrantID)
			handlers.RespondError(w, http.StatusConflict, msgBookingConflict)

		case errors.Is(err, createBooking.ErrTemporalViolation):
			h.logger.Warn("POST /bookings - Temporal rule violated: %v", err)
			// Пользователю отдается только текст нарушенного правила
			message := strings.TrimPrefix(err.Error(), createBooking.ErrTemporalViolation.Error()+": ")
			handlers.RespondBadRequest(w, message)

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings - Location not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrCelebrantNotFound):
			h.logger.Warn("POST /bookings - Celebrant not found: celebrant_id=%d", req.CelebrantID)
			handlers.RespondNotFound(w, msgCelebrantNotFound)

		case errors.Is(err, createBooking.ErrInvalidRequest):
			h.logger.Warn("POST /bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d", result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
