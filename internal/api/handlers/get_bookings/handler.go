package get_bookings

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

const (
	msgInvalidDate  = "data inválida, esperado YYYY-MM-DD"
	msgInvalidYear  = "ano inválido"
	msgInvalidMonth = "mês inválido"
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

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
// Handle GET /api/v1/bookings?year=YYYY&month=M
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		h.handleDay(w, r, dateStr)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		h.logger.Warn("GET /bookings - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /bookings - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	calendar, err := h.service.CalendarMonth(r.Context(), year, time.Month(month))
	if err != nil {
		h.logger.Error("GET /bookings - Failed to build calendar: year=%d, month=%d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromCalendarMonth(calendar))
}

func (h *Handler) handleDay(w http.ResponseWriter, r *http.Request, dateStr string) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookings, err := h.service.CalendarDay(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get day bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := DayBookingsResponse{
		Date:     dateStr,
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		response.Bookings = append(response.Bookings, FromDomain(booking))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
