package get_statistics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
)

const msgInvalidYear = "ano inválido"

// MonthCountResponse количество бронирований за месяц
type MonthCountResponse struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// TimeCountResponse востребованность времени начала
type TimeCountResponse struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	Year         int                  `json:"year"`
	Total        int                  `json:"total"`
	ByStatus     map[string]int       `json:"byStatus"`
	ByMonth      []MonthCountResponse `json:"byMonth"`
	PopularTimes []TimeCountResponse  `json:"popularTimes"`
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

// Handle GET /api/v1/statistics?year=YYYY
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > 2200 {
			h.logger.Warn("GET /statistics - Invalid year: %q", yearStr)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	stats, err := h.service.Statistics(r.Context(), year)
	if err != nil {
		h.logger.Error("GET /statistics - Failed to build statistics: year=%d, error=%v", year, err)
		handlers.RespondInternalError(w)
		return
	}

	response := StatisticsResponse{
		Year:         year,
		Total:        stats.Total,
		ByStatus:     make(map[string]int, len(stats.ByStatus)),
		ByMonth:      make([]MonthCountResponse, 0, len(stats.ByMonth)),
		PopularTimes: make([]TimeCountResponse, 0, len(stats.PopularTimes)),
	}
	for status, count := range stats.ByStatus {
		response.ByStatus[string(status)] = count
	}
	for _, mc := range stats.ByMonth {
		response.ByMonth = append(response.ByMonth, MonthCountResponse{Month: mc.Month, Count: mc.Count})
	}
	for _, tc := range stats.PopularTimes {
		response.PopularTimes = append(response.PopularTimes, TimeCountResponse{Time: tc.Time.String(), Count: tc.Count})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
