package get_engine_config

import (
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// EngineConfigResponse HTTP response model
type EngineConfigResponse struct {
	CeremonyDurationMinutes int    `json:"ceremonyDurationMinutes"`
	LocationBufferMinutes   int    `json:"locationBufferMinutes"`
	CelebrantTravelMinutes  int    `json:"celebrantTravelMinutes"`
	DayStart                string `json:"dayStart"`
	DayEnd                  string `json:"dayEnd"`
	MinAdvanceDays          int    `json:"minAdvanceDays"`
	MaxAdvanceDays          int    `json:"maxAdvanceDays"`
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	MinNoticeMinutes        int    `json:"minNoticeMinutes"`
	LocationDailyCapacity   int    `json:"locationDailyCapacity"`
	CelebrantDailyCapacity  int    `json:"celebrantDailyCapacity"`
}

// FromDomain конвертирует доменную конфигурацию в HTTP модель
func FromDomain(cfg domain.EngineConfig) EngineConfigResponse {
	return EngineConfigResponse{
		CeremonyDurationMinutes: cfg.CeremonyDurationMinutes,
		LocationBufferMinutes:   cfg.LocationBufferMinutes,
		CelebrantTravelMinutes:  cfg.CelebrantTravelMinutes,
		DayStart:                cfg.DayStart.String(),
		DayEnd:                  cfg.DayEnd.String(),
		MinAdvanceDays:          cfg.MinAdvanceDays,
		MaxAdvanceDays:          cfg.MaxAdvanceDays,
		SlotGranularityMinutes:  cfg.SlotGranularityMinutes,
		MinNoticeMinutes:        cfg.MinNoticeMinutes,
		LocationDailyCapacity:   cfg.LocationDailyCapacity,
		CelebrantDailyCapacity:  cfg.CelebrantDailyCapacity,
	}
}

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed to load engine config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(cfg))
}
