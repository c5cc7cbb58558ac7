package update_engine_config

import (
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/ptr"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidConfig      = "configuração inválida"
)

// UpdateConfigRequest HTTP request model
// Não informados permanecem com o valor atual
type UpdateConfigRequest struct {
	CeremonyDurationMinutes *int    `json:"ceremonyDurationMinutes,omitempty"`
	LocationBufferMinutes   *int    `json:"locationBufferMinutes,omitempty"`
	CelebrantTravelMinutes  *int    `json:"celebrantTravelMinutes,omitempty"`
	DayStart                *string `json:"dayStart,omitempty"`
	DayEnd                  *string `json:"dayEnd,omitempty"`
	MinAdvanceDays          *int    `json:"minAdvanceDays,omitempty"`
	MaxAdvanceDays          *int    `json:"maxAdvanceDays,omitempty"`
	SlotGranularityMinutes  *int    `json:"slotGranularityMinutes,omitempty"`
	MinNoticeMinutes        *int    `json:"minNoticeMinutes,omitempty"`
	LocationDailyCapacity   *int    `json:"locationDailyCapacity,omitempty"`
	CelebrantDailyCapacity  *int    `json:"celebrantDailyCapacity,omitempty"`
}

// applyTo накладывает частичное обновление на текущую конфигурацию
func (r *UpdateConfigRequest) applyTo(cfg domain.EngineConfig) domain.EngineConfig {
	cfg.CeremonyDurationMinutes = ptr.Deref(r.CeremonyDurationMinutes, cfg.CeremonyDurationMinutes)
	cfg.LocationBufferMinutes = ptr.Deref(r.LocationBufferMinutes, cfg.LocationBufferMinutes)
	cfg.CelebrantTravelMinutes = ptr.Deref(r.CelebrantTravelMinutes, cfg.CelebrantTravelMinutes)
	cfg.DayStart = types.TimeString(ptr.Deref(r.DayStart, cfg.DayStart.String()))
	cfg.DayEnd = types.TimeString(ptr.Deref(r.DayEnd, cfg.DayEnd.String()))
	cfg.MinAdvanceDays = ptr.Deref(r.MinAdvanceDays, cfg.MinAdvanceDays)
	cfg.MaxAdvanceDays = ptr.Deref(r.MaxAdvanceDays, cfg.MaxAdvanceDays)
	cfg.SlotGranularityMinutes = ptr.Deref(r.SlotGranularityMinutes, cfg.SlotGranularityMinutes)
	cfg.MinNoticeMinutes = ptr.Deref(r.MinNoticeMinutes, cfg.MinNoticeMinutes)
	cfg.LocationDailyCapacity = ptr.Deref(r.LocationDailyCapacity, cfg.LocationDailyCapacity)
	cfg.CelebrantDailyCapacity = ptr.Deref(r.CelebrantDailyCapacity, cfg.CelebrantDailyCapacity)
	return cfg
}

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

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	current, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("PUT /config - Failed to load current config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	updated, err := h.service.Update(r.Context(), req.applyTo(current))
	if err != nil {
		h.logger.Warn("PUT /config - Failed to update config: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfig)
		return
	}

	h.logger.Info("PUT /config - Engine config updated")
	handlers.RespondJSON(w, http.StatusOK, EngineConfigResponse{
		CeremonyDurationMinutes: updated.CeremonyDurationMinutes,
		LocationBufferMinutes:   updated.LocationBufferMinutes,
		CelebrantTravelMinutes:  updated.CelebrantTravelMinutes,
		DayStart:                updated.DayStart.String(),
		DayEnd:                  updated.DayEnd.String(),
		MinAdvanceDays:          updated.MinAdvanceDays,
		MaxAdvanceDays:          updated.MaxAdvanceDays,
		SlotGranularityMinutes:  updated.SlotGranularityMinutes,
		MinNoticeMinutes:        updated.MinNoticeMinutes,
		LocationDailyCapacity:   updated.LocationDailyCapacity,
		CelebrantDailyCapacity:  updated.CelebrantDailyCapacity,
	})
}
