package engineconfig

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/dbmetrics"
	"github.com/jaysonsaraujo/phm-app/pkg/psqlbuilder"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// Ключи таблицы engine_config
const (
	keyCeremonyDuration  = "ceremony_duration_minutes"
	keyLocationBuffer    = "location_buffer_minutes"
	keyCelebrantTravel   = "celebrant_travel_minutes"
	keyDayStart          = "day_start"
	keyDayEnd            = "day_end"
	keyMinAdvanceDays    = "min_advance_days"
	keyMaxAdvanceDays    = "max_advance_days"
	keySlotGranularity   = "slot_granularity_minutes"
	keyMinNotice         = "min_notice_minutes"
	keyLocationCapacity  = "location_daily_capacity"
	keyCelebrantCapacity = "celebrant_daily_capacity"
)

// Repository репозиторий параметров движка бронирования
// Параметры хранятся в таблице engine_config как пары ключ-значение,
// отсутствующие ключи заполняются значениями по умолчанию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает конфигурацию движка из БД
// Отсутствующие ключи получают значения по умолчанию, малформированные
// значения являются ошибкой а не поводом для молчаливого фолбэка
func (r *Repository) Load(ctx context.Context) (domain.EngineConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cfg := domain.DefaultEngineConfig()

	query, args, err := psqlbuilder.Select("key", "value").
		From("engine_config").
		ToSql()

	if err != nil {
		return cfg, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return cfg, fmt.Errorf("%w: Load - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return cfg, fmt.Errorf("%w: Load - scan row: %v", ErrScanRow, err)
		}
		if err := applyValue(&cfg, key, value); err != nil {
			return cfg, err
		}
	}

	if err := rows.Err(); err != nil {
		return cfg, fmt.Errorf("%w: Load - rows error: %v", ErrScanRow, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: Load - %v", ErrBadValue, err)
	}

	return cfg, nil
}

// Save сохраняет конфигурацию движка (upsert по ключу)
func (r *Repository) Save(ctx context.Context, cfg domain.EngineConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("engine_config").
		Columns("key", "value")

	values := configValues(cfg)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		insertBuilder = insertBuilder.Values(key, values[key])
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// applyValue применяет одно значение из БД к конфигурации
// Неизвестные ключи игнорируются для совместимости при миграциях
func applyValue(cfg *domain.EngineConfig, key, value string) error {
	switch key {
	case keyDayStart:
		ts := types.TimeString(value)
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("%w: key %q value %q: %v", ErrBadValue, key, value, err)
		}
		cfg.DayStart = ts
		return nil
	case keyDayEnd:
		ts := types.TimeString(value)
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("%w: key %q value %q: %v", ErrBadValue, key, value, err)
		}
		cfg.DayEnd = ts
		return nil
	}

	target, ok := intTarget(cfg, key)
	if !ok {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: key %q value %q: %v", ErrBadValue, key, value, err)
	}
	*target = parsed

	return nil
}

func intTarget(cfg *domain.EngineConfig, key string) (*int, bool) {
	switch key {
	case keyCeremonyDuration:
		return &cfg.CeremonyDurationMinutes, true
	case keyLocationBuffer:
		return &cfg.LocationBufferMinutes, true
	case keyCelebrantTravel:
		return &cfg.CelebrantTravelMinutes, true
	case keyMinAdvanceDays:
		return &cfg.MinAdvanceDays, true
	case keyMaxAdvanceDays:
		return &cfg.MaxAdvanceDays, true
	case keySlotGranularity:
		return &cfg.SlotGranularityMinutes, true
	case keyMinNotice:
		return &cfg.MinNoticeMinutes, true
	case keyLocationCapacity:
		return &cfg.LocationDailyCapacity, true
	case keyCelebrantCapacity:
		return &cfg.CelebrantDailyCapacity, true
	}
	return nil, false
}

func configValues(cfg domain.EngineConfig) map[string]string {
	return map[string]string{
		keyCeremonyDuration:  strconv.Itoa(cfg.CeremonyDurationMinutes),
		keyLocationBuffer:    strconv.Itoa(cfg.LocationBufferMinutes),
		keyCelebrantTravel:   strconv.Itoa(cfg.CelebrantTravelMinutes),
		keyDayStart:          cfg.DayStart.String(),
		keyDayEnd:            cfg.DayEnd.String(),
		keyMinAdvanceDays:    strconv.Itoa(cfg.MinAdvanceDays),
		keyMaxAdvanceDays:    strconv.Itoa(cfg.MaxAdvanceDays),
		keySlotGranularity:   strconv.Itoa(cfg.SlotGranularityMinutes),
		keyMinNotice:         strconv.Itoa(cfg.MinNoticeMinutes),
		keyLocationCapacity:  strconv.Itoa(cfg.LocationDailyCapacity),
		keyCelebrantCapacity: strconv.Itoa(cfg.CelebrantDailyCapacity),
	}
}
