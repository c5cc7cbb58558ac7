package check_conflicts

import (
	"context"
	"fmt"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
	"github.com/jaysonsaraujo/phm-app/internal/service/suggestions"
)

// UseCase use case проверки конфликтов кандидата на бронирование
// Выполняет все проверки за один запрос: временные правила, три класса
// конфликтов, альтернативы при занятости и загруженность дня
type UseCase struct {
	configService    ConfigService
	detector         ConflictDetector
	suggestionEngine SuggestionEngine
	analyzer         AvailabilityAnalyzer
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configService ConfigService,
	detector ConflictDetector,
	suggestionEngine SuggestionEngine,
	analyzer AvailabilityAnalyzer,
	logger Logger,
) *UseCase {
	return &UseCase{
		configService:    configService,
		detector:         detector,
		suggestionEngine: suggestionEngine,
		analyzer:         analyzer,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case проверки конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: date=%s, time=%s, location=%d, celebrant=%d",
		req.Date, req.Time, req.LocationID, req.CelebrantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию движка
	cfg, err := uc.configService.Get(ctx)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to load engine config: %v", err)
		return nil, fmt.Errorf("%w: failed to load engine config: %v", ErrInternal, err)
	}

	// 4. Проверяем временные правила - отчет собирает ВСЕ нарушения
	temporal := domain.ValidateTemporal(req.Date, req.Time, now, cfg)
	if !temporal.Valid() {
		uc.logger.Warn("CheckConflicts: temporal rules violated: %d violation(s)", len(temporal.Violations))
		return &Response{
			Valid:      false,
			Violations: temporal.Violations,
		}, nil
	}

	// 5. Проверяем три класса конфликтов
	report, err := uc.detector.Detect(ctx, conflicts.Candidate{
		Date:        temporal.Date,
		StartTime:   temporal.Time,
		LocationID:  req.LocationID,
		CelebrantID: req.CelebrantID,
		BrideName:   req.BrideName,
		GroomName:   req.GroomName,
		ExcludeID:   req.ExcludeID,
		Today:       domain.DateOnly(now),
	}, cfg)
	if err != nil {
		uc.logger.Error("CheckConflicts: conflict detection failed: %v", err)
		return nil, fmt.Errorf("%w: conflict detection failed: %v", ErrInternal, err)
	}

	resp := &Response{
		Valid:        true,
		Violations:   make([]domain.RuleViolation, 0),
		HasConflicts: report.HasConflicts(),
		Conflicts:    report,
	}

	// 6. При конфликтах подбираем альтернативы
	if resp.HasConflicts {
		uc.logger.Info("CheckConflicts: conflicts found (location=%d, celebrant=%d, person=%d), building suggestions",
			len(report.LocationConflicts), len(report.CelebrantConflicts), len(report.PersonConflicts))

		alternatives, err := uc.suggestionEngine.Suggest(ctx, suggestions.Request{
			Date:        temporal.Date,
			StartTime:   temporal.Time,
			LocationID:  req.LocationID,
			CelebrantID: req.CelebrantID,
			Now:         now,
		}, cfg)
		if err != nil {
			uc.logger.Error("CheckConflicts: suggestion engine failed: %v", err)
			return nil, fmt.Errorf("%w: suggestion engine failed: %v", ErrInternal, err)
		}
		resp.Suggestions = &alternatives
	}

	// 7. Анализ загруженности дня - рекомендательный, не блокирует
	analysis, err := uc.analyzer.Analyze(ctx, temporal.Date, req.LocationID, req.CelebrantID, cfg)
	if err != nil {
		uc.logger.Error("CheckConflicts: availability analysis failed: %v", err)
		return nil, fmt.Errorf("%w: availability analysis failed: %v", ErrInternal, err)
	}
	resp.Availability = &analysis

	return resp, nil
}
