package check_conflicts

import "github.com/jaysonsaraujo/phm-app/internal/domain"

// Request запрос проверки конфликтов для кандидата на бронирование
type Request struct {
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	LocationID  int64
	CelebrantID int64
	BrideName   string
	GroomName   string
	ExcludeID   *int64 // Исключить бронирование (при редактировании)
}

// Response полный отчет проверки: временные правила, конфликты,
// альтернативы и загруженность дня
type Response struct {
	Valid      bool
	Violations []domain.RuleViolation

	HasConflicts bool
	Conflicts    domain.ConflictReport

	// Suggestions заполняется только при наличии конфликтов
	Suggestions *domain.Suggestions

	// Availability заполняется при валидных дате и времени
	Availability *domain.AvailabilityAnalysis
}
