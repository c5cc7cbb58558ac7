package domain

import (
	"fmt"
	"time"

	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// ValidationRule identifies a temporal business rule
type ValidationRule string

const (
	RuleInvalidDateFormat    ValidationRule = "invalid_date_format"
	RulePastDate             ValidationRule = "past_date"
	RuleInsufficientLeadTime ValidationRule = "insufficient_lead_time"
	RuleExcessiveLeadTime    ValidationRule = "excessive_lead_time"
	RuleInvalidTimeFormat    ValidationRule = "invalid_time_format"
	RuleOutsideBusinessHours ValidationRule = "outside_business_hours"
)

// RuleViolation is one failed temporal rule with a user-facing message
// carrying the configured threshold
type RuleViolation struct {
	Rule    ValidationRule
	Message string
}

// TemporalValidation is the result of validating a proposed date/time
// pair. Violations are values, never errors, so every failed rule can be
// reported in one response.
type TemporalValidation struct {
	Date       time.Time
	Time       types.TimeString
	Violations []RuleViolation
}

// Valid returns true when no rule was violated
func (v TemporalValidation) Valid() bool {
	return len(v.Violations) == 0
}

// First returns the first violation in rule order, or nil
func (v TemporalValidation) First() *RuleViolation {
	if len(v.Violations) == 0 {
		return nil
	}
	return &v.Violations[0]
}

// DateOnly truncates a timestamp to midnight UTC on its own calendar
// day. Dates parsed from requests are UTC midnights, so calendar-day
// comparisons stay exact for clocks in any zone.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ValidateTemporal checks a proposed date and time against the lead-time
// and operating-hours rules. today is injected, never read from the
// system clock, to keep the validator testable. All rules that can be
// evaluated are evaluated, so the report lists every failure at once;
// callers that want fail-fast semantics use First.
func ValidateTemporal(dateStr, timeStr string, today time.Time, cfg EngineConfig) TemporalValidation {
	var result TemporalValidation

	date, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		result.Violations = append(result.Violations, RuleViolation{
			Rule:    RuleInvalidDateFormat,
			Message: "Data em formato inválido, esperado YYYY-MM-DD",
		})
	} else {
		result.Date = date
		todayOnly := DateOnly(today)

		if date.Before(todayOnly) {
			result.Violations = append(result.Violations, RuleViolation{
				Rule:    RulePastDate,
				Message: "Não é permitido agendar em datas passadas",
			})
		}

		minDate := todayOnly.AddDate(0, 0, cfg.MinAdvanceDays)
		if date.Before(minDate) {
			result.Violations = append(result.Violations, RuleViolation{
				Rule: RuleInsufficientLeadTime,
				Message: fmt.Sprintf("É necessário agendar com no mínimo %d dias de antecedência",
					cfg.MinAdvanceDays),
			})
		}

		maxDate := todayOnly.AddDate(0, 0, cfg.MaxAdvanceDays)
		if date.After(maxDate) {
			result.Violations = append(result.Violations, RuleViolation{
				Rule: RuleExcessiveLeadTime,
				Message: fmt.Sprintf("Não é permitido agendar com mais de %d dias de antecedência",
					cfg.MaxAdvanceDays),
			})
		}
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		result.Violations = append(result.Violations, RuleViolation{
			Rule:    RuleInvalidTimeFormat,
			Message: "Horário em formato inválido, esperado HH:MM",
		})
	} else {
		result.Time = startTime

		// Окно рабочего времени включает обе границы
		if startTime.IsBefore(cfg.DayStart) || startTime.IsAfter(cfg.DayEnd) {
			result.Violations = append(result.Violations, RuleViolation{
				Rule: RuleOutsideBusinessHours,
				Message: fmt.Sprintf("Horário deve estar entre %s e %s",
					cfg.DayStart, cfg.DayEnd),
			})
		}
	}

	return result
}
