package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() EngineConfig {
	return DefaultEngineConfig()
}

func violatedRules(v TemporalValidation) []ValidationRule {
	rules := make([]ValidationRule, 0, len(v.Violations))
	for _, violation := range v.Violations {
		rules = append(rules, violation.Rule)
	}
	return rules
}

func TestValidateTemporal_Valid(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	v := ValidateTemporal("2026-12-19", "16:00", today, testConfig())

	assert.True(t, v.Valid())
	assert.Equal(t, time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC), v.Date)
	assert.Equal(t, "16:00", v.Time.String())
}

func TestValidateTemporal_LeadTimeBoundaries(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	cfg := testConfig()

	// Exactly min_advance_days ahead is allowed
	minDate := today.AddDate(0, 0, cfg.MinAdvanceDays).Format(DateFormat)
	assert.True(t, ValidateTemporal(minDate, "10:00", today, cfg).Valid())

	// One day less violates the minimum
	tooSoon := today.AddDate(0, 0, cfg.MinAdvanceDays-1).Format(DateFormat)
	assert.Contains(t, violatedRules(ValidateTemporal(tooSoon, "10:00", today, cfg)),
		RuleInsufficientLeadTime)

	// Exactly max_advance_days ahead is allowed
	maxDate := today.AddDate(0, 0, cfg.MaxAdvanceDays).Format(DateFormat)
	assert.True(t, ValidateTemporal(maxDate, "10:00", today, cfg).Valid())

	// One day more violates the maximum
	tooFar := today.AddDate(0, 0, cfg.MaxAdvanceDays+1).Format(DateFormat)
	assert.Contains(t, violatedRules(ValidateTemporal(tooFar, "10:00", today, cfg)),
		RuleExcessiveLeadTime)
}

func TestValidateTemporal_BoundariesHoldInLocalZone(t *testing.T) {
	// Production clocks run in the Brazilian zone while request dates
	// parse as UTC midnights; the boundaries must agree regardless
	brt := time.FixedZone("BRT", -3*3600)
	today := time.Date(2026, 8, 30, 23, 0, 0, 0, brt)
	cfg := testConfig()

	minDate := today.AddDate(0, 0, cfg.MinAdvanceDays).Format(DateFormat)
	assert.True(t, ValidateTemporal(minDate, "10:00", today, cfg).Valid(),
		"date exactly at the minimum lead time must be accepted")

	maxDate := today.AddDate(0, 0, cfg.MaxAdvanceDays).Format(DateFormat)
	assert.True(t, ValidateTemporal(maxDate, "10:00", today, cfg).Valid())

	// Today itself is too soon but must not be flagged as a past date
	v := ValidateTemporal(today.Format(DateFormat), "10:00", today, cfg)
	rules := violatedRules(v)
	assert.NotContains(t, rules, RulePastDate)
	assert.Contains(t, rules, RuleInsufficientLeadTime)
}

func TestValidateTemporal_ReportsAllViolations(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// A past date fails both the past-date and lead-time rules, and the
	// out-of-hours time is reported in the same pass
	v := ValidateTemporal("2026-01-10", "22:00", today, testConfig())

	require.False(t, v.Valid())
	rules := violatedRules(v)
	assert.Contains(t, rules, RulePastDate)
	assert.Contains(t, rules, RuleInsufficientLeadTime)
	assert.Contains(t, rules, RuleOutsideBusinessHours)
}

func TestValidateTemporal_BusinessHoursInclusive(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	cfg := testConfig()

	// Both window edges are themselves bookable start times
	assert.True(t, ValidateTemporal("2026-12-19", "08:00", today, cfg).Valid())
	assert.True(t, ValidateTemporal("2026-12-19", "20:00", today, cfg).Valid())

	assert.Contains(t, violatedRules(ValidateTemporal("2026-12-19", "07:30", today, cfg)),
		RuleOutsideBusinessHours)
	assert.Contains(t, violatedRules(ValidateTemporal("2026-12-19", "20:30", today, cfg)),
		RuleOutsideBusinessHours)
}

func TestValidateTemporal_MalformedInput(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	v := ValidateTemporal("19/12/2026", "4pm", today, testConfig())

	rules := violatedRules(v)
	assert.Contains(t, rules, RuleInvalidDateFormat)
	assert.Contains(t, rules, RuleInvalidTimeFormat)

	first := v.First()
	require.NotNil(t, first)
	assert.Equal(t, RuleInvalidDateFormat, first.Rule)
}
