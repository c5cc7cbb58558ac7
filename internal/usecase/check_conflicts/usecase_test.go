package check_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
	"github.com/jaysonsaraujo/phm-app/internal/service/suggestions"
	"github.com/jaysonsaraujo/phm-app/pkg/ptr"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

type fakeConfigService struct{}

func (f *fakeConfigService) Get(_ context.Context) (domain.EngineConfig, error) {
	return domain.DefaultEngineConfig(), nil
}

type fakeDetector struct {
	report    domain.ConflictReport
	candidate conflicts.Candidate
}

func (f *fakeDetector) Detect(_ context.Context, c conflicts.Candidate, _ domain.EngineConfig) (domain.ConflictReport, error) {
	f.candidate = c
	return f.report, nil
}

type fakeSuggestionEngine struct {
	suggestions domain.Suggestions
	calls       int
}

func (f *fakeSuggestionEngine) Suggest(_ context.Context, _ suggestions.Request, _ domain.EngineConfig) (domain.Suggestions, error) {
	f.calls++
	return f.suggestions, nil
}

type fakeAnalyzer struct {
	analysis domain.AvailabilityAnalysis
	calls    int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ time.Time, _, _ int64, _ domain.EngineConfig) (domain.AvailabilityAnalysis, error) {
	f.calls++
	return f.analysis, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type useCaseFixture struct {
	uc       *UseCase
	detector *fakeDetector
	engine   *fakeSuggestionEngine
	analyzer *fakeAnalyzer
}

func newFixture() *useCaseFixture {
	f := &useCaseFixture{
		detector: &fakeDetector{},
		engine:   &fakeSuggestionEngine{},
		analyzer: &fakeAnalyzer{},
	}
	f.uc = NewUseCase(&fakeConfigService{}, f.detector, f.engine, f.analyzer, noopLogger{})
	f.uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		Date:        "2026-12-19",
		Time:        "16:00",
		LocationID:  10,
		CelebrantID: 20,
		BrideName:   "Maria Silva",
		GroomName:   "José Santos",
	}
}

func TestExecute_CleanSlot(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Violations)
	assert.False(t, resp.HasConflicts)
	assert.Nil(t, resp.Suggestions, "suggestions are only built when there are conflicts")
	require.NotNil(t, resp.Availability)
	assert.Equal(t, 0, f.engine.calls)
	assert.Equal(t, 1, f.analyzer.calls)
}

func TestExecute_TemporalViolationsShortCircuit(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = "2026-09-05" // below the minimum lead time

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	require.NotEmpty(t, resp.Violations)
	assert.False(t, resp.HasConflicts)
	assert.Nil(t, resp.Suggestions)
	assert.Nil(t, resp.Availability)
	assert.Equal(t, 0, f.engine.calls)
	assert.Equal(t, 0, f.analyzer.calls)
}

func TestExecute_ConflictsTriggerSuggestions(t *testing.T) {
	f := newFixture()
	f.detector.report = domain.ConflictReport{
		LocationConflicts: []domain.BookingConflict{{BookingID: 7, Couple: "A & B"}},
	}
	f.engine.suggestions = domain.Suggestions{
		SameDay: []types.TimeString{"17:00", "17:30"},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.True(t, resp.HasConflicts)
	require.Len(t, resp.Conflicts.LocationConflicts, 1)
	require.NotNil(t, resp.Suggestions)
	assert.Equal(t, []types.TimeString{"17:00", "17:30"}, resp.Suggestions.SameDay)
	require.NotNil(t, resp.Availability)
	assert.Equal(t, 1, f.engine.calls)
}

func TestExecute_ExcludeIDForwarded(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ExcludeID = ptr.Ptr(int64(5))

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.detector.candidate.ExcludeID)
	assert.Equal(t, int64(5), *f.detector.candidate.ExcludeID)
	assert.Equal(t, "Maria Silva", f.detector.candidate.BrideName)
}

func TestExecute_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing date", func(r *Request) { r.Date = "" }},
		{"missing time", func(r *Request) { r.Time = "" }},
		{"bad location id", func(r *Request) { r.LocationID = -1 }},
		{"bad celebrant id", func(r *Request) { r.CelebrantID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}
