package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
)

type fakeBookingRepo struct {
	created *domain.Booking
	ctx     context.Context
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.ctx = ctx
	created := *booking
	created.ID = 42
	f.created = &created
	return &created, nil
}

type fakeResourceService struct {
	locationErr  error
	celebrantErr error
}

func (f *fakeResourceService) GetActiveLocation(_ context.Context, id int64) (*domain.Location, error) {
	if f.locationErr != nil {
		return nil, f.locationErr
	}
	return &domain.Location{ID: id, Name: "Igreja Matriz", Active: true}, nil
}

func (f *fakeResourceService) GetActiveCelebrant(_ context.Context, id int64) (*domain.Celebrant, error) {
	if f.celebrantErr != nil {
		return nil, f.celebrantErr
	}
	return &domain.Celebrant{ID: id, FullName: "Padre Antonio", Type: domain.CelebrantPriest, Active: true}, nil
}

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

type fakeTxManager struct {
	calls int
}

type txKey struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, txKey{}, true))
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
	uc        *UseCase
	repo      *fakeBookingRepo
	resources *fakeResourceService
	detector  *fakeDetector
	txManager *fakeTxManager
}

func newFixture() *useCaseFixture {
	f := &useCaseFixture{
		repo:      &fakeBookingRepo{},
		resources: &fakeResourceService{},
		detector:  &fakeDetector{},
		txManager: &fakeTxManager{},
	}
	f.uc = NewUseCase(f.repo, f.resources, &fakeConfigService{}, f.detector, f.txManager, noopLogger{})
	f.uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		Date:        "2026-12-19",
		Time:        "16:00",
		LocationID:  10,
		CelebrantID: 20,
		BrideName:   "  maria   da silva ",
		BridePhone:  "(11) 98765-4321",
		GroomName:   "josé santos",
		GroomPhone:  "1133334444",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	booking := resp.Booking
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, "MARIA DA SILVA", booking.BrideName)
	assert.Equal(t, "JOSÉ SANTOS", booking.GroomName)
	assert.Equal(t, "(11) 98765-4321", booking.BridePhone)
	assert.Equal(t, "(11) 3333-4444", booking.GroomPhone)
	assert.Equal(t, domain.StatusActive, booking.Status)
	assert.Equal(t, "Igreja Matriz", booking.LocationName)
	assert.Equal(t, "Padre Antonio", booking.CelebrantName)

	// Обнаружение конфликтов и вставка выполняются внутри транзакции
	assert.Equal(t, 1, f.txManager.calls)
	assert.Equal(t, true, f.repo.ctx.Value(txKey{}))

	// Детектор получает нормализованные имена
	assert.Equal(t, "MARIA DA SILVA", f.detector.candidate.BrideName)
	assert.Nil(t, f.detector.candidate.ExcludeID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing date", func(r *Request) { r.Date = "" }},
		{"missing time", func(r *Request) { r.Time = " " }},
		{"bad location id", func(r *Request) { r.LocationID = 0 }},
		{"missing bride name", func(r *Request) { r.BrideName = "" }},
		{"short phone", func(r *Request) { r.BridePhone = "12345" }},
		{"long phone", func(r *Request) { r.GroomPhone = "123456789012" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Nil(t, f.repo.created)
		})
	}
}

func TestExecute_TemporalViolation(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = "2026-09-05" // only a week ahead, below the minimum lead time

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTemporalViolation)
	assert.Nil(t, f.repo.created)
}

func TestExecute_ConflictRollsBack(t *testing.T) {
	f := newFixture()
	f.detector.report = domain.ConflictReport{
		LocationConflicts: []domain.BookingConflict{{BookingID: 1}},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Nil(t, f.repo.created)
}

func TestExecute_InactiveLocation(t *testing.T) {
	f := newFixture()
	f.resources.locationErr = assert.AnError

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Equal(t, 0, f.txManager.calls)
}

func TestExecute_InactiveCelebrant(t *testing.T) {
	f := newFixture()
	f.resources.celebrantErr = assert.AnError

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCelebrantNotFound)
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"11987654321", "(11) 98765-4321", false},
		{"(11) 98765-4321", "(11) 98765-4321", false},
		{"1133334444", "(11) 3333-4444", false},
		{"11 3333-4444", "(11) 3333-4444", false},
		{"123", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := normalizePhone(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, got)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "MARIA DA SILVA", normalizeName("  maria   da silva "))
	assert.Equal(t, "ANA", normalizeName("Ana"))
}
