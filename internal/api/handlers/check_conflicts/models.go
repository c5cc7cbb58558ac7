package check_conflicts

import (
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	checkConflicts "github.com/jaysonsaraujo/phm-app/internal/usecase/check_conflicts"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	Date        string `json:"date"` // "2026-12-19"
	Time        string `json:"time"` // "16:00"
	LocationID  int64  `json:"locationId"`
	CelebrantID int64  `json:"celebrantId"`
	BrideName   string `json:"brideName"`
	GroomName   string `json:"groomName"`
	ExcludeID   *int64 `json:"excludeId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest() *checkConflicts.Request {
	return &checkConflicts.Request{
		Date:        r.Date,
		Time:        r.Time,
		LocationID:  r.LocationID,
		CelebrantID: r.CelebrantID,
		BrideName:   r.BrideName,
		GroomName:   r.GroomName,
		ExcludeID:   r.ExcludeID,
	}
}

// ViolationResponse нарушение временного правила
type ViolationResponse struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// BookingConflictResponse конфликт с существующим бронированием
type BookingConflictResponse struct {
	BookingID       int64  `json:"bookingId"`
	Couple          string `json:"couple"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	LocationName    string `json:"locationName,omitempty"`
	CelebrantName   string `json:"celebrantName,omitempty"`
	TimeDiffMinutes int    `json:"timeDiffMinutes"`
}

// PersonConflictResponse занятость персоны в другом бронировании
type PersonConflictResponse struct {
	Person    string `json:"person"`
	Role      string `json:"role"`
	BookingID int64  `json:"bookingId"`
	Couple    string `json:"couple"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
}

// ConflictsResponse три класса конфликтов
type ConflictsResponse struct {
	Location  []BookingConflictResponse `json:"location"`
	Celebrant []BookingConflictResponse `json:"celebrant"`
	Persons   []PersonConflictResponse  `json:"persons"`
}

// AlternativeDayResponse соседний день со свободным запрошенным временем
type AlternativeDayResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Weekday string `json:"weekday"`
}

// SuggestionsResponse альтернативы для занятого слота
type SuggestionsResponse struct {
	SameDay   []string                 `json:"sameDay"`
	OtherDays []AlternativeDayResponse `json:"otherDays"`
}

// OccupancyResponse загруженность одного ресурса
type OccupancyResponse struct {
	Bookings int     `json:"bookings"`
	Capacity int     `json:"capacity"`
	Rate     float64 `json:"rate"`
}

// AvailabilityResponse анализ загруженности дня
type AvailabilityResponse struct {
	Location       OccupancyResponse `json:"location"`
	Celebrant      OccupancyResponse `json:"celebrant"`
	Status         string            `json:"status"`
	Recommendation string            `json:"recommendation"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	Valid        bool                  `json:"valid"`
	Violations   []ViolationResponse   `json:"violations"`
	HasConflicts bool                  `json:"hasConflicts"`
	Conflicts    *ConflictsResponse    `json:"conflicts,omitempty"`
	Suggestions  *SuggestionsResponse  `json:"suggestions,omitempty"`
	Availability *AvailabilityResponse `json:"availability,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *checkConflicts.Response) *CheckConflictsResponse {
	response := &CheckConflictsResponse{
		Valid:        result.Valid,
		Violations:   make([]ViolationResponse, 0, len(result.Violations)),
		HasConflicts: result.HasConflicts,
	}

	for _, v := range result.Violations {
		response.Violations = append(response.Violations, ViolationResponse{
			Rule:    string(v.Rule),
			Message: v.Message,
		})
	}

	if result.Valid {
		response.Conflicts = &ConflictsResponse{
			Location:  toBookingConflicts(result.Conflicts.LocationConflicts),
			Celebrant: toBookingConflicts(result.Conflicts.CelebrantConflicts),
			Persons:   toPersonConflicts(result.Conflicts.PersonConflicts),
		}
	}

	if result.Suggestions != nil {
		suggestions := &SuggestionsResponse{
			SameDay:   make([]string, 0, len(result.Suggestions.SameDay)),
			OtherDays: make([]AlternativeDayResponse, 0, len(result.Suggestions.OtherDays)),
		}
		for _, t := range result.Suggestions.SameDay {
			suggestions.SameDay = append(suggestions.SameDay, t.String())
		}
		for _, d := range result.Suggestions.OtherDays {
			suggestions.OtherDays = append(suggestions.OtherDays, AlternativeDayResponse{
				Date:    d.Date.Format(domain.DateFormat),
				Time:    d.Time.String(),
				Weekday: d.WeekdayLabel,
			})
		}
		response.Suggestions = suggestions
	}

	if result.Availability != nil {
		response.Availability = &AvailabilityResponse{
			Location: OccupancyResponse{
				Bookings: result.Availability.Location.Bookings,
				Capacity: result.Availability.Location.Capacity,
				Rate:     result.Availability.Location.Rate,
			},
			Celebrant: OccupancyResponse{
				Bookings: result.Availability.Celebrant.Bookings,
				Capacity: result.Availability.Celebrant.Capacity,
				Rate:     result.Availability.Celebrant.Rate,
			},
			Status:         string(result.Availability.Status),
			Recommendation: result.Availability.Recommendation,
		}
	}

	return response
}

func toBookingConflicts(conflicts []domain.BookingConflict) []BookingConflictResponse {
	result := make([]BookingConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, BookingConflictResponse{
			BookingID:       c.BookingID,
			Couple:          c.Couple,
			Date:            c.Date.Format(domain.DateFormat),
			Time:            c.Time.String(),
			LocationName:    c.LocationName,
			CelebrantName:   c.CelebrantName,
			TimeDiffMinutes: c.TimeDiffMinutes,
		})
	}
	return result
}

func toPersonConflicts(conflicts []domain.PersonConflict) []PersonConflictResponse {
	result := make([]PersonConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, PersonConflictResponse{
			Person:    c.Person,
			Role:      string(c.Role),
			BookingID: c.BookingID,
			Couple:    c.Couple,
			Date:      c.Date.Format(domain.DateFormat),
			Time:      c.Time.String(),
			Location:  c.Location,
		})
	}
	return result
}
