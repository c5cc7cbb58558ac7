package domain

import "math"

// OccupancyStatus classifies the load of a day for a location/celebrant pair
type OccupancyStatus string

const (
	OccupancyAvailable OccupancyStatus = "available"
	OccupancyModerate  OccupancyStatus = "moderate"
	OccupancyBusy      OccupancyStatus = "busy"
)

// Classification thresholds, percent of the daily capacity
const (
	busyThresholdPercent     = 75
	moderateThresholdPercent = 50
)

// ResourceOccupancy is the booking count of one resource on one day
// against its configured soft capacity
type ResourceOccupancy struct {
	Bookings int
	Capacity int
	Rate     float64 // percent, rounded to one decimal
}

// NewResourceOccupancy computes the occupancy rate for a resource
func NewResourceOccupancy(bookings, capacity int) ResourceOccupancy {
	occ := ResourceOccupancy{Bookings: bookings, Capacity: capacity}
	if capacity > 0 {
		occ.Rate = math.Round(float64(bookings)/float64(capacity)*1000) / 10
	}
	return occ
}

// AvailabilityAnalysis is the advisory load report for a date. It never
// blocks a save and is not itself a conflict source.
type AvailabilityAnalysis struct {
	Location       ResourceOccupancy
	Celebrant      ResourceOccupancy
	Status         OccupancyStatus
	Recommendation string
}

// ClassifyOccupancy derives the status from the two occupancy rates.
// Either axis crossing a threshold is enough.
func ClassifyOccupancy(location, celebrant ResourceOccupancy) OccupancyStatus {
	switch {
	case location.Rate > busyThresholdPercent || celebrant.Rate > busyThresholdPercent:
		return OccupancyBusy
	case location.Rate > moderateThresholdPercent || celebrant.Rate > moderateThresholdPercent:
		return OccupancyModerate
	default:
		return OccupancyAvailable
	}
}

// RecommendationFor возвращает рекомендацию для пользователя (язык продукта)
func RecommendationFor(status OccupancyStatus) string {
	switch status {
	case OccupancyBusy:
		return "Alta demanda - considere datas alternativas"
	case OccupancyModerate:
		return "Demanda moderada - reserve com antecedência"
	default:
		return "Boa disponibilidade"
	}
}
