package domain

import (
	"errors"
	"time"
)

// ErrUnknownResourceType возвращается при некорректном типе ресурса
var ErrUnknownResourceType = errors.New("domain: unknown resource type")

// ResourceType identifies a schedulable resource kind
type ResourceType string

const (
	ResourceLocation  ResourceType = "location"
	ResourceCelebrant ResourceType = "celebrant"
)

// ParseResourceType validates a resource type coming from a request path
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceLocation, ResourceCelebrant:
		return ResourceType(s), nil
	default:
		return "", ErrUnknownResourceType
	}
}

// Location represents a ceremony location. It carries no scheduling
// state; occupancy is derived from the active bookings referencing it.
type Location struct {
	ID       int64
	Name     string
	Address  *string
	Capacity *int
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CelebrantType distinguishes priests from deacons
type CelebrantType string

const (
	CelebrantPriest CelebrantType = "PADRE"
	CelebrantDeacon CelebrantType = "DIACONO"
)

// Celebrant represents a priest or deacon who celebrates ceremonies
type Celebrant struct {
	ID       int64
	FullName string
	Type     CelebrantType
	Phone    *string
	Email    *string
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
