package domain

import (
	"time"

	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// BookingConflict describes an existing booking that collides with a
// candidate on a shared resource
type BookingConflict struct {
	BookingID int64
	Couple    string
	Date      time.Time
	Time      types.TimeString

	// LocationName is set for celebrant conflicts, CelebrantName for
	// location conflicts, mirroring what the staff needs to resolve each
	LocationName  string
	CelebrantName string

	// TimeDiffMinutes is the distance between the candidate start and the
	// conflicting start, reported for celebrant displacement conflicts
	TimeDiffMinutes int
}

// PersonRole identifies which side of the couple matched
type PersonRole string

const (
	RoleBride PersonRole = "Noiva"
	RoleGroom PersonRole = "Noivo"
)

// PersonConflict describes a future active booking already involving the
// bride or the groom of a candidate
type PersonConflict struct {
	Person string
	Role   PersonRole

	BookingID int64
	Couple    string
	Date      time.Time
	Time      types.TimeString
	Location  string
}

// ConflictReport aggregates the three orthogonal conflict checks. All
// three always run so the caller can present a complete picture in one
// round trip.
type ConflictReport struct {
	LocationConflicts  []BookingConflict
	CelebrantConflicts []BookingConflict
	PersonConflicts    []PersonConflict
}

// HasConflicts returns true if any of the three checks found a collision
func (r *ConflictReport) HasConflicts() bool {
	return len(r.LocationConflicts) > 0 ||
		len(r.CelebrantConflicts) > 0 ||
		len(r.PersonConflicts) > 0
}
