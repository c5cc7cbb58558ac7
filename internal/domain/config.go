package domain

import (
	"fmt"

	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// EngineConfig holds the tunable scheduling parameters. It is loaded once
// per request from the configuration store and treated as immutable for
// the duration of that request; no component reads ambient state.
type EngineConfig struct {
	CeremonyDurationMinutes int              // occupied duration of every booking
	LocationBufferMinutes   int              // transition padding between ceremonies at one location
	CelebrantTravelMinutes  int              // displacement padding for the celebrant between locations
	DayStart                types.TimeString // earliest permitted start time
	DayEnd                  types.TimeString // latest permitted start time
	MinAdvanceDays          int              // minimum lead time relative to today
	MaxAdvanceDays          int              // maximum lead time relative to today
	SlotGranularityMinutes  int              // step used when enumerating candidate slots
	MinNoticeMinutes        int              // same-day slots earlier than now+notice are excluded
	LocationDailyCapacity   int              // soft capacity, availability analysis only
	CelebrantDailyCapacity  int              // soft capacity, availability analysis only
}

// DefaultEngineConfig returns the engine defaults used when a
// configuration key is absent from the store
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		CeremonyDurationMinutes: DefaultCeremonyDurationMinutes,
		LocationBufferMinutes:   DefaultLocationBufferMinutes,
		CelebrantTravelMinutes:  DefaultCelebrantTravelMinutes,
		DayStart:                DefaultDayStart,
		DayEnd:                  DefaultDayEnd,
		MinAdvanceDays:          DefaultMinAdvanceDays,
		MaxAdvanceDays:          DefaultMaxAdvanceDays,
		SlotGranularityMinutes:  DefaultSlotGranularityMinutes,
		MinNoticeMinutes:        DefaultMinNoticeMinutes,
		LocationDailyCapacity:   DefaultLocationDailyCapacity,
		CelebrantDailyCapacity:  DefaultCelebrantDailyCapacity,
	}
}

// BufferFor returns the collision-testing padding for the given resource
func (c EngineConfig) BufferFor(resource ResourceType) int {
	if resource == ResourceCelebrant {
		return c.CelebrantTravelMinutes
	}
	return c.LocationBufferMinutes
}

// DailyCapacityFor returns the soft daily capacity for the given resource
func (c EngineConfig) DailyCapacityFor(resource ResourceType) int {
	if resource == ResourceCelebrant {
		return c.CelebrantDailyCapacity
	}
	return c.LocationDailyCapacity
}

// Validate reports a malformed configuration. Unlike validation of user
// input this is an exceptional condition and surfaces as an error.
func (c EngineConfig) Validate() error {
	if c.CeremonyDurationMinutes <= 0 {
		return fmt.Errorf("engine config: ceremony duration must be positive, got %d", c.CeremonyDurationMinutes)
	}
	if c.LocationBufferMinutes < 0 || c.CelebrantTravelMinutes < 0 {
		return fmt.Errorf("engine config: buffers must not be negative")
	}
	if c.SlotGranularityMinutes <= 0 {
		return fmt.Errorf("engine config: slot granularity must be positive, got %d", c.SlotGranularityMinutes)
	}
	if err := c.DayStart.Validate(); err != nil {
		return fmt.Errorf("engine config: invalid day start: %w", err)
	}
	if err := c.DayEnd.Validate(); err != nil {
		return fmt.Errorf("engine config: invalid day end: %w", err)
	}
	if !c.DayStart.IsBefore(c.DayEnd) {
		return fmt.Errorf("engine config: day start %s must be before day end %s", c.DayStart, c.DayEnd)
	}
	if c.MinAdvanceDays < 0 || c.MaxAdvanceDays < c.MinAdvanceDays {
		return fmt.Errorf("engine config: invalid advance window [%d, %d]", c.MinAdvanceDays, c.MaxAdvanceDays)
	}
	if c.LocationDailyCapacity <= 0 || c.CelebrantDailyCapacity <= 0 {
		return fmt.Errorf("engine config: daily capacities must be positive")
	}
	return nil
}
