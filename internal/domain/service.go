package domain

import "time"

// SalonService represents an entry of the service catalog. Immutable
// reference data from the scheduler's point of view: it is resolved by id
// when a booking is created and only DurationMinutes feeds the slot math.
type SalonService struct {
	ID              int64
	Name            string
	Category        string
	Price           float64
	DurationMinutes int
	DisplayOrder    int
	ImageURL        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
