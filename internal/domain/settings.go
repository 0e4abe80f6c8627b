package domain

import (
	"time"

	"github.com/salonora/booking-service/pkg/types"
)

// WorkHours represents the daily open/close boundary within which
// appointment slots may be offered
type WorkHours struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid returns true if both boundaries parse and open precedes close
func (w WorkHours) IsValid() bool {
	if w.Start.Validate() != nil || w.End.Validate() != nil {
		return false
	}
	return w.Start.IsBefore(w.End)
}

// SalonSettings represents the scheduling configuration of the salon.
// Mutable by administrative action; the scheduling policy receives updates
// through an explicit ApplySettings call (push-based via the notifier or
// on reload), last write wins.
type SalonSettings struct {
	WorkHours           WorkHours
	SlotDurationMinutes int

	UpdatedAt time.Time
}

// DefaultSettings returns the configuration used before an administrator
// has saved any
func DefaultSettings() SalonSettings {
	return SalonSettings{
		WorkHours: WorkHours{
			Start: DefaultWorkStart,
			End:   DefaultWorkEnd,
		},
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}
