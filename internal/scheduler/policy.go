// Package scheduler implements the scheduling policy: pure slot math over
// the salon's working hours and slot granularity. The policy owns the
// configuration and nothing else; bookings are always passed in by the
// caller, never fetched, so the package stays unit-testable without a
// data store.
package scheduler

import (
	"fmt"
	"sync"

	"github.com/salonora/booking-service/internal/domain"
	"github.com/salonora/booking-service/pkg/types"
)

// Policy holds the current scheduling configuration. Updates arrive through
// ApplySettings (admin save or notifier push) and take effect for the next
// computation; last write wins, no history is retained.
//
// Чтение и запись настроек идут из разных HTTP-запросов, поэтому
// доступ закрыт RWMutex-ом.
type Policy struct {
	mu       sync.RWMutex
	settings domain.SalonSettings
}

// NewPolicy creates a Policy with the given initial settings.
func NewPolicy(settings domain.SalonSettings) *Policy {
	return &Policy{settings: settings}
}

// ApplySettings replaces the current configuration.
func (p *Policy) ApplySettings(settings domain.SalonSettings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = settings
}

// Settings returns a copy of the current configuration.
func (p *Policy) Settings() domain.SalonSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// GenerateSlots computes the candidate start times for a service of the
// given duration: offsets from the opening time stepped by the configured
// slot granularity, strictly below end - duration. The upper bound is
// exclusive: a slot whose start equals end - duration is not offered, so a
// slot never runs into closing time. Ascending, deterministic, empty when
// the working window is shorter than the service.
func (p *Policy) GenerateSlots(serviceDurationMinutes int) []types.TimeString {
	settings := p.Settings()

	slots := make([]types.TimeString, 0)
	if serviceDurationMinutes <= 0 || settings.SlotDurationMinutes <= 0 {
		return slots
	}

	start, err := settings.WorkHours.Start.Minutes()
	if err != nil {
		return slots
	}
	end, err := settings.WorkHours.End.Minutes()
	if err != nil {
		return slots
	}

	// Строгое неравенство: слот, начинающийся ровно в end-duration,
	// не предлагается
	for current := start; current < end-serviceDurationMinutes; current += settings.SlotDurationMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", current/60, current%60)))
	}

	return slots
}

// HasConflict reports whether a candidate slot of the given duration
// overlaps any non-cancelled booking in bookings. The test is the standard
// half-open interval overlap with strict inequalities, so back-to-back
// appointments never conflict.
func (p *Policy) HasConflict(candidate types.TimeString, durationMinutes int, bookings []*domain.Booking) bool {
	candidateStart, err := candidate.Minutes()
	if err != nil {
		return false
	}
	candidateEnd := candidateStart + durationMinutes

	for _, booking := range bookings {
		// Отменённые бронирования слот не занимают
		if !booking.IsActive() {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		bookingEnd := bookingStart + booking.ServiceDurationMinutes

		if candidateStart < bookingEnd && candidateEnd > bookingStart {
			return true
		}
	}

	return false
}

// AvailableSlots composes GenerateSlots and HasConflict: every candidate
// slot that does not overlap a booking in bookingsForDate. Identical inputs
// yield identical ordered output.
func (p *Policy) AvailableSlots(serviceDurationMinutes int, bookingsForDate []*domain.Booking) []types.TimeString {
	candidates := p.GenerateSlots(serviceDurationMinutes)

	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if !p.HasConflict(slot, serviceDurationMinutes, bookingsForDate) {
			available = append(available, slot)
		}
	}

	return available
}
