package network

import (
	"sort"

	"github.com/cx-tal-miterani/flight-network/models"
)

// OccupationRate returns booked seats over plane capacity for the leg
// between two airports, looked up directly without path resolution. It
// is 0.0 when the leg does not exist or has no assigned plane.
func (m *Manager) OccupationRate(from, to string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	leg, ok := m.legs[models.LegKey(from, to)]
	if !ok {
		return 0.0
	}
	return leg.OccupationRate()
}

// ListBookingsForLeg returns the booking codes recorded on the leg
// between two airports, sorted alphabetically. It is empty when the leg
// does not exist.
func (m *Manager) ListBookingsForLeg(from, to string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	leg, ok := m.legs[models.LegKey(from, to)]
	if !ok {
		return []string{}
	}
	codes := leg.BookingCodes()
	sort.Strings(codes)
	return codes
}

// MostPopularLeg returns the key of the leg with the most bookings. Leg
// keys are scanned in sorted order and a candidate only replaces the
// current best on a strict improvement, so ties go to the
// lexicographically smallest key. The second return value is false when
// no leg has any booking.
func (m *Manager) MostPopularLeg() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.legs))
	for key := range m.legs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	best := ""
	max := 0
	for _, key := range keys {
		if count := m.legs[key].BookingCount(); count > max {
			max = count
			best = key
		}
	}
	return best, best != ""
}
