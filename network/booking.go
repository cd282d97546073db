package network

import (
	"fmt"
	"sort"
)

// FindAvailableSeats returns, for every leg of the journey between two
// airports, the seats that are free on the whole journey. Availability
// is a journey-wide property: a seat counts only if it is free on every
// leg traversed, so each leg key maps to the same sorted list.
func (m *Manager) FindAvailableSeats(from, to string) (map[string][]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := m.resolvePath(from, to, make(map[string]struct{}))
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: from %s to %s", ErrRouteNotFound, from, to)
	}

	var common map[int]struct{}
	for _, leg := range path {
		if leg.Plane() == nil {
			return nil, fmt.Errorf("%w: %s", ErrLegHasNoPlane, leg.Key())
		}
		seats := leg.AvailableSeats()
		if common == nil {
			common = make(map[int]struct{}, len(seats))
			for _, seat := range seats {
				common[seat] = struct{}{}
			}
			continue
		}
		keep := make(map[int]struct{}, len(common))
		for _, seat := range seats {
			if _, ok := common[seat]; ok {
				keep[seat] = struct{}{}
			}
		}
		common = keep
	}

	shared := make([]int, 0, len(common))
	for seat := range common {
		shared = append(shared, seat)
	}
	sort.Ints(shared)

	result := make(map[string][]int, len(path))
	for _, leg := range path {
		seats := make([]int, len(shared))
		copy(seats, shared)
		result[leg.Key()] = seats
	}
	return result, nil
}

// BookSeat reserves a seat for a passenger on every leg of the journey
// between two airports and returns the generated booking code. The whole
// path is validated before anything is written, so the booking lands on
// every leg of the journey or on none.
func (m *Manager) BookSeat(passengerID, from, to string, seat int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.resolvePath(from, to, make(map[string]struct{}))
	if len(path) == 0 {
		return "", fmt.Errorf("%w: from %s to %s", ErrRouteNotFound, from, to)
	}

	for _, leg := range path {
		plane := leg.Plane()
		if plane == nil {
			return "", fmt.Errorf("%w: %s", ErrLegHasNoPlane, leg.Key())
		}
		if seat < 1 || seat > plane.Capacity {
			return "", fmt.Errorf("%w: seat %d on %s", ErrSeatOutOfRange, seat, leg.Key())
		}
		if !leg.SeatAvailable(seat) {
			return "", fmt.Errorf("%w: seat %d on %s", ErrSeatUnavailable, seat, leg.Key())
		}
	}

	code := m.codes.Code()
	for _, leg := range path {
		leg.Book(seat, code)
	}
	m.logger.Debug("seat booked",
		"passenger", passengerID, "from", from, "to", to,
		"seat", seat, "code", code, "legs", len(path))
	return code, nil
}
