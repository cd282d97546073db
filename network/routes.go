package network

import (
	"fmt"
	"sort"

	"github.com/cx-tal-miterani/flight-network/models"
)

// DefineRoute materializes the legs of a route through the given
// airports, in order. Nothing records the route itself: only the legs
// exist afterwards, and legs already created by earlier routes are
// reused, booking state included. It returns the number of legs in the
// route.
//
// The whole sequence is validated before any leg is created, so a failed
// call leaves the graph untouched.
func (m *Manager) DefineRoute(airports ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(airports) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrRouteTooShort, len(airports))
	}
	seen := make(map[string]struct{}, len(airports))
	for _, name := range airports {
		if _, dup := seen[name]; dup {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateConnection, name)
		}
		seen[name] = struct{}{}
	}
	for _, name := range airports {
		if _, ok := m.airports[name]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownAirport, name)
		}
	}

	numLegs := len(airports) - 1
	for i := 0; i < numLegs; i++ {
		from, to := airports[i], airports[i+1]
		key := models.LegKey(from, to)
		if _, ok := m.legs[key]; !ok {
			m.legs[key] = models.NewLeg(from, to)
		}
	}
	m.logger.Debug("route defined", "airports", airports, "legs", numLegs)
	return numLegs, nil
}

// AssignPlaneToLeg attaches a plane to the leg between two airports and
// returns the plane's capacity. A leg's plane is set exactly once; later
// assignments fail no matter which plane they name.
func (m *Manager) AssignPlaneToLeg(from, to, planeID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := models.LegKey(from, to)
	leg, ok := m.legs[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrLegNotFound, key)
	}
	plane, ok := m.planes[planeID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPlaneNotFound, planeID)
	}
	if !leg.AssignPlane(plane) {
		return 0, fmt.Errorf("%w: %s", ErrLegAlreadyAssigned, key)
	}
	m.logger.Debug("plane assigned", "leg", key, "plane", planeID, "capacity", plane.Capacity)
	return plane.Capacity, nil
}

// resolvePath finds an ordered sequence of legs from one airport to
// another, or nil when the target is unreachable. A direct leg to the
// target wins immediately; otherwise outgoing legs are tried in
// lexicographic key order and the first one that reaches the target is
// taken, so the chosen path is deterministic but not necessarily
// shortest. The visited set turns revisited airports into dead ends,
// which keeps cyclic graphs from recursing forever.
//
// Callers must hold the lock.
func (m *Manager) resolvePath(from, to string, visited map[string]struct{}) []*models.Leg {
	if _, seen := visited[from]; seen {
		return nil
	}
	visited[from] = struct{}{}

	var outgoing []*models.Leg
	for _, leg := range m.legs {
		if leg.From() != from {
			continue
		}
		if leg.To() == to {
			return []*models.Leg{leg}
		}
		outgoing = append(outgoing, leg)
	}
	sort.Slice(outgoing, func(i, j int) bool { return outgoing[i].Key() < outgoing[j].Key() })

	for _, leg := range outgoing {
		if rest := m.resolvePath(leg.To(), to, visited); rest != nil {
			return append([]*models.Leg{leg}, rest...)
		}
	}
	return nil
}
