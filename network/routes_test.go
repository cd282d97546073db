package network

import (
	"testing"

	"github.com/cx-tal-miterani/flight-network/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addAirports registers single-letter airports so that "A" becomes the
// unique name "A-A", matching the keys used throughout the tests.
func addAirports(t *testing.T, m *Manager, letters ...string) {
	t.Helper()
	for _, l := range letters {
		require.NoError(t, m.AddAirport(l, l, 0, 0))
	}
}

func TestManager_DefineRoute(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B", "C", "D")

	legs, err := m.DefineRoute("A-A", "B-B")
	require.NoError(t, err)
	assert.Equal(t, 1, legs)

	legs, err = m.DefineRoute("A-A", "B-B", "C-C", "D-D")
	require.NoError(t, err)
	assert.Equal(t, 3, legs)
}

func TestManager_DefineRoute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		route   []string
		wantErr error
	}{
		{name: "no airports", route: nil, wantErr: ErrRouteTooShort},
		{name: "single airport", route: []string{"A-A"}, wantErr: ErrRouteTooShort},
		{name: "repeated connection", route: []string{"A-A", "B-B", "A-A"}, wantErr: ErrDuplicateConnection},
		{name: "unknown airport", route: []string{"A-A", "X-X"}, wantErr: ErrUnknownAirport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			addAirports(t, m, "A", "B")

			_, err := m.DefineRoute(tt.route...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_DefineRoute_NoPartialLegsOnFailure(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B")
	require.NoError(t, m.AddPlane("P1", 50))

	_, err := m.DefineRoute("A-A", "B-B", "X-X")
	require.ErrorIs(t, err, ErrUnknownAirport)

	// The valid prefix must not have materialized a leg.
	_, err = m.AssignPlaneToLeg("A-A", "B-B", "P1")
	assert.ErrorIs(t, err, ErrLegNotFound)
}

func TestManager_DefineRoute_SharedLegs(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "T", "L", "F", "B")

	legs1, err := m.DefineRoute("T-T", "F-F", "B-B")
	require.NoError(t, err)
	legs2, err := m.DefineRoute("L-L", "F-F", "B-B")
	require.NoError(t, err)
	legs3, err := m.DefineRoute("F-F", "B-B", "L-L", "T-T")
	require.NoError(t, err)

	assert.Equal(t, 2, legs1)
	assert.Equal(t, 2, legs2)
	assert.Equal(t, 3, legs3)
}

func TestManager_DefineRoute_RedefinitionKeepsBookings(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B", "C")
	require.NoError(t, m.AddPlane("P1", 10))

	_, err := m.DefineRoute("A-A", "B-B")
	require.NoError(t, err)
	_, err = m.AssignPlaneToLeg("A-A", "B-B", "P1")
	require.NoError(t, err)

	code, err := m.BookSeat("pax-1", "A-A", "B-B", 1)
	require.NoError(t, err)

	// A second route over the same ordered pair reuses the leg instead
	// of resetting it.
	_, err = m.DefineRoute("A-A", "B-B", "C-C")
	require.NoError(t, err)

	assert.Equal(t, []string{code}, m.ListBookingsForLeg("A-A", "B-B"))
	assert.Equal(t, 0.1, m.OccupationRate("A-A", "B-B"))
}

func TestManager_AssignPlaneToLeg(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B", "C")
	require.NoError(t, m.AddPlane("P1", 50))

	_, err := m.DefineRoute("A-A", "B-B", "C-C")
	require.NoError(t, err)

	seats, err := m.AssignPlaneToLeg("A-A", "B-B", "P1")
	require.NoError(t, err)
	assert.Equal(t, 50, seats)

	// The same plane may serve several legs.
	seats, err = m.AssignPlaneToLeg("B-B", "C-C", "P1")
	require.NoError(t, err)
	assert.Equal(t, 50, seats)
}

func TestManager_AssignPlaneToLeg_Errors(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		planeID string
		wantErr error
	}{
		{name: "leg not found", from: "A-A", to: "C-C", planeID: "P1", wantErr: ErrLegNotFound},
		{name: "plane not found", from: "A-A", to: "B-B", planeID: "XXX", wantErr: ErrPlaneNotFound},
		{name: "already assigned", from: "A-A", to: "B-B", planeID: "P2", wantErr: ErrLegAlreadyAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			addAirports(t, m, "A", "B", "C")
			require.NoError(t, m.AddPlane("P1", 50))
			require.NoError(t, m.AddPlane("P2", 80))

			_, err := m.DefineRoute("A-A", "B-B")
			require.NoError(t, err)
			_, err = m.AssignPlaneToLeg("A-A", "B-B", "P1")
			require.NoError(t, err)

			_, err = m.AssignPlaneToLeg(tt.from, tt.to, tt.planeID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_ResolvePath_PrefersDirectLeg(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B", "C")
	require.NoError(t, m.AddPlane("P1", 10))

	_, err := m.DefineRoute("A-A", "B-B", "C-C")
	require.NoError(t, err)
	_, err = m.DefineRoute("A-A", "C-C")
	require.NoError(t, err)

	_, err = m.AssignPlaneToLeg("A-A", "C-C", "P1")
	require.NoError(t, err)

	// The direct A-A;C-C leg wins over the two-leg detour, so the detour
	// legs never need a plane.
	seats, err := m.FindAvailableSeats("A-A", "C-C")
	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Contains(t, seats, models.LegKey("A-A", "C-C"))
}

func TestManager_ResolvePath_DeterministicOrder(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B", "C", "D")
	require.NoError(t, m.AddPlane("P1", 10))

	// Two journeys from A to C: via B and via D. Outgoing legs are tried
	// in lexicographic key order, so the B branch is always chosen.
	_, err := m.DefineRoute("A-A", "B-B", "C-C")
	require.NoError(t, err)
	_, err = m.DefineRoute("A-A", "D-D", "C-C")
	require.NoError(t, err)

	for _, leg := range [][2]string{{"A-A", "B-B"}, {"B-B", "C-C"}} {
		_, err = m.AssignPlaneToLeg(leg[0], leg[1], "P1")
		require.NoError(t, err)
	}

	seats, err := m.FindAvailableSeats("A-A", "C-C")
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Contains(t, seats, models.LegKey("A-A", "B-B"))
	assert.Contains(t, seats, models.LegKey("B-B", "C-C"))
}

func TestManager_ResolvePath_CyclicGraphTerminates(t *testing.T) {
	m := NewManager()
	addAirports(t, m, "A", "B", "C")

	// A->B and B->A form a cycle; resolving toward the unreachable C-C
	// must dead-end instead of recursing forever.
	_, err := m.DefineRoute("A-A", "B-B")
	require.NoError(t, err)
	_, err = m.DefineRoute("B-B", "A-A")
	require.NoError(t, err)

	_, err = m.FindAvailableSeats("A-A", "C-C")
	assert.ErrorIs(t, err, ErrRouteNotFound)
}
