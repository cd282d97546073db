package models

import "sort"

// LegKey returns the identifier of the leg between two airports in the
// format "from;to".
func LegKey(from, to string) string {
	return from + ";" + to
}

// Leg is a directed edge between two airports, the unit a plane and seat
// inventory are attached to. At most one leg exists per ordered airport
// pair; routes that traverse the same pair share it. The assigned plane
// is write-once and booking state only grows, so both are kept
// unexported.
//
// A Leg is not safe for concurrent use on its own; the manager
// serializes access to it.
type Leg struct {
	from         string
	to           string
	plane        *Plane
	bookedSeats  map[int]struct{}
	bookingCodes []string
}

// NewLeg creates an empty leg between two airports.
func NewLeg(from, to string) *Leg {
	return &Leg{
		from:        from,
		to:          to,
		bookedSeats: make(map[int]struct{}),
	}
}

func (l *Leg) From() string { return l.from }

func (l *Leg) To() string { return l.to }

// Key returns the leg identifier in the format "from;to".
func (l *Leg) Key() string {
	return LegKey(l.from, l.to)
}

func (l *Leg) String() string {
	return l.Key()
}

// Plane returns the assigned plane, or nil while none is assigned.
func (l *Leg) Plane() *Plane {
	return l.plane
}

// AssignPlane attaches a plane to the leg and reports whether the
// assignment took place. Once set, the plane can never be replaced or
// cleared.
func (l *Leg) AssignPlane(p *Plane) bool {
	if l.plane != nil {
		return false
	}
	l.plane = p
	return true
}

// SeatAvailable reports whether seat can be booked on this leg: a plane
// is assigned, the number is within its capacity and nobody holds it yet.
func (l *Leg) SeatAvailable(seat int) bool {
	if l.plane == nil {
		return false
	}
	if seat < 1 || seat > l.plane.Capacity {
		return false
	}
	_, booked := l.bookedSeats[seat]
	return !booked
}

// AvailableSeats returns the seat numbers still free on this leg in
// ascending order. It is empty while no plane is assigned.
func (l *Leg) AvailableSeats() []int {
	var seats []int
	if l.plane == nil {
		return seats
	}
	for seat := 1; seat <= l.plane.Capacity; seat++ {
		if _, booked := l.bookedSeats[seat]; !booked {
			seats = append(seats, seat)
		}
	}
	return seats
}

// Book records a seat booking on this leg. Booked seats are never
// released.
func (l *Leg) Book(seat int, code string) {
	l.bookedSeats[seat] = struct{}{}
	l.bookingCodes = append(l.bookingCodes, code)
}

// BookedSeats returns the booked seat numbers in ascending order.
func (l *Leg) BookedSeats() []int {
	seats := make([]int, 0, len(l.bookedSeats))
	for seat := range l.bookedSeats {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}

// BookingCount returns the number of bookings recorded on this leg.
func (l *Leg) BookingCount() int {
	return len(l.bookingCodes)
}

// BookingCodes returns a copy of the booking codes in booking order.
func (l *Leg) BookingCodes() []string {
	codes := make([]string, len(l.bookingCodes))
	copy(codes, l.bookingCodes)
	return codes
}

// OccupationRate returns booked seats over plane capacity, or 0 while no
// plane is assigned.
func (l *Leg) OccupationRate() float64 {
	if l.plane == nil {
		return 0.0
	}
	return float64(len(l.bookedSeats)) / float64(l.plane.Capacity)
}
