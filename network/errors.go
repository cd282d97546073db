package network

import "errors"

// Engine errors. Every failure reflects a caller precondition violation
// and is surfaced synchronously; mutating operations either fully succeed
// or leave no trace. All errors are returned wrapped with the offending
// key, so callers match them with errors.Is.
var (
	ErrDuplicateAirport    = errors.New("airport already exists")
	ErrRouteTooShort       = errors.New("route must have at least 2 connections")
	ErrDuplicateConnection = errors.New("duplicate connection in route")
	ErrUnknownAirport      = errors.New("airport not found")
	ErrDuplicatePlane      = errors.New("plane already exists")
	ErrInvalidCapacity     = errors.New("plane capacity must be positive")
	ErrLegNotFound         = errors.New("leg does not exist")
	ErrPlaneNotFound       = errors.New("plane not found")
	ErrLegAlreadyAssigned  = errors.New("leg already has an assigned plane")
	ErrRouteNotFound       = errors.New("route does not exist")
	ErrLegHasNoPlane       = errors.New("leg has no assigned plane")
	ErrSeatOutOfRange      = errors.New("seat does not exist on leg")
	ErrSeatUnavailable     = errors.New("seat is not available")
)
