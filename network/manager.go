package network

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/cx-tal-miterani/flight-network/models"
)

// Manager is the entry point of the flight network engine. It owns the
// airport and plane registries and the leg graph, and serializes every
// operation behind a single lock so each validate-then-commit sequence
// is atomic with respect to concurrent callers.
type Manager struct {
	mu       sync.RWMutex
	airports map[string]*models.Airport
	planes   map[string]*models.Plane
	legs     map[string]*models.Leg

	codes  CodeGenerator
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithCodeGenerator overrides the booking-code generator.
func WithCodeGenerator(g CodeGenerator) Option {
	return func(m *Manager) { m.codes = g }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates an empty flight network.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		airports: make(map[string]*models.Airport),
		planes:   make(map[string]*models.Plane),
		legs:     make(map[string]*models.Leg),
		codes:    randomCodeGenerator{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddAirport registers an airport. The unique name "city-name" must not
// be taken yet.
func (m *Manager) AddAirport(name, city string, latitude, longitude float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	airport := &models.Airport{
		Name:      name,
		City:      city,
		Latitude:  latitude,
		Longitude: longitude,
	}
	key := airport.UniqueName()
	if _, ok := m.airports[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAirport, key)
	}
	m.airports[key] = airport
	return nil
}

// ListAirports returns the unique names of all registered airports,
// sorted for determinism.
func (m *Manager) ListAirports() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.airports))
	for name := range m.airports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddPlane registers a plane with the given seat capacity.
func (m *Manager) AddPlane(id string, capacity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.planes[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlane, id)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: %s has capacity %d", ErrInvalidCapacity, id, capacity)
	}
	m.planes[id] = &models.Plane{ID: id, Capacity: capacity}
	return nil
}

// GetSeats returns a plane id to capacity mapping for every registered
// plane.
func (m *Manager) GetSeats() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seats := make(map[string]int, len(m.planes))
	for id, plane := range m.planes {
		seats[id] = plane.Capacity
	}
	return seats
}
