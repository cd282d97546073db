package models

import "fmt"

// Plane represents a plane with a fixed seat capacity.
type Plane struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
}

func (p Plane) String() string {
	return fmt.Sprintf("plane %s (%d seats)", p.ID, p.Capacity)
}
