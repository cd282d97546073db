package models

// Airport represents an airport in the flight network.
type Airport struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UniqueName returns the airport identifier in the format "city-name".
// It is the key an airport is registered under and never changes.
func (a Airport) UniqueName() string {
	return a.City + "-" + a.Name
}

func (a Airport) String() string {
	return a.UniqueName()
}
