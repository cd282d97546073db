package models

import "fmt"

// Booking is a caller-side receipt for a confirmed seat reservation. The
// engine never stores it: the per-leg booked seats and booking codes
// remain the system of record.
type Booking struct {
	Code        string `json:"code"`
	PassengerID string `json:"passengerId"`
	From        string `json:"from"`
	To          string `json:"to"`
	SeatNumber  int    `json:"seatNumber"`
}

func (b Booking) String() string {
	return fmt.Sprintf("booking %s: passenger %s, %s to %s, seat %d",
		b.Code, b.PassengerID, b.From, b.To, b.SeatNumber)
}
