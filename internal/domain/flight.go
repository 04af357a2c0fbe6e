package domain

import "time"

type FlightStatus string

const (
	FlightStatusActive    FlightStatus = "ACTIVE"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
)

type Flight struct {
	ID             int64
	FlightNumber   string
	Airline        string
	Source         string
	Destination    string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	PriceCents     int64
	TotalSeats     int
	AvailableSeats int
	Status         FlightStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FlightSearch filters active flights with free seats by route.
// DepartureDate, when set, narrows results to that calendar day.
type FlightSearch struct {
	Source        string
	Destination   string
	DepartureDate *time.Time
}
