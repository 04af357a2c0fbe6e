package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID               int64
	Reference        string
	UserID           int64
	FlightID         int64
	PassengerName    string
	SeatNumber       string
	SeatClass        SeatClass
	TotalAmountCents int64
	BookingDate      time.Time
	Status           BookingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BookingHistoryItem is a booking joined with the flight it belongs to,
// as shown in the customer's booking history.
type BookingHistoryItem struct {
	Booking
	FlightNumber string
	Airline      string
	Source       string
	Destination  string
}

// BookingAdminItem is a booking joined with its customer and flight, as
// listed on the admin's bookings view.
type BookingAdminItem struct {
	Booking
	UserEmail    string
	FlightNumber string
	Source       string
	Destination  string
}
