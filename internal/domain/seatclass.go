package domain

import "fmt"

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "Economy"
	SeatClassBusiness SeatClass = "Business"
	SeatClassFirst    SeatClass = "First Class"
)

// ParseSeatClass maps a user-supplied label to a seat class.
func ParseSeatClass(s string) (SeatClass, error) {
	switch SeatClass(s) {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirst:
		return SeatClass(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSeatClass, s)
	}
}

// Prefix is the first character of seat numbers issued for this class.
func (c SeatClass) Prefix() string {
	switch c {
	case SeatClassBusiness:
		return "B"
	case SeatClassFirst:
		return "F"
	default:
		return "E"
	}
}

// Fare applies the class multiplier (1.0, 1.5, 2.0) to a base price in
// minor units. Integer arithmetic keeps amounts exact.
func (c SeatClass) Fare(priceCents int64) int64 {
	switch c {
	case SeatClassBusiness:
		return priceCents * 3 / 2
	case SeatClassFirst:
		return priceCents * 2
	default:
		return priceCents
	}
}
