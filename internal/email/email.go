package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/rohittkale/Airline-Reservation-System/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send renders a notification for a booking event. Amounts are shown with
// the rupee symbol and two decimals only here, at the presentation edge.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	var b strings.Builder
	switch event.Type {
	case "booking_cancelled":
		b.WriteString("========== BOOKING CANCELLED ==========\n")
	default:
		b.WriteString("========= BOOKING CONFIRMATION =========\n")
	}
	fmt.Fprintf(&b, "Reference: %s\n", event.Reference)
	fmt.Fprintf(&b, "Passenger: %s\n", event.PassengerName)
	fmt.Fprintf(&b, "Seat: %s (%s)\n", event.SeatNumber, event.SeatClass)
	fmt.Fprintf(&b, "Total Amount: %s\n", FormatAmount(event.TotalAmountCents))
	fmt.Fprintf(&b, "Booked: %s\n", event.BookingDate.Format("02-01-2006 15:04"))
	fmt.Fprintf(&b, "Status: %s\n", event.Status)
	b.WriteString("========================================\n")

	fmt.Print(b.String())
	return nil
}

// FormatAmount renders minor units as a rupee amount with two decimals.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("₹%d.%02d", cents/100, cents%100)
}
