// Package booking implements the inventory and booking use case: it keeps
// a flight's available seats consistent with its non-cancelled bookings
// and computes fares from the seat class multiplier.
package booking

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/kafka"
	"github.com/rohittkale/Airline-Reservation-System/internal/repository"
)

// Seats are drawn per class in [1, 50], as printed on the ticket.
const (
	seatsPerClass    = 50
	seatDrawAttempts = 5
)

type BookingUseCase interface {
	QuoteFare(ctx context.Context, flightID int64, seatClass string) (int64, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, input CancelBookingInput) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingHistoryItem, error)
	ListAllBookings(ctx context.Context) ([]domain.BookingAdminItem, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
	AcquireSeatGuard(ctx context.Context, flightID int64, seat string, ttl time.Duration) (bool, error)
	ReleaseSeatGuard(ctx context.Context, flightID int64, seat string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings     repository.BookingRepository
	flights      repository.FlightRepository
	cache        Cache
	producer     Producer
	eventsTopic  string
	seatGuardTTL time.Duration
}

type CreateBookingInput struct {
	FlightID      int64
	UserID        int64
	PassengerName string
	SeatClass     string
}

type CancelBookingInput struct {
	BookingID int64
	UserID    int64
	Role      domain.Role
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	eventsTopic string,
	seatGuardTTL time.Duration,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		flights:      flights,
		cache:        cache,
		producer:     producer,
		eventsTopic:  eventsTopic,
		seatGuardTTL: seatGuardTTL,
	}
}

// QuoteFare computes the total amount for a flight and seat class without
// side effects: base price times 1.0 (Economy), 1.5 (Business) or 2.0
// (First Class).
func (s *BookingService) QuoteFare(ctx context.Context, flightID int64, seatClass string) (int64, error) {
	class, err := domain.ParseSeatClass(seatClass)
	if err != nil {
		return 0, err
	}
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return 0, err
	}
	return class.Fare(flight.PriceCents), nil
}

// CreateBooking inserts a CONFIRMED booking and takes one seat from the
// flight in a single transaction; either both happen or neither does.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.PassengerName == "" {
		return nil, domain.NewValidationError("passenger_name", "required")
	}
	class, err := domain.ParseSeatClass(input.SeatClass)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.Status != domain.FlightStatusActive {
		return nil, fmt.Errorf("%w: flight is %s", domain.ErrInvalidState, flight.Status)
	}
	if flight.AvailableSeats <= 0 {
		return nil, domain.ErrSeatsUnavailable
	}

	seat := s.drawSeat(ctx, input.FlightID, class)
	booking := &domain.Booking{
		Reference:        uuid.NewString(),
		UserID:           input.UserID,
		FlightID:         input.FlightID,
		PassengerName:    input.PassengerName,
		SeatNumber:       seat,
		SeatClass:        class,
		TotalAmountCents: class.Fare(flight.PriceCents),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if s.cache != nil {
			_ = s.cache.ReleaseSeatGuard(ctx, input.FlightID, seat)
		}
		return nil, err
	}

	s.invalidateFlights(ctx)
	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

// CancelBooking flips a CONFIRMED booking to CANCELLED and returns its seat
// to the flight, capped at the flight's total. Customers may only cancel
// their own bookings.
func (s *BookingService) CancelBooking(ctx context.Context, input CancelBookingInput) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if input.Role != domain.RoleAdmin && current.UserID != input.UserID {
		return nil, domain.ErrForbidden
	}

	cancelled, err := s.bookings.Cancel(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.ReleaseSeatGuard(ctx, cancelled.FlightID, cancelled.SeatNumber)
	}
	s.invalidateFlights(ctx)
	s.publish(ctx, "booking_cancelled", cancelled)
	return cancelled, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingHistoryItem, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// ListAllBookings returns every booking with its customer and flight, for
// the admin view. Role gating happens at the route.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]domain.BookingAdminItem, error) {
	return s.bookings.ListAll(ctx)
}

// drawSeat picks a random seat number in the class range. The redis guard
// keeps concurrent requests from drawing the same seat; allocation stays
// informal, so a duplicate after all attempts is accepted.
func (s *BookingService) drawSeat(ctx context.Context, flightID int64, class domain.SeatClass) string {
	seat := ""
	for attempt := 0; attempt < seatDrawAttempts; attempt++ {
		seat = fmt.Sprintf("%s%02d", class.Prefix(), rand.Intn(seatsPerClass)+1)
		if s.cache == nil {
			return seat
		}
		ok, err := s.cache.AcquireSeatGuard(ctx, flightID, seat, s.seatGuardTTL)
		if err != nil || ok {
			return seat
		}
	}
	return seat
}

func (s *BookingService) invalidateFlights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("invalidate flights cache: %v", err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		Reference:        booking.Reference,
		BookingID:        booking.ID,
		UserID:           booking.UserID,
		FlightID:         booking.FlightID,
		PassengerName:    booking.PassengerName,
		SeatNumber:       booking.SeatNumber,
		SeatClass:        string(booking.SeatClass),
		TotalAmountCents: booking.TotalAmountCents,
		Status:           string(booking.Status),
		BookingDate:      booking.BookingDate,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.Reference, event); err != nil {
		log.Printf("publish %s event for booking %s: %v", eventType, booking.Reference, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
