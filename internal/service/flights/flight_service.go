package flights

import (
	"context"
	"fmt"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

// Search returns active flights with free seats on the route. An empty
// result is not an error.
func (s *FlightService) Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error) {
	if q.Source == "" {
		return nil, domain.NewValidationError("source", "required")
	}
	if q.Destination == "" {
		return nil, domain.NewValidationError("destination", "required")
	}
	return s.repo.Search(ctx, q)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, f *domain.Flight) error {
	if err := validateFlight(f); err != nil {
		return err
	}
	if f.Status == "" {
		f.Status = domain.FlightStatusActive
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Update(ctx context.Context, f *domain.Flight) error {
	if err := validateFlight(f); err != nil {
		return err
	}

	// Shrinking capacity below the current free seat count would leave the
	// inventory inconsistent; the repository enforces the same bound.
	current, err := s.repo.GetByID(ctx, f.ID)
	if err != nil {
		return err
	}
	if f.TotalSeats < current.AvailableSeats {
		return domain.NewValidationError("total_seats", "must not be below available seats")
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func validateFlight(f *domain.Flight) error {
	switch {
	case f.FlightNumber == "":
		return domain.NewValidationError("flight_number", "required")
	case f.Airline == "":
		return domain.NewValidationError("airline", "required")
	case f.Source == "":
		return domain.NewValidationError("source", "required")
	case f.Destination == "":
		return domain.NewValidationError("destination", "required")
	case f.TotalSeats <= 0:
		return domain.NewValidationError("total_seats", "must be positive")
	case f.PriceCents < 0:
		return domain.NewValidationError("price_cents", "must not be negative")
	case !f.ArrivalTime.After(f.DepartureTime):
		return domain.NewValidationError("arrival_time", "must be after departure")
	}
	if f.Status != "" {
		switch f.Status {
		case domain.FlightStatusActive, domain.FlightStatusCancelled, domain.FlightStatusDelayed:
		default:
			return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", f.Status))
		}
	}
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
