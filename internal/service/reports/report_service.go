// Package reports shapes the read-only aggregations shown on the admin
// dashboard. Any store failure surfaces as domain.ErrReportUnavailable.
package reports

import (
	"context"
	"fmt"
	"math"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/repository"
)

const DefaultRowLimit = 10

type FlightOccupancy struct {
	FlightNumber     string
	TotalSeats       int
	AvailableSeats   int
	OccupancyPercent float64
}

type ReportUseCase interface {
	RevenueByFlight(ctx context.Context) ([]repository.RevenueRow, error)
	OccupancyByFlight(ctx context.Context) ([]FlightOccupancy, error)
	TopRoutes(ctx context.Context) ([]repository.RouteRow, error)
	TopCustomersBySpend(ctx context.Context) ([]repository.CustomerRow, error)
}

type ReportService struct {
	repo     repository.ReportRepository
	rowLimit int
}

func NewReportService(repo repository.ReportRepository, rowLimit int) *ReportService {
	if rowLimit <= 0 {
		rowLimit = DefaultRowLimit
	}
	return &ReportService{repo: repo, rowLimit: rowLimit}
}

func (s *ReportService) RevenueByFlight(ctx context.Context) ([]repository.RevenueRow, error) {
	rows, err := s.repo.RevenueByFlight(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

// OccupancyByFlight computes (total-available)*100/total rounded to two
// decimals. Flights with zero total seats are excluded by the query.
func (s *ReportService) OccupancyByFlight(ctx context.Context) ([]FlightOccupancy, error) {
	usage, err := s.repo.SeatUsageByFlight(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	out := make([]FlightOccupancy, 0, len(usage))
	for _, u := range usage {
		if u.TotalSeats == 0 {
			continue
		}
		out = append(out, FlightOccupancy{
			FlightNumber:     u.FlightNumber,
			TotalSeats:       u.TotalSeats,
			AvailableSeats:   u.AvailableSeats,
			OccupancyPercent: OccupancyPercent(u.TotalSeats, u.AvailableSeats),
		})
	}
	return out, nil
}

func (s *ReportService) TopRoutes(ctx context.Context) ([]repository.RouteRow, error) {
	rows, err := s.repo.TopRoutes(ctx, s.rowLimit)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

func (s *ReportService) TopCustomersBySpend(ctx context.Context) ([]repository.CustomerRow, error) {
	rows, err := s.repo.TopCustomersBySpend(ctx, s.rowLimit)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

// OccupancyPercent is the share of taken seats, rounded to two decimals.
func OccupancyPercent(total, available int) float64 {
	pct := float64(total-available) * 100 / float64(total)
	return math.Round(pct*100) / 100
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrReportUnavailable, err)
}

var _ ReportUseCase = (*ReportService)(nil)
