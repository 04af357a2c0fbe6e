package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightSeatUsage is the raw seat inventory of one flight; the reports
// service turns it into an occupancy percentage.
type FlightSeatUsage struct {
	FlightNumber   string
	TotalSeats     int
	AvailableSeats int
}

type RevenueRow struct {
	FlightNumber string
	RevenueCents int64
}

type RouteRow struct {
	Source      string
	Destination string
	Bookings    int64
}

type CustomerRow struct {
	Email      string
	Bookings   int64
	SpentCents int64
}

type ReportRepository interface {
	RevenueByFlight(ctx context.Context) ([]RevenueRow, error)
	SeatUsageByFlight(ctx context.Context) ([]FlightSeatUsage, error)
	TopRoutes(ctx context.Context, limit int) ([]RouteRow, error)
	TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerRow, error)
}

type PGReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepository {
	return &PGReportRepository{db: db}
}

func (r *PGReportRepository) RevenueByFlight(ctx context.Context) ([]RevenueRow, error) {
	rows, err := r.db.Query(ctx, `SELECT f.flight_number, COALESCE(SUM(b.total_amount_cents), 0) AS revenue_cents
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.status = 'CONFIRMED'
		GROUP BY f.flight_number
		ORDER BY revenue_cents DESC`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := make([]RevenueRow, 0)
	for rows.Next() {
		var row RevenueRow
		if err := rows.Scan(&row.FlightNumber, &row.RevenueCents); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (r *PGReportRepository) SeatUsageByFlight(ctx context.Context) ([]FlightSeatUsage, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_number, total_seats, available_seats
		FROM flights
		WHERE total_seats > 0
		ORDER BY (total_seats - available_seats)::float / total_seats DESC`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := make([]FlightSeatUsage, 0)
	for rows.Next() {
		var row FlightSeatUsage
		if err := rows.Scan(&row.FlightNumber, &row.TotalSeats, &row.AvailableSeats); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (r *PGReportRepository) TopRoutes(ctx context.Context, limit int) ([]RouteRow, error) {
	rows, err := r.db.Query(ctx, `SELECT f.source, f.destination, COUNT(*) AS bookings_count
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.status = 'CONFIRMED'
		GROUP BY f.source, f.destination
		ORDER BY bookings_count DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := make([]RouteRow, 0)
	for rows.Next() {
		var row RouteRow
		if err := rows.Scan(&row.Source, &row.Destination, &row.Bookings); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (r *PGReportRepository) TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerRow, error) {
	// LEFT JOIN keeps customers with no bookings in the report with zeroes.
	rows, err := r.db.Query(ctx, `SELECT u.email,
			COUNT(b.id) FILTER (WHERE b.status = 'CONFIRMED') AS total_bookings,
			COALESCE(SUM(b.total_amount_cents) FILTER (WHERE b.status = 'CONFIRMED'), 0) AS total_spent
		FROM users u
		LEFT JOIN bookings b ON b.user_id = u.id
		GROUP BY u.email
		ORDER BY total_spent DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := make([]CustomerRow, 0)
	for rows.Next() {
		var row CustomerRow
		if err := rows.Scan(&row.Email, &row.Bookings, &row.SpentCents); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

var _ ReportRepository = (*PGReportRepository)(nil)
