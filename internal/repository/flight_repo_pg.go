package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, airline, source, destination, departure_time, arrival_time, price_cents, total_seats, available_seats, status, created_at, updated_at`

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.Source, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.TotalSeats, &f.AvailableSeats, &f.Status, &f.CreatedAt, &f.UpdatedAt)
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE status='ACTIVE' ORDER BY departure_time`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func (r *PGFlightRepository) Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error) {
	where := []string{"status='ACTIVE'", "available_seats > 0", "LOWER(source) = LOWER($1)", "LOWER(destination) = LOWER($2)"}
	args := []any{q.Source, q.Destination}

	if q.DepartureDate != nil {
		where = append(where, "departure_time::date = $3::date")
		args = append(args, *q.DepartureDate)
	}

	sql := `SELECT ` + flightColumns + ` FROM flights WHERE ` + strings.Join(where, " AND ") + ` ORDER BY departure_time`
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func collectFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, storeErr(err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline, source, destination, departure_time, arrival_time, price_cents, total_seats, available_seats, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9)
		RETURNING id, available_seats, created_at, updated_at`,
		f.FlightNumber, f.Airline, f.Source, f.Destination, f.DepartureTime, f.ArrivalTime, f.PriceCents, f.TotalSeats, f.Status).
		Scan(&f.ID, &f.AvailableSeats, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET flight_number=$1, airline=$2, source=$3, destination=$4, departure_time=$5, arrival_time=$6, price_cents=$7, total_seats=$8, status=$9, updated_at=now() WHERE id=$10 AND available_seats <= $8`,
		f.FlightNumber, f.Airline, f.Source, f.Destination, f.DepartureTime, f.ArrivalTime, f.PriceCents, f.TotalSeats, f.Status, f.ID)
	if err != nil {
		return storeErr(err)
	}
	if res.RowsAffected() == 0 {
		// Either the flight is gone or the new capacity is below its free
		// seat count.
		var available int
		err := r.db.QueryRow(ctx, `SELECT available_seats FROM flights WHERE id=$1`, f.ID).Scan(&available)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return storeErr(err)
		}
		return domain.NewValidationError("total_seats", "must not be below available seats")
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		// Flights with bookings cannot be removed while the FK holds.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: flight has bookings", domain.ErrInvalidState)
		}
		return storeErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
