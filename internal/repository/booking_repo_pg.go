package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
)

type BookingRepository interface {
	// Create inserts a CONFIRMED booking and decrements the flight's free
	// seats in one transaction. Returns domain.ErrSeatsUnavailable when the
	// flight has no seats left (or is not ACTIVE); nothing is applied then.
	Create(ctx context.Context, b *domain.Booking) error

	// Cancel flips a CONFIRMED booking to CANCELLED and gives the seat back,
	// capped at the flight's total, in one transaction.
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)

	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingHistoryItem, error)
	ListAll(ctx context.Context) ([]domain.BookingAdminItem, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, flight_id, passenger_name, seat_number, seat_class, total_amount_cents, booking_date, status, created_at, updated_at`

func scanBooking(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.Reference, &b.UserID, &b.FlightID, &b.PassengerName, &b.SeatNumber, &b.SeatClass, &b.TotalAmountCents, &b.BookingDate, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storeErr(err)
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now() WHERE id=$1 AND status='ACTIVE' AND available_seats > 0`, b.FlightID)
	if err != nil {
		return storeErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrSeatsUnavailable
	}

	b.Status = domain.BookingStatusConfirmed
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, user_id, flight_id, passenger_name, seat_number, seat_class, total_amount_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, booking_date, created_at, updated_at`,
		b.Reference, b.UserID, b.FlightID, b.PassengerName, b.SeatNumber, b.SeatClass, b.TotalAmountCents, b.Status).
		Scan(&b.ID, &b.BookingDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return storeErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *PGBookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, storeErr(err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `UPDATE bookings SET status='CANCELLED', updated_at=now() WHERE id=$1 AND status='CONFIRMED' RETURNING `+bookingColumns, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, storeErr(err)
		}
		// Distinguish a missing booking from one in the wrong status.
		var status domain.BookingStatus
		err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id=$1`, id).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if err != nil {
			return nil, storeErr(err)
		}
		return nil, domain.ErrInvalidState
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET available_seats = LEAST(available_seats + 1, total_seats), updated_at = now() WHERE id=$1`, b.FlightID); err != nil {
		return nil, storeErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	return &b, nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.BookingHistoryItem, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.reference, b.user_id, b.flight_id, b.passenger_name, b.seat_number, b.seat_class, b.total_amount_cents, b.booking_date, b.status, b.created_at, b.updated_at,
			f.flight_number, f.airline, f.source, f.destination
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC`, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	items := make([]domain.BookingHistoryItem, 0)
	for rows.Next() {
		var it domain.BookingHistoryItem
		if err := rows.Scan(&it.ID, &it.Reference, &it.UserID, &it.FlightID, &it.PassengerName, &it.SeatNumber, &it.SeatClass, &it.TotalAmountCents, &it.BookingDate, &it.Status, &it.CreatedAt, &it.UpdatedAt,
			&it.FlightNumber, &it.Airline, &it.Source, &it.Destination); err != nil {
			return nil, storeErr(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.BookingAdminItem, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.reference, b.user_id, b.flight_id, b.passenger_name, b.seat_number, b.seat_class, b.total_amount_cents, b.booking_date, b.status, b.created_at, b.updated_at,
			u.email, f.flight_number, f.source, f.destination
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN flights f ON f.id = b.flight_id
		ORDER BY b.booking_date DESC`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	items := make([]domain.BookingAdminItem, 0)
	for rows.Next() {
		var it domain.BookingAdminItem
		if err := rows.Scan(&it.ID, &it.Reference, &it.UserID, &it.FlightID, &it.PassengerName, &it.SeatNumber, &it.SeatClass, &it.TotalAmountCents, &it.BookingDate, &it.Status, &it.CreatedAt, &it.UpdatedAt,
			&it.UserEmail, &it.FlightNumber, &it.Source, &it.Destination); err != nil {
			return nil, storeErr(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
