package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelgo/internal/config"
	intdb "travelgo/internal/db"
	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

// BookingRepo is the append-only booking ledger. Rows are inserted once and
// only ever transition confirmed -> cancelled.
type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert writes a new booking row and returns its id. Runs on the caller's
// transaction so it commits together with the seat decrement.
func (r BookingRepo) Insert(q intdb.Execer, b models.Booking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO bookings (code, user_id, service_id, booking_date, passengers, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.Code, b.UserID, b.ServiceID, b.BookingDate, b.Passengers, b.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// OwnedConfirmedForUpdate locks the booking row and returns its service and
// passenger count, but only when it exists, belongs to userID and is still
// confirmed. Absence, wrong owner and already-cancelled are one outcome.
func (r BookingRepo) OwnedConfirmedForUpdate(q intdb.Execer, bookingID, userID int64) (serviceID int64, passengers int, err error) {
	err = q.QueryRow(`
		SELECT service_id, passengers
		FROM bookings
		WHERE id = ? AND user_id = ? AND status = 'confirmed'
		FOR UPDATE
	`, bookingID, userID).Scan(&serviceID, &passengers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.NotFoundError{Resource: "booking"}
		}
		return 0, 0, err
	}
	return serviceID, passengers, nil
}

// MarkCancelled sets the terminal status on a row already locked by
// OwnedConfirmedForUpdate.
func (r BookingRepo) MarkCancelled(q intdb.Execer, bookingID int64) error {
	res, err := q.Exec(`UPDATE bookings SET status = 'cancelled' WHERE id = ?`, bookingID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// ListByUser returns the user's bookings newest first, joined with service
// details for display.
func (r BookingRepo) ListByUser(userID int64) ([]models.BookingWithService, error) {
	rows, err := r.db().Query(`
		SELECT b.id, b.code, b.user_id, b.service_id, DATE_FORMAT(b.booking_date, '%Y-%m-%d'), b.passengers, b.status, b.created_at,
		       s.name, s.service_type, s.location, COALESCE(s.destination,''), s.price
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal query bookings", Err: err}
	}
	defer rows.Close()

	out := []models.BookingWithService{}
	for rows.Next() {
		var b models.BookingWithService
		if err := rows.Scan(
			&b.ID,
			&b.Code,
			&b.UserID,
			&b.ServiceID,
			&b.BookingDate,
			&b.Passengers,
			&b.Status,
			&b.CreatedAt,
			&b.ServiceName,
			&b.ServiceType,
			&b.Location,
			&b.Destination,
			&b.Price,
		); err != nil {
			return nil, domain.InternalError{Msg: "gagal scan booking", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "gagal baca bookings", Err: err}
	}
	return out, nil
}

// GetOwnedByID fetches one booking with service details, for the e-ticket.
func (r BookingRepo) GetOwnedByID(bookingID, userID int64) (models.BookingWithService, error) {
	var b models.BookingWithService
	err := r.db().QueryRow(`
		SELECT b.id, b.code, b.user_id, b.service_id, DATE_FORMAT(b.booking_date, '%Y-%m-%d'), b.passengers, b.status, b.created_at,
		       s.name, s.service_type, s.location, COALESCE(s.destination,''), s.price
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE b.id = ? AND b.user_id = ?
		LIMIT 1
	`, bookingID, userID).Scan(
		&b.ID,
		&b.Code,
		&b.UserID,
		&b.ServiceID,
		&b.BookingDate,
		&b.Passengers,
		&b.Status,
		&b.CreatedAt,
		&b.ServiceName,
		&b.ServiceType,
		&b.Location,
		&b.Destination,
		&b.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingWithService{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.BookingWithService{}, domain.InternalError{Msg: "gagal query booking", Err: err}
	}
	return b, nil
}
