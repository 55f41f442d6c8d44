package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelgo/internal/config"
	intdb "travelgo/internal/db"
	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

// ServiceRepo reads the service catalog and mutates seat inventory.
// Every read of available_seats goes through the store; nothing is cached.
type ServiceRepo struct {
	DB *sql.DB
}

func (r ServiceRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const serviceColumns = `id, name, service_type, location, COALESCE(destination,''), price, available_seats, COALESCE(description,''), COALESCE(amenities,''), created_at`

func scanService(row interface{ Scan(...any) error }) (models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.ServiceType,
		&s.Location,
		&s.Destination,
		&s.Price,
		&s.AvailableSeats,
		&s.Description,
		&s.Amenities,
		&s.CreatedAt,
	)
	return s, err
}

// List returns bookable services (seats remaining) matching the filter.
// Reads outside any transaction; display counts may lag in-flight bookings,
// correctness is enforced at booking time.
func (r ServiceRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE available_seats > 0`
	args := []any{}

	if t := strings.TrimSpace(filter.ServiceType); t != "" {
		if !domain.ServiceType(t).Valid() {
			return nil, domain.ValidationError{Field: "service_type", Msg: "harus bus atau hotel"}
		}
		query += ` AND service_type = ?`
		args = append(args, t)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		query += ` AND (location LIKE ? OR destination LIKE ?)`
		like := "%" + loc + "%"
		args = append(args, like, like)
	}
	if filter.MinPrice != nil {
		query += ` AND price >= ?`
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += ` AND price <= ?`
		args = append(args, *filter.MaxPrice)
	}
	query += ` ORDER BY id`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal query services", Err: err}
	}
	defer rows.Close()

	out := []models.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "gagal scan service", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "gagal baca services", Err: err}
	}
	return out, nil
}

func (r ServiceRepo) GetByID(id int64) (models.Service, error) {
	row := r.db().QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = ? LIMIT 1`, id)
	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Service{}, domain.NotFoundError{Resource: "service"}
		}
		return models.Service{}, domain.InternalError{Msg: "gagal query service", Err: err}
	}
	return s, nil
}

// SeatsForUpdate reads available_seats under an exclusive row lock. Must be
// called on a transaction; the lock is held until commit or rollback.
func (r ServiceRepo) SeatsForUpdate(q intdb.Execer, serviceID int64) (int, error) {
	var seats int
	err := q.QueryRow(`SELECT available_seats FROM services WHERE id = ? FOR UPDATE`, serviceID).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NotFoundError{Resource: "service"}
		}
		return 0, err
	}
	return seats, nil
}

// AdjustSeats adds delta to available_seats (negative to reserve). The row
// must already be locked by SeatsForUpdate in the same transaction.
func (r ServiceRepo) AdjustSeats(q intdb.Execer, serviceID int64, delta int) error {
	res, err := q.Exec(`UPDATE services SET available_seats = available_seats + ? WHERE id = ?`, delta, serviceID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "service"}
	}
	return nil
}
