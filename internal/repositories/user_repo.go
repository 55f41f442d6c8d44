package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelgo/internal/config"
	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the user plus password hash for credential checks.
func (r UserRepo) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, email, password_hash, first_name, last_name, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, "", domain.InternalError{Msg: "gagal query user", Err: err}
	}
	return u, hash, nil
}

func (r UserRepo) EmailExists(email string) (bool, error) {
	var count int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count); err != nil {
		return false, domain.InternalError{Msg: "gagal cek user", Err: err}
	}
	return count > 0, nil
}

func (r UserRepo) Insert(email, passwordHash, firstName, lastName string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES (?, ?, ?, ?)
	`, email, passwordHash, firstName, lastName)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, email, first_name, last_name, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Msg: "gagal query user", Err: err}
	}
	return u, nil
}
