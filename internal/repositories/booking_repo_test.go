package repositories

import (
	"testing"
	"time"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInsertReturnsNewID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs("abc-123", int64(9), int64(1), "2025-06-01", 2, "confirmed").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := BookingRepo{DB: db}.Insert(db, models.Booking{
		Code:        "abc-123",
		UserID:      9,
		ServiceID:   1,
		BookingDate: "2025-06-01",
		Passengers:  2,
		Status:      "confirmed",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 7 {
		t.Fatalf("id salah: got %d want 7", id)
	}
}

func TestOwnedConfirmedForUpdateNoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT service_id, passengers`).
		WithArgs(int64(7), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "passengers"}))

	_, _, err = BookingRepo{DB: db}.OwnedConfirmedForUpdate(db, 7, 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListByUserJoinsService(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "code", "user_id", "service_id", "booking_date", "passengers", "status", "created_at",
		"name", "service_type", "location", "destination", "price",
	}).
		AddRow(2, "code-b", 9, 1, "2025-06-02", 1, "cancelled", now,
			"Grand Hotel", "hotel", "New York", "", 150.00).
		AddRow(1, "code-a", 9, 4, "2025-06-01", 3, "confirmed", now.Add(-time.Hour),
			"Luxury Coach", "bus", "Miami", "Orlando", 55.00)

	mock.ExpectQuery(`FROM bookings b\s+JOIN services s ON b.service_id = s.id\s+WHERE b.user_id = \?`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	out, err := BookingRepo{DB: db}.ListByUser(9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(out))
	}
	if out[0].ServiceName != "Grand Hotel" || out[1].Destination != "Orlando" {
		t.Fatalf("join scan salah: %+v", out)
	}
}

func TestGetOwnedByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM bookings b`).
		WithArgs(int64(5), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = BookingRepo{DB: db}.GetOwnedByID(5, 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
