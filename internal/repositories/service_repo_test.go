package repositories

import (
	"testing"
	"time"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "service_type", "location", "destination",
		"price", "available_seats", "description", "amenities", "created_at",
	})
}

func TestListFiltersByTypeAndLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM services WHERE available_seats > 0 AND service_type = \? AND \(location LIKE \? OR destination LIKE \?\)`).
		WithArgs("bus", "%Miami%", "%Miami%").
		WillReturnRows(serviceRows().
			AddRow(4, "Luxury Coach", "bus", "Miami", "Orlando", 55.00, 30, "Luxury coach service", `["WiFi"]`, now))

	out, err := ServiceRepo{DB: db}.List(models.ServiceFilter{ServiceType: "bus", Location: "Miami"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 service, got %d", len(out))
	}
	if out[0].Name != "Luxury Coach" || out[0].AvailableSeats != 30 {
		t.Fatalf("scan salah: %+v", out[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPriceRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM services WHERE available_seats > 0 AND price >= \? AND price <= \?`).
		WithArgs(40.0, 100.0).
		WillReturnRows(serviceRows())

	minP, maxP := 40.0, 100.0
	out, err := ServiceRepo{DB: db}.List(models.ServiceFilter{MinPrice: &minP, MaxPrice: &maxP})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	_, err := ServiceRepo{}.List(models.ServiceFilter{ServiceType: "pesawat"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM services WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(serviceRows())

	_, err = ServiceRepo{DB: db}.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAdjustSeatsMissingServiceIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE services SET available_seats = available_seats \+ \? WHERE id = \?`).
		WithArgs(-2, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ServiceRepo{DB: db}.AdjustSeats(db, 99, -2)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
