package services

import (
	"bytes"
	"testing"
	"time"

	"travelgo/internal/domain"
	"travelgo/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingWithServiceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "user_id", "service_id", "booking_date", "passengers", "status", "created_at",
		"name", "service_type", "location", "destination", "price",
	})
}

func TestGenerateETicketProducesPDF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM bookings b`).
		WithArgs(int64(7), int64(9)).
		WillReturnRows(bookingWithServiceRows().
			AddRow(7, "code-7", 9, 1, "2025-06-01", 2, "confirmed", time.Now(),
				"Express Bus Service", "bus", "New York", "Boston", 45.00))

	svc := TicketService{BookingRepo: repositories.BookingRepo{DB: db}}
	pdfBytes, filename, err := svc.GenerateETicket(7, 9)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output bukan PDF")
	}
	if filename != "ETICKET_7_code-7.pdf" {
		t.Fatalf("nama file salah: %s", filename)
	}
}

func TestGenerateETicketRejectsCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM bookings b`).
		WithArgs(int64(7), int64(9)).
		WillReturnRows(bookingWithServiceRows().
			AddRow(7, "code-7", 9, 1, "2025-06-01", 2, "cancelled", time.Now(),
				"Express Bus Service", "bus", "New York", "Boston", 45.00))

	svc := TicketService{BookingRepo: repositories.BookingRepo{DB: db}}
	if _, _, err := svc.GenerateETicket(7, 9); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}
