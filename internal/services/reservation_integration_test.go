package services

import (
	"database/sql"
	"os"
	"sync"
	"testing"

	intdb "travelgo/internal/db"
	"travelgo/internal/domain"
	"travelgo/internal/repositories"

	_ "github.com/go-sql-driver/mysql"
)

// TestNoOversellingConcurrent hits a real MySQL with racing bookings and
// checks the seat counter never goes negative and accepted bookings never
// exceed the starting capacity. Set TEST_DATABASE_DSN to run, e.g.
// root:@tcp(127.0.0.1:3306)/travelgo_test?parseTime=true
func TestNoOversellingConcurrent(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN tidak di-set")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := intdb.EnsureSchema(db); err != nil {
		t.Fatalf("bootstrap schema: %v", err)
	}

	res, err := db.Exec(`
		INSERT INTO services (name, service_type, location, destination, price, available_seats)
		VALUES ('Concurrency Test Bus', 'bus', 'A', 'B', 10.00, ?)
	`, 10)
	if err != nil {
		t.Fatalf("insert service: %v", err)
	}
	serviceID, _ := res.LastInsertId()

	ures, err := db.Exec(`
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES (CONCAT('race-', UUID(), '@test.local'), 'x', 'Race', 'Tester')
	`)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	userID, _ := ures.LastInsertId()

	defer func() {
		_, _ = db.Exec(`DELETE FROM bookings WHERE service_id = ?`, serviceID)
		_, _ = db.Exec(`DELETE FROM services WHERE id = ?`, serviceID)
		_, _ = db.Exec(`DELETE FROM users WHERE id = ?`, userID)
	}()

	svc := ReservationService{
		ServiceRepo: repositories.ServiceRepo{DB: db},
		BookingRepo: repositories.BookingRepo{DB: db},
		DB:          db,
	}

	const workers = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			passengers := 1 + n%2
			_, err := svc.CreateBooking(CreateBookingInput{
				UserID:      userID,
				ServiceID:   serviceID,
				BookingDate: "2025-06-01",
				Passengers:  passengers,
			})
			switch {
			case err == nil:
				mu.Lock()
				accepted += passengers
				mu.Unlock()
			case domain.IsInsufficientSeats(err) || domain.IsConflict(err):
				// expected losers of the race
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if accepted > 10 {
		t.Fatalf("oversold: accepted %d kursi dari kapasitas 10", accepted)
	}

	var remaining int
	if err := db.QueryRow(`SELECT available_seats FROM services WHERE id = ?`, serviceID).Scan(&remaining); err != nil {
		t.Fatalf("read seats: %v", err)
	}
	if remaining < 0 {
		t.Fatalf("available_seats negatif: %d", remaining)
	}
	if remaining != 10-accepted {
		t.Fatalf("kursi tidak konsisten: sisa %d, accepted %d", remaining, accepted)
	}

	var sum sql.NullInt64
	if err := db.QueryRow(`SELECT SUM(passengers) FROM bookings WHERE service_id = ? AND status = 'confirmed'`, serviceID).Scan(&sum); err != nil {
		t.Fatalf("sum bookings: %v", err)
	}
	if int(sum.Int64) != accepted {
		t.Fatalf("ledger tidak cocok: bookings %d, accepted %d", sum.Int64, accepted)
	}
}
