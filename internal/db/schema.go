package db

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS services (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	service_type ENUM('bus','hotel') NOT NULL,
	location VARCHAR(255) NOT NULL,
	destination VARCHAR(255) NULL,
	price DECIMAL(10,2) NOT NULL,
	available_seats INT NOT NULL,
	description TEXT,
	amenities JSON,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_type_location (service_type, location)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	code VARCHAR(36) NOT NULL,
	user_id BIGINT NOT NULL,
	service_id BIGINT NOT NULL,
	booking_date DATE NOT NULL,
	passengers INT NOT NULL DEFAULT 1,
	status ENUM('pending','confirmed','cancelled') NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_code (code),
	KEY idx_user (user_id),
	KEY idx_service (service_id),
	CONSTRAINT fk_booking_user FOREIGN KEY (user_id) REFERENCES users(id),
	CONSTRAINT fk_booking_service FOREIGN KEY (service_id) REFERENCES services(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

type sampleService struct {
	name        string
	serviceType string
	location    string
	destination any
	price       float64
	seats       int
	description string
	amenities   string
}

var sampleServices = []sampleService{
	{"Express Bus Service", "bus", "New York", "Boston", 45.00, 40, "Comfortable express bus service", `["WiFi", "AC", "Reclining Seats"]`},
	{"City Connect Bus", "bus", "Los Angeles", "San Francisco", 65.00, 35, "Premium city connector", `["WiFi", "AC", "Entertainment System"]`},
	{"Metro Bus Line", "bus", "Chicago", "Detroit", 35.00, 50, "Affordable metro bus service", `["AC", "Comfortable Seats"]`},
	{"Luxury Coach", "bus", "Miami", "Orlando", 55.00, 30, "Luxury coach service", `["WiFi", "AC", "Reclining Seats", "Snacks"]`},
	{"Grand Hotel", "hotel", "New York", nil, 150.00, 25, "Luxury hotel in downtown", `["WiFi", "Pool", "Gym", "Restaurant"]`},
	{"Budget Inn", "hotel", "Los Angeles", nil, 80.00, 40, "Affordable accommodation", `["WiFi", "Parking", "Breakfast"]`},
	{"Business Hotel", "hotel", "Chicago", nil, 120.00, 30, "Perfect for business travelers", `["WiFi", "Conference Room", "Gym"]`},
	{"Beach Resort", "hotel", "Miami", nil, 200.00, 20, "Beachfront luxury resort", `["WiFi", "Pool", "Beach Access", "Spa"]`},
}

// SeedSampleData inserts demo services and a demo user once. Skipped when
// the services table already has rows.
func SeedSampleData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range sampleServices {
		if _, err := db.Exec(`
			INSERT INTO services (name, service_type, location, destination, price, available_seats, description, amenities)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, s.name, s.serviceType, s.location, s.destination, s.price, s.seats, s.description, s.amenities); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES (?, ?, ?, ?)
	`, "demo@travelgo.com", string(hash), "Demo", "User"); err != nil {
		if IsDuplicateEntry(err) {
			return nil
		}
		return err
	}

	log.Println("sample data berhasil di-seed")
	return nil
}
