package models

import "time"

// Booking is a reservation of seats against one service. Passengers is
// fixed at creation; cancellation returns exactly that many seats.
type Booking struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	UserID      int64     `json:"user_id"`
	ServiceID   int64     `json:"service_id"`
	BookingDate string    `json:"booking_date"`
	Passengers  int       `json:"passengers"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingWithService joins booking rows with their service for listings.
type BookingWithService struct {
	Booking
	ServiceName string  `json:"service_name"`
	ServiceType string  `json:"service_type"`
	Location    string  `json:"location"`
	Destination string  `json:"destination,omitempty"`
	Price       float64 `json:"price"`
}
