package models

import "time"

// Service is a bookable offering (bus route or hotel) with mutable seat
// inventory. AvailableSeats is only ever changed inside a booking or
// cancellation transaction, never cached in-process.
type Service struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ServiceType    string    `json:"service_type"`
	Location       string    `json:"location"`
	Destination    string    `json:"destination,omitempty"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
	Description    string    `json:"description,omitempty"`
	Amenities      string    `json:"amenities,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ServiceFilter narrows the service listing.
type ServiceFilter struct {
	ServiceType string
	Location    string
	MinPrice    *float64
	MaxPrice    *float64
}
