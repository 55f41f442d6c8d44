package domain

// ServiceType distinguishes bookable offerings.
type ServiceType string

const (
	ServiceBus   ServiceType = "bus"
	ServiceHotel ServiceType = "hotel"
)

func (t ServiceType) Valid() bool {
	return t == ServiceBus || t == ServiceHotel
}

// BookingStatus is tri-state for extensibility. The booking flow only ever
// produces confirmed and cancelled; pending is reserved for a future
// approval/payment step. Cancelled is terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}
