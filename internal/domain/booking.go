package domain

import "time"

// BookingStatus enumerates lifecycle states for table bookings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is a table reservation owned by exactly one user. UserID is set at
// creation from the authenticated identity and never changes.
type Booking struct {
	ID             string
	UserID         string
	RestaurantID   string
	RestaurantName string
	TableID        string
	TableNumber    int
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	Guests         int
	Status         BookingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Cancellable reports whether the booking may still transition to cancelled.
// cancelled and completed are terminal for the exposed API.
func (b *Booking) Cancellable() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
