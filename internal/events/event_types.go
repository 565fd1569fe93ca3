package events

import (
	"time"

	"github.com/spec-kit/restaurant-booking/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated    EventType = "booking_created"
	EventBookingCancelled  EventType = "booking_cancelled"
	EventFavoriteAdded     EventType = "favorite_added"
	EventRestaurantCreated EventType = "restaurant_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID      string `json:"booking_id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Guests         int    `json:"guests"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	BookingID string               `json:"booking_id"`
	OldStatus domain.BookingStatus `json:"old_status"`
}

// FavoriteAddedPayload payload.
type FavoriteAddedPayload struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

// RestaurantCreatedPayload payload.
type RestaurantCreatedPayload struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
}
