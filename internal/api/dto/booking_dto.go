package dto

import "time"

// CreateBookingRequest payload for new bookings.
type CreateBookingRequest struct {
	RestaurantID   string `json:"restaurantId" validate:"required"`
	RestaurantName string `json:"restaurantName" validate:"required"`
	TableID        string `json:"tableId" validate:"required"`
	TableNumber    int    `json:"tableNumber" validate:"required,min=1"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	Guests         int    `json:"guests" validate:"required,min=1"`
}

// BookingResponse is the wire shape for a booking.
type BookingResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	TableID        string    `json:"tableId"`
	TableNumber    int       `json:"tableNumber"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Guests         int       `json:"guests"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AdminBookingResponse adds owner contact info for the admin panel.
type AdminBookingResponse struct {
	BookingResponse
	User *BookingUserInfo `json:"user"`
}

// BookingUserInfo is the owner summary attached to admin booking listings.
type BookingUserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
