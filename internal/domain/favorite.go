package domain

import "time"

// Favorite is a denormalized snapshot of a restaurant saved by a user.
// At most one favorite exists per (UserID, RestaurantID); the constraint
// lives in storage so concurrent inserts cannot race past it.
type Favorite struct {
	ID             string
	UserID         string
	RestaurantID   string
	RestaurantName string
	Cuisine        string
	Rating         float64
	ReviewCount    int
	Address        string
	PriceRange     string
	Description    string
	IsOpen         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
