package dto

import "time"

// CreateFavoriteRequest payload for saving a restaurant.
type CreateFavoriteRequest struct {
	RestaurantID   string  `json:"restaurantId" validate:"required"`
	RestaurantName string  `json:"restaurantName" validate:"required"`
	Cuisine        string  `json:"cuisine" validate:"required"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"reviewCount"`
	Address        string  `json:"address" validate:"required"`
	PriceRange     string  `json:"priceRange" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	IsOpen         *bool   `json:"isOpen,omitempty"`
}

// FavoriteResponse is the wire shape for a favorite.
type FavoriteResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	Cuisine        string    `json:"cuisine"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"reviewCount"`
	Address        string    `json:"address"`
	PriceRange     string    `json:"priceRange"`
	Description    string    `json:"description"`
	IsOpen         bool      `json:"isOpen"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FavoriteCheckResponse reports favorite status for one restaurant.
type FavoriteCheckResponse struct {
	IsFavorited bool `json:"isFavorited"`
}
