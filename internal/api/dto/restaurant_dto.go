package dto

import (
	"time"

	"github.com/spec-kit/restaurant-booking/internal/domain"
)

// CreateRestaurantRequest payload for admin catalog additions.
type CreateRestaurantRequest struct {
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description" validate:"required"`
	Cuisine      string         `json:"cuisine" validate:"required"`
	Address      string         `json:"address" validate:"required"`
	Phone        string         `json:"phone" validate:"required"`
	Rating       float64        `json:"rating" validate:"min=0,max=5"`
	ReviewCount  int            `json:"reviewCount" validate:"min=0"`
	PriceRange   string         `json:"priceRange" validate:"required,oneof=$ $$ $$$ $$$$"`
	ImageURL     string         `json:"imageUrl"`
	OpeningHours []string       `json:"openingHours"`
	Tables       []domain.Table `json:"tables"`
	IsOpen       *bool          `json:"isOpen,omitempty"`
}

// UpdateRestaurantRequest payload for partial admin updates.
type UpdateRestaurantRequest struct {
	Name         *string        `json:"name,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Cuisine      *string        `json:"cuisine,omitempty"`
	Address      *string        `json:"address,omitempty"`
	Phone        *string        `json:"phone,omitempty"`
	Rating       *float64       `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ReviewCount  *int           `json:"reviewCount,omitempty" validate:"omitempty,min=0"`
	PriceRange   *string        `json:"priceRange,omitempty" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	ImageURL     *string        `json:"imageUrl,omitempty"`
	OpeningHours []string       `json:"openingHours,omitempty"`
	Tables       []domain.Table `json:"tables,omitempty"`
	IsOpen       *bool          `json:"isOpen,omitempty"`
}

// RestaurantResponse is the wire shape for a catalog entry.
type RestaurantResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Cuisine      string         `json:"cuisine"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Rating       float64        `json:"rating"`
	ReviewCount  int            `json:"reviewCount"`
	PriceRange   string         `json:"priceRange"`
	ImageURL     string         `json:"imageUrl"`
	OpeningHours []string       `json:"openingHours"`
	Tables       []domain.Table `json:"tables"`
	IsOpen       bool           `json:"isOpen"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
