package domain

import "time"

// Table describes a single bookable table inside a restaurant.
type Table struct {
	Number      int    `json:"number"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// Restaurant is the catalog aggregate. Read-only for regular users, mutated
// only through the admin panel.
type Restaurant struct {
	ID           string
	Name         string
	Description  string
	Cuisine      string
	Address      string
	Phone        string
	Rating       float64
	ReviewCount  int
	PriceRange   string
	ImageURL     string
	OpeningHours []string
	Tables       []Table
	IsOpen       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
