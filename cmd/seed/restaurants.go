package main

import "github.com/spec-kit/restaurant-booking/internal/domain"

var sampleRestaurants = []domain.Restaurant{
	{
		Name:        "La Piazza Italiana",
		Description: "Authentic Italian kitchen with house-made pasta, wood-fired pizza and a deep wine list.",
		Cuisine:     "Italian",
		Address:     "44 Abay Avenue, Almaty",
		Phone:       "+7 (727) 123-45-67",
		Rating:      4.8,
		ReviewCount: 256,
		PriceRange:  "$$$",
		ImageURL:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
		OpeningHours: []string{
			"Mon - Fri: 11:00 - 23:00",
			"Sat - Sun: 12:00 - 00:00",
		},
		Tables: []domain.Table{
			{Number: 1, Capacity: 2, Location: "By the window", IsAvailable: true},
			{Number: 2, Capacity: 2, Location: "By the window", IsAvailable: true},
			{Number: 3, Capacity: 4, Location: "Main hall", IsAvailable: true},
			{Number: 4, Capacity: 4, Location: "Main hall", IsAvailable: true},
			{Number: 5, Capacity: 6, Location: "VIP room", IsAvailable: true},
			{Number: 6, Capacity: 8, Location: "Banquet hall", IsAvailable: true},
		},
		IsOpen: true,
	},
	{
		Name:        "Sakura Japanese",
		Description: "Traditional Japanese dining: fresh sushi, sashimi and ramen with seafood flown in daily.",
		Cuisine:     "Japanese",
		Address:     "89 Dostyk Avenue, Almaty",
		Phone:       "+7 (727) 234-56-78",
		Rating:      4.6,
		ReviewCount: 189,
		PriceRange:  "$$$",
		ImageURL:    "https://images.unsplash.com/photo-1579027989536-b7b1f875659b?w=800&q=80",
		OpeningHours: []string{
			"Mon - Fri: 12:00 - 22:00",
			"Sat - Sun: 12:00 - 23:00",
		},
		Tables: []domain.Table{
			{Number: 1, Capacity: 2, Location: "Sushi bar", IsAvailable: true},
			{Number: 2, Capacity: 2, Location: "Sushi bar", IsAvailable: true},
			{Number: 3, Capacity: 4, Location: "Tatami room", IsAvailable: true},
			{Number: 4, Capacity: 4, Location: "Tatami room", IsAvailable: true},
			{Number: 5, Capacity: 6, Location: "Private room", IsAvailable: true},
		},
		IsOpen: true,
	},
	{
		Name:        "Burger House",
		Description: "The best burgers in town: fresh beef, buns baked in-house and secret sauces.",
		Cuisine:     "American",
		Address:     "50 Zhibek Zholy, Almaty",
		Phone:       "+7 (727) 345-67-89",
		Rating:      4.4,
		ReviewCount: 312,
		PriceRange:  "$$",
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800&q=80",
		OpeningHours: []string{
			"Daily: 10:00 - 23:00",
		},
		Tables: []domain.Table{
			{Number: 1, Capacity: 2, Location: "Counter", IsAvailable: true},
			{Number: 2, Capacity: 4, Location: "Main hall", IsAvailable: true},
			{Number: 3, Capacity: 4, Location: "Main hall", IsAvailable: true},
			{Number: 4, Capacity: 6, Location: "Terrace", IsAvailable: true},
		},
		IsOpen: true,
	},
}
