package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-booking/internal/api/dto"
	"github.com/spec-kit/restaurant-booking/internal/domain"
)

// respond writes the standard success envelope.
func respond(c *fiber.Ctx, status int, data any, message string) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:             booking.ID,
		UserID:         booking.UserID,
		RestaurantID:   booking.RestaurantID,
		RestaurantName: booking.RestaurantName,
		TableID:        booking.TableID,
		TableNumber:    booking.TableNumber,
		Date:           booking.Date,
		Time:           booking.Time,
		Guests:         booking.Guests,
		Status:         string(booking.Status),
		CreatedAt:      booking.CreatedAt,
	}
}

func favoriteResponse(favorite *domain.Favorite) dto.FavoriteResponse {
	return dto.FavoriteResponse{
		ID:             favorite.ID,
		UserID:         favorite.UserID,
		RestaurantID:   favorite.RestaurantID,
		RestaurantName: favorite.RestaurantName,
		Cuisine:        favorite.Cuisine,
		Rating:         favorite.Rating,
		ReviewCount:    favorite.ReviewCount,
		Address:        favorite.Address,
		PriceRange:     favorite.PriceRange,
		Description:    favorite.Description,
		IsOpen:         favorite.IsOpen,
		CreatedAt:      favorite.CreatedAt,
	}
}

func restaurantResponse(restaurant *domain.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Description:  restaurant.Description,
		Cuisine:      restaurant.Cuisine,
		Address:      restaurant.Address,
		Phone:        restaurant.Phone,
		Rating:       restaurant.Rating,
		ReviewCount:  restaurant.ReviewCount,
		PriceRange:   restaurant.PriceRange,
		ImageURL:     restaurant.ImageURL,
		OpeningHours: restaurant.OpeningHours,
		Tables:       restaurant.Tables,
		IsOpen:       restaurant.IsOpen,
		CreatedAt:    restaurant.CreatedAt,
		UpdatedAt:    restaurant.UpdatedAt,
	}
}
