package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-booking/internal/api/dto"
	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/service"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// AdminHandler serves the admin panel: user/booking listings, catalog CRUD
// and statistics. All routes sit behind the auth middleware and admin gate.
type AdminHandler struct {
	admin       *service.AdminService
	restaurants *service.RestaurantService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, restaurantService *service.RestaurantService) *AdminHandler {
	return &AdminHandler{admin: adminService, restaurants: restaurantService}
}

// ListUsers GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return respond(c, http.StatusOK, items, "Users fetched successfully")
}

// ListBookings GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.admin.ListBookings(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.AdminBookingResponse, 0, len(bookings))
	for i := range bookings {
		entry := dto.AdminBookingResponse{BookingResponse: bookingResponse(&bookings[i].Booking)}
		if bookings[i].User != nil {
			entry.User = &dto.BookingUserInfo{
				Name:  bookings[i].User.Name,
				Email: bookings[i].User.Email,
			}
		}
		items = append(items, entry)
	}
	return respond(c, http.StatusOK, items, "All bookings fetched successfully")
}

// ListRestaurants GET /api/admin/restaurants.
func (h *AdminHandler) ListRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.restaurants.ListForAdmin(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		items = append(items, restaurantResponse(&restaurants[i]))
	}
	return respond(c, http.StatusOK, items, "Restaurants fetched successfully")
}

// CreateRestaurant POST /api/admin/restaurants.
func (h *AdminHandler) CreateRestaurant(c *fiber.Ctx) error {
	var req dto.CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}
	restaurant, err := h.restaurants.Create(c.Context(), &domain.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Address:      req.Address,
		Phone:        req.Phone,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		PriceRange:   req.PriceRange,
		ImageURL:     req.ImageURL,
		OpeningHours: req.OpeningHours,
		Tables:       req.Tables,
		IsOpen:       isOpen,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, restaurantResponse(restaurant), "Restaurant created successfully")
}

// UpdateRestaurant PUT /api/admin/restaurants/:id.
func (h *AdminHandler) UpdateRestaurant(c *fiber.Ctx) error {
	var req dto.UpdateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	restaurant, err := h.restaurants.Update(c.Context(), c.Params("id"), service.RestaurantUpdateInput{
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Address:      req.Address,
		Phone:        req.Phone,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		PriceRange:   req.PriceRange,
		ImageURL:     req.ImageURL,
		OpeningHours: req.OpeningHours,
		Tables:       req.Tables,
		IsOpen:       req.IsOpen,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, restaurantResponse(restaurant), "Restaurant updated successfully")
}

// DeleteRestaurant DELETE /api/admin/restaurants/:id.
func (h *AdminHandler) DeleteRestaurant(c *fiber.Ctx) error {
	if err := h.restaurants.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Restaurant deleted successfully")
}

// Stats GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.AdminStatsResponse{
		TotalUsers:       stats.TotalUsers,
		TotalBookings:    stats.TotalBookings,
		TotalRestaurants: stats.TotalRestaurants,
		ActiveBookings:   stats.ActiveBookings,
	}, "Statistics fetched successfully")
}
