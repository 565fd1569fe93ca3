package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-booking/internal/api/dto"
	"github.com/spec-kit/restaurant-booking/internal/service"
)

// RestaurantsHandler serves the public restaurant catalog.
type RestaurantsHandler struct {
	service *service.RestaurantService
}

// NewRestaurantsHandler constructs handler.
func NewRestaurantsHandler(restaurantService *service.RestaurantService) *RestaurantsHandler {
	return &RestaurantsHandler{service: restaurantService}
}

// List GET /api/restaurants.
func (h *RestaurantsHandler) List(c *fiber.Ctx) error {
	restaurants, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		items = append(items, restaurantResponse(&restaurants[i]))
	}
	return respond(c, http.StatusOK, items, "Restaurants fetched successfully")
}

// Get GET /api/restaurants/:id.
func (h *RestaurantsHandler) Get(c *fiber.Ctx) error {
	restaurant, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, restaurantResponse(restaurant), "Restaurant fetched successfully")
}
