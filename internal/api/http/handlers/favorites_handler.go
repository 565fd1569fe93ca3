package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-booking/internal/api/dto"
	"github.com/spec-kit/restaurant-booking/internal/auth"
	"github.com/spec-kit/restaurant-booking/internal/service"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// FavoritesHandler manages favorite restaurant endpoints.
type FavoritesHandler struct {
	service *service.FavoriteService
}

// NewFavoritesHandler constructs handler.
func NewFavoritesHandler(favoriteService *service.FavoriteService) *FavoritesHandler {
	return &FavoritesHandler{service: favoriteService}
}

// Create POST /api/favorites.
func (h *FavoritesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	favorite, err := h.service.Add(c.Context(), principal.UserID, service.FavoriteCreateInput{
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
		Cuisine:        req.Cuisine,
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
		Address:        req.Address,
		PriceRange:     req.PriceRange,
		Description:    req.Description,
		IsOpen:         req.IsOpen,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, favoriteResponse(favorite), "Restaurant added to favorites")
}

// ListMine GET /api/favorites/my.
func (h *FavoritesHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	favorites, err := h.service.ListMine(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	items := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		items = append(items, favoriteResponse(&favorites[i]))
	}
	return respond(c, http.StatusOK, items, "Favorites fetched successfully")
}

// Check GET /api/favorites/check/:restaurantId.
func (h *FavoritesHandler) Check(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	isFavorited, err := h.service.IsFavorited(c.Context(), principal.UserID, c.Params("restaurantId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.FavoriteCheckResponse{IsFavorited: isFavorited}, "Favorite status checked")
}

// Delete DELETE /api/favorites/:restaurantId.
func (h *FavoritesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Remove(c.Context(), principal.UserID, c.Params("restaurantId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Restaurant removed from favorites")
}
