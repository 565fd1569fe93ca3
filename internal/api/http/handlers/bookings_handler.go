package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-booking/internal/api/dto"
	"github.com/spec-kit/restaurant-booking/internal/auth"
	"github.com/spec-kit/restaurant-booking/internal/service"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// BookingsHandler manages table booking endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// Create POST /api/bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Context(), principal.UserID, service.BookingCreateInput{
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
		TableID:        req.TableID,
		TableNumber:    req.TableNumber,
		Date:           req.Date,
		Time:           req.Time,
		Guests:         req.Guests,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, bookingResponse(booking), "Booking created successfully")
}

// ListMine GET /api/bookings/my.
func (h *BookingsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	bookings, err := h.service.ListMine(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return respond(c, http.StatusOK, items, "Bookings fetched successfully")
}

// Get GET /api/bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	booking, err := h.service.Get(c.Context(), principal.UserID, c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, bookingResponse(booking), "Booking fetched successfully")
}

// Cancel DELETE /api/bookings/:id/cancel.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Cancel(c.Context(), principal.UserID, c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Booking cancelled successfully")
}
