package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/events"
	"github.com/spec-kit/restaurant-booking/internal/repository"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// BookingCreateInput carries validated booking fields.
type BookingCreateInput struct {
	RestaurantID   string
	RestaurantName string
	TableID        string
	TableNumber    int
	Date           string
	Time           string
	Guests         int
}

// BookingService implements the booking lifecycle. No slot-conflict check is
// performed: two confirmed bookings may reference the same table, date and
// time.
type BookingService struct {
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, dispatcher: dispatcher}
}

// Create stores a new booking owned by the authenticated user.
func (s *BookingService) Create(ctx context.Context, userID string, input BookingCreateInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		UserID:         userID,
		RestaurantID:   input.RestaurantID,
		RestaurantName: input.RestaurantName,
		TableID:        input.TableID,
		TableNumber:    input.TableNumber,
		Date:           input.Date,
		Time:           input.Time,
		Guests:         input.Guests,
		Status:         domain.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCreated,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload: events.BookingCreatedPayload{
			BookingID:      booking.ID,
			RestaurantID:   booking.RestaurantID,
			RestaurantName: booking.RestaurantName,
			Date:           booking.Date,
			Time:           booking.Time,
			Guests:         booking.Guests,
		},
	})
	return booking, nil
}

// ListMine returns the caller's bookings, newest first.
func (s *BookingService) ListMine(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Get loads a booking for its owner. Missing bookings surface as
// BOOKING_NOT_FOUND before any ownership information is revealed.
func (s *BookingService) Get(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(booking.UserID, userID, "access this booking"); err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel transitions a booking to cancelled. The transition is valid only
// from pending or confirmed; a second cancel is rejected rather than
// accepted idempotently so the client sees the double attempt.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := requireOwner(booking.UserID, userID, "cancel this booking"); err != nil {
		return err
	}
	if booking.Status == domain.BookingStatusCancelled {
		return apperrors.NewDomainError("ALREADY_CANCELLED", "booking is already cancelled", http.StatusBadRequest, nil)
	}
	if !booking.Cancellable() {
		return apperrors.NewValidationError("booking can no longer be cancelled", nil)
	}

	oldStatus := booking.Status
	booking.Status = domain.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCancelled,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload: events.BookingCancelledPayload{
			BookingID: booking.ID,
			OldStatus: oldStatus,
		},
	})
	return nil
}

func (s *BookingService) load(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("BOOKING_NOT_FOUND", "booking not found")
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
