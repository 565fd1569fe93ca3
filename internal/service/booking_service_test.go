package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/restaurant-booking/internal/domain"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

func newBooking(t *testing.T, svc *BookingService, userID string) *domain.Booking {
	t.Helper()
	booking, err := svc.Create(context.Background(), userID, BookingCreateInput{
		RestaurantID:   "rest-1",
		RestaurantName: "La Piazza Italiana",
		TableID:        "table-3",
		TableNumber:    3,
		Date:           "2026-09-15",
		Time:           "19:00",
		Guests:         2,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return booking
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return domainErr.Code
}

func TestBookingService_Create(t *testing.T) {
	t.Parallel()

	svc := NewBookingService(newMemBookingRepo(), nil)
	booking := newBooking(t, svc, "user-a")

	if booking.UserID != "user-a" {
		t.Fatalf("expected owner user-a, got %s", booking.UserID)
	}
	if booking.Status != domain.BookingStatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", booking.Status)
	}
	if booking.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestBookingService_Get(t *testing.T) {
	t.Parallel()

	t.Run("owner can read own booking", func(t *testing.T) {
		t.Parallel()
		svc := NewBookingService(newMemBookingRepo(), nil)
		booking := newBooking(t, svc, "user-a")

		got, err := svc.Get(context.Background(), "user-a", booking.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != booking.ID {
			t.Fatalf("expected booking %s, got %s", booking.ID, got.ID)
		}
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		t.Parallel()
		svc := NewBookingService(newMemBookingRepo(), nil)
		booking := newBooking(t, svc, "user-a")

		_, err := svc.Get(context.Background(), "user-b", booking.ID)
		if code := domainCode(t, err); code != "FORBIDDEN" {
			t.Fatalf("expected FORBIDDEN, got %s", code)
		}
	})

	t.Run("missing booking reports BOOKING_NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		svc := NewBookingService(newMemBookingRepo(), nil)

		_, err := svc.Get(context.Background(), "user-a", "no-such-id")
		if code := domainCode(t, err); code != "BOOKING_NOT_FOUND" {
			t.Fatalf("expected BOOKING_NOT_FOUND, got %s", code)
		}
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("owner cancels confirmed booking", func(t *testing.T) {
		t.Parallel()
		repo := newMemBookingRepo()
		svc := NewBookingService(repo, nil)
		booking := newBooking(t, svc, "user-a")

		if err := svc.Cancel(context.Background(), "user-a", booking.ID); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}

		stored, err := repo.GetByID(context.Background(), booking.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if stored.Status != domain.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %s", stored.Status)
		}
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewBookingService(newMemBookingRepo(), nil)
		booking := newBooking(t, svc, "user-a")

		if err := svc.Cancel(context.Background(), "user-a", booking.ID); err != nil {
			t.Fatalf("first Cancel failed: %v", err)
		}
		err := svc.Cancel(context.Background(), "user-a", booking.ID)
		if code := domainCode(t, err); code != "ALREADY_CANCELLED" {
			t.Fatalf("expected ALREADY_CANCELLED, got %s", code)
		}
	})

	t.Run("other user cannot cancel", func(t *testing.T) {
		t.Parallel()
		repo := newMemBookingRepo()
		svc := NewBookingService(repo, nil)
		booking := newBooking(t, svc, "user-a")

		err := svc.Cancel(context.Background(), "user-b", booking.ID)
		if code := domainCode(t, err); code != "FORBIDDEN" {
			t.Fatalf("expected FORBIDDEN, got %s", code)
		}

		stored, _ := repo.GetByID(context.Background(), booking.ID)
		if stored.Status != domain.BookingStatusConfirmed {
			t.Fatalf("booking status must not change, got %s", stored.Status)
		}
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		t.Parallel()
		repo := newMemBookingRepo()
		svc := NewBookingService(repo, nil)
		booking := newBooking(t, svc, "user-a")

		booking.Status = domain.BookingStatusCompleted
		if err := repo.Update(context.Background(), booking); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		err := svc.Cancel(context.Background(), "user-a", booking.ID)
		if code := domainCode(t, err); code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", code)
		}
	})

	t.Run("missing booking reports BOOKING_NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		svc := NewBookingService(newMemBookingRepo(), nil)

		err := svc.Cancel(context.Background(), "user-a", "no-such-id")
		if code := domainCode(t, err); code != "BOOKING_NOT_FOUND" {
			t.Fatalf("expected BOOKING_NOT_FOUND, got %s", code)
		}
	})
}
