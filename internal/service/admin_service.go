package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/repository"
)

// BookingWithUser pairs a booking with its owner's contact info for the
// admin panel. User is nil when the owning account no longer exists.
type BookingWithUser struct {
	Booking domain.Booking
	User    *domain.User
}

// AdminStats aggregates panel counters.
type AdminStats struct {
	TotalUsers       int64
	TotalBookings    int64
	TotalRestaurants int64
	ActiveBookings   int64
}

// AdminService serves panel listings and statistics.
type AdminService struct {
	users       repository.UserRepository
	bookings    repository.BookingRepository
	restaurants repository.RestaurantRepository
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository, bookings repository.BookingRepository, restaurants repository.RestaurantRepository) *AdminService {
	return &AdminService{users: users, bookings: bookings, restaurants: restaurants}
}

// ListUsers returns all accounts, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListBookings returns all bookings with owner name/email attached.
func (s *AdminService) ListBookings(ctx context.Context) ([]BookingWithUser, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]BookingWithUser, 0, len(bookings))
	for i := range bookings {
		entry := BookingWithUser{Booking: bookings[i]}
		user, err := s.users.GetByID(ctx, bookings[i].UserID)
		switch {
		case err == nil:
			entry.User = user
		case errors.Is(err, pgx.ErrNoRows):
			// owner deleted after booking; keep the row with no user info
		default:
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}

// Stats collects the panel counters. Active means status confirmed.
func (s *AdminService) Stats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.TotalRestaurants, err = s.restaurants.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.ActiveBookings, err = s.bookings.CountByStatus(ctx, domain.BookingStatusConfirmed); err != nil {
		return AdminStats{}, err
	}
	return stats, nil
}
