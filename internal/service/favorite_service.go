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

// FavoriteCreateInput carries validated favorite fields.
type FavoriteCreateInput struct {
	RestaurantID   string
	RestaurantName string
	Cuisine        string
	Rating         float64
	ReviewCount    int
	Address        string
	PriceRange     string
	Description    string
	IsOpen         *bool
}

// FavoriteService manages per-user restaurant favorites. Favorites are keyed
// by (user, restaurant), so every read and delete is implicitly scoped to the
// caller.
type FavoriteService struct {
	favorites  repository.FavoriteRepository
	dispatcher events.Dispatcher
}

// NewFavoriteService builds the service.
func NewFavoriteService(favorites repository.FavoriteRepository, dispatcher events.Dispatcher) *FavoriteService {
	return &FavoriteService{favorites: favorites, dispatcher: dispatcher}
}

// Add saves a restaurant to the caller's favorites. Duplicates are rejected
// by the storage unique constraint, not an application-level existence check.
func (s *FavoriteService) Add(ctx context.Context, userID string, input FavoriteCreateInput) (*domain.Favorite, error) {
	isOpen := true
	if input.IsOpen != nil {
		isOpen = *input.IsOpen
	}

	favorite := &domain.Favorite{
		UserID:         userID,
		RestaurantID:   input.RestaurantID,
		RestaurantName: input.RestaurantName,
		Cuisine:        input.Cuisine,
		Rating:         input.Rating,
		ReviewCount:    input.ReviewCount,
		Address:        input.Address,
		PriceRange:     input.PriceRange,
		Description:    input.Description,
		IsOpen:         isOpen,
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, apperrors.NewDomainError("ALREADY_FAVORITED", "restaurant is already in favorites", http.StatusBadRequest, nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventFavoriteAdded,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.FavoriteAddedPayload{
				RestaurantID:   favorite.RestaurantID,
				RestaurantName: favorite.RestaurantName,
			},
		})
	}
	return favorite, nil
}

// ListMine returns the caller's favorites, newest first.
func (s *FavoriteService) ListMine(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// IsFavorited reports whether the caller has favorited the restaurant.
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, restaurantID string) (bool, error) {
	if _, err := s.favorites.GetByUserAndRestaurant(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the caller's favorite for the restaurant.
func (s *FavoriteService) Remove(ctx context.Context, userID, restaurantID string) error {
	if err := s.favorites.Delete(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("FAVORITE_NOT_FOUND", "restaurant not found in favorites")
		}
		return err
	}
	return nil
}
