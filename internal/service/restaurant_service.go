package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/events"
	"github.com/spec-kit/restaurant-booking/internal/repository"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

const catalogCacheKey = "catalog:restaurants"

// RestaurantUpdateInput carries partial catalog updates; nil fields are left
// unchanged.
type RestaurantUpdateInput struct {
	Name         *string
	Description  *string
	Cuisine      *string
	Address      *string
	Phone        *string
	Rating       *float64
	ReviewCount  *int
	PriceRange   *string
	ImageURL     *string
	OpeningHours []string
	Tables       []domain.Table
	IsOpen       *bool
}

// RestaurantService serves the public catalog and its admin mutations. The
// full listing is cached in redis with a short TTL; cache failures fall back
// to the database.
type RestaurantService struct {
	restaurants repository.RestaurantRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewRestaurantService builds the service. cache may be nil.
func NewRestaurantService(restaurants repository.RestaurantRepository, cache *redis.Client, cacheTTL time.Duration, dispatcher events.Dispatcher, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		cache:       cache,
		cacheTTL:    cacheTTL,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// List returns the whole catalog, newest first.
func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	if cached, ok := s.cachedCatalog(ctx); ok {
		return cached, nil
	}

	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, err
	}
	s.storeCatalog(ctx, restaurants)
	return restaurants, nil
}

// Get loads a single restaurant.
func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("NOT_FOUND", "restaurant not found")
		}
		return nil, err
	}
	return restaurant, nil
}

// Create adds a restaurant to the catalog (admin only).
func (s *RestaurantService) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	if restaurant.OpeningHours == nil {
		restaurant.OpeningHours = []string{}
	}
	if restaurant.Tables == nil {
		restaurant.Tables = []domain.Table{}
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRestaurantCreated,
			Timestamp: time.Now(),
			Payload: events.RestaurantCreatedPayload{
				RestaurantID: restaurant.ID,
				Name:         restaurant.Name,
			},
		})
	}
	return restaurant, nil
}

// Update applies a partial update to a restaurant (admin only).
func (s *RestaurantService) Update(ctx context.Context, id string, input RestaurantUpdateInput) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("RESTAURANT_NOT_FOUND", "restaurant not found")
		}
		return nil, err
	}

	applyRestaurantUpdate(restaurant, input)

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("RESTAURANT_NOT_FOUND", "restaurant not found")
		}
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return restaurant, nil
}

// Delete removes a restaurant from the catalog (admin only).
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if err := s.restaurants.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("RESTAURANT_NOT_FOUND", "restaurant not found")
		}
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

// ListForAdmin bypasses the cache so the panel always sees fresh rows.
func (s *RestaurantService) ListForAdmin(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.List(ctx)
}

func applyRestaurantUpdate(restaurant *domain.Restaurant, input RestaurantUpdateInput) {
	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.Cuisine != nil {
		restaurant.Cuisine = *input.Cuisine
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.Rating != nil {
		restaurant.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		restaurant.ReviewCount = *input.ReviewCount
	}
	if input.PriceRange != nil {
		restaurant.PriceRange = *input.PriceRange
	}
	if input.ImageURL != nil {
		restaurant.ImageURL = *input.ImageURL
	}
	if input.OpeningHours != nil {
		restaurant.OpeningHours = input.OpeningHours
	}
	if input.Tables != nil {
		restaurant.Tables = input.Tables
	}
	if input.IsOpen != nil {
		restaurant.IsOpen = *input.IsOpen
	}
}

func (s *RestaurantService) cachedCatalog(ctx context.Context) ([]domain.Restaurant, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, false
	}
	return restaurants, true
}

func (s *RestaurantService) storeCatalog(ctx context.Context, restaurants []domain.Restaurant) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(restaurants)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("catalog cache write failed", zap.Error(err))
	}
}

func (s *RestaurantService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Debug("catalog cache invalidation failed", zap.Error(err))
	}
}
