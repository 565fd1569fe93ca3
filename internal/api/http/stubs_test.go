package http_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/repository"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = uuid.NewString()
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *memBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[booking.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *booking
	return &clone, nil
}

func (r *memBookingRepo) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []domain.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, *booking)
		}
	}
	return bookings, nil
}

func (r *memBookingRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := make([]domain.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func (r *memBookingRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

func (r *memBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, booking := range r.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

type memFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*domain.Favorite
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{favorites: make(map[string]*domain.Favorite)}
}

func favKey(userID, restaurantID string) string {
	return userID + "|" + restaurantID
}

func (r *memFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favKey(favorite.UserID, favorite.RestaurantID)
	if _, ok := r.favorites[key]; ok {
		return repository.ErrDuplicateFavorite
	}
	favorite.ID = uuid.NewString()
	clone := *favorite
	r.favorites[key] = &clone
	return nil
}

func (r *memFavoriteRepo) GetByUserAndRestaurant(_ context.Context, userID, restaurantID string) (*domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	favorite, ok := r.favorites[favKey(userID, restaurantID)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *favorite
	return &clone, nil
}

func (r *memFavoriteRepo) ListByUser(_ context.Context, userID string) ([]domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var favorites []domain.Favorite
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			favorites = append(favorites, *favorite)
		}
	}
	return favorites, nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, userID, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favKey(userID, restaurantID)
	if _, ok := r.favorites[key]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.favorites, key)
	return nil
}

type memRestaurantRepo struct {
	mu          sync.Mutex
	restaurants map[string]*domain.Restaurant
}

func newMemRestaurantRepo() *memRestaurantRepo {
	return &memRestaurantRepo{restaurants: make(map[string]*domain.Restaurant)}
}

func (r *memRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	restaurant.ID = uuid.NewString()
	clone := *restaurant
	r.restaurants[restaurant.ID] = &clone
	return nil
}

func (r *memRestaurantRepo) Update(_ context.Context, restaurant *domain.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *restaurant
	r.restaurants[restaurant.ID] = &clone
	return nil
}

func (r *memRestaurantRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restaurants[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.restaurants, id)
	return nil
}

func (r *memRestaurantRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *restaurant
	return &clone, nil
}

func (r *memRestaurantRepo) List(_ context.Context) ([]domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	restaurants := make([]domain.Restaurant, 0, len(r.restaurants))
	for _, restaurant := range r.restaurants {
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, nil
}

func (r *memRestaurantRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.restaurants)), nil
}
