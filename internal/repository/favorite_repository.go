package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-booking/internal/domain"
)

// ErrDuplicateFavorite is returned when the (user_id, restaurant_id) unique
// constraint rejects an insert. The constraint, not a prior existence check,
// is what enforces the one-favorite-per-restaurant invariant under
// concurrent requests.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// FavoriteRepository encapsulates favorite persistence.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	GetByUserAndRestaurant(ctx context.Context, userID, restaurantID string) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
	Delete(ctx context.Context, userID, restaurantID string) error
}

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository instantiates repository.
func NewFavoriteRepository(pool *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{pool: pool}
}

const favoriteColumns = `id, user_id, restaurant_id, restaurant_name, cuisine, rating,
               review_count, address, price_range, description, is_open, created_at, updated_at`

func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	const query = `
        INSERT INTO favorites (user_id, restaurant_id, restaurant_name, cuisine, rating, review_count, address, price_range, description, is_open)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		favorite.UserID,
		favorite.RestaurantID,
		favorite.RestaurantName,
		favorite.Cuisine,
		favorite.Rating,
		favorite.ReviewCount,
		favorite.Address,
		favorite.PriceRange,
		favorite.Description,
		favorite.IsOpen,
	).Scan(&favorite.ID, &favorite.CreatedAt, &favorite.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateFavorite
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) GetByUserAndRestaurant(ctx context.Context, userID, restaurantID string) (*domain.Favorite, error) {
	const query = `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id=$1 AND restaurant_id=$2`

	var favorite domain.Favorite
	if err := scanFavorite(r.pool.QueryRow(ctx, query, userID, restaurantID), &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	const query = `SELECT ` + favoriteColumns + ` FROM favorites WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var favorite domain.Favorite
		if err := scanFavorite(rows, &favorite); err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}
	return favorites, rows.Err()
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, restaurantID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE user_id=$1 AND restaurant_id=$2`, userID, restaurantID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanFavorite(row pgx.Row, favorite *domain.Favorite) error {
	return row.Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.RestaurantID,
		&favorite.RestaurantName,
		&favorite.Cuisine,
		&favorite.Rating,
		&favorite.ReviewCount,
		&favorite.Address,
		&favorite.PriceRange,
		&favorite.Description,
		&favorite.IsOpen,
		&favorite.CreatedAt,
		&favorite.UpdatedAt,
	)
}
