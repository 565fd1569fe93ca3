package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-booking/internal/domain"
)

// RestaurantRepository encapsulates catalog persistence. Tables are stored as
// JSONB alongside the restaurant row, mirroring the embedded document shape.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Count(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository instantiates repository.
func NewRestaurantRepository(pool *pgxpool.Pool) RestaurantRepository {
	return &restaurantRepository{pool: pool}
}

const restaurantColumns = `id, name, description, cuisine, address, phone, rating, review_count,
               price_range, image_url, opening_hours, tables, is_open, created_at, updated_at`

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        INSERT INTO restaurants (name, description, cuisine, address, phone, rating, review_count, price_range, image_url, opening_hours, tables, is_open)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		restaurant.Name,
		restaurant.Description,
		restaurant.Cuisine,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Rating,
		restaurant.ReviewCount,
		restaurant.PriceRange,
		restaurant.ImageURL,
		restaurant.OpeningHours,
		restaurant.Tables,
		restaurant.IsOpen,
	).Scan(&restaurant.ID, &restaurant.CreatedAt, &restaurant.UpdatedAt)
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        UPDATE restaurants SET name=$1, description=$2, cuisine=$3, address=$4, phone=$5, rating=$6,
            review_count=$7, price_range=$8, image_url=$9, opening_hours=$10, tables=$11, is_open=$12, updated_at=NOW()
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		restaurant.Name,
		restaurant.Description,
		restaurant.Cuisine,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Rating,
		restaurant.ReviewCount,
		restaurant.PriceRange,
		restaurant.ImageURL,
		restaurant.OpeningHours,
		restaurant.Tables,
		restaurant.IsOpen,
		restaurant.ID,
	)
	if err != nil {
		return normalizeLookupErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id=$1`, id)
	if err != nil {
		return normalizeLookupErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id=$1`

	var restaurant domain.Restaurant
	if err := scanRestaurant(r.pool.QueryRow(ctx, query, id), &restaurant); err != nil {
		return nil, normalizeLookupErr(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := scanRestaurant(rows, &restaurant); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count)
	return count, err
}

func scanRestaurant(row pgx.Row, restaurant *domain.Restaurant) error {
	return row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.Cuisine,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.Rating,
		&restaurant.ReviewCount,
		&restaurant.PriceRange,
		&restaurant.ImageURL,
		&restaurant.OpeningHours,
		&restaurant.Tables,
		&restaurant.IsOpen,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
}
