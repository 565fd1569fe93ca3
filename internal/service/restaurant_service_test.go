package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-booking/internal/domain"
)

func newRestaurantService(repo *memRestaurantRepo) *RestaurantService {
	return NewRestaurantService(repo, nil, 0, nil, zap.NewNop())
}

func sampleRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		Name:        "La Piazza Italiana",
		Description: "Authentic Italian kitchen.",
		Cuisine:     "Italian",
		Address:     "44 Abay Avenue, Almaty",
		Phone:       "+7 (727) 123-45-67",
		Rating:      4.8,
		ReviewCount: 256,
		PriceRange:  "$$$",
		IsOpen:      true,
	}
}

func TestRestaurantService_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns stored restaurant", func(t *testing.T) {
		t.Parallel()
		repo := newMemRestaurantRepo()
		svc := newRestaurantService(repo)

		created, err := svc.Create(context.Background(), sampleRestaurant())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := svc.Get(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != "La Piazza Italiana" {
			t.Fatalf("unexpected name %s", got.Name)
		}
	})

	t.Run("missing restaurant reports NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		svc := newRestaurantService(newMemRestaurantRepo())

		_, err := svc.Get(context.Background(), "no-such-id")
		if code := domainCode(t, err); code != "NOT_FOUND" {
			t.Fatalf("expected NOT_FOUND, got %s", code)
		}
	})
}

func TestRestaurantService_Create(t *testing.T) {
	t.Parallel()

	svc := newRestaurantService(newMemRestaurantRepo())

	created, err := svc.Create(context.Background(), sampleRestaurant())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	// nil slices are normalized so the catalog always serializes arrays
	if created.OpeningHours == nil || created.Tables == nil {
		t.Fatal("expected empty slices, got nil")
	}
}

func TestRestaurantService_Update(t *testing.T) {
	t.Parallel()

	t.Run("applies only the provided fields", func(t *testing.T) {
		t.Parallel()
		svc := newRestaurantService(newMemRestaurantRepo())

		created, err := svc.Create(context.Background(), sampleRestaurant())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		name := "La Piazza"
		closed := false
		updated, err := svc.Update(context.Background(), created.ID, RestaurantUpdateInput{
			Name:   &name,
			IsOpen: &closed,
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Name != "La Piazza" {
			t.Fatalf("expected updated name, got %s", updated.Name)
		}
		if updated.IsOpen {
			t.Fatal("expected restaurant to be closed")
		}
		if updated.Cuisine != "Italian" {
			t.Fatalf("untouched field changed: %s", updated.Cuisine)
		}
	})

	t.Run("missing restaurant reports RESTAURANT_NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		svc := newRestaurantService(newMemRestaurantRepo())

		_, err := svc.Update(context.Background(), "no-such-id", RestaurantUpdateInput{})
		if code := domainCode(t, err); code != "RESTAURANT_NOT_FOUND" {
			t.Fatalf("expected RESTAURANT_NOT_FOUND, got %s", code)
		}
	})
}

func TestRestaurantService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes restaurant from catalog", func(t *testing.T) {
		t.Parallel()
		svc := newRestaurantService(newMemRestaurantRepo())

		created, err := svc.Create(context.Background(), sampleRestaurant())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := svc.Delete(context.Background(), created.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err = svc.Get(context.Background(), created.ID)
		if code := domainCode(t, err); code != "NOT_FOUND" {
			t.Fatalf("expected NOT_FOUND after delete, got %s", code)
		}
	})

	t.Run("missing restaurant reports RESTAURANT_NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		svc := newRestaurantService(newMemRestaurantRepo())

		err := svc.Delete(context.Background(), "no-such-id")
		if code := domainCode(t, err); code != "RESTAURANT_NOT_FOUND" {
			t.Fatalf("expected RESTAURANT_NOT_FOUND, got %s", code)
		}
	})
}

func TestRestaurantService_List(t *testing.T) {
	t.Parallel()

	svc := newRestaurantService(newMemRestaurantRepo())

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(listed))
	}

	if _, err := svc.Create(context.Background(), sampleRestaurant()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	listed, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 restaurant, got %d", len(listed))
	}
}
