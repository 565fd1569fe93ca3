package service

import (
	"context"
	"testing"
)

func favoriteInput(restaurantID string) FavoriteCreateInput {
	return FavoriteCreateInput{
		RestaurantID:   restaurantID,
		RestaurantName: "Sakura Japanese",
		Cuisine:        "Japanese",
		Rating:         4.6,
		ReviewCount:    189,
		Address:        "89 Dostyk Avenue, Almaty",
		PriceRange:     "$$$",
		Description:    "Traditional Japanese dining",
	}
}

func TestFavoriteService_Add(t *testing.T) {
	t.Parallel()

	t.Run("stores favorite with owner and defaults", func(t *testing.T) {
		t.Parallel()
		svc := NewFavoriteService(newMemFavoriteRepo(), nil)

		favorite, err := svc.Add(context.Background(), "user-a", favoriteInput("rest-1"))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if favorite.UserID != "user-a" {
			t.Fatalf("expected owner user-a, got %s", favorite.UserID)
		}
		if !favorite.IsOpen {
			t.Fatal("expected IsOpen to default to true")
		}
	})

	t.Run("duplicate reports ALREADY_FAVORITED and keeps one record", func(t *testing.T) {
		t.Parallel()
		repo := newMemFavoriteRepo()
		svc := NewFavoriteService(repo, nil)

		if _, err := svc.Add(context.Background(), "user-a", favoriteInput("rest-1")); err != nil {
			t.Fatalf("first Add failed: %v", err)
		}
		_, err := svc.Add(context.Background(), "user-a", favoriteInput("rest-1"))
		if code := domainCode(t, err); code != "ALREADY_FAVORITED" {
			t.Fatalf("expected ALREADY_FAVORITED, got %s", code)
		}

		favorites, err := repo.ListByUser(context.Background(), "user-a")
		if err != nil {
			t.Fatalf("ListByUser failed: %v", err)
		}
		if len(favorites) != 1 {
			t.Fatalf("expected 1 favorite persisted, got %d", len(favorites))
		}
	})

	t.Run("different users may favorite the same restaurant", func(t *testing.T) {
		t.Parallel()
		svc := NewFavoriteService(newMemFavoriteRepo(), nil)

		if _, err := svc.Add(context.Background(), "user-a", favoriteInput("rest-1")); err != nil {
			t.Fatalf("Add for user-a failed: %v", err)
		}
		if _, err := svc.Add(context.Background(), "user-b", favoriteInput("rest-1")); err != nil {
			t.Fatalf("Add for user-b failed: %v", err)
		}
	})
}

func TestFavoriteService_IsFavorited(t *testing.T) {
	t.Parallel()

	svc := NewFavoriteService(newMemFavoriteRepo(), nil)

	favorited, err := svc.IsFavorited(context.Background(), "user-a", "rest-1")
	if err != nil {
		t.Fatalf("IsFavorited failed: %v", err)
	}
	if favorited {
		t.Fatal("expected false before adding")
	}

	if _, err := svc.Add(context.Background(), "user-a", favoriteInput("rest-1")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	favorited, err = svc.IsFavorited(context.Background(), "user-a", "rest-1")
	if err != nil {
		t.Fatalf("IsFavorited failed: %v", err)
	}
	if !favorited {
		t.Fatal("expected true after adding")
	}

	// another user's favorite must not leak into the check
	favorited, err = svc.IsFavorited(context.Background(), "user-b", "rest-1")
	if err != nil {
		t.Fatalf("IsFavorited failed: %v", err)
	}
	if favorited {
		t.Fatal("expected false for a different user")
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes existing favorite", func(t *testing.T) {
		t.Parallel()
		svc := NewFavoriteService(newMemFavoriteRepo(), nil)

		if _, err := svc.Add(context.Background(), "user-a", favoriteInput("rest-1")); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if err := svc.Remove(context.Background(), "user-a", "rest-1"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}

		favorited, _ := svc.IsFavorited(context.Background(), "user-a", "rest-1")
		if favorited {
			t.Fatal("expected favorite to be gone")
		}
	})

	t.Run("missing favorite reports FAVORITE_NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		svc := NewFavoriteService(newMemFavoriteRepo(), nil)

		err := svc.Remove(context.Background(), "user-a", "rest-1")
		if code := domainCode(t, err); code != "FAVORITE_NOT_FOUND" {
			t.Fatalf("expected FAVORITE_NOT_FOUND, got %s", code)
		}
	})
}
