package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-booking/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-booking/internal/auth"
	"github.com/spec-kit/restaurant-booking/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Bookings       *handlers.BookingsHandler
	Favorites      *handlers.FavoritesHandler
	Restaurants    *handlers.RestaurantsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	UserRepo       repository.UserRepository
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	authGroup.Put("/me", cfg.AuthMiddleware.Handle, cfg.Auth.UpdateMe)

	restaurants := api.Group("/restaurants")
	restaurants.Get("/", cfg.Restaurants.List)
	restaurants.Get("/:id", cfg.Restaurants.Get)

	bookings := api.Group("/bookings", cfg.AuthMiddleware.Handle)
	bookings.Post("/", cfg.Bookings.Create)
	bookings.Get("/my", cfg.Bookings.ListMine)
	bookings.Get("/:id", cfg.Bookings.Get)
	bookings.Delete("/:id/cancel", cfg.Bookings.Cancel)

	favorites := api.Group("/favorites", cfg.AuthMiddleware.Handle)
	favorites.Post("/", cfg.Favorites.Create)
	favorites.Get("/my", cfg.Favorites.ListMine)
	favorites.Get("/check/:restaurantId", cfg.Favorites.Check)
	favorites.Delete("/:restaurantId", cfg.Favorites.Delete)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin(cfg.UserRepo))
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Get("/bookings", cfg.Admin.ListBookings)
	admin.Get("/restaurants", cfg.Admin.ListRestaurants)
	admin.Post("/restaurants", cfg.Admin.CreateRestaurant)
	admin.Put("/restaurants/:id", cfg.Admin.UpdateRestaurant)
	admin.Delete("/restaurants/:id", cfg.Admin.DeleteRestaurant)
	admin.Get("/stats", cfg.Admin.Stats)
}
