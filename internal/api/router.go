package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atypikhouse/atypikhouse-api/internal/api/handler"
	"github.com/atypikhouse/atypikhouse-api/internal/api/middleware"
	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// Services groups the wired use-case implementations the router exposes.
type Services struct {
	Tokens     ports.TokenService
	Auth       ports.AuthService
	Admin      ports.AdminService
	Properties ports.PropertyService
	Bookings   ports.BookingService
	Favorites  ports.FavoriteService
	Messages   ports.MessageRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger, secureCookies bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("atypikhouse"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth, secureCookies)
	adminHandler := handler.NewAdminHandler(svc.Admin)
	propertyHandler := handler.NewPropertyHandler(svc.Properties)
	bookingHandler := handler.NewBookingHandler(svc.Bookings)
	favoriteHandler := handler.NewFavoriteHandler(svc.Favorites)
	messageHandler := handler.NewMessageHandler(svc.Messages)

	authed := middleware.Auth(svc.Tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	ownerOnly := middleware.RequireRole(domain.RoleOwner)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authed)

	// --- Properties ---
	e.GET("/properties", propertyHandler.List)
	e.GET("/properties/featured", propertyHandler.Featured)
	e.GET("/properties/:id", propertyHandler.Get)
	e.POST("/properties", propertyHandler.Create, authed, ownerOnly)
	e.PATCH("/properties/:id", propertyHandler.Update, authed)
	e.DELETE("/properties/:id", propertyHandler.Delete, authed)
	e.POST("/properties/:id/images", propertyHandler.UploadImages, authed)

	// --- Bookings ---
	e.POST("/bookings", bookingHandler.Create, authed)
	e.GET("/bookings", bookingHandler.ListMine, authed)
	e.POST("/bookings/:id/confirm", bookingHandler.Confirm, authed)

	// --- Favorites ---
	e.POST("/favorites/:id", favoriteHandler.Toggle, authed)
	e.GET("/favorites", favoriteHandler.ListMine, authed)

	// --- Messages ---
	e.GET("/messages", messageHandler.ListMine, authed)

	// --- Admin ---
	admin := e.Group("/admin", authed, adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/owners", adminHandler.ListOwners)
	admin.POST("/hosts/:id/approve", adminHandler.ApproveHost)
	admin.POST("/hosts/:id/reject", adminHandler.RejectHost)
	admin.PATCH("/users/:id/active", adminHandler.ToggleActive)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
