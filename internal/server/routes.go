package server

import (
	"github.com/labstack/echo/v4"

	"example.com/ai-trip-planner/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	generateHandler *handlers.GenerateHandler,
	itineraryHandler *handlers.ItineraryHandler,
	tripHandler *handlers.TripHandler,
	noteHandler *handlers.NoteHandler,
	statsHandler *handlers.StatsHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	trips := api.Group("/trips", authMiddleware)
	trips.POST("/generate", generateHandler.Generate, aiRateLimiter)
	trips.POST("/regenerate", generateHandler.Regenerate, aiRateLimiter)
	trips.GET("/preview", generateHandler.GetPreview)
	trips.DELETE("/preview", generateHandler.DiscardPreview)
	trips.POST("/preview/days/:day/slots/:period/regenerate", itineraryHandler.RegenerateActivity, aiRateLimiter)
	trips.PUT("/preview/days/:day/slots/:period", itineraryHandler.EditActivity)
	trips.DELETE("/preview/days/:day/slots/:period", itineraryHandler.RemoveActivity)
	trips.POST("", tripHandler.Save)
	trips.GET("", tripHandler.List)
	trips.GET("/:id", tripHandler.Get)
	trips.DELETE("/:id", tripHandler.Delete)
	trips.GET("/:id/export/json", tripHandler.ExportJSON)
	trips.GET("/:id/export/csv", tripHandler.ExportCSV)
	trips.GET("/:id/export/pdf", tripHandler.ExportPDF)
	trips.GET("/:tripId/notes", noteHandler.List)
	trips.POST("/:tripId/notes", noteHandler.Create)

	notes := api.Group("/notes", authMiddleware)
	notes.PUT("/:noteId", noteHandler.Update)
	notes.DELETE("/:noteId", noteHandler.Delete)

	stats := api.Group("/stats", authMiddleware)
	stats.GET("/overview", statsHandler.Overview)
	stats.GET("/destinations", statsHandler.Destinations)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/ai-requests", adminHandler.ListAIRequests)
	admin.GET("/usage", adminHandler.Usage)
}
