package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger)

	// Места: поиск, карточка, создание (по API-ключу)
	places := api.Group("/places")
	{
		places.GET("/nearby", h.searchNearbyPlaces)
		places.POST("", auth, h.createPlace)
		places.GET("/:id", h.getPlace)

		// Отметки в месте
		places.POST("/:id/checkins", h.attemptCheckin)
		places.GET("/:id/checkins", h.listCheckinCounts)
		places.GET("/:id/checkins/:user_id", h.getCheckinStatus)
	}

	users := api.Group("/users")
	{
		users.GET("/nearby", h.searchNearbyUsers)
		users.POST("", h.upsertUser)
		users.GET("/:id", h.getUser)
	}

	locations := api.Group("/locations")
	{
		locations.POST("", h.reportLocation)
		locations.GET("", h.listLocations)
		locations.GET("/:id", h.getLocation)
	}

	api.GET("/stats", auth, h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
