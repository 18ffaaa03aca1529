package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_checkin_service/internal/config"
	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/service"
	"github.com/sirupsen/logrus"
)

const invalidSearchParamsMessage = "Invalid parameters. Please provide valid lat, lng, and radius values."

// Services - сервисы, которые обслуживает HTTP слой
type Services struct {
	Search   service.SearchService
	Checkins service.CheckinService
	Places   service.PlaceService
	Users    service.UserService
}

type Handler struct {
	search   service.SearchService
	checkins service.CheckinService
	places   service.PlaceService
	users    service.UserService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		search:   services.Search,
		checkins: services.Checkins,
		places:   services.Places,
		users:    services.Users,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Search nearby places
// @Description Find places within radius km of the given point, nearest first. Results are cached for a few minutes.
// @Tags Places
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km" default(5)
// @Success 200 {object} NearbyPlacesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/nearby [get]
func (h *Handler) searchNearbyPlaces(c *gin.Context) {
	log := h.requestLogger(c, "searchNearbyPlaces")

	center, radius, ok := parseSearchQuery(c, h.cfg.NearbyPlacesDefaultRadius)
	if !ok {
		log.WithField("query", c.Request.URL.RawQuery).Warn("Invalid search parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidSearchParamsMessage})
		return
	}

	places, err := h.search.SearchNearbyPlaces(c.Request.Context(), center, radius)
	if err != nil {
		h.respondError(c, log, err, "failed to search nearby places")
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyPlacesResponse(places))
}

// @Summary Search nearby users
// @Description Find users whose latest reported location is within radius km, nearest first
// @Tags Users
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km" default(2)
// @Success 200 {object} NearbyUsersResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/nearby [get]
func (h *Handler) searchNearbyUsers(c *gin.Context) {
	log := h.requestLogger(c, "searchNearbyUsers")

	center, radius, ok := parseSearchQuery(c, h.cfg.NearbyUsersDefaultRadiusKm)
	if !ok {
		log.WithField("query", c.Request.URL.RawQuery).Warn("Invalid search parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidSearchParamsMessage})
		return
	}

	users, err := h.search.SearchNearbyUsers(c.Request.Context(), center, radius)
	if err != nil {
		h.respondError(c, log, err, "failed to search nearby users")
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyUsersResponse(users))
}

// @Summary Check in at a place
// @Description Record a check-in. A repeated check-in of the same user at the same place within the cooldown window is rejected with 409.
// @Tags Checkins
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param checkin body CheckinRequest true "Check-in request"
// @Success 201 {object} CheckinResponse
// @Failure 400 {object} map[string]string "Invalid place ID or request body"
// @Failure 404 {object} map[string]string "Place or user not found"
// @Failure 409 {object} CheckinResponse "Cooldown active"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id}/checkins [post]
func (h *Handler) attemptCheckin(c *gin.Context) {
	placeID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place ID"})
		return
	}
	log := h.requestLogger(c, "attemptCheckin").WithField("place_id", placeID)

	var input CheckinRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.checkins.AttemptCheckin(c.Request.Context(), input.UserID, placeID)
	if err != nil {
		h.respondError(c, log, err, "failed to check in")
		return
	}

	if !result.Accepted {
		c.JSON(http.StatusConflict, ModelToCheckinResponse(result))
		return
	}
	c.JSON(http.StatusCreated, ModelToCheckinResponse(result))
}

// @Summary Get check-in status
// @Description Tell whether the user can check in at the place now, without changing anything
// @Tags Checkins
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} CheckinStatusResponse
// @Failure 400 {object} map[string]string "Invalid place ID"
// @Failure 404 {object} map[string]string "Place or user not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id}/checkins/{user_id} [get]
func (h *Handler) getCheckinStatus(c *gin.Context) {
	placeID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place ID"})
		return
	}
	userID := c.Param("user_id")
	log := h.requestLogger(c, "getCheckinStatus").WithFields(logrus.Fields{"place_id": placeID, "user_id": userID})

	status, err := h.checkins.CheckinStatus(c.Request.Context(), userID, placeID)
	if err != nil {
		h.respondError(c, log, err, "failed to get check-in status")
		return
	}
	c.JSON(http.StatusOK, ModelToCheckinStatusResponse(status))
}

// @Summary List check-in counts
// @Description Number of check-ins at the place per user, most active first
// @Tags Checkins
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} CheckinCountsResponse
// @Failure 400 {object} map[string]string "Invalid place ID"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id}/checkins [get]
func (h *Handler) listCheckinCounts(c *gin.Context) {
	placeID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place ID"})
		return
	}
	log := h.requestLogger(c, "listCheckinCounts").WithField("place_id", placeID)

	counts, err := h.checkins.ListCheckinCounts(c.Request.Context(), placeID)
	if err != nil {
		h.respondError(c, log, err, "failed to list check-in counts")
		return
	}
	c.JSON(http.StatusOK, ModelsToCheckinCountsResponse(placeID, counts))
}

// @Summary Create a new place
// @Description Create a place. The check-in counter starts at zero. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param place body CreatePlaceRequest true "Place creation request"
// @Success 201 {object} PlaceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places [post]
func (h *Handler) createPlace(c *gin.Context) {
	log := h.requestLogger(c, "createPlace")

	var input CreatePlaceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToPlaceModel(input)
	if err := h.places.CreatePlace(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "failed to create place")
		return
	}
	c.JSON(http.StatusCreated, ModelToPlaceResponse(model))
}

// @Summary Get place by ID
// @Tags Places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} PlaceResponse
// @Failure 400 {object} map[string]string "Invalid place ID"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id} [get]
func (h *Handler) getPlace(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place ID"})
		return
	}
	log := h.requestLogger(c, "getPlace").WithField("place_id", id)

	place, err := h.places.GetPlace(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "failed to get place")
		return
	}
	c.JSON(http.StatusOK, ModelToPlaceResponse(place))
}

// @Summary Create or update a user
// @Description Create a user or update name and image of an existing one. Returns 201 when created, 200 when updated.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body UpsertUserRequest true "User request"
// @Success 200 {object} UserResponse
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) upsertUser(c *gin.Context) {
	log := h.requestLogger(c, "upsertUser")

	var input UpsertUserRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToUserModel(input)
	created, err := h.users.CreateOrUpdateUser(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err, "failed to save user")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, ModelToUserResponse(model))
}

// @Summary Get user by ID
// @Description Get a user together with the latest reported coordinates
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	userID := c.Param("id")
	log := h.requestLogger(c, "getUser").WithField("user_id", userID)

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err, "failed to get user")
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Report user location
// @Description Append the current coordinates of a user. Nearby users search uses the latest one.
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body ReportLocationRequest true "Location report"
// @Success 201 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) reportLocation(c *gin.Context) {
	log := h.requestLogger(c, "reportLocation")

	var input ReportLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToLocationModel(input)
	if err := h.users.ReportLocation(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "failed to save location")
		return
	}
	c.JSON(http.StatusCreated, ModelToLocationResponse(model))
}

// @Summary List locations
// @Description Location history, newest first. Filtered by user when user_id is given.
// @Tags Locations
// @Produce json
// @Param user_id query string false "User ID"
// @Success 200 {array} LocationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	userID := c.Query("user_id")
	log := h.requestLogger(c, "listLocations").WithField("user_id", userID)

	locations, err := h.users.ListLocations(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err, "failed to list locations")
		return
	}
	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Get location by ID
// @Tags Locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [get]
func (h *Handler) getLocation(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.requestLogger(c, "getLocation").WithField("location_id", id)

	location, err := h.users.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "failed to get location")
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Get user statistics
// @Description Get the number of distinct users that reported a location within the stats window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.requestLogger(c, "getStats")

	userCount, err := h.users.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "failed to get stats")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount, WindowMinutes: h.cfg.StatsTimeWindowMinutes})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindAndValidate разбирает JSON тело и проверяет его тегами validate.
// При ошибке ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError отображает ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidParameter):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrStoreUnavailable):
		log.WithError(err).Error(msg)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requestLogger добавляет к записи лога метод и request_id
func (h *Handler) requestLogger(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// parseSearchQuery читает lat, lng и radius. lat и lng обязательны,
// radius по умолчанию defaultRadius. Все значения должны быть конечными числами.
func parseSearchQuery(c *gin.Context, defaultRadius float64) (geo.Coordinate, float64, bool) {
	lat, ok := parseFiniteFloat(c.Query("lat"))
	if !ok {
		return geo.Coordinate{}, 0, false
	}
	lng, ok := parseFiniteFloat(c.Query("lng"))
	if !ok {
		return geo.Coordinate{}, 0, false
	}

	radius := defaultRadius
	if raw, exists := c.GetQuery("radius"); exists {
		if radius, ok = parseFiniteFloat(raw); !ok {
			return geo.Coordinate{}, 0, false
		}
	}

	center := geo.Coordinate{Lat: lat, Lng: lng}
	if center.Validate() != nil || radius <= 0 {
		return geo.Coordinate{}, 0, false
	}
	return center, radius, true
}

func parseFiniteFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
