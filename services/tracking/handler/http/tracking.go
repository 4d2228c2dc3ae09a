package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/presence"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
	"github.com/piresc/sitetrack/internal/utils"
	"github.com/piresc/sitetrack/services/tracking"
)

// TrackingHandler handles HTTP requests for beacons, presence and positions
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	// ingest guards the endpoints that mutate beacon state
	ingest []echo.MiddlewareFunc
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(
	trackingUC tracking.TrackingUC,
	ingest ...echo.MiddlewareFunc,
) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		ingest:     ingest,
	}
}

// RegisterRoutes registers the tracking endpoints
func (h *TrackingHandler) RegisterRoutes(e *echo.Echo) {
	beacons := e.Group("/api/beacons")
	beacons.POST("", h.CreateBeacon)
	beacons.GET("", h.ListBeacons)
	beacons.GET("/:id", h.GetBeacon)
	beacons.PUT("/:id/distances/:stationId", h.UpsertDistance, h.ingest...)
	beacons.POST("/:id/stations/:stationId/toggle", h.ToggleRange, h.ingest...)
	beacons.GET("/:id/stations/:stationId/elapsed", h.StationElapsed)
	beacons.GET("/:id/position", h.GetPosition)
	beacons.GET("/:id/summary", h.GetSummary)

	sites := e.Group("/api/sites")
	sites.GET("/:siteId/overview", h.GetSiteOverview)
	sites.GET("/:siteId/beacons/nearby", h.GetNearbyBeacons)
}

// CreateBeacon handles beacon pairing requests
func (h *TrackingHandler) CreateBeacon(c echo.Context) error {
	var req models.CreateBeaconRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	beacon, err := h.trackingUC.CreateBeacon(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to create beacon")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Beacon created successfully", beacon)
}

// ListBeacons returns beacons, optionally filtered by the siteId query parameter
func (h *TrackingHandler) ListBeacons(c echo.Context) error {
	beacons, err := h.trackingUC.ListBeacons(c.Request().Context(), c.QueryParam("siteId"))
	if err != nil {
		return respondError(c, err, "Failed to list beacons")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Beacons retrieved successfully", beacons)
}

// GetBeacon returns a single beacon with its raw presence state
func (h *TrackingHandler) GetBeacon(c echo.Context) error {
	beacon, err := h.trackingUC.GetBeacon(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve beacon")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Beacon retrieved successfully", beacon)
}

// UpsertDistance stores a distance reading
func (h *TrackingHandler) UpsertDistance(c echo.Context) error {
	var req models.DistanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	beaconID, stationID := c.Param("id"), c.Param("stationId")
	if err := h.trackingUC.UpsertDistance(c.Request().Context(), beaconID, stationID, *req.Distance); err != nil {
		return respondError(c, err, "Failed to update distance")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Distance updated successfully", map[string]interface{}{
		"beaconId":  beaconID,
		"stationId": stationID,
		"distance":  *req.Distance,
	})
}

// ToggleRange flips the beacon's range state for a station
func (h *TrackingHandler) ToggleRange(c echo.Context) error {
	transition, err := h.trackingUC.ToggleRange(c.Request().Context(), c.Param("id"), c.Param("stationId"))
	if err != nil {
		return respondError(c, err, "Failed to toggle range")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Range toggled successfully", transition)
}

// StationElapsed returns live elapsed time at an active station
func (h *TrackingHandler) StationElapsed(c echo.Context) error {
	stationID := c.Param("stationId")
	elapsed, err := h.trackingUC.StationElapsed(c.Request().Context(), c.Param("id"), stationID)
	if err != nil {
		if errors.Is(err, presence.ErrNotInRange) {
			return utils.NotFoundResponse(c, "Station is not active for this beacon")
		}
		return respondError(c, err, "Failed to compute elapsed time")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Elapsed time retrieved successfully", map[string]interface{}{
		"stationId": stationID,
		"elapsedMs": elapsed.Milliseconds(),
	})
}

// GetPosition estimates the beacon position from its current readings
func (h *TrackingHandler) GetPosition(c echo.Context) error {
	estimate, err := h.trackingUC.EstimatePosition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to estimate position")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Position estimated successfully", estimate)
}

// GetSummary returns the beacon's presence summary
func (h *TrackingHandler) GetSummary(c echo.Context) error {
	summary, err := h.trackingUC.Summary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to summarize presence")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// GetSiteOverview returns per-beacon summaries and site totals
func (h *TrackingHandler) GetSiteOverview(c echo.Context) error {
	overview, err := h.trackingUC.SiteOverview(c.Request().Context(), c.Param("siteId"))
	if err != nil {
		return respondError(c, err, "Failed to build site overview")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Site overview retrieved successfully", overview)
}

// GetNearbyBeacons lists the site's beacons near lat/lng within radius meters
func (h *TrackingHandler) GetNearbyBeacons(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng query parameters are required")
	}
	radius := 50.0
	if raw := c.QueryParam("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
		radius = r
	}

	center := models.GeoPoint{Latitude: lat, Longitude: lng}
	beacons, err := h.trackingUC.NearbyBeacons(c.Request().Context(), c.Param("siteId"), center, radius)
	if err != nil {
		return respondError(c, err, "Failed to find nearby beacons")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby beacons retrieved successfully", beacons)
}

func respondError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrValidation), errors.Is(err, presence.ErrInvalidDistance):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, presence.ErrAlreadyInRange),
		errors.Is(err, presence.ErrNotInRange),
		errors.Is(err, presence.ErrClockSkew):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, trilateration.ErrInsufficientData):
		return utils.UnprocessableEntityResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
	return utils.InternalServerErrorResponse(c, fallback)
}
