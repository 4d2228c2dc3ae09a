package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/utils"
	"github.com/piresc/sitetrack/services/registry"
)

// RegistryHandler handles HTTP requests for brokers, stations and sites
type RegistryHandler struct {
	registryUC registry.RegistryUC
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(
	registryUC registry.RegistryUC,
) *RegistryHandler {
	return &RegistryHandler{
		registryUC: registryUC,
	}
}

// RegisterRoutes registers the registry endpoints
func (h *RegistryHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	brokers := api.Group("/mqtt-brokers")
	brokers.POST("", h.CreateBroker)
	brokers.GET("", h.ListBrokers)
	brokers.GET("/:brokerId/basestations", h.ListBrokerStations)
	brokers.POST("/:brokerId/basestations", h.CreateStation)

	sites := api.Group("/sites")
	sites.POST("", h.CreateSite)
	sites.GET("", h.ListSites)
}

// CreateBroker handles broker registration requests
func (h *RegistryHandler) CreateBroker(c echo.Context) error {
	var req models.CreateBrokerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	broker, err := h.registryUC.CreateBroker(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to create broker")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Broker created successfully", broker)
}

// ListBrokers returns every broker with its stations
func (h *RegistryHandler) ListBrokers(c echo.Context) error {
	brokers, err := h.registryUC.ListBrokers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list brokers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Brokers retrieved successfully", brokers)
}

// ListBrokerStations returns the stations registered on a broker
func (h *RegistryHandler) ListBrokerStations(c echo.Context) error {
	brokerID := c.Param("brokerId")
	if brokerID == "" {
		return utils.BadRequestResponse(c, "Invalid broker ID")
	}

	stations, err := h.registryUC.ListBrokerStations(c.Request().Context(), brokerID)
	if err != nil {
		return respondError(c, err, "Failed to list base stations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Base stations retrieved successfully", stations)
}

// CreateStation handles base station registration requests
func (h *RegistryHandler) CreateStation(c echo.Context) error {
	brokerID := c.Param("brokerId")
	if brokerID == "" {
		return utils.BadRequestResponse(c, "Invalid broker ID")
	}

	var req models.CreateStationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	station, err := h.registryUC.CreateStation(c.Request().Context(), brokerID, req)
	if err != nil {
		return respondError(c, err, "Failed to create base station")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Base station created successfully", station)
}

// CreateSite handles site registration requests
func (h *RegistryHandler) CreateSite(c echo.Context) error {
	var req models.CreateSiteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	site, err := h.registryUC.CreateSite(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to create site")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Site created successfully", site)
}

// ListSites returns every site
func (h *RegistryHandler) ListSites(c echo.Context) error {
	sites, err := h.registryUC.ListSites(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list sites")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sites retrieved successfully", sites)
}

func respondError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
	return utils.InternalServerErrorResponse(c, fallback)
}
