package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/sitetrack/internal/pkg/metrics"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/tracking"
	httpHandler "github.com/piresc/sitetrack/services/tracking/handler/http"
	nsqHandler "github.com/piresc/sitetrack/services/tracking/handler/nsq"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingNSQ  *nsqHandler.TrackingHandler
}

// NewHandler creates a new combined handler. ingest middleware wraps the
// endpoints that mutate beacon state.
func NewHandler(
	trackingUC tracking.TrackingUC,
	nsqCfg models.NSQConfig,
	collector *metrics.Collector,
	ingest ...echo.MiddlewareFunc,
) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC, ingest...),
		trackingNSQ:  nsqHandler.NewTrackingHandler(trackingUC, nsqCfg, collector),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	h.trackingHTTP.RegisterRoutes(e)
}

// InitNSQConsumers initializes all NSQ consumers
func (h *Handler) InitNSQConsumers() error {
	return h.trackingNSQ.InitNSQConsumers()
}

// StopNSQConsumers stops all NSQ consumers
func (h *Handler) StopNSQConsumers() {
	h.trackingNSQ.Stop()
}
