package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/sitetrack/internal/pkg/constants"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/tracking"
)

// Publisher is the subset of the NSQ producer used by the gateway
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type trackingGW struct {
	publisher Publisher
}

// NewTrackingGW creates a new tracking gateway. A nil publisher turns every
// publish into a no-op, which is how the service runs without NSQ.
func NewTrackingGW(publisher Publisher) tracking.TrackingGW {
	return &trackingGW{
		publisher: publisher,
	}
}

// PublishVisitClosed publishes a closed visit to NSQ
func (g *trackingGW) PublishVisitClosed(ctx context.Context, event models.VisitClosedEvent) error {
	if g.publisher == nil {
		return nil
	}
	if err := g.publisher.Publish(constants.TopicVisitClosed, event); err != nil {
		return fmt.Errorf("failed to publish visit closed event: %w", err)
	}
	return nil
}

// PublishPositionEstimated publishes a fresh position estimate to NSQ
func (g *trackingGW) PublishPositionEstimated(ctx context.Context, event models.PositionEstimatedEvent) error {
	if g.publisher == nil {
		return nil
	}
	if err := g.publisher.Publish(constants.TopicPositionEstimated, event); err != nil {
		return fmt.Errorf("failed to publish position estimated event: %w", err)
	}
	return nil
}
