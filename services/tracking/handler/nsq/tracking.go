package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/sitetrack/internal/pkg/constants"
	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/metrics"
	"github.com/piresc/sitetrack/internal/pkg/models"
	nsqpkg "github.com/piresc/sitetrack/internal/pkg/nsq"
	"github.com/piresc/sitetrack/services/tracking"
)

// TrackingHandler consumes beacon range and distance events from NSQ
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	cfg        models.NSQConfig
	metrics    *metrics.Collector
	consumers  []*nsqpkg.Consumer
}

// NewTrackingHandler creates a new tracking NSQ handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, cfg models.NSQConfig, collector *metrics.Collector) *TrackingHandler {
	if cfg.Channel == "" {
		cfg.Channel = constants.DefaultNSQChannel
	}
	return &TrackingHandler{
		trackingUC: trackingUC,
		cfg:        cfg,
		metrics:    collector,
		consumers:  make([]*nsqpkg.Consumer, 0),
	}
}

// InitNSQConsumers subscribes to the range and distance topics
func (h *TrackingHandler) InitNSQConsumers() error {
	topics := map[string]nsqpkg.MessageHandler{
		constants.TopicBeaconRange:    h.handleRangeEvent,
		constants.TopicBeaconDistance: h.handleDistanceEvent,
	}

	for _, topic := range []string{constants.TopicBeaconRange, constants.TopicBeaconDistance} {
		consumer, err := nsqpkg.NewConsumer(topic, h.cfg.Channel, h.cfg.MaxAttempts, h.instrument(topic, topics[topic]))
		if err != nil {
			return fmt.Errorf("failed to create consumer for %s: %w", topic, err)
		}

		if len(h.cfg.LookupdAddress) > 0 {
			err = consumer.ConnectToLookupd(h.cfg.LookupdAddress)
		} else {
			err = consumer.ConnectToNSQD(h.cfg.NSQDAddress)
		}
		if err != nil {
			consumer.Stop()
			return fmt.Errorf("failed to connect consumer for %s: %w", topic, err)
		}

		h.consumers = append(h.consumers, consumer)
		logger.Info("NSQ consumer started",
			logger.String("topic", topic),
			logger.String("channel", h.cfg.Channel))
	}
	return nil
}

// Stop stops every consumer
func (h *TrackingHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

func (h *TrackingHandler) instrument(topic string, handler nsqpkg.MessageHandler) nsqpkg.MessageHandler {
	return func(body []byte) error {
		err := handler(body)
		h.metrics.RecordMessage(topic, err)
		return err
	}
}

func (h *TrackingHandler) handleRangeEvent(body []byte) error {
	var event models.RangeEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		return err
	}

	transition, err := h.trackingUC.ApplyRangeEvent(context.Background(), event)
	if err != nil {
		return classify(err)
	}

	logger.Debug("Range event applied",
		logger.BeaconID(event.BeaconID),
		logger.StationID(event.StationID),
		logger.String("action", string(transition.Action)))
	return nil
}

func (h *TrackingHandler) handleDistanceEvent(body []byte) error {
	var event models.DistanceEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		return err
	}

	if err := h.trackingUC.ApplyDistanceEvent(context.Background(), event); err != nil {
		return classify(err)
	}
	return nil
}

// classify marks errors that retrying cannot fix as permanent so NSQ drops them
func classify(err error) error {
	if tracking.IsClientError(err) {
		return fmt.Errorf("%w: %w", nsqpkg.ErrPermanent, err)
	}
	return err
}
